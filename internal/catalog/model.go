package catalog

import "time"

// Category buckets items into the three slots a look is assembled from.
const (
	CategoryApparel   = "apparel"
	CategoryAccessory = "accessory"
	CategoryFootwear  = "footwear"
)

// Item is a product snapshot supplied fresh per recommendation call.
// The engine reads it and never mutates it.
type Item struct {
	ID           string
	Name         string
	Brand        string
	Category     string
	Subcategory  string
	Price        float64
	StockQty     int
	InStock      bool
	Gender       string
	Colors       []string
	Sizes        []string
	StyleTags    []string
	OccasionTags []string
	Tags         []string
	GiftSuitable bool
	Featured     bool
	ImageURL     string
	ProductURL   string
	CreatedAt    time.Time
}
