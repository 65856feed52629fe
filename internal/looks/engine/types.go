package engine

import "lookbook-backend/internal/catalog"

// Purpose values for a preference profile.
const (
	PurposePersonal = "personal"
	PurposeGift     = "gift"
)

// Sizes carries the shopper's sizes when the quiz collected them.
type Sizes struct {
	Top    string
	Bottom string
	Shoe   string
}

// GiftDetails holds fields that only exist for gift flows.
type GiftDetails struct {
	Relationship string
}

// Profile is the structured output of the quiz. It is read-only input to
// every pipeline stage. Gift is populated only when Purpose is PurposeGift.
type Profile struct {
	Purpose   string
	Gender    string
	Style     string
	Occasion  string
	Budget    string // free-form; parsed with parseBudget, defaulted when unusable
	ColorMood string
	Sizes     *Sizes
	Gift      *GiftDetails
}

// LookItem is one catalog item as it appears inside a Look.
type LookItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	ProductURL  string  `json:"productUrl"`
	StylingNote string  `json:"stylingNote"`
}

// Look is a bundle of 2-4 items presented as a single purchasable outfit.
// TotalPrice always equals the sum of item prices.
type Look struct {
	Index       int        `json:"index"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []LookItem `json:"items"`
	TotalPrice  float64    `json:"totalPrice"`
	StyleTip    string     `json:"styleTip"`
}

// ScoredCandidate pairs an item with its relevance score and the reasons
// that fired. It lives only for the duration of one scoring pass.
type ScoredCandidate struct {
	Item    catalog.Item
	Score   float64
	Reasons []string
}

// lookState tracks diversity inside the look currently being assembled.
// Keys are lowercased.
type lookState struct {
	usedColors  map[string]bool
	usedBrands  map[string]bool
	usedSubcats map[string]bool
}

func newLookState() *lookState {
	return &lookState{
		usedColors:  make(map[string]bool),
		usedBrands:  make(map[string]bool),
		usedSubcats: make(map[string]bool),
	}
}

func (s *lookState) note(item catalog.Item) {
	for _, c := range item.Colors {
		s.usedColors[lower(c)] = true
	}
	if item.Brand != "" {
		s.usedBrands[lower(item.Brand)] = true
	}
	s.usedSubcats[diversityKey(item)] = true
}

// diversityKey is the subcategory when present, otherwise the category.
func diversityKey(item catalog.Item) string {
	if item.Subcategory != "" {
		return lower(item.Subcategory)
	}
	return lower(item.Category)
}
