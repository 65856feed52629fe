package engine

import "strings"

// ColorMoodAny means the shopper left color choice to the engine; the open
// palette is used instead of a curated one.
const ColorMoodAny = "surprise"

// Weights are the fixed points added to a candidate's score when the
// corresponding match condition fires.
type Weights struct {
	StyleMatch         float64
	OccasionMatch      float64
	ColorMatch         float64
	ColorNovelty       float64
	SizeFit            float64
	BrandNovelty       float64
	SubcategoryNovelty float64
	GiftSuitable       float64
	PremiumBrand       float64
	Featured           float64
	SweetSpot          float64
	PremiumPick        float64
}

// Config carries every tunable the engine reads: weights, keyword tables,
// palettes, budget caps and the optional tie-break jitter source. A Config is
// immutable once handed to New; tests substitute their own tables and leave
// Jitter nil for fully deterministic runs.
type Config struct {
	LookCount     int
	DefaultBudget float64

	// Fractions of budget gating candidate eligibility per category.
	ApparelBudgetCap   float64 // of the look's remaining budget, inclusive
	AccessoryBudgetCap float64 // of the remaining budget after apparel
	SweetSpotLow       float64
	SweetSpotHigh      float64
	PremiumPickAbove   float64

	PlaceholderImageURL string

	Weights          Weights
	StyleKeywords    map[string][]string
	OccasionKeywords map[string][]string
	ColorPalettes    map[string][]string
	OpenPalette      []string
	PremiumBrands    []string

	// Jitter returns a small bounded addend used to break score ties.
	// Nil disables jitter entirely.
	Jitter func() float64
}

// DefaultConfig returns the production configuration tables.
func DefaultConfig() Config {
	return Config{
		LookCount:     5,
		DefaultBudget: 5000,

		ApparelBudgetCap:   0.70,
		AccessoryBudgetCap: 0.50,
		SweetSpotLow:       0.30,
		SweetSpotHigh:      0.60,
		PremiumPickAbove:   0.80,

		PlaceholderImageURL: "https://cdn.lookbook.example/placeholder-item.png",

		Weights: Weights{
			StyleMatch:         25,
			OccasionMatch:      20,
			ColorMatch:         15,
			ColorNovelty:       5,
			SizeFit:            18,
			BrandNovelty:       8,
			SubcategoryNovelty: 8,
			GiftSuitable:       10,
			PremiumBrand:       6,
			Featured:           5,
			SweetSpot:          10,
			PremiumPick:        4,
		},

		StyleKeywords: map[string][]string{
			"casual":     {"casual", "everyday", "relaxed", "basic", "comfort"},
			"formal":     {"formal", "office", "tailored", "classic", "business"},
			"streetwear": {"street", "urban", "oversized", "graphic", "sneaker"},
			"ethnic":     {"ethnic", "traditional", "kurta", "festive", "handloom"},
			"sporty":     {"sport", "athleisure", "active", "gym", "performance"},
			"minimalist": {"minimal", "clean", "monochrome", "essential", "plain"},
		},

		OccasionKeywords: map[string][]string{
			"work":    {"work", "office", "formal", "business"},
			"party":   {"party", "night", "festive", "glam"},
			"wedding": {"wedding", "festive", "ethnic", "ceremony"},
			"date":    {"date", "evening", "smart", "dinner"},
			"travel":  {"travel", "comfort", "layer", "versatile"},
			"daily":   {"daily", "everyday", "casual", "basic"},
		},

		ColorPalettes: map[string][]string{
			"warm":    {"red", "orange", "rust", "mustard", "maroon", "brown", "beige"},
			"cool":    {"blue", "navy", "teal", "green", "mint", "grey"},
			"neutral": {"black", "white", "grey", "beige", "cream", "khaki"},
			"bold":    {"red", "cobalt", "emerald", "purple", "yellow", "fuchsia"},
			"pastel":  {"pastel", "lavender", "mint", "peach", "baby blue", "blush"},
		},

		OpenPalette: []string{
			"black", "white", "grey", "navy", "blue", "green",
			"red", "beige", "brown", "olive", "maroon", "cream",
		},

		PremiumBrands: []string{
			"Atelier Nord", "Casa Lino", "Verano", "Maison Ito", "Harbour & Co",
		},
	}
}

// withDefaults fills zero-valued knobs so a partially specified Config is
// still usable in tests.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.LookCount <= 0 {
		c.LookCount = def.LookCount
	}
	if c.DefaultBudget <= 0 {
		c.DefaultBudget = def.DefaultBudget
	}
	if c.ApparelBudgetCap <= 0 {
		c.ApparelBudgetCap = def.ApparelBudgetCap
	}
	if c.AccessoryBudgetCap <= 0 {
		c.AccessoryBudgetCap = def.AccessoryBudgetCap
	}
	if c.SweetSpotLow <= 0 {
		c.SweetSpotLow = def.SweetSpotLow
	}
	if c.SweetSpotHigh <= 0 {
		c.SweetSpotHigh = def.SweetSpotHigh
	}
	if c.PremiumPickAbove <= 0 {
		c.PremiumPickAbove = def.PremiumPickAbove
	}
	if c.PlaceholderImageURL == "" {
		c.PlaceholderImageURL = def.PlaceholderImageURL
	}
	if c.Weights == (Weights{}) {
		c.Weights = def.Weights
	}
	if c.StyleKeywords == nil {
		c.StyleKeywords = def.StyleKeywords
	}
	if c.OccasionKeywords == nil {
		c.OccasionKeywords = def.OccasionKeywords
	}
	if c.ColorPalettes == nil {
		c.ColorPalettes = def.ColorPalettes
	}
	if c.OpenPalette == nil {
		c.OpenPalette = def.OpenPalette
	}
	if c.PremiumBrands == nil {
		c.PremiumBrands = def.PremiumBrands
	}
	return c
}

// paletteFor resolves the acceptable colors for a mood. An empty or
// "surprise" mood accepts the whole open palette rather than disabling the
// color bonus.
func (c Config) paletteFor(mood string) []string {
	key := lower(strings.TrimSpace(mood))
	if key == "" || key == ColorMoodAny {
		return c.OpenPalette
	}
	if palette, ok := c.ColorPalettes[key]; ok {
		return palette
	}
	return c.OpenPalette
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
