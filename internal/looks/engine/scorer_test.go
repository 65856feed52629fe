package engine

import (
	"strings"
	"testing"

	"lookbook-backend/internal/catalog"
)

func scoringEngine() *Engine {
	return New(Config{})
}

func TestScoreItemStyleAndOccasion(t *testing.T) {
	e := scoringEngine()
	w := e.cfg.Weights
	profile := Profile{Style: "casual", Occasion: "work"}
	item := catalog.Item{
		ID:           "x",
		Category:     catalog.CategoryApparel,
		StyleTags:    []string{"Relaxed fit"},
		OccasionTags: []string{"office wear"},
	}

	got := e.scoreItem(item, profile, 0, newLookState())
	want := w.StyleMatch + w.OccasionMatch + w.SubcategoryNovelty
	if got.Score != want {
		t.Fatalf("score = %v, want %v (reasons: %v)", got.Score, want, got.Reasons)
	}
}

func TestScoreItemStyleMatchCountsOnce(t *testing.T) {
	e := scoringEngine()
	item := catalog.Item{
		ID:        "x",
		Category:  catalog.CategoryApparel,
		StyleTags: []string{"casual", "everyday", "relaxed"},
	}
	single := catalog.Item{
		ID:        "y",
		Category:  catalog.CategoryApparel,
		StyleTags: []string{"casual"},
	}

	profile := Profile{Style: "casual"}
	many := e.scoreItem(item, profile, 0, newLookState())
	one := e.scoreItem(single, profile, 0, newLookState())
	if many.Score != one.Score {
		t.Fatalf("multiple keyword hits double counted: %v vs %v", many.Score, one.Score)
	}
}

func TestScoreItemColorHarmony(t *testing.T) {
	e := scoringEngine()
	w := e.cfg.Weights
	item := catalog.Item{ID: "x", Category: catalog.CategoryApparel, Colors: []string{"Navy Blue"}}

	t.Run("curated palette with novelty", func(t *testing.T) {
		got := e.scoreItem(item, Profile{ColorMood: "cool"}, 0, newLookState())
		want := w.ColorMatch + w.ColorNovelty + w.SubcategoryNovelty
		if got.Score != want {
			t.Fatalf("score = %v, want %v", got.Score, want)
		}
	})

	t.Run("color already used drops novelty", func(t *testing.T) {
		st := newLookState()
		st.usedColors["navy blue"] = true
		got := e.scoreItem(item, Profile{ColorMood: "cool"}, 0, st)
		want := w.ColorMatch + w.SubcategoryNovelty
		if got.Score != want {
			t.Fatalf("score = %v, want %v", got.Score, want)
		}
	})

	t.Run("surprise mood uses the open palette", func(t *testing.T) {
		got := e.scoreItem(item, Profile{ColorMood: ColorMoodAny}, 0, newLookState())
		if got.Score < w.ColorMatch {
			t.Fatalf("expected color bonus under open palette, got %v", got.Score)
		}
	})
}

func TestScoreItemSizeFit(t *testing.T) {
	e := scoringEngine()
	w := e.cfg.Weights
	sizes := &Sizes{Top: "M", Bottom: "32", Shoe: "9"}

	cases := []struct {
		name        string
		sub         string
		available   []string
		wantSizeFit bool
	}{
		{"top size present", "t-shirt", []string{"S", "M", "L"}, true},
		{"top size absent", "t-shirt", []string{"S", "L"}, false},
		{"bottom size present", "slim jeans", []string{"30", "32"}, true},
		{"shoe size present", "running sneaker", []string{"8", "9", "10"}, true},
		{"unsizeable subcategory", "tote bag", []string{"M"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := catalog.Item{ID: "x", Category: catalog.CategoryApparel, Subcategory: tc.sub, Sizes: tc.available}
			got := e.scoreItem(item, Profile{Sizes: sizes}, 0, newLookState())
			base := w.SubcategoryNovelty
			want := base
			if tc.wantSizeFit {
				want += w.SizeFit
			}
			if got.Score != want {
				t.Fatalf("score = %v, want %v (reasons %v)", got.Score, want, got.Reasons)
			}
		})
	}
}

func TestScoreItemGiftBonuses(t *testing.T) {
	e := scoringEngine()
	w := e.cfg.Weights
	item := catalog.Item{
		ID:           "x",
		Brand:        "Atelier Nord",
		Category:     catalog.CategoryAccessory,
		GiftSuitable: true,
	}
	st := newLookState()
	st.usedBrands["atelier nord"] = true
	st.usedSubcats["accessory"] = true

	gift := e.scoreItem(item, Profile{Purpose: PurposeGift}, 0, st)
	personal := e.scoreItem(item, Profile{Purpose: PurposePersonal}, 0, st)

	if diff := gift.Score - personal.Score; diff != w.GiftSuitable+w.PremiumBrand {
		t.Fatalf("gift bonus = %v, want %v", diff, w.GiftSuitable+w.PremiumBrand)
	}
}

func TestScoreItemPriceBand(t *testing.T) {
	e := scoringEngine()
	w := e.cfg.Weights
	st := newLookState()
	st.usedSubcats["apparel"] = true

	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"below sweet spot", 200, 0},
		{"sweet spot low edge", 300, w.SweetSpot},
		{"sweet spot high edge", 600, w.SweetSpot},
		{"between bands", 700, 0},
		{"premium pick", 900, w.PremiumPick},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := catalog.Item{ID: "x", Category: catalog.CategoryApparel, Price: tc.price}
			got := e.scoreItem(item, Profile{}, 1000, st)
			if got.Score != tc.want {
				t.Fatalf("score = %v, want %v", got.Score, tc.want)
			}
		})
	}
}

func TestRankPoolDeterministicTieBreak(t *testing.T) {
	e := scoringEngine()
	items := []catalog.Item{
		{ID: "b", Category: catalog.CategoryApparel},
		{ID: "a", Category: catalog.CategoryApparel},
		{ID: "c", Category: catalog.CategoryApparel},
	}
	ranked := e.rankPool(items, Profile{}, 0, newLookState())
	order := make([]string, 0, 3)
	for _, c := range ranked {
		order = append(order, c.Item.ID)
	}
	if strings.Join(order, ",") != "a,b,c" {
		t.Fatalf("tie order = %v, want id ascending", order)
	}
}

func TestScoreItemJitterApplied(t *testing.T) {
	cfg := Config{Jitter: func() float64 { return 0.25 }}
	e := New(cfg)
	item := catalog.Item{ID: "x", Category: catalog.CategoryApparel}
	st := newLookState()
	st.usedSubcats["apparel"] = true

	got := e.scoreItem(item, Profile{}, 0, st)
	if got.Score != 0.25 {
		t.Fatalf("score = %v, want jitter-only 0.25", got.Score)
	}
}
