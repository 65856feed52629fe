package engine

import (
	"testing"

	"lookbook-backend/internal/catalog"
)

// Items priced so no slot survives the scored assembler's budget caps, even
// though everything clears the absolute prefilter ceiling.
func crampedCatalog() []catalog.Item {
	return []catalog.Item{
		testItem("a1", catalog.CategoryApparel, "shirt", 800),  // over 70% of 1000
		testItem("c1", catalog.CategoryAccessory, "belt", 600), // over 50% of remaining
		testItem("f1", catalog.CategoryFootwear, "shoe", 900),
	}
}

func TestFallbackFiresWhenScoredPipelineEmpty(t *testing.T) {
	e := New(Config{})
	looks := e.GenerateLooks(Profile{Budget: "1000"}, crampedCatalog(), nil)
	if len(looks) == 0 {
		t.Fatalf("expected fallback looks, got none")
	}
	look := looks[0]
	if len(look.Items) < 2 {
		t.Fatalf("fallback look has %d items, want >= 2", len(look.Items))
	}
	if categorySpan(look.Items) < 2 {
		t.Fatalf("fallback look spans %d categories, want >= 2", categorySpan(look.Items))
	}
	for _, item := range look.Items {
		if item.StylingNote == "" {
			t.Fatalf("fallback item %s missing styling note", item.ProductID)
		}
	}
}

func TestFallbackZeroScoreCatalogStillProducesLooks(t *testing.T) {
	// Nothing matches any style/occasion/color keyword, so every candidate
	// scores zero; the result must still be non-empty.
	items := []catalog.Item{
		{ID: "a1", Name: "Plain top", Category: catalog.CategoryApparel, Price: 400, InStock: true, StockQty: 1, Colors: []string{"chartreuse"}},
		{ID: "f1", Name: "Plain shoe", Category: catalog.CategoryFootwear, Price: 500, InStock: true, StockQty: 1, Colors: []string{"chartreuse"}},
	}
	cfg := Config{
		StyleKeywords:    map[string][]string{},
		OccasionKeywords: map[string][]string{},
		ColorPalettes:    map[string][]string{"cool": {"blue"}},
		OpenPalette:      []string{"blue"},
	}
	e := New(cfg)
	looks := e.GenerateLooks(Profile{Style: "casual", Occasion: "work", ColorMood: "cool", Budget: "5000"}, items, nil)
	if len(looks) == 0 {
		t.Fatalf("expected non-empty result for zero-scoring catalog")
	}
}

func TestFallbackRoundRobinConsumesPools(t *testing.T) {
	e := New(Config{})
	apparel := []catalog.Item{
		testItem("a1", catalog.CategoryApparel, "shirt", 100),
		testItem("a2", catalog.CategoryApparel, "tee", 100),
		testItem("a3", catalog.CategoryApparel, "polo", 100),
		testItem("a4", catalog.CategoryApparel, "kurta", 100),
	}
	accessories := []catalog.Item{testItem("c1", catalog.CategoryAccessory, "belt", 50)}
	footwear := []catalog.Item{testItem("f1", catalog.CategoryFootwear, "shoe", 200)}

	looks := e.fallbackLooks(Profile{}, apparel, accessories, footwear)
	if len(looks) != 2 {
		t.Fatalf("expected 2 fallback looks from 4 apparel items, got %d", len(looks))
	}
	if len(looks[0].Items) != 4 {
		t.Fatalf("first fallback look has %d items, want 2 apparel + accessory + footwear", len(looks[0].Items))
	}
	if len(looks[1].Items) != 2 {
		t.Fatalf("second fallback look has %d items, want remaining 2 apparel", len(looks[1].Items))
	}
}

func TestFallbackSingleItemCatalog(t *testing.T) {
	e := New(Config{})
	only := []catalog.Item{testItem("a1", catalog.CategoryApparel, "shirt", 100)}
	looks := e.fallbackLooks(Profile{}, only, nil, nil)
	if len(looks) != 1 || len(looks[0].Items) != 1 {
		t.Fatalf("expected a single one-item look when the catalog holds one item")
	}
}

func TestFallbackEmptyPools(t *testing.T) {
	e := New(Config{})
	if looks := e.fallbackLooks(Profile{}, nil, nil, nil); len(looks) != 0 {
		t.Fatalf("expected no looks from empty pools, got %d", len(looks))
	}
}
