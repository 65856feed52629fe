package engine

import (
	"strings"

	"lookbook-backend/internal/catalog"
)

const (
	maxApparelPerLook = 2
	minItemsPerLook   = 2
)

// assemble greedily fills up to LookCount look slots from the three pools.
// A slot that cannot reach two items across two categories is skipped; total
// failure across all slots is the caller's cue to fall back.
func (e *Engine) assemble(p Profile, apparel, accessories, footwear []catalog.Item) []Look {
	multiCategory := poolCategories(apparel, accessories, footwear) >= 2
	usedGlobally := make(map[string]bool)

	looks := make([]Look, 0, e.cfg.LookCount)
	for slot := 0; slot < e.cfg.LookCount; slot++ {
		startBudget := e.lookBudget(p)
		remaining := startBudget
		st := newLookState()
		slotUsed := make(map[string]bool)
		var items []LookItem

		take := func(chosen ScoredCandidate) {
			items = append(items, e.toLookItem(chosen))
			slotUsed[chosen.Item.ID] = true
			st.note(chosen.Item)
			remaining -= chosen.Item.Price
		}

		// Up to two apparel picks, alternating a premium/value price bias.
		// The alternation direction flips each slot so consecutive looks
		// don't both open with their most expensive piece.
		for pick := 0; pick < maxApparelPerLook; pick++ {
			priceCap := e.cfg.ApparelBudgetCap * remaining
			candidates := eligible(apparel, usedGlobally, slotUsed, priceCap)
			if len(candidates) == 0 {
				break
			}
			ranked := e.rankPool(candidates, p, remaining, st)
			premium := (slot+pick)%2 == 0
			take(pickWithBias(ranked, premium))
		}

		if chosen, ok := e.pickTop(accessories, usedGlobally, slotUsed, e.cfg.AccessoryBudgetCap*remaining, p, remaining, st); ok {
			take(chosen)
		}

		if chosen, ok := e.pickTop(footwear, usedGlobally, slotUsed, remaining, p, remaining, st); ok {
			take(chosen)
		}

		if len(items) < minItemsPerLook {
			continue
		}
		if multiCategory && categorySpan(items) < 2 {
			continue
		}

		// Items only count as shown once the look is actually emitted, so a
		// failed slot never starves later ones.
		for id := range slotUsed {
			usedGlobally[id] = true
		}
		looks = append(looks, e.finalizeLook(len(looks), p, items))
	}
	return looks
}

// eligible filters a pool to unused items priced within the cap, inclusive
// at the threshold.
func eligible(pool []catalog.Item, used, slotUsed map[string]bool, priceCap float64) []catalog.Item {
	out := make([]catalog.Item, 0, len(pool))
	for _, item := range pool {
		if used[item.ID] || slotUsed[item.ID] {
			continue
		}
		if item.Price > priceCap {
			continue
		}
		out = append(out, item)
	}
	return out
}

// pickWithBias takes the best-scored candidates and biases the final choice
// by price: premium picks the most expensive of the top three, value the
// cheapest. Relevance still dominates; price only breaks near-ties.
func pickWithBias(ranked []ScoredCandidate, premium bool) ScoredCandidate {
	window := ranked
	if len(window) > 3 {
		window = window[:3]
	}
	best := window[0]
	for _, c := range window[1:] {
		if premium && c.Item.Price > best.Item.Price {
			best = c
		}
		if !premium && c.Item.Price < best.Item.Price {
			best = c
		}
	}
	return best
}

func (e *Engine) pickTop(pool []catalog.Item, used, slotUsed map[string]bool, priceCap float64, p Profile, budget float64, st *lookState) (ScoredCandidate, bool) {
	candidates := eligible(pool, used, slotUsed, priceCap)
	if len(candidates) == 0 {
		return ScoredCandidate{}, false
	}
	ranked := e.rankPool(candidates, p, budget, st)
	return ranked[0], true
}

func (e *Engine) toLookItem(c ScoredCandidate) LookItem {
	imageURL := strings.TrimSpace(c.Item.ImageURL)
	if imageURL == "" {
		imageURL = e.cfg.PlaceholderImageURL
	}
	note := "Pairs easily with the rest of this look."
	if len(c.Reasons) > 0 {
		note = upperFirst(c.Reasons[0]) + "."
	}
	return LookItem{
		ProductID:   c.Item.ID,
		Name:        c.Item.Name,
		Brand:       c.Item.Brand,
		Category:    lower(c.Item.Category),
		Price:       c.Item.Price,
		ImageURL:    imageURL,
		ProductURL:  c.Item.ProductURL,
		StylingNote: note,
	}
}

func (e *Engine) finalizeLook(index int, p Profile, items []LookItem) Look {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	name, description := lookName(index, p.Purpose, p.Occasion)
	return Look{
		Index:       index,
		Name:        name,
		Description: description,
		Items:       items,
		TotalPrice:  total,
		StyleTip:    styleTip(index, p.Purpose, p.Occasion),
	}
}

func categorySpan(items []LookItem) int {
	seen := make(map[string]bool, 3)
	for _, item := range items {
		seen[item.Category] = true
	}
	return len(seen)
}

func poolCategories(apparel, accessories, footwear []catalog.Item) int {
	n := 0
	if len(apparel) > 0 {
		n++
	}
	if len(accessories) > 0 {
		n++
	}
	if len(footwear) > 0 {
		n++
	}
	return n
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
