package engine

import "lookbook-backend/internal/catalog"

const maxFallbackLooks = 5

// fallbackLooks is the unscored safety net: when the scored pipeline yields
// nothing, round-robin through the pools (two apparel, one accessory, one
// footwear per slot) so the response is non-empty whenever the prefiltered
// catalog is. The two-items/two-categories floor applies whenever what is
// left of the pools still permits it.
func (e *Engine) fallbackLooks(p Profile, apparel, accessories, footwear []catalog.Item) []Look {
	var ai, ci, fi int
	looks := make([]Look, 0, maxFallbackLooks)
	for len(looks) < maxFallbackLooks {
		remApparel := len(apparel) - ai
		remCategories := 0
		if remApparel > 0 {
			remCategories++
		}
		if ci < len(accessories) {
			remCategories++
		}
		if fi < len(footwear) {
			remCategories++
		}
		if remCategories == 0 {
			break
		}

		// The floors only bind while the remaining pools can satisfy them;
		// leftover items still beat an empty response.
		itemFloor := 1
		if remApparel >= maxApparelPerLook || remCategories >= 2 {
			itemFloor = minItemsPerLook
		}
		spanFloor := 1
		if remCategories >= 2 {
			spanFloor = 2
		}

		var items []LookItem
		for n := 0; n < maxApparelPerLook && ai < len(apparel); n++ {
			items = append(items, e.fallbackItem(apparel[ai]))
			ai++
		}
		if ci < len(accessories) {
			items = append(items, e.fallbackItem(accessories[ci]))
			ci++
		}
		if fi < len(footwear) {
			items = append(items, e.fallbackItem(footwear[fi]))
			fi++
		}

		if len(items) < itemFloor || categorySpan(items) < spanFloor {
			break
		}
		looks = append(looks, e.finalizeLook(len(looks), p, items))

		if ai >= len(apparel) {
			break
		}
	}
	return looks
}

func (e *Engine) fallbackItem(item catalog.Item) LookItem {
	out := e.toLookItem(ScoredCandidate{Item: item})
	out.StylingNote = "A versatile piece that slots into most wardrobes."
	return out
}
