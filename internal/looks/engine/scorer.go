package engine

import (
	"sort"
	"strings"

	"lookbook-backend/internal/catalog"
)

// scoreItem computes the additive relevance score for one item against the
// profile and the diversity state of the look under construction. budget is
// the remaining per-look budget at scoring time.
func (e *Engine) scoreItem(item catalog.Item, p Profile, budget float64, st *lookState) ScoredCandidate {
	w := e.cfg.Weights
	var score float64
	var reasons []string

	if kw, ok := matchKeyword(e.cfg.StyleKeywords[lower(p.Style)], item.StyleTags, item.Tags); ok {
		score += w.StyleMatch
		reasons = append(reasons, "matches your "+lower(p.Style)+" style ("+kw+")")
	}
	if kw, ok := matchKeyword(e.cfg.OccasionKeywords[lower(p.Occasion)], item.OccasionTags, item.Tags); ok {
		score += w.OccasionMatch
		reasons = append(reasons, "works for "+lower(p.Occasion)+" ("+kw+")")
	}

	palette := e.cfg.paletteFor(p.ColorMood)
	if color, ok := matchColor(item.Colors, palette); ok {
		score += w.ColorMatch
		reasons = append(reasons, "fits your color palette ("+color+")")
		if !st.usedColors[color] {
			score += w.ColorNovelty
			reasons = append(reasons, "adds a fresh color to this look")
		}
	}

	if p.Sizes != nil {
		if size := wantedSize(item.Subcategory, *p.Sizes); size != "" && hasSize(item.Sizes, size) {
			score += w.SizeFit
			reasons = append(reasons, "available in your size "+size)
		}
	}

	if item.Brand != "" && !st.usedBrands[lower(item.Brand)] {
		score += w.BrandNovelty
		reasons = append(reasons, "brings a new brand into the mix")
	}
	if !st.usedSubcats[diversityKey(item)] {
		score += w.SubcategoryNovelty
		reasons = append(reasons, "adds variety to the outfit")
	}

	if p.Purpose == PurposeGift {
		if item.GiftSuitable {
			score += w.GiftSuitable
			reasons = append(reasons, "a safe pick to gift")
		}
		if containsFold(e.cfg.PremiumBrands, item.Brand) {
			score += w.PremiumBrand
			reasons = append(reasons, "from a premium brand")
		}
	}

	if item.Featured {
		score += w.Featured
		reasons = append(reasons, "currently featured")
	}

	if budget > 0 {
		ratio := item.Price / budget
		switch {
		case ratio >= e.cfg.SweetSpotLow && ratio <= e.cfg.SweetSpotHigh:
			score += w.SweetSpot
			reasons = append(reasons, "great value for the budget")
		case ratio > e.cfg.PremiumPickAbove:
			score += w.PremiumPick
			reasons = append(reasons, "a statement splurge piece")
		}
	}

	if e.cfg.Jitter != nil {
		score += e.cfg.Jitter()
	}

	return ScoredCandidate{Item: item, Score: score, Reasons: reasons}
}

// rankPool scores every item and returns candidates sorted best-first.
// Ties fall back to item id so zero-jitter runs are fully deterministic.
func (e *Engine) rankPool(items []catalog.Item, p Profile, budget float64, st *lookState) []ScoredCandidate {
	ranked := make([]ScoredCandidate, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, e.scoreItem(item, p, budget, st))
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.ID < ranked[j].Item.ID
	})
	return ranked
}

// matchKeyword reports the first keyword appearing in either tag list.
// Matching is case-insensitive and substring-tolerant; scoring stops at the
// first hit so a keyword never double counts.
func matchKeyword(keywords []string, tagLists ...[]string) (string, bool) {
	for _, kw := range keywords {
		k := lower(kw)
		if k == "" {
			continue
		}
		for _, tags := range tagLists {
			for _, tag := range tags {
				if strings.Contains(lower(tag), k) {
					return k, true
				}
			}
		}
	}
	return "", false
}

// matchColor reports the first item color overlapping the palette, tolerant
// of substrings in either direction ("navy blue" vs "navy").
func matchColor(colors, palette []string) (string, bool) {
	for _, c := range colors {
		ic := lower(c)
		if ic == "" {
			continue
		}
		for _, pc := range palette {
			p := lower(pc)
			if strings.Contains(ic, p) || strings.Contains(p, ic) {
				return ic, true
			}
		}
	}
	return "", false
}

// wantedSize maps an item's subcategory to the profile size that should fit
// it, using keyword heuristics over the subcategory name.
func wantedSize(subcategory string, sizes Sizes) string {
	sub := lower(subcategory)
	switch {
	case containsAny(sub, "shoe", "sneaker", "boot", "loafer", "sandal", "heel"):
		return strings.TrimSpace(sizes.Shoe)
	case containsAny(sub, "jean", "pant", "trouser", "short", "skirt", "chino", "jogger"):
		return strings.TrimSpace(sizes.Bottom)
	case containsAny(sub, "shirt", "tee", "top", "jacket", "hoodie", "sweater", "kurta", "blouse", "dress", "blazer"):
		return strings.TrimSpace(sizes.Top)
	default:
		return ""
	}
}

func hasSize(available []string, want string) bool {
	for _, s := range available {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}
