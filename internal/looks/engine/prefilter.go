package engine

import (
	"strconv"
	"strings"

	"lookbook-backend/internal/catalog"
)

// prefilter narrows the catalog to items eligible for this call: id present,
// in stock, not excluded, gender compatible and within the absolute budget
// ceiling when one parses. It never fails; an empty result is valid.
func (e *Engine) prefilter(items []catalog.Item, p Profile, exclude map[string]struct{}) []catalog.Item {
	ceiling, hasCeiling := parseBudget(p.Budget)

	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		if !item.InStock || item.StockQty <= 0 {
			continue
		}
		if _, excluded := exclude[item.ID]; excluded {
			continue
		}
		if !genderCompatible(item.Gender, p.Gender) {
			continue
		}
		if hasCeiling && item.Price > ceiling {
			continue
		}
		out = append(out, item)
	}
	return out
}

func genderCompatible(itemGender, profileGender string) bool {
	ig := lower(itemGender)
	pg := lower(profileGender)
	if pg == "" || pg == "unisex" {
		return true
	}
	return ig == "" || ig == "unisex" || ig == pg
}

// partition splits the prefiltered set into the three pools a look draws
// from. Items with an unrecognized category land in the apparel pool.
func partition(items []catalog.Item) (apparel, accessories, footwear []catalog.Item) {
	for _, item := range items {
		switch lower(item.Category) {
		case catalog.CategoryAccessory:
			accessories = append(accessories, item)
		case catalog.CategoryFootwear:
			footwear = append(footwear, item)
		default:
			apparel = append(apparel, item)
		}
	}
	return apparel, accessories, footwear
}

// parseBudget extracts a positive amount from the quiz's free-form budget
// answer ("5000", "₹5,000", "about 4k"). The bool reports whether anything
// usable was found.
func parseBudget(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.':
			return r
		case r == ',':
			return -1
		default:
			return ' '
		}
	}, raw)

	for _, field := range strings.Fields(cleaned) {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		if value > 0 {
			if strings.Contains(lower(raw), field+"k") {
				value *= 1000
			}
			return value, true
		}
	}
	return 0, false
}

// lookBudget resolves the per-look budget: the parsed quiz budget, or the
// documented default when the answer is missing or unusable.
func (e *Engine) lookBudget(p Profile) float64 {
	if value, ok := parseBudget(p.Budget); ok {
		return value
	}
	return e.cfg.DefaultBudget
}
