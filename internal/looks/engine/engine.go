// Package engine builds ranked, budget-respecting outfit bundles ("looks")
// from a catalog snapshot and a quiz preference profile. It is a pure,
// synchronous computation: no I/O, no retained state between calls, and the
// only nondeterminism is the optional tie-break jitter in Config.
package engine

import "lookbook-backend/internal/catalog"

// Engine holds the immutable scoring configuration. Safe for concurrent use.
type Engine struct {
	cfg Config
}

// New constructs an Engine, filling defaults for any zero-valued Config
// fields.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// GenerateLooks runs the full pipeline: prefilter, partition, scored greedy
// assembly and, when that yields nothing, the unscored fallback. exclude may
// be nil. The result is ordered and may be empty; an empty slice is a valid
// outcome, never an error.
func (e *Engine) GenerateLooks(p Profile, items []catalog.Item, exclude map[string]struct{}) []Look {
	pool := e.prefilter(items, p, exclude)
	apparel, accessories, footwear := partition(pool)

	looks := e.assemble(p, apparel, accessories, footwear)
	if len(looks) == 0 {
		looks = e.fallbackLooks(p, apparel, accessories, footwear)
	}
	return looks
}

// RegenerateLooks reruns the pipeline with everything in previouslyShown
// excluded. If exclusion exhausts the catalog it retries once with a fresh
// pool. The returned set is the exclusion set after this call (prior ids
// plus everything just shown, or only the latter after a reset); the
// caller's slice is never mutated.
func (e *Engine) RegenerateLooks(p Profile, items []catalog.Item, previouslyShown []string) ([]Look, map[string]struct{}) {
	exclude := make(map[string]struct{}, len(previouslyShown))
	for _, id := range previouslyShown {
		if id != "" {
			exclude[id] = struct{}{}
		}
	}

	looks := e.GenerateLooks(p, items, exclude)
	if len(looks) == 0 && len(exclude) > 0 {
		exclude = make(map[string]struct{})
		looks = e.GenerateLooks(p, items, nil)
	}

	for _, look := range looks {
		for _, item := range look.Items {
			exclude[item.ProductID] = struct{}{}
		}
	}
	return looks, exclude
}

// ShownIDs flattens the product ids of a batch of looks, in order.
func ShownIDs(looks []Look) []string {
	var ids []string
	for _, look := range looks {
		for _, item := range look.Items {
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}
