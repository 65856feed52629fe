package catalog

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used in dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryRepo constructs a MemoryRepo holding the given items.
func NewMemoryRepo(items ...Item) *MemoryRepo {
	copied := make([]Item, len(items))
	copy(copied, items)
	return &MemoryRepo{items: copied}
}

// ListAvailable returns every item currently marked in stock.
func (r *MemoryRepo) ListAvailable(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		if item.InStock && item.StockQty > 0 {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetByID returns a single item by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}
