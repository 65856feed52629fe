package catalog

import "context"

// Repo defines read access to the catalog. Snapshots are fetched fresh per
// recommendation call; the engine never caches or revalidates stock itself.
type Repo interface {
	ListAvailable(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
}
