package queries

import "context"

type InventoryReadStore interface {
	Snapshot(ctx context.Context) ([]*InventoryItemView, error)
}

type InventoryQueries interface {
	Snapshot(ctx context.Context) ([]*InventoryItemView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

// Snapshot reads committed state only; it takes no locks and may trail
// in-flight writes.
func (q *inventoryQueriesImpl) Snapshot(ctx context.Context) ([]*InventoryItemView, error) {
	return q.store.Snapshot(ctx)
}
