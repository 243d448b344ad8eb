package readstore

import (
	"context"

	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/queries"
)

const inventorySnapshotSQL = `
SELECT id, name, stock_litres, price_per_litre
FROM fuel_types
ORDER BY id`

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(db db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: db}
}

func (r *InventoryReadStore) Snapshot(ctx context.Context) ([]*queries.InventoryItemView, error) {
	rows, err := r.db.Query(ctx, inventorySnapshotSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read inventory snapshot", err)
	}
	defer rows.Close()

	result := []*queries.InventoryItemView{}
	for rows.Next() {
		var v queries.InventoryItemView
		if err := rows.Scan(&v.FuelTypeID, &v.Name, &v.StockLitres, &v.PricePerLitre); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inventory rows", err)
	}

	return result, nil
}
