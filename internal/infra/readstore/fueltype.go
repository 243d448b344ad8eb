package readstore

import (
	"context"

	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/queries"
)

const findAllFuelTypesSQL = `
SELECT id, name, price_per_litre, stock_litres, created_at, updated_at
FROM fuel_types
ORDER BY id`

const fuelTypeExistsSQL = `SELECT EXISTS (SELECT 1 FROM fuel_types WHERE id = $1)`

type FuelTypeReadStore struct {
	db db.DBTX
}

func NewFuelTypeReadStore(db db.DBTX) *FuelTypeReadStore {
	return &FuelTypeReadStore{db: db}
}

func (r *FuelTypeReadStore) FindAll(ctx context.Context) ([]*queries.FuelTypeView, error) {
	rows, err := r.db.Query(ctx, findAllFuelTypesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all fuel types", err)
	}
	defer rows.Close()

	result := []*queries.FuelTypeView{}
	for rows.Next() {
		var v queries.FuelTypeView
		if err := rows.Scan(&v.ID, &v.Name, &v.PricePerLitre, &v.StockLitres, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan fuel type row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read fuel type rows", err)
	}

	return result, nil
}

func (r *FuelTypeReadStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, fuelTypeExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check fuel type existence", err)
	}
	return exists, nil
}
