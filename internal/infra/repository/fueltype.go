package repository

import (
	"context"
	"errors"
	"time"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const insertFuelTypeSQL = `
INSERT INTO fuel_types (name, price_per_litre, stock_litres, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING id, name, price_per_litre, stock_litres, created_at, updated_at`

const findFuelTypeForUpdateSQL = `
SELECT id, name, price_per_litre, stock_litres, created_at, updated_at
FROM fuel_types
WHERE id = $1
FOR UPDATE`

const updateFuelTypePriceSQL = `
UPDATE fuel_types
SET price_per_litre = $2, updated_at = $3
WHERE id = $1`

const setFuelTypeStockSQL = `
UPDATE fuel_types
SET stock_litres = $2, updated_at = $3
WHERE id = $1`

type FuelTypeRepository struct{}

func NewFuelTypeRepository() *FuelTypeRepository {
	return &FuelTypeRepository{}
}

func (r *FuelTypeRepository) Insert(ctx context.Context, tx db.DBTX, spec *fuel.FuelTypeSpec, now time.Time) (*commands.FuelTypeRecord, error) {
	row := tx.QueryRow(ctx, insertFuelTypeSQL, spec.Name(), spec.PricePerLitre(), spec.InitialStock(), now)

	rec, err := scanFuelType(row)
	if err != nil {
		// Unique violations on name classify to KindDuplicateKey.
		return nil, infra.WrapRepoErr("failed to insert fuel type", err)
	}

	return rec, nil
}

func (r *FuelTypeRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id int64) (*commands.FuelTypeRecord, error) {
	row := tx.QueryRow(ctx, findFuelTypeForUpdateSQL, id)

	rec, err := scanFuelType(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("fuel type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock fuel type row", err)
	}

	return rec, nil
}

func (r *FuelTypeRepository) UpdatePrice(ctx context.Context, tx db.DBTX, id int64, pricePerLitre decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx, updateFuelTypePriceSQL, id, pricePerLitre, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update fuel type price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fuel type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FuelTypeRepository) SetStock(ctx context.Context, tx db.DBTX, id int64, stockLitres decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx, setFuelTypeStockSQL, id, stockLitres, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update fuel type stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fuel type not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanFuelType(row pgx.Row) (*commands.FuelTypeRecord, error) {
	var rec commands.FuelTypeRecord
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.PricePerLitre,
		&rec.StockLitres,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
