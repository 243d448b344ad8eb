package repository

import (
	"context"
	"time"

	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"

	"github.com/shopspring/decimal"
)

const closeOpenIntervalSQL = `
UPDATE fuel_price_history
SET valid_to = $2
WHERE fuel_type_id = $1 AND valid_to IS NULL`

const openIntervalSQL = `
INSERT INTO fuel_price_history (fuel_type_id, price_per_litre, valid_from)
VALUES ($1, $2, $3)`

// PriceHistoryRepository maintains the invariant that each fuel type has at
// most one open interval: callers close before they open, inside the same
// transaction that holds the fuel type row lock.
type PriceHistoryRepository struct{}

func NewPriceHistoryRepository() *PriceHistoryRepository {
	return &PriceHistoryRepository{}
}

func (r *PriceHistoryRepository) CloseOpenInterval(ctx context.Context, tx db.DBTX, fuelTypeID int64, at time.Time) error {
	if _, err := tx.Exec(ctx, closeOpenIntervalSQL, fuelTypeID, at); err != nil {
		return infra.WrapRepoErr("failed to close open price interval", err)
	}
	return nil
}

func (r *PriceHistoryRepository) OpenInterval(ctx context.Context, tx db.DBTX, fuelTypeID int64, pricePerLitre decimal.Decimal, from time.Time) error {
	if _, err := tx.Exec(ctx, openIntervalSQL, fuelTypeID, pricePerLitre, from); err != nil {
		return infra.WrapRepoErr("failed to open price interval", err)
	}
	return nil
}
