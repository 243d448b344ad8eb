package repository

import (
	"context"
	"time"

	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

const insertSaleSQL = `
INSERT INTO sales (fuel_type_id, litres, price_at_sale, amount, sold_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, fuel_type_id, litres, price_at_sale, amount, sold_at`

// SaleRepository only inserts; sale rows are immutable by contract and the
// schema offers no update or delete path.
type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

func (r *SaleRepository) Insert(ctx context.Context, tx db.DBTX, fuelTypeID int64, litres, priceAtSale, amount decimal.Decimal, soldAt time.Time) (*commands.SaleRecord, error) {
	var rec commands.SaleRecord
	err := tx.QueryRow(ctx, insertSaleSQL, fuelTypeID, litres, priceAtSale, amount, soldAt).Scan(
		&rec.ID,
		&rec.FuelTypeID,
		&rec.Litres,
		&rec.PriceAtSale,
		&rec.Amount,
		&rec.SoldAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert sale", err)
	}

	return &rec, nil
}
