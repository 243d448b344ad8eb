package commands

import (
	"context"
	"time"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/infra/db"

	"github.com/shopspring/decimal"
)

// Write-side records prevent dependency on read-side view types.
type FuelTypeRecord struct {
	ID            int64
	Name          string
	PricePerLitre decimal.Decimal
	StockLitres   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type SaleRecord struct {
	ID          int64
	FuelTypeID  int64
	Litres      decimal.Decimal
	PriceAtSale decimal.Decimal
	Amount      decimal.Decimal
	SoldAt      time.Time
}

type FuelTypeRepository interface {
	Insert(ctx context.Context, tx db.DBTX, spec *fuel.FuelTypeSpec, now time.Time) (*FuelTypeRecord, error)
	// FindByIDForUpdate takes the exclusive row lock that serializes
	// sale/refill/price-update on one fuel type.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id int64) (*FuelTypeRecord, error)
	UpdatePrice(ctx context.Context, tx db.DBTX, id int64, pricePerLitre decimal.Decimal, now time.Time) error
	SetStock(ctx context.Context, tx db.DBTX, id int64, stockLitres decimal.Decimal, now time.Time) error
}

type PriceHistoryRepository interface {
	CloseOpenInterval(ctx context.Context, tx db.DBTX, fuelTypeID int64, at time.Time) error
	OpenInterval(ctx context.Context, tx db.DBTX, fuelTypeID int64, pricePerLitre decimal.Decimal, from time.Time) error
}

type SaleRepository interface {
	Insert(ctx context.Context, tx db.DBTX, fuelTypeID int64, litres, priceAtSale, amount decimal.Decimal, soldAt time.Time) (*SaleRecord, error)
}
