package commands

import (
	"context"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/pkg/clock"
	"fuel-station/internal/pkg/errs"
	"fuel-station/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type SaleCommands interface {
	RecordSale(ctx context.Context, fuelTypeID int64, litres decimal.Decimal) (*SaleRecord, error)
}

type saleCommandsImpl struct {
	fuelTypes FuelTypeRepository
	sales     SaleRepository
	pool      *pgxpool.Pool
	clock     clock.Clock
}

func NewSaleCommands(
	fuelTypes FuelTypeRepository,
	sales SaleRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
) SaleCommands {
	return &saleCommandsImpl{
		fuelTypes: fuelTypes,
		sales:     sales,
		pool:      pool,
		clock:     clock,
	}
}

// RecordSale is the critical path: lock the fuel type row, read stock and
// price under the lock, validate, then decrement stock and insert the sale
// in one transaction. Validating stock before the lock would allow two
// racing sales to both pass the check and oversell.
func (u *saleCommandsImpl) RecordSale(ctx context.Context, fuelTypeID int64, litres decimal.Decimal) (*SaleRecord, error) {
	if err := fuel.ValidateLitres(litres); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	litres = litres.Round(fuel.QuantityScale)

	return shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*SaleRecord, error) {
		ft, err := u.fuelTypes.FindByIDForUpdate(ctx, tx, fuelTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrFuelTypeNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if ft.StockLitres.LessThan(litres) {
			return nil, ErrInsufficientStock
		}

		now := u.clock.Now()

		if err := u.fuelTypes.SetStock(ctx, tx, ft.ID, ft.StockLitres.Sub(litres), now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		sale, err := u.sales.Insert(ctx, tx, ft.ID, litres, ft.PricePerLitre, fuel.Amount(litres, ft.PricePerLitre), now)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return sale, nil
	})
}
