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

type InventoryCommands interface {
	Refill(ctx context.Context, fuelTypeID int64, litres decimal.Decimal) (*FuelTypeRecord, error)
}

type inventoryCommandsImpl struct {
	fuelTypes FuelTypeRepository
	pool      *pgxpool.Pool
	clock     clock.Clock
}

func NewInventoryCommands(fuelTypes FuelTypeRepository, pool *pgxpool.Pool, clock clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{
		fuelTypes: fuelTypes,
		pool:      pool,
		clock:     clock,
	}
}

// Refill increments stock under the same row lock that sales take, so a
// concurrent sale never reads a half-applied stock level.
func (u *inventoryCommandsImpl) Refill(ctx context.Context, fuelTypeID int64, litres decimal.Decimal) (*FuelTypeRecord, error) {
	if err := fuel.ValidateLitres(litres); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	litres = litres.Round(fuel.QuantityScale)

	return shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*FuelTypeRecord, error) {
		ft, err := u.fuelTypes.FindByIDForUpdate(ctx, tx, fuelTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrFuelTypeNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := u.clock.Now()
		newStock := ft.StockLitres.Add(litres)

		if err := u.fuelTypes.SetStock(ctx, tx, ft.ID, newStock, now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		ft.StockLitres = newStock
		ft.UpdatedAt = now
		return ft, nil
	})
}
