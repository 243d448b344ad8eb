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

var (
	ErrValidation              = errs.New("validation failed")
	ErrFuelTypeExists          = errs.New("fuel type already exists")
	ErrFuelTypeNotFound        = errs.New("fuel type not found")
	ErrInsufficientStock       = errs.New("insufficient stock")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type FuelTypeCommands interface {
	CreateFuelType(ctx context.Context, name string, pricePerLitre, initialStock decimal.Decimal) (*FuelTypeRecord, error)
	UpdatePrice(ctx context.Context, fuelTypeID int64, pricePerLitre decimal.Decimal) (*FuelTypeRecord, error)
}

type fuelTypeCommandsImpl struct {
	fuelTypes FuelTypeRepository
	history   PriceHistoryRepository
	pool      *pgxpool.Pool
	clock     clock.Clock
}

func NewFuelTypeCommands(
	fuelTypes FuelTypeRepository,
	history PriceHistoryRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
) FuelTypeCommands {
	return &fuelTypeCommandsImpl{
		fuelTypes: fuelTypes,
		history:   history,
		pool:      pool,
		clock:     clock,
	}
}

// CreateFuelType registers a new fuel type and writes its opening price
// interval in the same transaction.
func (u *fuelTypeCommandsImpl) CreateFuelType(ctx context.Context, name string, pricePerLitre, initialStock decimal.Decimal) (*FuelTypeRecord, error) {
	spec, err := fuel.NewFuelTypeSpec(name, pricePerLitre, initialStock)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	return shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*FuelTypeRecord, error) {
		now := u.clock.Now()

		rec, err := u.fuelTypes.Insert(ctx, tx, spec, now)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrFuelTypeExists
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.history.OpenInterval(ctx, tx, rec.ID, rec.PricePerLitre, now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return rec, nil
	})
}

// UpdatePrice closes the current price interval and opens a new one, then
// moves the live price, all under the fuel type's row lock. A no-op price
// change still opens a fresh interval.
func (u *fuelTypeCommandsImpl) UpdatePrice(ctx context.Context, fuelTypeID int64, pricePerLitre decimal.Decimal) (*FuelTypeRecord, error) {
	if err := fuel.ValidatePrice(pricePerLitre); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	pricePerLitre = pricePerLitre.Round(fuel.PriceScale)

	return shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*FuelTypeRecord, error) {
		ft, err := u.fuelTypes.FindByIDForUpdate(ctx, tx, fuelTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrFuelTypeNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := u.clock.Now()

		if err := u.history.CloseOpenInterval(ctx, tx, ft.ID, now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := u.history.OpenInterval(ctx, tx, ft.ID, pricePerLitre, now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := u.fuelTypes.UpdatePrice(ctx, tx, ft.ID, pricePerLitre, now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		ft.PricePerLitre = pricePerLitre
		ft.UpdatedAt = now
		return ft, nil
	})
}
