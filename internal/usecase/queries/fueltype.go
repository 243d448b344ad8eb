package queries

import (
	"context"

	"fuel-station/internal/pkg/errs"
)

var (
	ErrInvalidDateRange   = errs.New("invalid date range")
	ErrInvalidGranularity = errs.New("invalid granularity")
	ErrFuelTypeNotFound   = errs.New("fuel type not found")
)

type FuelTypeReadStore interface {
	FindAll(ctx context.Context) ([]*FuelTypeView, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type FuelTypeQueries interface {
	List(ctx context.Context) ([]*FuelTypeView, error)
}

type fuelTypeQueriesImpl struct {
	store FuelTypeReadStore
}

func NewFuelTypeQueries(store FuelTypeReadStore) FuelTypeQueries {
	return &fuelTypeQueriesImpl{store: store}
}

// List returns all fuel types ordered by id ascending.
func (q *fuelTypeQueriesImpl) List(ctx context.Context) ([]*FuelTypeView, error) {
	return q.store.FindAll(ctx)
}
