//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fuel-station/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRangeValidate(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		from, to *time.Time
		errIs    error
	}{
		{name: "both open"},
		{name: "only from", from: &earlier},
		{name: "only to", to: &later},
		{name: "ordered", from: &earlier, to: &later},
		{name: "equal bounds", from: &earlier, to: &earlier},
		{name: "inverted", from: &later, to: &earlier, errIs: queries.ErrInvalidDateRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := queries.TimeRange{From: c.from, To: c.to}.Validate()
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestGranularityValidate(t *testing.T) {
	cases := []struct {
		granularity queries.Granularity
		errIs       error
	}{
		{granularity: queries.GranularityDay},
		{granularity: queries.GranularityWeek},
		{granularity: queries.GranularityMonth},
		{granularity: "", errIs: queries.ErrInvalidGranularity},
		{granularity: "hour", errIs: queries.ErrInvalidGranularity},
		{granularity: "Day", errIs: queries.ErrInvalidGranularity},
	}

	for _, c := range cases {
		t.Run(string(c.granularity), func(t *testing.T) {
			err := c.granularity.Validate()
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

type stubSaleReadStore struct {
	gotFilter queries.SalesFilter
}

func (s *stubSaleReadStore) FindFiltered(_ context.Context, filter queries.SalesFilter) ([]*queries.SaleView, error) {
	s.gotFilter = filter
	return nil, nil
}

func TestSaleQueriesList(t *testing.T) {
	t.Run("defaults to ascending order", func(t *testing.T) {
		store := &stubSaleReadStore{}
		q := queries.NewSaleQueries(store)

		_, err := q.List(context.Background(), queries.SalesFilter{})
		require.NoError(t, err)
		assert.Equal(t, queries.SortAsc, store.gotFilter.Order)
	})

	t.Run("keeps explicit descending order", func(t *testing.T) {
		store := &stubSaleReadStore{}
		q := queries.NewSaleQueries(store)

		_, err := q.List(context.Background(), queries.SalesFilter{Order: queries.SortDesc})
		require.NoError(t, err)
		assert.Equal(t, queries.SortDesc, store.gotFilter.Order)
	})

	t.Run("rejects inverted range before hitting the store", func(t *testing.T) {
		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		store := &stubSaleReadStore{}
		q := queries.NewSaleQueries(store)

		_, err := q.List(context.Background(), queries.SalesFilter{
			Range: queries.TimeRange{From: &from, To: &to},
		})
		require.ErrorIs(t, err, queries.ErrInvalidDateRange)
	})
}

type stubReportReadStore struct {
	timeseriesCalls int
	gotGranularity  queries.Granularity
}

func (s *stubReportReadStore) Overview(context.Context, queries.ReportFilter) (*queries.OverviewView, error) {
	return &queries.OverviewView{}, nil
}

func (s *stubReportReadStore) Timeseries(_ context.Context, _ queries.ReportFilter, granularity queries.Granularity) ([]*queries.TimeseriesBucketView, error) {
	s.timeseriesCalls++
	s.gotGranularity = granularity
	return nil, nil
}

func (s *stubReportReadStore) ByFuelType(context.Context, queries.TimeRange) ([]*queries.FuelTypeSalesView, error) {
	return nil, nil
}

func (s *stubReportReadStore) PriceHistory(context.Context, int64, queries.TimeRange) ([]*queries.PriceIntervalView, error) {
	return nil, nil
}

type stubFuelTypeReadStore struct {
	exists bool
}

func (s *stubFuelTypeReadStore) FindAll(context.Context) ([]*queries.FuelTypeView, error) {
	return nil, nil
}

func (s *stubFuelTypeReadStore) Exists(context.Context, int64) (bool, error) {
	return s.exists, nil
}

func TestReportQueries(t *testing.T) {
	t.Run("timeseries defaults granularity to day", func(t *testing.T) {
		store := &stubReportReadStore{}
		q := queries.NewReportQueries(store, &stubFuelTypeReadStore{exists: true})

		_, err := q.Timeseries(context.Background(), queries.ReportFilter{}, "")
		require.NoError(t, err)
		assert.Equal(t, queries.GranularityDay, store.gotGranularity)
	})

	t.Run("timeseries rejects unknown granularity", func(t *testing.T) {
		store := &stubReportReadStore{}
		q := queries.NewReportQueries(store, &stubFuelTypeReadStore{exists: true})

		_, err := q.Timeseries(context.Background(), queries.ReportFilter{}, "hour")
		require.ErrorIs(t, err, queries.ErrInvalidGranularity)
		assert.Zero(t, store.timeseriesCalls)
	})

	t.Run("price history requires an existing fuel type", func(t *testing.T) {
		q := queries.NewReportQueries(&stubReportReadStore{}, &stubFuelTypeReadStore{exists: false})

		_, err := q.PriceHistory(context.Background(), 42, queries.TimeRange{})
		require.ErrorIs(t, err, queries.ErrFuelTypeNotFound)
	})
}
