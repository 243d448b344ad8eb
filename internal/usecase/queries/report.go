package queries

import "context"

type ReportReadStore interface {
	Overview(ctx context.Context, filter ReportFilter) (*OverviewView, error)
	Timeseries(ctx context.Context, filter ReportFilter, granularity Granularity) ([]*TimeseriesBucketView, error)
	ByFuelType(ctx context.Context, timeRange TimeRange) ([]*FuelTypeSalesView, error)
	PriceHistory(ctx context.Context, fuelTypeID int64, timeRange TimeRange) ([]*PriceIntervalView, error)
}

type ReportQueries interface {
	Overview(ctx context.Context, filter ReportFilter) (*OverviewView, error)
	Timeseries(ctx context.Context, filter ReportFilter, granularity Granularity) ([]*TimeseriesBucketView, error)
	ByFuelType(ctx context.Context, timeRange TimeRange) ([]*FuelTypeSalesView, error)
	PriceHistory(ctx context.Context, fuelTypeID int64, timeRange TimeRange) ([]*PriceIntervalView, error)
}

type reportQueriesImpl struct {
	reports   ReportReadStore
	fuelTypes FuelTypeReadStore
}

func NewReportQueries(reports ReportReadStore, fuelTypes FuelTypeReadStore) ReportQueries {
	return &reportQueriesImpl{
		reports:   reports,
		fuelTypes: fuelTypes,
	}
}

func (q *reportQueriesImpl) Overview(ctx context.Context, filter ReportFilter) (*OverviewView, error) {
	if err := filter.Range.Validate(); err != nil {
		return nil, err
	}
	return q.reports.Overview(ctx, filter)
}

func (q *reportQueriesImpl) Timeseries(ctx context.Context, filter ReportFilter, granularity Granularity) ([]*TimeseriesBucketView, error) {
	if err := filter.Range.Validate(); err != nil {
		return nil, err
	}
	if granularity == "" {
		granularity = GranularityDay
	}
	if err := granularity.Validate(); err != nil {
		return nil, err
	}
	return q.reports.Timeseries(ctx, filter, granularity)
}

func (q *reportQueriesImpl) ByFuelType(ctx context.Context, timeRange TimeRange) ([]*FuelTypeSalesView, error) {
	if err := timeRange.Validate(); err != nil {
		return nil, err
	}
	return q.reports.ByFuelType(ctx, timeRange)
}

// PriceHistory returns the intervals overlapping the range, oldest first.
func (q *reportQueriesImpl) PriceHistory(ctx context.Context, fuelTypeID int64, timeRange TimeRange) ([]*PriceIntervalView, error) {
	if err := timeRange.Validate(); err != nil {
		return nil, err
	}

	exists, err := q.fuelTypes.Exists(ctx, fuelTypeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrFuelTypeNotFound
	}

	return q.reports.PriceHistory(ctx, fuelTypeID, timeRange)
}
