package request

import (
	"strconv"

	"fuel-station/internal/usecase/queries"
)

type ReportQuery struct {
	From        string `form:"from"`
	To          string `form:"to"`
	FuelTypeID  string `form:"fuel_type_id"`
	Granularity string `form:"granularity"`
}

func (q *ReportQuery) ToFilter() (queries.ReportFilter, error) {
	var filter queries.ReportFilter

	timeRange, err := ParseTimeRange(q.From, q.To)
	if err != nil {
		return filter, err
	}
	filter.Range = timeRange

	if q.FuelTypeID != "" {
		id, err := strconv.ParseInt(q.FuelTypeID, 10, 64)
		if err != nil {
			return filter, ErrInvalidFuelTypeID
		}
		filter.FuelTypeID = &id
	}

	return filter, nil
}

func (q *ReportQuery) ToGranularity() queries.Granularity {
	if q.Granularity == "" {
		return queries.GranularityDay
	}
	return queries.Granularity(q.Granularity)
}
