package request

import (
	"strconv"
	"time"

	"fuel-station/internal/pkg/errs"
	"fuel-station/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTimestamp  = errs.New("timestamps must be RFC3339")
	ErrInvalidFuelTypeID = errs.New("fuel_type_id must be an integer")
	ErrInvalidOrder      = errs.New("order must be asc or desc")
)

type RecordSaleRequest struct {
	FuelTypeID int64  `json:"fuel_type_id" binding:"required"`
	Litres     string `json:"litres" binding:"required"`
}

func (r *RecordSaleRequest) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Litres)
}

// ListSalesQuery carries the raw query string; ToFilter validates it.
type ListSalesQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	FuelTypeID string `form:"fuel_type_id"`
	Order      string `form:"order"`
}

func (q *ListSalesQuery) ToFilter() (queries.SalesFilter, error) {
	var filter queries.SalesFilter

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

	switch q.Order {
	case "":
		filter.Order = queries.SortAsc
	case string(queries.SortAsc), string(queries.SortDesc):
		filter.Order = queries.SortOrder(q.Order)
	default:
		return filter, ErrInvalidOrder
	}

	return filter, nil
}

func ParseTimeRange(from, to string) (queries.TimeRange, error) {
	var timeRange queries.TimeRange
	if from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return timeRange, ErrInvalidTimestamp
		}
		timeRange.From = &t
	}
	if to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return timeRange, ErrInvalidTimestamp
		}
		timeRange.To = &t
	}
	return timeRange, nil
}
