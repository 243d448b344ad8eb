package readstore

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(db db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

// salesWhere renders the optional range/fuel-type filter shared by the
// sales aggregations. Bounds are inclusive on both sides.
func salesWhere(timeRange queries.TimeRange, fuelTypeID *int64, col string) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if timeRange.From != nil {
		args = append(args, *timeRange.From)
		clauses = append(clauses, col+".sold_at >= $"+strconv.Itoa(len(args)))
	}
	if timeRange.To != nil {
		args = append(args, *timeRange.To)
		clauses = append(clauses, col+".sold_at <= $"+strconv.Itoa(len(args)))
	}
	if fuelTypeID != nil {
		args = append(args, *fuelTypeID)
		clauses = append(clauses, col+".fuel_type_id = $"+strconv.Itoa(len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *ReportReadStore) Overview(ctx context.Context, filter queries.ReportFilter) (*queries.OverviewView, error) {
	where, args := salesWhere(filter.Range, filter.FuelTypeID, "s")

	totalsSQL := `
SELECT
  COALESCE(SUM(s.amount), 0)  AS revenue,
  COALESCE(SUM(s.litres), 0)  AS litres,
  COUNT(*)                    AS tx_count,
  CASE WHEN SUM(s.litres) > 0
       THEN SUM(s.price_at_sale * s.litres) / SUM(s.litres)
       ELSE 0 END             AS weighted_avg_price,
  MIN(s.sold_at)              AS first_sale_at,
  MAX(s.sold_at)              AS last_sale_at
FROM sales s` + where

	var view queries.OverviewView
	err := r.db.QueryRow(ctx, totalsSQL, args...).Scan(
		&view.TotalRevenue,
		&view.TotalLitres,
		&view.TxCount,
		&view.WeightedAvgPrice,
		&view.FirstSaleAt,
		&view.LastSaleAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate sales overview", err)
	}

	if view.TxCount > 0 {
		view.AvgTicket = view.TotalRevenue.Div(decimal.NewFromInt(view.TxCount)).Round(fuel.AmountScale)
	} else {
		view.AvgTicket = decimal.Zero
	}

	peak, err := r.dayRevenue(ctx, where, args, "DESC")
	if err != nil {
		return nil, err
	}
	low, err := r.dayRevenue(ctx, where, args, "ASC")
	if err != nil {
		return nil, err
	}
	view.PeakDay = peak
	view.LowDay = low

	return &view, nil
}

func (r *ReportReadStore) dayRevenue(ctx context.Context, where string, args []any, direction string) (*queries.DayRevenueView, error) {
	sql := `
SELECT date_trunc('day', s.sold_at) AS d, SUM(s.amount) AS rev
FROM sales s` + where + `
GROUP BY d
ORDER BY rev ` + direction + `, d ASC
LIMIT 1`

	var day queries.DayRevenueView
	err := r.db.QueryRow(ctx, sql, args...).Scan(&day.Date, &day.Revenue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to aggregate daily revenue", err)
	}
	return &day, nil
}

func (r *ReportReadStore) Timeseries(ctx context.Context, filter queries.ReportFilter, granularity queries.Granularity) ([]*queries.TimeseriesBucketView, error) {
	where, args := salesWhere(filter.Range, filter.FuelTypeID, "s")
	args = append(args, string(granularity))

	sql := `
SELECT
  date_trunc($` + strconv.Itoa(len(args)) + `, s.sold_at) AS bucket,
  COALESCE(SUM(s.amount), 0)        AS revenue,
  COALESCE(SUM(s.litres), 0)        AS litres,
  COUNT(*)                          AS tx_count,
  COALESCE(AVG(s.price_at_sale), 0) AS avg_price
FROM sales s` + where + `
GROUP BY bucket
ORDER BY bucket`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate sales timeseries", err)
	}
	defer rows.Close()

	result := []*queries.TimeseriesBucketView{}
	for rows.Next() {
		var v queries.TimeseriesBucketView
		if err := rows.Scan(&v.PeriodStart, &v.Revenue, &v.Litres, &v.TxCount, &v.AvgPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeseries row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read timeseries rows", err)
	}

	return result, nil
}

func (r *ReportReadStore) ByFuelType(ctx context.Context, timeRange queries.TimeRange) ([]*queries.FuelTypeSalesView, error) {
	where, args := salesWhere(timeRange, nil, "s")

	sql := `
SELECT
  s.fuel_type_id,
  ft.name,
  SUM(s.amount)        AS revenue,
  SUM(s.litres)        AS litres,
  COUNT(*)             AS tx_count,
  AVG(s.price_at_sale) AS avg_price
FROM sales s
JOIN fuel_types ft ON ft.id = s.fuel_type_id` + where + `
GROUP BY s.fuel_type_id, ft.name
ORDER BY revenue DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate sales by fuel type", err)
	}
	defer rows.Close()

	result := []*queries.FuelTypeSalesView{}
	for rows.Next() {
		var v queries.FuelTypeSalesView
		if err := rows.Scan(&v.FuelTypeID, &v.Name, &v.Revenue, &v.Litres, &v.TxCount, &v.AvgPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan by-fuel-type row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read by-fuel-type rows", err)
	}

	return result, nil
}

// PriceHistory returns the price intervals overlapping the range: an
// interval qualifies when it starts before the range ends and has not
// closed before the range starts.
func (r *ReportReadStore) PriceHistory(ctx context.Context, fuelTypeID int64, timeRange queries.TimeRange) ([]*queries.PriceIntervalView, error) {
	var (
		sb   strings.Builder
		args []any
	)
	args = append(args, fuelTypeID)
	sb.WriteString(`
SELECT price_per_litre, valid_from, valid_to
FROM fuel_price_history
WHERE fuel_type_id = $1`)

	if timeRange.From != nil {
		args = append(args, *timeRange.From)
		sb.WriteString(" AND (valid_to IS NULL OR valid_to >= $" + strconv.Itoa(len(args)) + ")")
	}
	if timeRange.To != nil {
		args = append(args, *timeRange.To)
		sb.WriteString(" AND valid_from <= $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY valid_from")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find price history", err)
	}
	defer rows.Close()

	result := []*queries.PriceIntervalView{}
	for rows.Next() {
		var v queries.PriceIntervalView
		if err := rows.Scan(&v.PricePerLitre, &v.ValidFrom, &v.ValidTo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price history row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price history rows", err)
	}

	return result, nil
}
