package readstore

import (
	"context"
	"strconv"
	"strings"

	"fuel-station/internal/infra"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/queries"
)

type SaleReadStore struct {
	db db.DBTX
}

func NewSaleReadStore(db db.DBTX) *SaleReadStore {
	return &SaleReadStore{db: db}
}

func (r *SaleReadStore) FindFiltered(ctx context.Context, filter queries.SalesFilter) ([]*queries.SaleView, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("SELECT id, fuel_type_id, litres, price_at_sale, amount, sold_at FROM sales")

	clauses := []string{}
	if filter.Range.From != nil {
		args = append(args, *filter.Range.From)
		clauses = append(clauses, "sold_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.Range.To != nil {
		args = append(args, *filter.Range.To)
		clauses = append(clauses, "sold_at <= $"+strconv.Itoa(len(args)))
	}
	if filter.FuelTypeID != nil {
		args = append(args, *filter.FuelTypeID)
		clauses = append(clauses, "fuel_type_id = $"+strconv.Itoa(len(args)))
	}
	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}

	// Direction comes from a closed enum, never from raw input.
	if filter.Order == queries.SortDesc {
		sb.WriteString(" ORDER BY sold_at DESC, id DESC")
	} else {
		sb.WriteString(" ORDER BY sold_at ASC, id ASC")
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find sales", err)
	}
	defer rows.Close()

	result := []*queries.SaleView{}
	for rows.Next() {
		var v queries.SaleView
		if err := rows.Scan(&v.ID, &v.FuelTypeID, &v.Litres, &v.PriceAtSale, &v.Amount, &v.SoldAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale rows", err)
	}

	return result, nil
}
