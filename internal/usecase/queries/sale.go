package queries

import "context"

type SaleReadStore interface {
	FindFiltered(ctx context.Context, filter SalesFilter) ([]*SaleView, error)
}

type SaleQueries interface {
	List(ctx context.Context, filter SalesFilter) ([]*SaleView, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

func (q *saleQueriesImpl) List(ctx context.Context, filter SalesFilter) ([]*SaleView, error) {
	if err := filter.Range.Validate(); err != nil {
		return nil, err
	}
	if filter.Order == "" {
		filter.Order = SortAsc
	}
	return q.store.FindFiltered(ctx, filter)
}
