package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side). Decimal fields marshal as strings,
// matching the NUMERIC precision persisted in the store.

type FuelTypeView struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	PricePerLitre decimal.Decimal `json:"price_per_litre"`
	StockLitres   decimal.Decimal `json:"stock_litres"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InventoryItemView struct {
	FuelTypeID    int64           `json:"fuel_type_id"`
	Name          string          `json:"name"`
	StockLitres   decimal.Decimal `json:"stock_litres"`
	PricePerLitre decimal.Decimal `json:"price_per_litre"`
}

type SaleView struct {
	ID          int64           `json:"id"`
	FuelTypeID  int64           `json:"fuel_type_id"`
	Litres      decimal.Decimal `json:"litres"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Amount      decimal.Decimal `json:"amount"`
	SoldAt      time.Time       `json:"sold_at"`
}

type PriceIntervalView struct {
	PricePerLitre decimal.Decimal `json:"price_per_litre"`
	ValidFrom     time.Time       `json:"valid_from"`
	ValidTo       *time.Time      `json:"valid_to,omitempty"`
}

type DayRevenueView struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type OverviewView struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalLitres      decimal.Decimal `json:"total_litres"`
	TxCount          int64           `json:"tx_count"`
	AvgTicket        decimal.Decimal `json:"avg_ticket"`
	WeightedAvgPrice decimal.Decimal `json:"weighted_avg_price"`
	FirstSaleAt      *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt       *time.Time      `json:"last_sale_at,omitempty"`
	PeakDay          *DayRevenueView `json:"peak_day,omitempty"`
	LowDay           *DayRevenueView `json:"low_day,omitempty"`
}

type TimeseriesBucketView struct {
	PeriodStart time.Time       `json:"period_start"`
	Revenue     decimal.Decimal `json:"revenue"`
	Litres      decimal.Decimal `json:"litres"`
	TxCount     int64           `json:"tx_count"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
}

type FuelTypeSalesView struct {
	FuelTypeID int64           `json:"fuel_type_id"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Litres     decimal.Decimal `json:"litres"`
	TxCount    int64           `json:"tx_count"`
	AvgPrice   decimal.Decimal `json:"avg_price"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TimeRange bounds are inclusive; either side may be open.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func (r TimeRange) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return ErrInvalidDateRange
	}
	return nil
}

type SalesFilter struct {
	Range      TimeRange
	FuelTypeID *int64
	Order      SortOrder
}

type ReportFilter struct {
	Range      TimeRange
	FuelTypeID *int64
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) Validate() error {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return nil
	default:
		return ErrInvalidGranularity
	}
}
