package response

import (
	"time"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/usecase/queries"
)

type DayRevenueResponse struct {
	Date    time.Time `json:"date"`
	Revenue string    `json:"revenue"`
}

type OverviewResponse struct {
	TotalRevenue     string              `json:"total_revenue"`
	TotalLitres      string              `json:"total_litres"`
	TxCount          int64               `json:"tx_count"`
	AvgTicket        string              `json:"avg_ticket"`
	WeightedAvgPrice string              `json:"weighted_avg_price"`
	FirstSaleAt      *time.Time          `json:"first_sale_at,omitempty"`
	LastSaleAt       *time.Time          `json:"last_sale_at,omitempty"`
	PeakDay          *DayRevenueResponse `json:"peak_day,omitempty"`
	LowDay           *DayRevenueResponse `json:"low_day,omitempty"`
}

func FromOverviewView(v *queries.OverviewView) *OverviewResponse {
	resp := &OverviewResponse{
		TotalRevenue:     v.TotalRevenue.StringFixed(fuel.AmountScale),
		TotalLitres:      v.TotalLitres.StringFixed(fuel.QuantityScale),
		TxCount:          v.TxCount,
		AvgTicket:        v.AvgTicket.StringFixed(fuel.AmountScale),
		WeightedAvgPrice: v.WeightedAvgPrice.StringFixed(fuel.PriceScale),
		FirstSaleAt:      v.FirstSaleAt,
		LastSaleAt:       v.LastSaleAt,
	}
	if v.PeakDay != nil {
		resp.PeakDay = &DayRevenueResponse{Date: v.PeakDay.Date, Revenue: v.PeakDay.Revenue.StringFixed(fuel.AmountScale)}
	}
	if v.LowDay != nil {
		resp.LowDay = &DayRevenueResponse{Date: v.LowDay.Date, Revenue: v.LowDay.Revenue.StringFixed(fuel.AmountScale)}
	}
	return resp
}

type TimeseriesBucketResponse struct {
	PeriodStart time.Time `json:"period_start"`
	Revenue     string    `json:"revenue"`
	Litres      string    `json:"litres"`
	TxCount     int64     `json:"tx_count"`
	AvgPrice    string    `json:"avg_price"`
}

func FromTimeseriesBucketView(v *queries.TimeseriesBucketView) *TimeseriesBucketResponse {
	return &TimeseriesBucketResponse{
		PeriodStart: v.PeriodStart,
		Revenue:     v.Revenue.StringFixed(fuel.AmountScale),
		Litres:      v.Litres.StringFixed(fuel.QuantityScale),
		TxCount:     v.TxCount,
		AvgPrice:    v.AvgPrice.StringFixed(fuel.PriceScale),
	}
}

type FuelTypeSalesResponse struct {
	FuelTypeID int64  `json:"fuel_type_id"`
	Name       string `json:"name"`
	Revenue    string `json:"revenue"`
	Litres     string `json:"litres"`
	TxCount    int64  `json:"tx_count"`
	AvgPrice   string `json:"avg_price"`
}

func FromFuelTypeSalesView(v *queries.FuelTypeSalesView) *FuelTypeSalesResponse {
	return &FuelTypeSalesResponse{
		FuelTypeID: v.FuelTypeID,
		Name:       v.Name,
		Revenue:    v.Revenue.StringFixed(fuel.AmountScale),
		Litres:     v.Litres.StringFixed(fuel.QuantityScale),
		TxCount:    v.TxCount,
		AvgPrice:   v.AvgPrice.StringFixed(fuel.PriceScale),
	}
}

type PriceIntervalResponse struct {
	PricePerLitre string     `json:"price_per_litre"`
	ValidFrom     time.Time  `json:"valid_from"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
}

func FromPriceIntervalView(v *queries.PriceIntervalView) *PriceIntervalResponse {
	return &PriceIntervalResponse{
		PricePerLitre: v.PricePerLitre.StringFixed(fuel.PriceScale),
		ValidFrom:     v.ValidFrom,
		ValidTo:       v.ValidTo,
	}
}
