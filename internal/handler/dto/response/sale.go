package response

import (
	"time"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/usecase/commands"
	"fuel-station/internal/usecase/queries"
)

type SaleResponse struct {
	ID          int64     `json:"id"`
	FuelTypeID  int64     `json:"fuel_type_id"`
	Litres      string    `json:"litres"`
	PriceAtSale string    `json:"price_at_sale"`
	Amount      string    `json:"amount"`
	SoldAt      time.Time `json:"sold_at"`
}

func FromSaleRecord(rec *commands.SaleRecord) *SaleResponse {
	return &SaleResponse{
		ID:          rec.ID,
		FuelTypeID:  rec.FuelTypeID,
		Litres:      rec.Litres.StringFixed(fuel.QuantityScale),
		PriceAtSale: rec.PriceAtSale.StringFixed(fuel.PriceScale),
		Amount:      rec.Amount.StringFixed(fuel.AmountScale),
		SoldAt:      rec.SoldAt,
	}
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	return &SaleResponse{
		ID:          v.ID,
		FuelTypeID:  v.FuelTypeID,
		Litres:      v.Litres.StringFixed(fuel.QuantityScale),
		PriceAtSale: v.PriceAtSale.StringFixed(fuel.PriceScale),
		Amount:      v.Amount.StringFixed(fuel.AmountScale),
		SoldAt:      v.SoldAt,
	}
}
