package response

import (
	"time"

	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/usecase/commands"
	"fuel-station/internal/usecase/queries"
)

type FuelTypeResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	PricePerLitre string    `json:"price_per_litre"`
	StockLitres   string    `json:"stock_litres"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromFuelTypeRecord(rec *commands.FuelTypeRecord) *FuelTypeResponse {
	return &FuelTypeResponse{
		ID:            rec.ID,
		Name:          rec.Name,
		PricePerLitre: rec.PricePerLitre.StringFixed(fuel.PriceScale),
		StockLitres:   rec.StockLitres.StringFixed(fuel.QuantityScale),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func FromFuelTypeView(v *queries.FuelTypeView) *FuelTypeResponse {
	return &FuelTypeResponse{
		ID:            v.ID,
		Name:          v.Name,
		PricePerLitre: v.PricePerLitre.StringFixed(fuel.PriceScale),
		StockLitres:   v.StockLitres.StringFixed(fuel.QuantityScale),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
