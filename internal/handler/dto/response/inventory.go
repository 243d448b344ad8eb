package response

import (
	"fuel-station/internal/domain/fuel"
	"fuel-station/internal/usecase/queries"
)

type InventoryItemResponse struct {
	FuelTypeID    int64  `json:"fuel_type_id"`
	Name          string `json:"name"`
	StockLitres   string `json:"stock_litres"`
	PricePerLitre string `json:"price_per_litre"`
}

func FromInventoryItemView(v *queries.InventoryItemView) *InventoryItemResponse {
	return &InventoryItemResponse{
		FuelTypeID:    v.FuelTypeID,
		Name:          v.Name,
		StockLitres:   v.StockLitres.StringFixed(fuel.QuantityScale),
		PricePerLitre: v.PricePerLitre.StringFixed(fuel.PriceScale),
	}
}
