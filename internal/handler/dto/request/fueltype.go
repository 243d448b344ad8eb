package request

import (
	"github.com/shopspring/decimal"
)

// Decimal inputs travel as strings so clients never lose precision to
// float encoding.

type CreateFuelTypeRequest struct {
	Name               string  `json:"name" binding:"required"`
	PricePerLitre      string  `json:"price_per_litre" binding:"required"`
	InitialStockLitres *string `json:"initial_stock_litres"`
}

func (r *CreateFuelTypeRequest) Decimals() (price, stock decimal.Decimal, err error) {
	price, err = decimal.NewFromString(r.PricePerLitre)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	stock = decimal.Zero
	if r.InitialStockLitres != nil {
		stock, err = decimal.NewFromString(*r.InitialStockLitres)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}
	return price, stock, nil
}

type UpdatePriceRequest struct {
	PricePerLitre string `json:"price_per_litre" binding:"required"`
}

func (r *UpdatePriceRequest) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(r.PricePerLitre)
}
