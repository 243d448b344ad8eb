package request

import "github.com/shopspring/decimal"

type RefillRequest struct {
	FuelTypeID int64  `json:"fuel_type_id" binding:"required"`
	Litres     string `json:"litres" binding:"required"`
}

func (r *RefillRequest) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Litres)
}
