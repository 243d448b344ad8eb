package fuel

import (
	"strings"

	"fuel-station/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errs.New("fuel type name cannot be empty")
	ErrNameTooLong       = errs.New("fuel type name is too long (max 255 characters)")
	ErrNegativePrice     = errs.New("price per litre cannot be negative")
	ErrNegativeStock     = errs.New("stock cannot be negative")
	ErrNonPositiveLitres = errs.New("litres must be greater than zero")
)

const (
	MaxNameLength = 255

	// Scales match the persisted NUMERIC columns: quantities and prices
	// carry 3 decimal places, monetary amounts 2.
	QuantityScale = 3
	PriceScale    = 3
	AmountScale   = 2
)

// FuelTypeSpec is a validated request to register a new fuel type.
type FuelTypeSpec struct {
	name         string
	pricePerL    decimal.Decimal
	initialStock decimal.Decimal
}

func NewFuelTypeSpec(name string, pricePerLitre, initialStock decimal.Decimal) (*FuelTypeSpec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if err := ValidatePrice(pricePerLitre); err != nil {
		return nil, err
	}
	if initialStock.IsNegative() {
		return nil, ErrNegativeStock
	}

	return &FuelTypeSpec{
		name:         name,
		pricePerL:    pricePerLitre.Round(PriceScale),
		initialStock: initialStock.Round(QuantityScale),
	}, nil
}

func (s *FuelTypeSpec) Name() string                   { return s.name }
func (s *FuelTypeSpec) PricePerLitre() decimal.Decimal { return s.pricePerL }
func (s *FuelTypeSpec) InitialStock() decimal.Decimal  { return s.initialStock }

func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func ValidateLitres(litres decimal.Decimal) error {
	if litres.Sign() <= 0 {
		return ErrNonPositiveLitres
	}
	return nil
}

// Amount is the revenue of a sale: litres * price, rounded half-up to the
// currency scale. The snapshot price is taken under the row lock, so the
// result is final the moment the sale row is written.
func Amount(litres, pricePerLitre decimal.Decimal) decimal.Decimal {
	return litres.Mul(pricePerLitre).Round(AmountScale)
}
