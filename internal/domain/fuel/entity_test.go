//go:build unit

package fuel_test

import (
	"strings"
	"testing"

	"fuel-station/internal/domain/fuel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFuelTypeSpec(t *testing.T) {
	price := decimal.RequireFromString("1.859")
	stock := decimal.RequireFromString("5000")

	t.Run("basic success case", func(t *testing.T) {
		spec, err := fuel.NewFuelTypeSpec("Diesel", price, stock)
		require.NoError(t, err)
		require.NotNil(t, spec)

		assert.Equal(t, "Diesel", spec.Name())
		assert.True(t, spec.PricePerLitre().Equal(price))
		assert.True(t, spec.InitialStock().Equal(stock))
	})

	t.Run("name is trimmed", func(t *testing.T) {
		spec, err := fuel.NewFuelTypeSpec("  Super 95  ", price, stock)
		require.NoError(t, err)
		assert.Equal(t, "Super 95", spec.Name())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name         string
			fuelName     string
			price, stock decimal.Decimal
			errIs        error
		}{
			{
				name:     "empty name",
				fuelName: "",
				price:    price,
				stock:    stock,
				errIs:    fuel.ErrEmptyName,
			},
			{
				name:     "whitespace only name",
				fuelName: "   ",
				price:    price,
				stock:    stock,
				errIs:    fuel.ErrEmptyName,
			},
			{
				name:     "name at maximum length",
				fuelName: strings.Repeat("a", fuel.MaxNameLength),
				price:    price,
				stock:    stock,
			},
			{
				name:     "name exceeds maximum length",
				fuelName: strings.Repeat("a", fuel.MaxNameLength+1),
				price:    price,
				stock:    stock,
				errIs:    fuel.ErrNameTooLong,
			},
			{
				name:     "zero price is valid",
				fuelName: "Diesel",
				price:    decimal.Zero,
				stock:    stock,
			},
			{
				name:     "negative price",
				fuelName: "Diesel",
				price:    decimal.RequireFromString("-0.001"),
				stock:    stock,
				errIs:    fuel.ErrNegativePrice,
			},
			{
				name:     "zero stock is valid",
				fuelName: "Diesel",
				price:    price,
				stock:    decimal.Zero,
			},
			{
				name:     "negative stock",
				fuelName: "Diesel",
				price:    price,
				stock:    decimal.RequireFromString("-1"),
				errIs:    fuel.ErrNegativeStock,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				spec, err := fuel.NewFuelTypeSpec(c.fuelName, c.price, c.stock)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, spec)
				} else {
					require.Nil(t, spec)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("price and stock are rounded to column scale", func(t *testing.T) {
		spec, err := fuel.NewFuelTypeSpec("Diesel",
			decimal.RequireFromString("1.85949"),
			decimal.RequireFromString("5000.00049"))
		require.NoError(t, err)

		assert.Equal(t, "1.859", spec.PricePerLitre().StringFixed(fuel.PriceScale))
		assert.Equal(t, "5000.000", spec.InitialStock().StringFixed(fuel.QuantityScale))
	})
}

func TestValidateLitres(t *testing.T) {
	cases := []struct {
		name   string
		litres string
		errIs  error
	}{
		{name: "positive", litres: "20.5"},
		{name: "smallest positive quantity", litres: "0.001"},
		{name: "zero", litres: "0", errIs: fuel.ErrNonPositiveLitres},
		{name: "negative", litres: "-3", errIs: fuel.ErrNonPositiveLitres},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := fuel.ValidateLitres(decimal.RequireFromString(c.litres))
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		name   string
		litres string
		price  string
		want   string
	}{
		{name: "exact", litres: "10", price: "1.850", want: "18.50"},
		{name: "rounds half up", litres: "20.5", price: "1.859", want: "38.11"},
		{name: "rounds down", litres: "0.001", price: "1.859", want: "0.00"},
		{name: "free fuel", litres: "50", price: "0", want: "0.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := fuel.Amount(decimal.RequireFromString(c.litres), decimal.RequireFromString(c.price))
			assert.Equal(t, c.want, got.StringFixed(fuel.AmountScale))
		})
	}
}
