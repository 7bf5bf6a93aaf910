package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCompute_PerTon_LegacyFieldOverload(t *testing.T) {
	// Legacy rows carry the per-ton rate in price_per_km
	res := Compute(Input{
		PricingMode:    strPtr("PER_TON"),
		PricePerKm:     decPtr("80"),
		Price:          decPtr("40000"),
		RequiredTrucks: 12,
	})

	require.False(t, res.Invalid)
	assert.Equal(t, "R$ 80,00/ton", res.PrimaryLabel)
	assert.Equal(t, UnitTon, res.Unit)
	assert.True(t, res.UnitValue.Equal(decimal.NewFromInt(80)))
}

func TestCompute_PerTon_PrefersPricePerTon(t *testing.T) {
	res := Compute(Input{
		PricingMode: strPtr("PER_TON"),
		PricePerTon: decPtr("95.50"),
		PricePerKm:  decPtr("80"),
	})

	require.False(t, res.Invalid)
	assert.Equal(t, "R$ 95,50/ton", res.PrimaryLabel)
	assert.True(t, res.UnitValue.Equal(decimal.RequireFromString("95.50")))
}

func TestCompute_PerTon_IndependentOfRequiredTrucks(t *testing.T) {
	// The central invariant: vehicle count never scales a per-ton rate.
	for _, trucks := range []int{1, 3, 12, 50} {
		res := Compute(Input{
			PricingMode:    strPtr("PER_TON"),
			PricePerTon:    decPtr("80"),
			RequiredTrucks: trucks,
		})

		require.False(t, res.Invalid, "trucks=%d", trucks)
		assert.True(t, res.UnitValue.Equal(decimal.NewFromInt(80)), "trucks=%d", trucks)
		assert.Equal(t, "R$ 80,00/ton", res.PrimaryLabel, "trucks=%d", trucks)
	}
}

func TestCompute_PerTon_SecondaryLabel(t *testing.T) {
	res := Compute(Input{
		PricingMode:    strPtr("PER_TON"),
		PricePerTon:    decPtr("80"),
		WeightKg:       decPtr("500000"),
		RequiredTrucks: 12,
	})

	assert.Equal(t, "500.0 ton · 12 vehicles", res.SecondaryLabel)
}

func TestCompute_PerKm(t *testing.T) {
	res := Compute(Input{
		PricingMode:    strPtr("PER_KM"),
		PricePerKm:     decPtr("3"),
		RequiredTrucks: 2,
	})

	require.False(t, res.Invalid)
	assert.Equal(t, "R$ 3,00/km", res.PrimaryLabel)
	assert.Equal(t, UnitKm, res.Unit)
	assert.True(t, res.UnitValue.Equal(decimal.NewFromInt(3)))
}

func TestCompute_PerKm_TrucksDoNotScaleRate(t *testing.T) {
	one := Compute(Input{PricingMode: strPtr("PER_KM"), PricePerKm: decPtr("4.25"), RequiredTrucks: 1})
	many := Compute(Input{PricingMode: strPtr("PER_KM"), PricePerKm: decPtr("4.25"), RequiredTrucks: 7})

	assert.True(t, one.UnitValue.Equal(many.UnitValue))
	assert.Equal(t, one.PrimaryLabel, many.PrimaryLabel)
}

func TestCompute_Fixed_SingleVehicle(t *testing.T) {
	res := Compute(Input{
		PricingMode:    strPtr("FIXED"),
		Price:          decPtr("40000"),
		RequiredTrucks: 1,
	})

	require.False(t, res.Invalid)
	assert.True(t, res.UnitValue.Equal(decimal.NewFromInt(40000)))
	assert.Equal(t, "R$ 40.000,00", res.PrimaryLabel)
	assert.NotContains(t, res.PrimaryLabel, "/vehicle")
}

func TestCompute_Fixed_SplitAcrossVehicles(t *testing.T) {
	res := Compute(Input{
		PricingMode:    strPtr("FIXED"),
		Price:          decPtr("40000"),
		RequiredTrucks: 12,
	})

	require.False(t, res.Invalid)
	assert.True(t, res.UnitValue.Equal(decimal.RequireFromString("3333.33")))
	assert.Equal(t, "R$ 3.333,33/vehicle", res.PrimaryLabel)
	assert.Equal(t, "12 vehicles", res.SecondaryLabel)
}

func TestCompute_Fixed_ZeroTrucksTreatedAsOne(t *testing.T) {
	res := Compute(Input{
		PricingMode: strPtr("FIXED"),
		Price:       decPtr("1500"),
	})

	require.False(t, res.Invalid)
	assert.True(t, res.UnitValue.Equal(decimal.NewFromInt(1500)))
	assert.NotContains(t, res.PrimaryLabel, "/vehicle")
}

func TestCompute_InvalidMode(t *testing.T) {
	for _, in := range []Input{
		{},
		{PricingMode: strPtr("")},
		{PricingMode: strPtr("WHATEVER"), Price: decPtr("100")},
	} {
		res := Compute(in)
		assert.True(t, res.Invalid)
		assert.Equal(t, UnavailableLabel, res.PrimaryLabel)
		assert.Equal(t, UnitNone, res.Unit)
		assert.True(t, res.UnitValue.IsZero())
	}
}

func TestCompute_MissingOrNonPositiveNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"per-ton without any rate", Input{PricingMode: strPtr("PER_TON")}},
		{"per-ton with zero rate", Input{PricingMode: strPtr("PER_TON"), PricePerTon: decPtr("0")}},
		{"per-ton with negative legacy rate", Input{PricingMode: strPtr("PER_TON"), PricePerKm: decPtr("-5")}},
		{"per-km without rate", Input{PricingMode: strPtr("PER_KM"), Price: decPtr("100")}},
		{"fixed without price", Input{PricingMode: strPtr("FIXED"), RequiredTrucks: 3}},
		{"fixed with zero price", Input{PricingMode: strPtr("FIXED"), Price: decPtr("0")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(tt.in)
			assert.True(t, res.Invalid)
			assert.Equal(t, UnavailableLabel, res.PrimaryLabel)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "R$ 0,00"},
		{"3", "R$ 3,00"},
		{"80", "R$ 80,00"},
		{"999.9", "R$ 999,90"},
		{"3333.33", "R$ 3.333,33"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-1500", "R$ -1.500,00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.value)))
	}
}
