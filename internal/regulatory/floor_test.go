package regulatory

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

func intPtr(i int) *int { return &i }

func floorTable() *Table {
	return NewTable([]Rate{
		testRate(TableA, CategoryGeneral, 5, "3.5964", "313.55"),
		testRate(TableA, CategoryGeneral, 6, "4.0022", "342.88"),
		testRate(TableA, CategoryBulkSolid, 6, "4.1463", "350.02"),
		testRate(TableD, CategoryGeneral, 5, "3.3087", "288.46"),
	})
}

func TestComputeFloor_RoundTrip(t *testing.T) {
	// perVehicle = round2(3.5964 × 130 + 313.55) = round2(781.082) = 781.08
	// total      = round2(781.08 × 12)           = 9372.96
	result, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "BAGGED_SEED",
		DistanceKm:       decPtr("130"),
		RequiredAxles:    intPtr(5),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   12,
	}, floorTable())

	require.NoError(t, err)
	assert.True(t, result.PerVehicle.Equal(decimal.RequireFromString("781.08")), "perVehicle=%s", result.PerVehicle)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("9372.96")), "total=%s", result.Total)
	assert.Equal(t, TableA, result.TableType)
	assert.Equal(t, CategoryGeneral, result.Category)
	assert.False(t, result.AxlesDefaulted)
	assert.False(t, result.UsedFallback)
}

func TestComputeFloor_RoundsAtBothStages(t *testing.T) {
	table := NewTable([]Rate{
		testRate(TableA, CategoryGeneral, 5, "0.3333", "0"),
	})

	// 0.3333 × 10 = 3.333 → 3.33 per vehicle, then 3.33 × 3 = 9.99;
	// rounding only at the end would give round2(9.999) = 10.00
	result, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "FURNITURE",
		DistanceKm:       decPtr("10"),
		RequiredAxles:    intPtr(5),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   3,
	}, table)

	require.NoError(t, err)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("9.99")), "total=%s", result.Total)
}

func TestComputeFloor_MissingCargoType(t *testing.T) {
	_, err := ComputeFloor(FloorRecord{
		DistanceKm: decPtr("100"),
	}, floorTable())

	assert.ErrorIs(t, err, ErrMissingCargoType)
}

func TestComputeFloor_MissingOrZeroDistance(t *testing.T) {
	_, err := ComputeFloor(FloorRecord{CargoTypeCode: "GRAINS"}, floorTable())
	assert.ErrorIs(t, err, ErrMissingDistance)

	_, err = ComputeFloor(FloorRecord{CargoTypeCode: "GRAINS", DistanceKm: decPtr("0")}, floorTable())
	assert.ErrorIs(t, err, ErrMissingDistance)
}

func TestComputeFloor_AxlesDefaultToFive(t *testing.T) {
	result, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "FURNITURE",
		DistanceKm:       decPtr("130"),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   1,
	}, floorTable())

	require.NoError(t, err)
	assert.Equal(t, 5, result.AxleCount)
	assert.True(t, result.AxlesDefaulted)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("781.08")))
}

func TestComputeFloor_CategoryFallbackIsFlagged(t *testing.T) {
	// No bulk-liquid entry for table A / 6 axles; general cargo covers it
	result, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "FUEL",
		DistanceKm:       decPtr("50"),
		RequiredAxles:    intPtr(6),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   1,
	}, floorTable())

	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, CategoryBulkLiquid, result.Category)
}

func TestComputeFloor_LookupMissIsAnError(t *testing.T) {
	_, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "GRAINS",
		DistanceKm:       decPtr("100"),
		RequiredAxles:    intPtr(7),
		VehicleOwnership: OwnershipThirdParty,
	}, floorTable())

	require.Error(t, err)
	assert.EqualError(t, err, "rate not found for 7 axles, table A")
	assert.NotErrorIs(t, err, ErrMissingCargoType)
	assert.NotErrorIs(t, err, ErrMissingDistance)
}

func TestComputeFloor_TableFromOwnershipAndPerformance(t *testing.T) {
	result, err := ComputeFloor(FloorRecord{
		CargoTypeCode:          "FURNITURE",
		DistanceKm:             decPtr("100"),
		RequiredAxles:          intPtr(5),
		VehicleOwnership:       OwnershipOwn,
		HighPerformanceVehicle: true,
		RequiredTrucks:         1,
	}, floorTable())

	require.NoError(t, err)
	assert.Equal(t, TableD, result.TableType)
	// 3.3087 × 100 + 288.46 = 619.33
	assert.True(t, result.Total.Equal(decimal.RequireFromString("619.33")))
}

func TestComputeFloor_TrucksBelowOneCountAsOne(t *testing.T) {
	zero, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "FURNITURE",
		DistanceKm:       decPtr("130"),
		RequiredAxles:    intPtr(5),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   0,
	}, floorTable())
	require.NoError(t, err)

	one, err := ComputeFloor(FloorRecord{
		CargoTypeCode:    "FURNITURE",
		DistanceKm:       decPtr("130"),
		RequiredAxles:    intPtr(5),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   1,
	}, floorTable())
	require.NoError(t, err)

	assert.True(t, zero.Total.Equal(one.Total))
}

func TestComputeFloor_Idempotent(t *testing.T) {
	rec := FloorRecord{
		CargoTypeCode:    "GRAINS",
		DistanceKm:       decPtr("245.5"),
		RequiredAxles:    intPtr(6),
		VehicleOwnership: OwnershipThirdParty,
		RequiredTrucks:   4,
	}

	first, err := ComputeFloor(rec, floorTable())
	require.NoError(t, err)
	second, err := ComputeFloor(rec, floorTable())
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
}
