package regulatory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Precondition errors. The batch job reports these as skipped ("not enough
// data to judge") rather than failed ("data present but no matching
// regulation").
var (
	ErrMissingCargoType = errors.New("missing cargo type code")
	ErrMissingDistance  = errors.New("missing or zero distance")
)

// DefaultAxleCount is assumed when a freight does not declare its axles.
const DefaultAxleCount = 5

// FloorRecord is the slice of a freight the floor computation reads.
type FloorRecord struct {
	CargoTypeCode          string
	DistanceKm             *decimal.Decimal
	RequiredAxles          *int
	HighPerformanceVehicle bool
	VehicleOwnership       string
	RequiredTrucks         int
}

// FloorResult carries the computed minimum and how it was reached.
type FloorResult struct {
	Total          decimal.Decimal
	PerVehicle     decimal.Decimal
	TableType      TableType
	Category       Category
	AxleCount      int
	AxlesDefaulted bool
	UsedFallback   bool
}

// ComputeFloor derives the ANTT minimum price for one freight:
//
//	perVehicle = round2(ratePerKm × distanceKm + fixedCharge)
//	total      = round2(perVehicle × max(1, requiredTrucks))
//
// Rounding is half-up to two places at both stages, matching the
// regulator's published intermediate figures. The function is pure; it
// never persists anything.
func ComputeFloor(rec FloorRecord, rates Lookuper) (FloorResult, error) {
	if strings.TrimSpace(rec.CargoTypeCode) == "" {
		return FloorResult{}, ErrMissingCargoType
	}
	if rec.DistanceKm == nil || !rec.DistanceKm.IsPositive() {
		return FloorResult{}, ErrMissingDistance
	}

	axles := DefaultAxleCount
	defaulted := true
	if rec.RequiredAxles != nil && *rec.RequiredAxles > 0 {
		axles = *rec.RequiredAxles
		defaulted = false
	}

	category := CategoryFor(rec.CargoTypeCode)
	tableType := TableTypeFor(rec.VehicleOwnership, rec.HighPerformanceVehicle)

	rate, usedFallback := rates.Lookup(tableType, category, axles)
	if rate == nil {
		return FloorResult{}, fmt.Errorf("rate not found for %d axles, table %s", axles, tableType)
	}

	perVehicle := rate.RatePerKm.Mul(*rec.DistanceKm).Add(rate.FixedCharge).Round(2)

	trucks := rec.RequiredTrucks
	if trucks < 1 {
		trucks = 1
	}
	total := perVehicle.Mul(decimal.NewFromInt(int64(trucks))).Round(2)

	return FloorResult{
		Total:          total,
		PerVehicle:     perVehicle,
		TableType:      tableType,
		Category:       category,
		AxleCount:      axles,
		AxlesDefaulted: defaulted,
		UsedFallback:   usedFallback,
	}, nil
}
