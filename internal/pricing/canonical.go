package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit of the canonical display value.
type Unit string

const (
	UnitTon     Unit = "ton"
	UnitKm      Unit = "km"
	UnitVehicle Unit = "vehicle"
	UnitNone    Unit = "none"
)

// UnavailableLabel is shown whenever a price cannot be derived.
const UnavailableLabel = "Preço indisponível"

// Input is the pricing slice of a freight record. Fields are nullable on
// purpose: none of them implies a unit by itself — the unit comes solely
// from PricingMode.
type Input struct {
	ID             string
	PricingMode    *string
	Price          *decimal.Decimal
	PricePerKm     *decimal.Decimal
	PricePerTon    *decimal.Decimal
	RequiredTrucks int
	WeightKg       *decimal.Decimal
	DistanceKm     *decimal.Decimal
}

// Result is the canonical, display-ready form of a freight price.
type Result struct {
	PrimaryLabel   string
	Unit           Unit
	UnitValue      decimal.Decimal // Always per one unit (ton, km or vehicle)
	SecondaryLabel string          // Non-monetary context, empty when none
	Invalid        bool
}

// Compute derives the canonical price for a freight. Pure: every failure
// path comes back as an Invalid result, never an error — a price display
// must degrade, not crash the list rendering it.
func Compute(in Input) Result {
	switch ResolveMode(in.PricingMode) {
	case ModePerTon:
		return computePerTon(in)
	case ModePerKm:
		return computePerKm(in)
	case ModeFixed:
		return computeFixed(in)
	default:
		return invalidResult()
	}
}

func invalidResult() Result {
	return Result{
		PrimaryLabel: UnavailableLabel,
		Unit:         UnitNone,
		UnitValue:    decimal.Zero,
		Invalid:      true,
	}
}

func positive(d *decimal.Decimal) bool {
	return d != nil && d.IsPositive()
}

func computePerTon(in Input) Result {
	// PricePerTon wins; legacy rows carry the per-ton rate in PricePerKm.
	var rate decimal.Decimal
	switch {
	case positive(in.PricePerTon):
		rate = *in.PricePerTon
	case positive(in.PricePerKm):
		rate = *in.PricePerKm
	default:
		return invalidResult()
	}

	// RequiredTrucks never touches the per-ton rate: total price is
	// rate × total tonnage regardless of how many vehicles haul it.
	return Result{
		PrimaryLabel:   FormatBRL(rate) + "/ton",
		Unit:           UnitTon,
		UnitValue:      rate,
		SecondaryLabel: perTonContext(in),
	}
}

func computePerKm(in Input) Result {
	if !positive(in.PricePerKm) {
		return invalidResult()
	}

	// The rate is per kilometer of route, not per vehicle, so
	// RequiredTrucks does not scale it either.
	return Result{
		PrimaryLabel:   FormatBRL(*in.PricePerKm) + "/km",
		Unit:           UnitKm,
		UnitValue:      *in.PricePerKm,
		SecondaryLabel: perKmContext(in),
	}
}

func computeFixed(in Input) Result {
	if !positive(in.Price) {
		return invalidResult()
	}

	trucks := in.RequiredTrucks
	if trucks < 1 {
		trucks = 1
	}

	if trucks == 1 {
		return Result{
			PrimaryLabel: FormatBRL(*in.Price),
			Unit:         UnitVehicle,
			UnitValue:    *in.Price,
		}
	}

	// The stored price is the total for the whole freight, split evenly.
	perVehicle := in.Price.DivRound(decimal.NewFromInt(int64(trucks)), 2)
	return Result{
		PrimaryLabel:   FormatBRL(perVehicle) + "/vehicle",
		Unit:           UnitVehicle,
		UnitValue:      perVehicle,
		SecondaryLabel: fmt.Sprintf("%d vehicles", trucks),
	}
}

func perTonContext(in Input) string {
	var parts []string
	if positive(in.WeightKg) {
		tons := in.WeightKg.Div(decimal.NewFromInt(1000))
		parts = append(parts, tons.StringFixed(1)+" ton")
	}
	if in.RequiredTrucks > 1 {
		parts = append(parts, fmt.Sprintf("%d vehicles", in.RequiredTrucks))
	}
	return strings.Join(parts, " · ")
}

func perKmContext(in Input) string {
	var parts []string
	if positive(in.DistanceKm) {
		parts = append(parts, in.DistanceKm.StringFixed(0)+" km")
	}
	if in.RequiredTrucks > 1 {
		parts = append(parts, fmt.Sprintf("%d vehicles", in.RequiredTrucks))
	}
	return strings.Join(parts, " · ")
}

// FormatBRL renders a decimal as a pt-BR money string, e.g. "R$ 3.333,33".
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	return "R$ " + sign + b.String() + "," + fracPart
}
