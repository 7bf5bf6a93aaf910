package regulatory

import "strings"

// TableType selects one of the four ANTT rate tables, the cross of vehicle
// ownership and performance classification.
type TableType string

const (
	TableA TableType = "A" // third-party vehicle, standard
	TableB TableType = "B" // own vehicle, standard
	TableC TableType = "C" // third-party vehicle, high performance
	TableD TableType = "D" // own vehicle, high performance
)

// VehicleOwnership values as stored on freight records.
const (
	OwnershipOwn        = "OWN"
	OwnershipThirdParty = "THIRD_PARTY"
)

// TableTypeFor derives the rate table class for a freight's vehicle.
// Anything that is not explicitly OWN counts as third-party.
func TableTypeFor(ownership string, highPerformance bool) TableType {
	own := strings.EqualFold(strings.TrimSpace(ownership), OwnershipOwn)
	switch {
	case own && highPerformance:
		return TableD
	case own:
		return TableB
	case highPerformance:
		return TableC
	default:
		return TableA
	}
}
