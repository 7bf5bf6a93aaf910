package pricing

import "strings"

// Mode is the canonical pricing mode of a freight. Raw records carry a free
// string column; only the values below are ever produced by ResolveMode.
type Mode string

const (
	ModeFixed   Mode = "FIXED"
	ModePerKm   Mode = "PER_KM"
	ModePerTon  Mode = "PER_TON"
	ModeInvalid Mode = "INVALID"
)

// modeAliases covers the canonical spellings plus the legacy Portuguese ones
// still present in old rows.
var modeAliases = map[string]Mode{
	"FIXED": ModeFixed,
	"FIXO":  ModeFixed,

	"PER_KM": ModePerKm,
	"POR_KM": ModePerKm,
	"KM":     ModePerKm,

	"PER_TON":      ModePerTon,
	"POR_TON":      ModePerTon,
	"POR_TONELADA": ModePerTon,
	"TONELADA":     ModePerTon,
	"TON":          ModePerTon,
}

// ResolveMode normalizes a raw pricing-mode string. Matching is
// case-insensitive and whitespace-tolerant; nil, empty and unrecognized
// values all resolve to ModeInvalid — the resolver never guesses.
func ResolveMode(raw *string) Mode {
	if raw == nil {
		return ModeInvalid
	}
	if mode, ok := modeAliases[strings.ToUpper(strings.TrimSpace(*raw))]; ok {
		return mode
	}
	return ModeInvalid
}
