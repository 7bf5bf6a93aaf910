package regulatory

import "github.com/shopspring/decimal"

// Rate is one immutable ANTT rate table entry.
type Rate struct {
	TableType   TableType
	Category    Category
	AxleCount   int
	RatePerKm   decimal.Decimal
	FixedCharge decimal.Decimal
}

// Lookuper resolves a rate key, reporting whether the general-cargo fallback
// had to be used so audits can tell precise floors from approximate ones.
type Lookuper interface {
	Lookup(table TableType, category Category, axles int) (rate *Rate, usedFallback bool)
}

type rateKey struct {
	table    TableType
	category Category
	axles    int
}

// Table is an in-memory index over the reference rate entries.
type Table struct {
	entries map[rateKey]Rate
}

// NewTable indexes the given rates. Later duplicates of the same key win,
// matching the order the reference data is loaded in.
func NewTable(rates []Rate) *Table {
	entries := make(map[rateKey]Rate, len(rates))
	for _, r := range rates {
		entries[rateKey{r.TableType, r.Category, r.AxleCount}] = r
	}
	return &Table{entries: entries}
}

// Lookup tries the exact key first, then retries with the category forced to
// general cargo. A nil rate means no regulation covers the key at all — a
// distinct outcome from a zero rate, and it must stay distinct.
func (t *Table) Lookup(table TableType, category Category, axles int) (*Rate, bool) {
	if r, ok := t.entries[rateKey{table, category, axles}]; ok {
		return &r, false
	}
	if category != CategoryGeneral {
		if r, ok := t.entries[rateKey{table, CategoryGeneral, axles}]; ok {
			return &r, true
		}
	}
	return nil, false
}

// Len returns the number of indexed entries.
func (t *Table) Len() int { return len(t.entries) }
