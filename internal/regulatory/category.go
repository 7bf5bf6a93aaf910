package regulatory

import "strings"

// Category is one of the closed set of ANTT cargo categories a freight is
// priced under.
type Category string

const (
	CategoryBulkSolid        Category = "GRANEL_SOLIDO"
	CategoryBulkLiquid       Category = "GRANEL_LIQUIDO"
	CategoryNeoBulk          Category = "NEOGRANEL"
	CategoryHazardousGeneral Category = "PERIGOSA_CARGA_GERAL"
	CategoryGeneral          Category = "CARGA_GERAL"
)

// cargoCategories maps marketplace cargo-type codes to their ANTT category.
// Bagged and live cargo is tabled as general cargo on purpose, not left to
// the fallback.
var cargoCategories = map[string]Category{
	"GRAINS":     CategoryBulkSolid,
	"SOYBEANS":   CategoryBulkSolid,
	"CORN":       CategoryBulkSolid,
	"FERTILIZER": CategoryBulkSolid,
	"ORE":        CategoryBulkSolid,

	"FUEL":          CategoryBulkLiquid,
	"ETHANOL":       CategoryBulkLiquid,
	"VEGETABLE_OIL": CategoryBulkLiquid,

	"MACHINERY": CategoryNeoBulk,
	"VEHICLES":  CategoryNeoBulk,
	"STEEL":     CategoryNeoBulk,

	"CHEMICALS":  CategoryHazardousGeneral,
	"EXPLOSIVES": CategoryHazardousGeneral,
	"PESTICIDES": CategoryHazardousGeneral,

	"BAGGED_SEED": CategoryGeneral,
	"LIVESTOCK":   CategoryGeneral,
	"FURNITURE":   CategoryGeneral,
}

// CategoryFor maps a cargo-type code to its ANTT category. Codes outside the
// table resolve to general cargo: that is the regulation's residual class,
// not a missing mapping.
func CategoryFor(code string) Category {
	if c, ok := cargoCategories[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return CategoryGeneral
}
