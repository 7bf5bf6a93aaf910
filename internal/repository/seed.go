package repository

import (
	"log"

	"freight-backend/internal/model"
	"freight-backend/internal/regulatory"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func seedRate(tt regulatory.TableType, cat regulatory.Category, axles int, perKm, fixed string) model.RegulatoryRate {
	return model.RegulatoryRate{
		TableType:     string(tt),
		CargoCategory: string(cat),
		AxleCount:     axles,
		RatePerKm:     decimal.RequireFromString(perKm),
		FixedCharge:   decimal.RequireFromString(fixed),
	}
}

// SeedRegulatoryRates loads the ANTT minimum-price coefficients. Idempotent:
// conflicts on the (table, category, axles) key update the coefficients in
// place, so re-running after a regulatory revision refreshes the values.
func SeedRegulatoryRates(db *gorm.DB) error {
	rates := []model.RegulatoryRate{
		// Table A — third-party vehicle, standard operation
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 2, "2.3041", "207.98"),
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 3, "2.8662", "246.77"),
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 4, "3.2602", "280.41"),
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 5, "3.5964", "313.55"),
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 6, "4.0022", "342.88"),
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 7, "4.4316", "378.13"),
		seedRate(regulatory.TableA, regulatory.CategoryGeneral, 9, "5.0203", "429.67"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkSolid, 5, "3.7242", "320.18"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkSolid, 6, "4.1463", "350.02"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkSolid, 7, "4.5824", "386.44"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkSolid, 9, "5.1918", "439.26"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkLiquid, 5, "3.8130", "331.10"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkLiquid, 6, "4.2441", "361.67"),
		seedRate(regulatory.TableA, regulatory.CategoryBulkLiquid, 9, "5.3122", "453.94"),
		seedRate(regulatory.TableA, regulatory.CategoryNeoBulk, 5, "3.6511", "316.72"),
		seedRate(regulatory.TableA, regulatory.CategoryNeoBulk, 6, "4.0609", "346.29"),
		seedRate(regulatory.TableA, regulatory.CategoryNeoBulk, 9, "5.0924", "433.91"),
		seedRate(regulatory.TableA, regulatory.CategoryHazardousGeneral, 5, "4.0711", "392.03"),
		seedRate(regulatory.TableA, regulatory.CategoryHazardousGeneral, 6, "4.4905", "421.36"),
		seedRate(regulatory.TableA, regulatory.CategoryHazardousGeneral, 9, "5.5473", "508.15"),

		// Table B — own vehicle, standard operation (vehicle-only contract)
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 2, "1.8443", "166.38"),
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 3, "2.2932", "197.42"),
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 4, "2.6084", "224.33"),
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 5, "2.8773", "250.84"),
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 6, "3.2018", "274.30"),
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 7, "3.5453", "302.50"),
		seedRate(regulatory.TableB, regulatory.CategoryGeneral, 9, "4.0163", "343.74"),

		// Table C — third-party vehicle, high performance
		seedRate(regulatory.TableC, regulatory.CategoryGeneral, 5, "4.1359", "360.58"),
		seedRate(regulatory.TableC, regulatory.CategoryGeneral, 6, "4.6025", "394.31"),
		seedRate(regulatory.TableC, regulatory.CategoryGeneral, 7, "5.0963", "434.85"),
		seedRate(regulatory.TableC, regulatory.CategoryGeneral, 9, "5.7733", "494.12"),
		seedRate(regulatory.TableC, regulatory.CategoryBulkSolid, 6, "4.7682", "402.52"),
		seedRate(regulatory.TableC, regulatory.CategoryBulkSolid, 9, "5.9706", "505.15"),
		seedRate(regulatory.TableC, regulatory.CategoryBulkLiquid, 9, "6.1090", "522.03"),

		// Table D — own vehicle, high performance
		seedRate(regulatory.TableD, regulatory.CategoryGeneral, 5, "3.3087", "288.46"),
		seedRate(regulatory.TableD, regulatory.CategoryGeneral, 6, "3.6820", "315.45"),
		seedRate(regulatory.TableD, regulatory.CategoryGeneral, 7, "4.0770", "347.88"),
		seedRate(regulatory.TableD, regulatory.CategoryGeneral, 9, "4.6186", "395.30"),
	}

	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "table_type"}, {Name: "cargo_category"}, {Name: "axle_count"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rate_per_km", "fixed_charge", "updated_at"}),
	}).Create(&rates)

	if result.Error != nil {
		return result.Error
	}

	log.Printf("Seeded %d regulatory rate entries", len(rates))
	return nil
}
