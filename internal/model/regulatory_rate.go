package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegulatoryRate stores one ANTT minimum-price coefficient: a per-km rate and
// a fixed charge for a (table type, cargo category, axle count) key. The rows
// are reference data owned by the regulatory-data process; the floor engine
// only reads them.
type RegulatoryRate struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TableType     string          `gorm:"type:varchar(2);not null;uniqueIndex:idx_rate_key" json:"table_type"`      // A, B, C, D
	CargoCategory string          `gorm:"type:varchar(30);not null;uniqueIndex:idx_rate_key" json:"cargo_category"` // e.g. CARGA_GERAL
	AxleCount     int             `gorm:"not null;uniqueIndex:idx_rate_key" json:"axle_count"`
	RatePerKm     decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"rate_per_km"`
	FixedCharge   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fixed_charge"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
