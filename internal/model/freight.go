package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleOwnership enum constants
const (
	OwnershipOwn        = "OWN"
	OwnershipThirdParty = "THIRD_PARTY"
)

// Freight carries the pricing columns exactly as the marketplace stores them:
// partially populated, with the unit of each value determined solely by
// PricingMode. PricePerKm is overloaded — legacy rows store the per-ton rate
// in it when the mode is per-ton.
type Freight struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PricingMode    *string          `gorm:"type:varchar(30);index" json:"pricing_mode"` // Raw, possibly a legacy alias
	Price          *decimal.Decimal `gorm:"type:decimal(14,2)" json:"price"`            // Total price (FIXED mode)
	PricePerKm     *decimal.Decimal `gorm:"type:decimal(14,4)" json:"price_per_km"`     // Per-km rate; legacy per-ton overload
	PricePerTon    *decimal.Decimal `gorm:"type:decimal(14,4)" json:"price_per_ton"`    // Per-ton rate, preferred when present
	RequiredTrucks int              `gorm:"not null;default:1" json:"required_trucks"`
	WeightKg       *decimal.Decimal `gorm:"type:decimal(14,2)" json:"weight_kg"`
	DistanceKm     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"distance_km"`

	// Regulatory floor inputs
	CargoTypeCode          string `gorm:"type:varchar(50);index" json:"cargo_type_code"`
	RequiredAxles          *int   `gorm:"" json:"required_axles"` // Nullable; floor computation defaults to 5
	HighPerformanceVehicle bool   `gorm:"not null;default:false" json:"high_performance_vehicle"`
	VehicleOwnership       string `gorm:"type:varchar(20);not null;default:'THIRD_PARTY'" json:"vehicle_ownership"` // OWN, THIRD_PARTY

	// Computed by the floor recomputation job; NULL or <= 0 means pending
	MinimumRegulatoryPrice *decimal.Decimal `gorm:"type:decimal(14,2);index" json:"minimum_regulatory_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
