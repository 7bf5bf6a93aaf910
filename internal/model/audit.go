package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateRegulatoryRate = "CREATE_REGULATORY_RATE"
	ActionUpdateRegulatoryRate = "UPDATE_REGULATORY_RATE"
	ActionDeleteRegulatoryRate = "DELETE_REGULATORY_RATE"
	ActionRecomputeFloors      = "RECOMPUTE_REGULATORY_FLOORS"
)

// AuditLog tracks What and When for rate-table changes and floor runs
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`        // Reference string (uuid/code)
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable summary
	Details    string    `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
