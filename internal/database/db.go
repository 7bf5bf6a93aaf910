package database

import (
	"log"

	"freight-backend/internal/model"
	"freight-backend/internal/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Freight{},
		&model.RegulatoryRate{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	if err := repository.SeedRegulatoryRates(db); err != nil {
		log.Println("WARNING: Failed to seed regulatory rates:", err)
	}

	return db, nil
}
