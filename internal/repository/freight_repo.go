package repository

import (
	"context"

	"freight-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FreightRepository is the engine's read/write door to freight records. The
// engine only ever touches the minimum_regulatory_price column.
type FreightRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Freight, error)
	// ListMissingFloor selects freights whose regulatory floor is missing
	// or non-positive, oldest first, bounded by limit.
	ListMissingFloor(ctx context.Context, limit int) ([]model.Freight, error)
	UpdateMinimumPrice(ctx context.Context, id uuid.UUID, value decimal.Decimal) error
}

type freightRepository struct {
	db *gorm.DB
}

func NewFreightRepository(db *gorm.DB) FreightRepository {
	return &freightRepository{db: db}
}

func (r *freightRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Freight, error) {
	var freight model.Freight
	if err := dbFrom(ctx, r.db).First(&freight, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &freight, nil
}

func (r *freightRepository) ListMissingFloor(ctx context.Context, limit int) ([]model.Freight, error) {
	var freights []model.Freight
	err := dbFrom(ctx, r.db).
		Where("minimum_regulatory_price IS NULL OR minimum_regulatory_price <= 0").
		Order("created_at asc").
		Limit(limit).
		Find(&freights).Error
	if err != nil {
		return nil, err
	}
	return freights, nil
}

func (r *freightRepository) UpdateMinimumPrice(ctx context.Context, id uuid.UUID, value decimal.Decimal) error {
	return dbFrom(ctx, r.db).
		Model(&model.Freight{}).
		Where("id = ?", id).
		Update("minimum_regulatory_price", value).Error
}
