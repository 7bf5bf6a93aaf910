package repository

import (
	"context"

	"freight-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RateRepository reads and maintains the ANTT rate reference rows.
type RateRepository interface {
	ListAll(ctx context.Context) ([]model.RegulatoryRate, error)
	List(ctx context.Context, page, limit int) ([]model.RegulatoryRate, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.RegulatoryRate, error)
	// ExistsKey reports whether a rate with the same (table, category,
	// axles) key exists, optionally ignoring one row.
	ExistsKey(ctx context.Context, tableType, category string, axles int, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, rate *model.RegulatoryRate) error
	Update(ctx context.Context, rate *model.RegulatoryRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) ListAll(ctx context.Context) ([]model.RegulatoryRate, error) {
	var rates []model.RegulatoryRate
	err := dbFrom(ctx, r.db).
		Order("table_type, cargo_category, axle_count").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *rateRepository) List(ctx context.Context, page, limit int) ([]model.RegulatoryRate, int64, error) {
	var rates []model.RegulatoryRate
	var total int64

	db := dbFrom(ctx, r.db).Model(&model.RegulatoryRate{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := db.Order("table_type, cargo_category, axle_count").
		Offset(offset).Limit(limit).
		Find(&rates).Error
	if err != nil {
		return nil, 0, err
	}

	return rates, total, nil
}

func (r *rateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RegulatoryRate, error) {
	var rate model.RegulatoryRate
	if err := dbFrom(ctx, r.db).First(&rate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *rateRepository) ExistsKey(ctx context.Context, tableType, category string, axles int, excludeID *uuid.UUID) (bool, error) {
	query := dbFrom(ctx, r.db).Model(&model.RegulatoryRate{}).
		Where("table_type = ? AND cargo_category = ? AND axle_count = ?", tableType, category, axles)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *rateRepository) Create(ctx context.Context, rate *model.RegulatoryRate) error {
	return dbFrom(ctx, r.db).Create(rate).Error
}

func (r *rateRepository) Update(ctx context.Context, rate *model.RegulatoryRate) error {
	return dbFrom(ctx, r.db).Save(rate).Error
}

func (r *rateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Where("id = ?", id).Delete(&model.RegulatoryRate{}).Error
}
