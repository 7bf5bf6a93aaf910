package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freight-backend/internal/model"
	"freight-backend/internal/regulatory"
	"freight-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateRateRequest struct {
	TableType     string `json:"table_type" binding:"required,oneof=A B C D"`
	CargoCategory string `json:"cargo_category" binding:"required,oneof=GRANEL_SOLIDO GRANEL_LIQUIDO NEOGRANEL PERIGOSA_CARGA_GERAL CARGA_GERAL"`
	AxleCount     int    `json:"axle_count" binding:"required,gte=2,lte=9"`
	RatePerKm     string `json:"rate_per_km" binding:"required"` // Decimal string, e.g. "3.5964"
	FixedCharge   string `json:"fixed_charge" binding:"required"`
}

type UpdateRateRequest struct {
	TableType     string `json:"table_type" binding:"required,oneof=A B C D"`
	CargoCategory string `json:"cargo_category" binding:"required,oneof=GRANEL_SOLIDO GRANEL_LIQUIDO NEOGRANEL PERIGOSA_CARGA_GERAL CARGA_GERAL"`
	AxleCount     int    `json:"axle_count" binding:"required,gte=2,lte=9"`
	RatePerKm     string `json:"rate_per_km" binding:"required"`
	FixedCharge   string `json:"fixed_charge" binding:"required"`
}

type RateResponse struct {
	ID            string `json:"id"`
	TableType     string `json:"table_type"`
	CargoCategory string `json:"cargo_category"`
	AxleCount     int    `json:"axle_count"`
	RatePerKm     string `json:"rate_per_km"`
	FixedCharge   string `json:"fixed_charge"`
	CreatedAt     string `json:"created_at"`
}

type RateLookupResponse struct {
	TableType     string `json:"table_type"`
	CargoCategory string `json:"cargo_category"` // Category actually charged (fallback applied)
	AxleCount     int    `json:"axle_count"`
	RatePerKm     string `json:"rate_per_km"`
	FixedCharge   string `json:"fixed_charge"`
	UsedFallback  bool   `json:"used_fallback"`
}

// --- Interface ---

type RateService interface {
	GetRates(ctx context.Context, page, limit int) ([]RateResponse, int64, error)
	CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	UpdateRate(ctx context.Context, id string, req UpdateRateRequest) (RateResponse, error)
	DeleteRate(ctx context.Context, id string) error
	// LookupRate previews the rate a floor computation would charge for a
	// key, fallback included. A nil response means no regulation covers it.
	LookupRate(ctx context.Context, tableType, cargoCategory string, axleCount int) (*RateLookupResponse, error)
}

type rateService struct {
	rateRepo  repository.RateRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewRateService(rateRepo repository.RateRepository, auditRepo repository.AuditRepository, txManager repository.TransactionManager) RateService {
	return &rateService{rateRepo: rateRepo, auditRepo: auditRepo, txManager: txManager}
}

// --- Implementation ---

func (s *rateService) GetRates(ctx context.Context, page, limit int) ([]RateResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	rates, total, err := s.rateRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch regulatory rates: %w", err)
	}

	res := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		res = append(res, toRateResponse(r))
	}

	return res, total, nil
}

func (s *rateService) CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error) {
	perKm, fixed, err := parseRateFields(req.RatePerKm, req.FixedCharge)
	if err != nil {
		return RateResponse{}, err
	}

	rate := model.RegulatoryRate{
		TableType:     req.TableType,
		CargoCategory: req.CargoCategory,
		AxleCount:     req.AxleCount,
		RatePerKm:     perKm,
		FixedCharge:   fixed,
	}

	// Mutation and its audit row commit together: the rate table is
	// regulatory reference data, a change without a trail is not a change.
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.rateRepo.ExistsKey(txCtx, req.TableType, req.CargoCategory, req.AxleCount, nil)
		if err != nil {
			return fmt.Errorf("failed to check rate key: %w", err)
		}
		if exists {
			return fmt.Errorf("a rate for table %s, category %s, %d axles already exists", req.TableType, req.CargoCategory, req.AxleCount)
		}

		if err := s.rateRepo.Create(txCtx, &rate); err != nil {
			return fmt.Errorf("failed to create regulatory rate: %w", err)
		}

		return s.writeRateAudit(txCtx, model.ActionCreateRegulatoryRate, rate, req)
	})
	if err != nil {
		return RateResponse{}, err
	}

	return toRateResponse(rate), nil
}

func (s *rateService) UpdateRate(ctx context.Context, id string, req UpdateRateRequest) (RateResponse, error) {
	rateID, err := uuid.Parse(id)
	if err != nil {
		return RateResponse{}, fmt.Errorf("invalid rate id: %w", err)
	}

	perKm, fixed, err := parseRateFields(req.RatePerKm, req.FixedCharge)
	if err != nil {
		return RateResponse{}, err
	}

	var rate *model.RegulatoryRate
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rate, err = s.rateRepo.FindByID(txCtx, rateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("regulatory rate not found")
			}
			return fmt.Errorf("failed to fetch regulatory rate: %w", err)
		}

		exists, err := s.rateRepo.ExistsKey(txCtx, req.TableType, req.CargoCategory, req.AxleCount, &rateID)
		if err != nil {
			return fmt.Errorf("failed to check rate key: %w", err)
		}
		if exists {
			return fmt.Errorf("a rate for table %s, category %s, %d axles already exists", req.TableType, req.CargoCategory, req.AxleCount)
		}

		rate.TableType = req.TableType
		rate.CargoCategory = req.CargoCategory
		rate.AxleCount = req.AxleCount
		rate.RatePerKm = perKm
		rate.FixedCharge = fixed

		if err := s.rateRepo.Update(txCtx, rate); err != nil {
			return fmt.Errorf("failed to update regulatory rate: %w", err)
		}

		return s.writeRateAudit(txCtx, model.ActionUpdateRegulatoryRate, *rate, req)
	})
	if err != nil {
		return RateResponse{}, err
	}

	return toRateResponse(*rate), nil
}

func (s *rateService) DeleteRate(ctx context.Context, id string) error {
	rateID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid rate id: %w", err)
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rate, err := s.rateRepo.FindByID(txCtx, rateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("regulatory rate not found")
			}
			return fmt.Errorf("failed to fetch regulatory rate: %w", err)
		}

		if err := s.rateRepo.Delete(txCtx, rateID); err != nil {
			return fmt.Errorf("failed to delete regulatory rate: %w", err)
		}

		return s.writeRateAudit(txCtx, model.ActionDeleteRegulatoryRate, *rate, map[string]string{"deleted_id": id})
	})
}

func (s *rateService) LookupRate(ctx context.Context, tableType, cargoCategory string, axleCount int) (*RateLookupResponse, error) {
	rows, err := s.rateRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load regulatory rates: %w", err)
	}

	table := regulatory.NewTable(toRegulatoryRates(rows))
	rate, usedFallback := table.Lookup(regulatory.TableType(tableType), regulatory.Category(cargoCategory), axleCount)
	if rate == nil {
		return nil, nil // No covering regulation — not an error
	}

	return &RateLookupResponse{
		TableType:     string(rate.TableType),
		CargoCategory: string(rate.Category),
		AxleCount:     rate.AxleCount,
		RatePerKm:     rate.RatePerKm.StringFixed(4),
		FixedCharge:   rate.FixedCharge.StringFixed(2),
		UsedFallback:  usedFallback,
	}, nil
}

// --- Helpers ---

func parseRateFields(perKmStr, fixedStr string) (decimal.Decimal, decimal.Decimal, error) {
	perKm, err := decimal.NewFromString(perKmStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid rate_per_km value: %w", err)
	}
	fixed, err := decimal.NewFromString(fixedStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid fixed_charge value: %w", err)
	}
	if perKm.IsNegative() || fixed.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("rate values must not be negative")
	}
	return perKm, fixed, nil
}

func toRegulatoryRates(rows []model.RegulatoryRate) []regulatory.Rate {
	rates := make([]regulatory.Rate, 0, len(rows))
	for _, r := range rows {
		rates = append(rates, regulatory.Rate{
			TableType:   regulatory.TableType(r.TableType),
			Category:    regulatory.Category(r.CargoCategory),
			AxleCount:   r.AxleCount,
			RatePerKm:   r.RatePerKm,
			FixedCharge: r.FixedCharge,
		})
	}
	return rates
}

func toRateResponse(r model.RegulatoryRate) RateResponse {
	return RateResponse{
		ID:            r.ID.String(),
		TableType:     r.TableType,
		CargoCategory: r.CargoCategory,
		AxleCount:     r.AxleCount,
		RatePerKm:     r.RatePerKm.StringFixed(4),
		FixedCharge:   r.FixedCharge.StringFixed(2),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func (s *rateService) writeRateAudit(ctx context.Context, action string, rate model.RegulatoryRate, details interface{}) error {
	detailsJSON, _ := json.Marshal(details)

	entry := model.AuditLog{
		Action:     action,
		EntityID:   rate.ID.String(),
		EntityName: fmt.Sprintf("table %s %s %d axles", rate.TableType, rate.CargoCategory, rate.AxleCount),
		Details:    string(detailsJSON),
	}

	if err := s.auditRepo.Log(ctx, &entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
