package service

import (
	"context"
	"fmt"

	"freight-backend/internal/model"
	"freight-backend/internal/pricing"
	"freight-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// CanonicalPriceRequest mirrors the raw pricing columns of a freight.
// Decimal values travel as strings, e.g. "80.00".
type CanonicalPriceRequest struct {
	ID             string  `json:"id"`
	PricingMode    *string `json:"pricing_mode"`
	Price          *string `json:"price"`
	PricePerKm     *string `json:"price_per_km"`
	PricePerTon    *string `json:"price_per_ton"`
	RequiredTrucks int     `json:"required_trucks"`
	WeightKg       *string `json:"weight_kg"`
	DistanceKm     *string `json:"distance_km"`
}

type CanonicalPriceResponse struct {
	ID             string  `json:"id"`
	PrimaryLabel   string  `json:"primary_label"`
	Unit           string  `json:"unit"`
	UnitValue      string  `json:"unit_value"`
	SecondaryLabel *string `json:"secondary_label"`
	IsInvalid      bool    `json:"is_invalid"`
}

// --- Interface ---

type PricingService interface {
	// CanonicalPrice derives the display form for ad-hoc pricing fields.
	CanonicalPrice(ctx context.Context, req CanonicalPriceRequest) (CanonicalPriceResponse, error)
	// FreightPrice loads a stored freight and derives (or serves the
	// cached) display form for it.
	FreightPrice(ctx context.Context, freightID string) (CanonicalPriceResponse, error)
	// InvalidateCache drops cached results; no ids clears everything.
	InvalidateCache(ids ...string)
}

type pricingService struct {
	freightRepo repository.FreightRepository
	calculator  *pricing.Calculator
}

func NewPricingService(freightRepo repository.FreightRepository, cache pricing.Cache) PricingService {
	return &pricingService{
		freightRepo: freightRepo,
		calculator:  pricing.NewCalculator(cache),
	}
}

// --- Implementation ---

func (s *pricingService) CanonicalPrice(_ context.Context, req CanonicalPriceRequest) (CanonicalPriceResponse, error) {
	in, err := toPricingInput(req)
	if err != nil {
		return CanonicalPriceResponse{}, err
	}

	return toCanonicalResponse(req.ID, s.calculator.Price(in)), nil
}

func (s *pricingService) FreightPrice(ctx context.Context, freightID string) (CanonicalPriceResponse, error) {
	id, err := uuid.Parse(freightID)
	if err != nil {
		return CanonicalPriceResponse{}, fmt.Errorf("invalid freight id: %w", err)
	}

	freight, err := s.freightRepo.FindByID(ctx, id)
	if err != nil {
		return CanonicalPriceResponse{}, fmt.Errorf("failed to fetch freight: %w", err)
	}

	return toCanonicalResponse(freightID, s.calculator.Price(freightPricingInput(freight))), nil
}

func (s *pricingService) InvalidateCache(ids ...string) {
	s.calculator.Invalidate(ids...)
}

// --- Helpers ---

func freightPricingInput(f *model.Freight) pricing.Input {
	return pricing.Input{
		ID:             f.ID.String(),
		PricingMode:    f.PricingMode,
		Price:          f.Price,
		PricePerKm:     f.PricePerKm,
		PricePerTon:    f.PricePerTon,
		RequiredTrucks: f.RequiredTrucks,
		WeightKg:       f.WeightKg,
		DistanceKm:     f.DistanceKm,
	}
}

func toPricingInput(req CanonicalPriceRequest) (pricing.Input, error) {
	price, err := parseOptionalDecimal("price", req.Price)
	if err != nil {
		return pricing.Input{}, err
	}
	perKm, err := parseOptionalDecimal("price_per_km", req.PricePerKm)
	if err != nil {
		return pricing.Input{}, err
	}
	perTon, err := parseOptionalDecimal("price_per_ton", req.PricePerTon)
	if err != nil {
		return pricing.Input{}, err
	}
	weight, err := parseOptionalDecimal("weight_kg", req.WeightKg)
	if err != nil {
		return pricing.Input{}, err
	}
	distance, err := parseOptionalDecimal("distance_km", req.DistanceKm)
	if err != nil {
		return pricing.Input{}, err
	}

	return pricing.Input{
		ID:             req.ID,
		PricingMode:    req.PricingMode,
		Price:          price,
		PricePerKm:     perKm,
		PricePerTon:    perTon,
		RequiredTrucks: req.RequiredTrucks,
		WeightKg:       weight,
		DistanceKm:     distance,
	}, nil
}

func parseOptionalDecimal(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", field, err)
	}
	return &d, nil
}

func toCanonicalResponse(id string, res *pricing.Result) CanonicalPriceResponse {
	resp := CanonicalPriceResponse{
		ID:           id,
		PrimaryLabel: res.PrimaryLabel,
		Unit:         string(res.Unit),
		UnitValue:    res.UnitValue.StringFixed(2),
		IsInvalid:    res.Invalid,
	}
	if res.SecondaryLabel != "" {
		s := res.SecondaryLabel
		resp.SecondaryLabel = &s
	}
	return resp
}
