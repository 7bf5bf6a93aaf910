package service

import (
	"context"
	"testing"

	"freight-backend/internal/model"
	"freight-backend/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newPricingService(freights ...model.Freight) PricingService {
	return NewPricingService(newFakeFreightRepo(freights...), pricing.NewMemoryCache())
}

func TestPricingService_CanonicalPrice_LegacyPerTonRow(t *testing.T) {
	// Old rows stored the per-ton rate in price_per_km
	resp, err := newPricingService().CanonicalPrice(context.Background(), CanonicalPriceRequest{
		ID:             "freight-1",
		PricingMode:    strPtr("POR_TONELADA"),
		PricePerKm:     strPtr("80"),
		RequiredTrucks: 12,
		WeightKg:       strPtr("500000"),
	})

	require.NoError(t, err)
	assert.Equal(t, "R$ 80,00/ton", resp.PrimaryLabel)
	assert.Equal(t, "ton", resp.Unit)
	assert.Equal(t, "80.00", resp.UnitValue)
	require.NotNil(t, resp.SecondaryLabel)
	assert.Equal(t, "500.0 ton · 12 vehicles", *resp.SecondaryLabel)
	assert.False(t, resp.IsInvalid)
}

func TestPricingService_CanonicalPrice_MalformedDecimal(t *testing.T) {
	_, err := newPricingService().CanonicalPrice(context.Background(), CanonicalPriceRequest{
		PricingMode: strPtr("PER_KM"),
		PricePerKm:  strPtr("3,50"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price_per_km value")
}

func TestPricingService_CanonicalPrice_UnknownModeDegrades(t *testing.T) {
	resp, err := newPricingService().CanonicalPrice(context.Background(), CanonicalPriceRequest{
		PricingMode: strPtr("BARTER"),
		Price:       strPtr("1000"),
	})

	require.NoError(t, err)
	assert.True(t, resp.IsInvalid)
	assert.Equal(t, pricing.UnavailableLabel, resp.PrimaryLabel)
	assert.Equal(t, "none", resp.Unit)
	assert.Equal(t, "0.00", resp.UnitValue)
	assert.Nil(t, resp.SecondaryLabel)
}

func TestPricingService_FreightPrice_FixedSplit(t *testing.T) {
	freight := model.Freight{
		ID:             uuid.New(),
		PricingMode:    strPtr("FIXED"),
		Price:          decPtr("40000"),
		RequiredTrucks: 12,
	}

	resp, err := newPricingService(freight).FreightPrice(context.Background(), freight.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "R$ 3.333,33/vehicle", resp.PrimaryLabel)
	assert.Equal(t, "vehicle", resp.Unit)
	assert.Equal(t, "3333.33", resp.UnitValue)
	require.NotNil(t, resp.SecondaryLabel)
	assert.Equal(t, "12 vehicles", *resp.SecondaryLabel)
}

func TestPricingService_FreightPrice_BadID(t *testing.T) {
	_, err := newPricingService().FreightPrice(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid freight id")
}

func TestPricingService_FreightPrice_NotFound(t *testing.T) {
	_, err := newPricingService().FreightPrice(context.Background(), uuid.NewString())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch freight")
}

func TestPricingService_InvalidateCache_ServesFreshResult(t *testing.T) {
	freight := model.Freight{
		ID:             uuid.New(),
		PricingMode:    strPtr("PER_KM"),
		PricePerKm:     decPtr("3.50"),
		RequiredTrucks: 2,
	}
	repo := newFakeFreightRepo(freight)
	svc := NewPricingService(repo, pricing.NewMemoryCache())

	before, err := svc.FreightPrice(context.Background(), freight.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "R$ 3,50/km", before.PrimaryLabel)

	// Simulate an edit to the underlying record
	repo.freights[0].PricePerKm = decPtr("4.25")

	stale, err := svc.FreightPrice(context.Background(), freight.ID.String())
	require.NoError(t, err)
	assert.Equal(t, before.PrimaryLabel, stale.PrimaryLabel)

	svc.InvalidateCache(freight.ID.String())

	fresh, err := svc.FreightPrice(context.Background(), freight.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "R$ 4,25/km", fresh.PrimaryLabel)
}
