package handler

import (
	"net/http"

	"freight-backend/internal/service"
	"freight-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingService service.PricingService
}

func NewPricingHandler(pricingService service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

func (h *PricingHandler) RegisterRoutes(router *gin.RouterGroup) {
	pricing := router.Group("/api/pricing")
	{
		pricing.POST("/canonical", h.CanonicalPrice)
		pricing.DELETE("/cache", h.InvalidateAll)
		pricing.DELETE("/cache/:id", h.InvalidateOne)
	}

	router.GET("/api/freights/:id/canonical-price", h.FreightPrice)
}

// CanonicalPrice derives the display price for raw pricing fields
// @Summary      Canonicalize freight pricing fields
// @Description  Resolves the pricing mode and derives the canonical display value and unit
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request  body      service.CanonicalPriceRequest  true  "Raw pricing fields"
// @Success      200      {object}  response.Response{data=service.CanonicalPriceResponse}
// @Router       /api/pricing/canonical [post]
func (h *PricingHandler) CanonicalPrice(c *gin.Context) {
	var req service.CanonicalPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.pricingService.CanonicalPrice(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// FreightPrice returns the (cached) canonical price of a stored freight
// @Summary      Get a freight's canonical display price
// @Tags         pricing
// @Produce      json
// @Param        id   path      string  true  "Freight ID"
// @Success      200  {object}  response.Response{data=service.CanonicalPriceResponse}
// @Router       /api/freights/{id}/canonical-price [get]
func (h *PricingHandler) FreightPrice(c *gin.Context) {
	res, err := h.pricingService.FreightPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// InvalidateAll clears every cached canonical price
func (h *PricingHandler) InvalidateAll(c *gin.Context) {
	h.pricingService.InvalidateCache()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"invalidated": "all"}))
}

// InvalidateOne clears one freight's cached canonical price
func (h *PricingHandler) InvalidateOne(c *gin.Context) {
	id := c.Param("id")
	h.pricingService.InvalidateCache(id)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"invalidated": id}))
}
