package handler

import (
	"net/http"
	"strconv"

	"freight-backend/internal/service"
	"freight-backend/pkg/pagination"
	"freight-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateService service.RateService
}

func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

func (h *RateHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/regulatory-rates")
	{
		rates.GET("", h.GetRates)
		rates.GET("/lookup", h.LookupRate)
		rates.POST("", h.CreateRate)
		rates.PUT("/:id", h.UpdateRate)
		rates.DELETE("/:id", h.DeleteRate)
	}
}

// GetRates returns the rate reference table, paginated
// @Summary      List regulatory rates
// @Tags         regulatory-rates
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=response.Page}
// @Router       /api/regulatory-rates [get]
func (h *RateHandler) GetRates(c *gin.Context) {
	params := pagination.Parse(c)

	rates, total, err := h.rateService.GetRates(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paged(http.StatusOK, rates, total, params.Page, params.Limit))
}

// LookupRate previews the rate a floor computation would use for a key
// @Summary      Preview a rate lookup, category fallback included
// @Tags         regulatory-rates
// @Produce      json
// @Param        table_type      query     string  true  "Rate table (A, B, C, D)"
// @Param        cargo_category  query     string  true  "ANTT cargo category"
// @Param        axle_count      query     int     true  "Axle count"
// @Success      200  {object}  response.Response{data=service.RateLookupResponse}
// @Router       /api/regulatory-rates/lookup [get]
func (h *RateHandler) LookupRate(c *gin.Context) {
	tableType := c.Query("table_type")
	cargoCategory := c.Query("cargo_category")
	axleCount, err := strconv.Atoi(c.Query("axle_count"))
	if err != nil || tableType == "" || cargoCategory == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "table_type, cargo_category and a numeric axle_count are required"))
		return
	}

	res, err := h.rateService.LookupRate(c.Request.Context(), tableType, cargoCategory, axleCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "no regulatory rate covers this key"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// CreateRate creates a new rate reference entry
func (h *RateHandler) CreateRate(c *gin.Context) {
	var req service.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rate))
}

// UpdateRate replaces an existing rate reference entry
func (h *RateHandler) UpdateRate(c *gin.Context) {
	var req service.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rate))
}

// DeleteRate removes a rate reference entry
func (h *RateHandler) DeleteRate(c *gin.Context) {
	if err := h.rateService.DeleteRate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": c.Param("id")}))
}
