package handler

import (
	"net/http"

	"freight-backend/internal/service"
	"freight-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FloorHandler struct {
	floorService service.FloorService
}

func NewFloorHandler(floorService service.FloorService) *FloorHandler {
	return &FloorHandler{floorService: floorService}
}

func (h *FloorHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/floor-runs", h.Recompute)
}

// Recompute runs the regulatory-floor batch job over freights missing a floor
// @Summary      Recompute missing regulatory floors
// @Description  Selects freights without a minimum regulatory price, computes and persists it per record, and returns the full run report. Aborting the request cancels the run between records.
// @Tags         floor-runs
// @Produce      json
// @Success      200  {object}  response.Response{data=service.RunReport}
// @Router       /api/floor-runs [post]
func (h *FloorHandler) Recompute(c *gin.Context) {
	report, err := h.floorService.Recompute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
