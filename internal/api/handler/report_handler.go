package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// ReportHandler serves the aggregate dashboards.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Stats handles GET /v1/reports/stats.
//
// @Summary      Portal-wide statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SystemStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/reports/stats [get]
func (h *ReportHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Placements handles GET /v1/reports/placements.
//
// @Summary      List confirmed placements
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PlacementRecord
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/reports/placements [get]
func (h *ReportHandler) Placements(c echo.Context) error {
	records, err := h.service.ListPlacements(c.Request().Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []*domain.PlacementRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
