package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

// reportingHandler handles HTTP requests for dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := newReportingHandler(rs)
	rg.GET("/dashboard", h.getDashboardSummary)
}

// getDashboardSummary godoc
// @Summary Get the dashboard summary
// @Description Aggregates invoiced, paid and outstanding totals plus document, client and stock counts
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard [get]
func (h *reportingHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context(), time.Now())
	if err != nil {
		respondServiceError(c, logger, err, "dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
