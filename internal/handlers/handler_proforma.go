package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/facturio/facturio/internal/core/domain"
	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

// proformaHandler handles HTTP requests related to proforma invoices.
type proformaHandler struct {
	proformaService portssvc.ProformaSvcFacade
	exportService   portssvc.ExportService
}

func newProformaHandler(ps portssvc.ProformaSvcFacade, es portssvc.ExportService) *proformaHandler {
	return &proformaHandler{
		proformaService: ps,
		exportService:   es,
	}
}

// registerProformaRoutes registers routes related to proforma invoices.
func registerProformaRoutes(rg *gin.RouterGroup, ps portssvc.ProformaSvcFacade, es portssvc.ExportService) {
	h := newProformaHandler(ps, es)

	proformas := rg.Group("/proformas")
	{
		proformas.POST("", h.createProforma)
		proformas.GET("", h.listProformas)
		proformas.GET("/:id", h.getProforma)
		proformas.PUT("/:id", h.updateProforma)
		proformas.POST("/:id/status", h.transitionProforma)
		proformas.POST("/:id/convert", h.convertToInvoice)
		proformas.GET("/:id/pdf", h.downloadProformaPDF)

		proformas.POST("/:id/items", h.addItem)
		proformas.PUT("/:id/items/:itemID", h.updateItem)
		proformas.DELETE("/:id/items/:itemID", h.removeItem)
	}
}

// createProforma godoc
// @Summary Create a new proforma invoice
// @Description Creates a draft proforma; the number is allocated server-side
// @Tags proformas
// @Accept  json
// @Produce  json
// @Param   proforma body dto.CreateProformaRequest true "Proforma details"
// @Success 201 {object} dto.ProformaResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create proforma"
// @Router /proformas [post]
func (h *proformaHandler) createProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProformaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProforma", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	proforma, err := h.proformaService.CreateProforma(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}

	logger.Info("Proforma created successfully", slog.String("proforma_id", proforma.ProformaID), slog.String("number", proforma.Number))
	c.JSON(http.StatusCreated, dto.ToProformaResponse(proforma))
}

// getProforma godoc
// @Summary Get a proforma by ID
// @Tags proformas
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Success 200 {object} dto.ProformaResponse
// @Failure 404 {object} map[string]string "Proforma not found"
// @Failure 500 {object} map[string]string "Failed to retrieve proforma"
// @Router /proformas/{id} [get]
func (h *proformaHandler) getProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")

	proforma, err := h.proformaService.GetProformaWithItems(c.Request.Context(), proformaID)
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}
	c.JSON(http.StatusOK, dto.ToProformaResponse(proforma))
}

// listProformas godoc
// @Summary List proforma invoices
// @Tags proformas
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   client query string false "Client ID filter"
// @Param   search query string false "Matches the number or the client name"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListProformasResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list proformas"
// @Router /proformas [get]
func (h *proformaHandler) listProformas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListProformasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListProformas", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	proformas, total, err := h.proformaService.ListProformas(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}

	responses := make([]dto.ProformaResponse, len(proformas))
	for i := range proformas {
		responses[i] = dto.ToProformaResponse(&proformas[i])
	}
	c.JSON(http.StatusOK, dto.ListProformasResponse{
		Proformas: responses,
		Total:     total,
		Page:      params.Page,
		Limit:     params.Limit,
	})
}

// updateProforma godoc
// @Summary Update a draft proforma
// @Tags proformas
// @Accept  json
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Param   proforma body dto.UpdateProformaRequest true "Fields to update"
// @Success 200 {object} dto.ProformaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Proforma not found"
// @Failure 409 {object} map[string]string "Proforma is not editable"
// @Failure 500 {object} map[string]string "Failed to update proforma"
// @Router /proformas/{id} [put]
func (h *proformaHandler) updateProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")

	var req dto.UpdateProformaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProforma", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	proforma, err := h.proformaService.UpdateProforma(c.Request.Context(), proformaID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}
	c.JSON(http.StatusOK, dto.ToProformaResponse(proforma))
}

// transitionProforma godoc
// @Summary Change a proforma's status
// @Description Moves the proforma through its lifecycle (draft, sent, accepted, rejected, expired)
// @Tags proformas
// @Accept  json
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Param   transition body dto.TransitionRequest true "Target status"
// @Success 200 {object} dto.ProformaResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Proforma not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update proforma"
// @Router /proformas/{id}/status [post]
func (h *proformaHandler) transitionProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionProforma", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	proforma, err := h.proformaService.TransitionProforma(c.Request.Context(), proformaID, domain.ProformaStatus(req.Status), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}

	logger.Info("Proforma status changed", slog.String("proforma_id", proformaID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToProformaResponse(proforma))
}

// convertToInvoice godoc
// @Summary Convert an accepted proforma into a draft invoice
// @Description Creates a fresh draft invoice with its own number, copying the proforma's line items
// @Tags proformas
// @Accept  json
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Param   conversion body dto.ConvertProformaRequest true "Optional invoice dates"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Proforma not found"
// @Failure 409 {object} map[string]string "Proforma is not accepted"
// @Failure 500 {object} map[string]string "Failed to convert proforma"
// @Router /proformas/{id}/convert [post]
func (h *proformaHandler) convertToInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")

	var req dto.ConvertProformaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertToInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.proformaService.ConvertToInvoice(c.Request.Context(), proformaID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}

	logger.Info("Proforma converted to invoice", slog.String("proforma_id", proformaID), slog.String("invoice_id", invoice.InvoiceID), slog.String("number", invoice.Number))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now()))
}

// addItem godoc
// @Summary Add a line item to a draft proforma
// @Tags proformas
// @Accept  json
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Param   item body dto.AddItemRequest true "Line item"
// @Success 200 {object} dto.ProformaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Proforma not found"
// @Failure 409 {object} map[string]string "Proforma is not editable"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Router /proformas/{id}/items [post]
func (h *proformaHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddProformaItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	proforma, err := h.proformaService.AddProformaItem(c.Request.Context(), proformaID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}
	c.JSON(http.StatusOK, dto.ToProformaResponse(proforma))
}

// updateItem godoc
// @Summary Update a line item on a draft proforma
// @Tags proformas
// @Accept  json
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ProformaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Proforma or item not found"
// @Failure 409 {object} map[string]string "Proforma is not editable"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /proformas/{id}/items/{itemID} [put]
func (h *proformaHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProformaItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	proforma, err := h.proformaService.UpdateProformaItem(c.Request.Context(), proformaID, itemID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}
	c.JSON(http.StatusOK, dto.ToProformaResponse(proforma))
}

// removeItem godoc
// @Summary Remove a line item from a draft proforma
// @Tags proformas
// @Produce  json
// @Param   id path string true "Proforma ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.ProformaResponse
// @Failure 404 {object} map[string]string "Proforma or item not found"
// @Failure 409 {object} map[string]string "Proforma is not editable"
// @Failure 500 {object} map[string]string "Failed to remove item"
// @Router /proformas/{id}/items/{itemID} [delete]
func (h *proformaHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")
	itemID := c.Param("itemID")

	proforma, err := h.proformaService.RemoveProformaItem(c.Request.Context(), proformaID, itemID, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}
	c.JSON(http.StatusOK, dto.ToProformaResponse(proforma))
}

// downloadProformaPDF godoc
// @Summary Download a proforma as PDF
// @Tags proformas
// @Produce  application/pdf
// @Param   id path string true "Proforma ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Proforma not found"
// @Failure 500 {object} map[string]string "Failed to render PDF"
// @Router /proformas/{id}/pdf [get]
func (h *proformaHandler) downloadProformaPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proformaID := c.Param("id")

	data, err := h.exportService.RenderProformaPDF(c.Request.Context(), proformaID)
	if err != nil {
		respondServiceError(c, logger, err, "proforma")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=proforma-%s.pdf", proformaID))
	c.Data(http.StatusOK, "application/pdf", data)
}
