package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	paymentService portssvc.PaymentSvcFacade
	exportService  portssvc.ExportService
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, ps portssvc.PaymentSvcFacade, es portssvc.ExportService) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		paymentService: ps,
		exportService:  es,
	}
}

// registerInvoiceRoutes registers routes related to invoices, including the
// payment ledger nested under each invoice.
func registerInvoiceRoutes(rg *gin.RouterGroup, is portssvc.InvoiceSvcFacade, ps portssvc.PaymentSvcFacade, es portssvc.ExportService) {
	h := newInvoiceHandler(is, ps, es)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/export", h.exportInvoicesExcel)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.POST("/:id/status", h.transitionInvoice)
		invoices.GET("/:id/pdf", h.downloadInvoicePDF)

		invoices.POST("/:id/items", h.addItem)
		invoices.PUT("/:id/items/:itemID", h.updateItem)
		invoices.DELETE("/:id/items/:itemID", h.removeItem)

		invoices.GET("/:id/payments", h.listPayments)
		invoices.POST("/:id/payments", h.recordPayment)
	}
	rg.DELETE("/payments/:paymentID", h.deletePayment)
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a draft invoice; the number is allocated server-side
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}

	logger.Info("Invoice created successfully", slog.String("invoice_id", invoice.InvoiceID), slog.String("number", invoice.Number))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now()))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice together with its line items
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceWithItems(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves a paginated invoice list, optionally filtered by status, client, search term or overdue state
// @Tags invoices
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   client query string false "Client ID filter"
// @Param   search query string false "Matches the number or the client name"
// @Param   overdue query bool false "Only invoices past their due date"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	today := time.Now()
	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), params, today)
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoices[i], today)
	}
	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Invoices: responses,
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	})
}

// updateInvoice godoc
// @Summary Update a draft invoice
// @Description Updates the editable header fields; only draft invoices may be edited
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice is not editable"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// transitionInvoice godoc
// @Summary Change an invoice's status
// @Description Moves the invoice through its lifecycle (draft, sent, partial, paid, overdue, cancelled)
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   transition body dto.TransitionRequest true "Target status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Router /invoices/{id}/status [post]
func (h *invoiceHandler) transitionInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.TransitionInvoice(c.Request.Context(), invoiceID, domain.InvoiceStatus(req.Status), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}

	logger.Info("Invoice status changed", slog.String("invoice_id", invoiceID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// addItem godoc
// @Summary Add a line item to a draft invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   item body dto.AddItemRequest true "Line item"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice is not editable"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Router /invoices/{id}/items [post]
func (h *invoiceHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddInvoiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.AddInvoiceItem(c.Request.Context(), invoiceID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// updateItem godoc
// @Summary Update a line item on a draft invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice or item not found"
// @Failure 409 {object} map[string]string "Invoice is not editable"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /invoices/{id}/items/{itemID} [put]
func (h *invoiceHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceItem(c.Request.Context(), invoiceID, itemID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// removeItem godoc
// @Summary Remove a line item from a draft invoice
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice or item not found"
// @Failure 409 {object} map[string]string "Invoice is not editable"
// @Failure 500 {object} map[string]string "Failed to remove item"
// @Router /invoices/{id}/items/{itemID} [delete]
func (h *invoiceHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	itemID := c.Param("itemID")

	invoice, err := h.invoiceService.RemoveInvoiceItem(c.Request.Context(), invoiceID, itemID, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// listPayments godoc
// @Summary List payments recorded against an invoice
// @Tags payments
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /invoices/{id}/payments [get]
func (h *invoiceHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	payments, err := h.paymentService.ListPaymentsForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// recordPayment godoc
// @Summary Record a payment against an invoice
// @Description Appends a ledger entry; the invoice's paid amount and status are recomputed from the full ledger
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice cannot accept payments"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /invoices/{id}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, invoice, err := h.paymentService.RecordPayment(c.Request.Context(), invoiceID, req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment: dto.ToPaymentResponse(payment),
		Invoice: dto.ToInvoiceResponse(invoice, time.Now()),
	})
}

// deletePayment godoc
// @Summary Delete a recorded payment
// @Description Removes a ledger entry and recomputes the invoice's paid amount and status
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Router /payments/{paymentID} [delete]
func (h *invoiceHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	invoice, err := h.paymentService.DeletePayment(c.Request.Context(), paymentID, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "payment")
		return
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID), slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// downloadInvoicePDF godoc
// @Summary Download an invoice as PDF
// @Tags invoices
// @Produce  application/pdf
// @Param   id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to render PDF"
// @Router /invoices/{id}/pdf [get]
func (h *invoiceHandler) downloadInvoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	data, err := h.exportService.RenderInvoicePDF(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoiceID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// exportInvoicesExcel godoc
// @Summary Export invoices as an XLSX workbook
// @Tags invoices
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to render workbook"
// @Router /invoices/export [get]
func (h *invoiceHandler) exportInvoicesExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.exportService.ExportInvoicesExcel(c.Request.Context(), time.Now())
	if err != nil {
		respondServiceError(c, logger, err, "invoice")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoices.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// respondServiceError maps service errors onto HTTP status codes the same
// way for every entity.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Entity not found", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate entity", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service call failed", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
