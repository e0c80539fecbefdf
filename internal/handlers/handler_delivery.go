package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

// deliveryHandler handles HTTP requests related to delivery notes.
type deliveryHandler struct {
	deliveryService portssvc.DeliverySvcFacade
}

func newDeliveryHandler(ds portssvc.DeliverySvcFacade) *deliveryHandler {
	return &deliveryHandler{deliveryService: ds}
}

// registerDeliveryRoutes registers routes related to delivery notes.
func registerDeliveryRoutes(rg *gin.RouterGroup, ds portssvc.DeliverySvcFacade) {
	h := newDeliveryHandler(ds)

	deliveries := rg.Group("/deliveries")
	{
		deliveries.POST("", h.createDelivery)
		deliveries.GET("", h.listDeliveries)
		deliveries.GET("/:id", h.getDelivery)
		deliveries.PUT("/:id", h.updateDelivery)

		deliveries.POST("/:id/items", h.addItem)
		deliveries.PUT("/:id/items/:itemID", h.updateItem)
		deliveries.DELETE("/:id/items/:itemID", h.removeItem)
	}
}

// createDelivery godoc
// @Summary Create a new delivery note
// @Description Creates a delivery note, optionally linked to an existing invoice; the number is allocated server-side
// @Tags deliveries
// @Accept  json
// @Produce  json
// @Param   delivery body dto.CreateDeliveryNoteRequest true "Delivery note details"
// @Success 201 {object} dto.DeliveryNoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Linked invoice not found"
// @Failure 500 {object} map[string]string "Failed to create delivery note"
// @Router /deliveries [post]
func (h *deliveryHandler) createDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDeliveryNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeliveryNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	delivery, err := h.deliveryService.CreateDeliveryNote(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}

	logger.Info("Delivery note created", slog.String("delivery_id", delivery.DeliveryID), slog.String("number", delivery.Number))
	c.JSON(http.StatusCreated, dto.ToDeliveryNoteResponse(delivery))
}

// getDelivery godoc
// @Summary Get a delivery note by ID
// @Tags deliveries
// @Produce  json
// @Param   id path string true "Delivery note ID"
// @Success 200 {object} dto.DeliveryNoteResponse
// @Failure 404 {object} map[string]string "Delivery note not found"
// @Failure 500 {object} map[string]string "Failed to retrieve delivery note"
// @Router /deliveries/{id} [get]
func (h *deliveryHandler) getDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	delivery, err := h.deliveryService.GetDeliveryNoteWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryNoteResponse(delivery))
}

// listDeliveries godoc
// @Summary List delivery notes
// @Tags deliveries
// @Produce  json
// @Param   client query string false "Client ID filter"
// @Param   invoice query string false "Linked invoice ID filter"
// @Param   search query string false "Matches the number or the client name"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListDeliveryNotesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list delivery notes"
// @Router /deliveries [get]
func (h *deliveryHandler) listDeliveries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDeliveryNotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListDeliveryNotes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	deliveries, total, err := h.deliveryService.ListDeliveryNotes(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}

	responses := make([]dto.DeliveryNoteResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = dto.ToDeliveryNoteResponse(&deliveries[i])
	}
	c.JSON(http.StatusOK, dto.ListDeliveryNotesResponse{
		DeliveryNotes: responses,
		Total:         total,
		Page:          params.Page,
		Limit:         params.Limit,
	})
}

// updateDelivery godoc
// @Summary Update a delivery note
// @Tags deliveries
// @Accept  json
// @Produce  json
// @Param   id path string true "Delivery note ID"
// @Param   delivery body dto.UpdateDeliveryNoteRequest true "Fields to update"
// @Success 200 {object} dto.DeliveryNoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Delivery note not found"
// @Failure 500 {object} map[string]string "Failed to update delivery note"
// @Router /deliveries/{id} [put]
func (h *deliveryHandler) updateDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDeliveryNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDeliveryNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	delivery, err := h.deliveryService.UpdateDeliveryNote(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryNoteResponse(delivery))
}

// addItem godoc
// @Summary Add an item to a delivery note
// @Tags deliveries
// @Accept  json
// @Produce  json
// @Param   id path string true "Delivery note ID"
// @Param   item body dto.AddDeliveryItemRequest true "Delivery item"
// @Success 200 {object} dto.DeliveryNoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Delivery note not found"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Router /deliveries/{id}/items [post]
func (h *deliveryHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddDeliveryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddDeliveryItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	delivery, err := h.deliveryService.AddDeliveryItem(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryNoteResponse(delivery))
}

// updateItem godoc
// @Summary Update an item on a delivery note
// @Description Typically used to record delivered quantities against ordered ones
// @Tags deliveries
// @Accept  json
// @Produce  json
// @Param   id path string true "Delivery note ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateDeliveryItemRequest true "Fields to update"
// @Success 200 {object} dto.DeliveryNoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Delivery note or item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /deliveries/{id}/items/{itemID} [put]
func (h *deliveryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDeliveryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDeliveryItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	delivery, err := h.deliveryService.UpdateDeliveryItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryNoteResponse(delivery))
}

// removeItem godoc
// @Summary Remove an item from a delivery note
// @Tags deliveries
// @Produce  json
// @Param   id path string true "Delivery note ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.DeliveryNoteResponse
// @Failure 404 {object} map[string]string "Delivery note or item not found"
// @Failure 500 {object} map[string]string "Failed to remove item"
// @Router /deliveries/{id}/items/{itemID} [delete]
func (h *deliveryHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	delivery, err := h.deliveryService.RemoveDeliveryItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeliveryNoteResponse(delivery))
}
