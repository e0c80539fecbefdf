package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facturio/facturio/internal/core/domain"
	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

// orderHandler handles HTTP requests for customer and supplier orders. The
// two sides share route shapes and differ only in the backing service.
type orderHandler struct {
	customerOrderService portssvc.CustomerOrderSvcFacade
	supplierOrderService portssvc.SupplierOrderSvcFacade
}

func newOrderHandler(cs portssvc.CustomerOrderSvcFacade, ss portssvc.SupplierOrderSvcFacade) *orderHandler {
	return &orderHandler{
		customerOrderService: cs,
		supplierOrderService: ss,
	}
}

// registerOrderRoutes registers routes for both order sides.
func registerOrderRoutes(rg *gin.RouterGroup, cs portssvc.CustomerOrderSvcFacade, ss portssvc.SupplierOrderSvcFacade) {
	h := newOrderHandler(cs, ss)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createCustomerOrder)
		orders.GET("", h.listCustomerOrders)
		orders.GET("/:id", h.getCustomerOrder)
		orders.PUT("/:id", h.updateCustomerOrder)
		orders.POST("/:id/status", h.transitionCustomerOrder)
		orders.POST("/:id/items", h.addCustomerOrderItem)
		orders.PUT("/:id/items/:itemID", h.updateCustomerOrderItem)
		orders.DELETE("/:id/items/:itemID", h.removeCustomerOrderItem)
	}

	purchaseOrders := rg.Group("/purchase-orders")
	{
		purchaseOrders.POST("", h.createSupplierOrder)
		purchaseOrders.GET("", h.listSupplierOrders)
		purchaseOrders.GET("/:id", h.getSupplierOrder)
		purchaseOrders.PUT("/:id", h.updateSupplierOrder)
		purchaseOrders.POST("/:id/status", h.transitionSupplierOrder)
		purchaseOrders.POST("/:id/items", h.addSupplierOrderItem)
		purchaseOrders.PUT("/:id/items/:itemID", h.updateSupplierOrderItem)
		purchaseOrders.DELETE("/:id/items/:itemID", h.removeSupplierOrderItem)
	}
}

// createCustomerOrder godoc
// @Summary Create a new customer order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateCustomerOrderRequest true "Order details"
// @Success 201 {object} dto.CustomerOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Router /orders [post]
func (h *orderHandler) createCustomerOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomerOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.customerOrderService.CreateCustomerOrder(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}

	logger.Info("Customer order created", slog.String("order_id", order.OrderID), slog.String("number", order.Number))
	c.JSON(http.StatusCreated, dto.ToCustomerOrderResponse(order))
}

// getCustomerOrder godoc
// @Summary Get a customer order by ID
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.CustomerOrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Router /orders/{id} [get]
func (h *orderHandler) getCustomerOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.customerOrderService.GetCustomerOrderWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerOrderResponse(order))
}

// listCustomerOrders godoc
// @Summary List customer orders
// @Tags orders
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   party query string false "Client ID filter"
// @Param   search query string false "Matches the number or the client name"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListCustomerOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listCustomerOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCustomerOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, total, err := h.customerOrderService.ListCustomerOrders(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}

	responses := make([]dto.CustomerOrderResponse, len(orders))
	for i := range orders {
		responses[i] = dto.ToCustomerOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, dto.ListCustomerOrdersResponse{
		Orders: responses,
		Total:  total,
		Page:   params.Page,
		Limit:  params.Limit,
	})
}

// updateCustomerOrder godoc
// @Summary Update a draft customer order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   order body dto.UpdateCustomerOrderRequest true "Fields to update"
// @Success 200 {object} dto.CustomerOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Router /orders/{id} [put]
func (h *orderHandler) updateCustomerOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCustomerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomerOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.customerOrderService.UpdateCustomerOrder(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerOrderResponse(order))
}

// transitionCustomerOrder godoc
// @Summary Change a customer order's status
// @Description Moves the order through its lifecycle (draft, confirmed, processing, shipped, completed, cancelled)
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   transition body dto.TransitionRequest true "Target status"
// @Success 200 {object} dto.CustomerOrderResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Router /orders/{id}/status [post]
func (h *orderHandler) transitionCustomerOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionCustomerOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.customerOrderService.TransitionCustomerOrder(c.Request.Context(), c.Param("id"), domain.CustomerOrderStatus(req.Status), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}

	logger.Info("Customer order status changed", slog.String("order_id", order.OrderID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToCustomerOrderResponse(order))
}

// addCustomerOrderItem godoc
// @Summary Add a line item to a draft customer order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   item body dto.AddItemRequest true "Line item"
// @Success 200 {object} dto.CustomerOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Router /orders/{id}/items [post]
func (h *orderHandler) addCustomerOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCustomerOrderItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.customerOrderService.AddCustomerOrderItem(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerOrderResponse(order))
}

// updateCustomerOrderItem godoc
// @Summary Update a line item on a draft customer order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.CustomerOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order or item not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /orders/{id}/items/{itemID} [put]
func (h *orderHandler) updateCustomerOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomerOrderItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.customerOrderService.UpdateCustomerOrderItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerOrderResponse(order))
}

// removeCustomerOrderItem godoc
// @Summary Remove a line item from a draft customer order
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.CustomerOrderResponse
// @Failure 404 {object} map[string]string "Order or item not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to remove item"
// @Router /orders/{id}/items/{itemID} [delete]
func (h *orderHandler) removeCustomerOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.customerOrderService.RemoveCustomerOrderItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerOrderResponse(order))
}

// createSupplierOrder godoc
// @Summary Create a new supplier order
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateSupplierOrderRequest true "Order details"
// @Success 201 {object} dto.SupplierOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Router /purchase-orders [post]
func (h *orderHandler) createSupplierOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplierOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.supplierOrderService.CreateSupplierOrder(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}

	logger.Info("Supplier order created", slog.String("order_id", order.OrderID), slog.String("number", order.Number))
	c.JSON(http.StatusCreated, dto.ToSupplierOrderResponse(order))
}

// getSupplierOrder godoc
// @Summary Get a supplier order by ID
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.SupplierOrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Router /purchase-orders/{id} [get]
func (h *orderHandler) getSupplierOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.supplierOrderService.GetSupplierOrderWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierOrderResponse(order))
}

// listSupplierOrders godoc
// @Summary List supplier orders
// @Tags purchase-orders
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   party query string false "Supplier ID filter"
// @Param   search query string false "Matches the number or the supplier name"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListSupplierOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /purchase-orders [get]
func (h *orderHandler) listSupplierOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSupplierOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, total, err := h.supplierOrderService.ListSupplierOrders(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}

	responses := make([]dto.SupplierOrderResponse, len(orders))
	for i := range orders {
		responses[i] = dto.ToSupplierOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, dto.ListSupplierOrdersResponse{
		Orders: responses,
		Total:  total,
		Page:   params.Page,
		Limit:  params.Limit,
	})
}

// updateSupplierOrder godoc
// @Summary Update a draft supplier order
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   order body dto.UpdateSupplierOrderRequest true "Fields to update"
// @Success 200 {object} dto.SupplierOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Router /purchase-orders/{id} [put]
func (h *orderHandler) updateSupplierOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSupplierOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplierOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.supplierOrderService.UpdateSupplierOrder(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierOrderResponse(order))
}

// transitionSupplierOrder godoc
// @Summary Change a supplier order's status
// @Description Moves the order through its lifecycle (draft, ordered, received, cancelled)
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   transition body dto.TransitionRequest true "Target status"
// @Success 200 {object} dto.SupplierOrderResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Router /purchase-orders/{id}/status [post]
func (h *orderHandler) transitionSupplierOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionSupplierOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.supplierOrderService.TransitionSupplierOrder(c.Request.Context(), c.Param("id"), domain.SupplierOrderStatus(req.Status), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}

	logger.Info("Supplier order status changed", slog.String("order_id", order.OrderID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToSupplierOrderResponse(order))
}

// addSupplierOrderItem godoc
// @Summary Add a line item to a draft supplier order
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   item body dto.AddItemRequest true "Line item"
// @Success 200 {object} dto.SupplierOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Router /purchase-orders/{id}/items [post]
func (h *orderHandler) addSupplierOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddSupplierOrderItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.supplierOrderService.AddSupplierOrderItem(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierOrderResponse(order))
}

// updateSupplierOrderItem godoc
// @Summary Update a line item on a draft supplier order
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.SupplierOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order or item not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /purchase-orders/{id}/items/{itemID} [put]
func (h *orderHandler) updateSupplierOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplierOrderItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.supplierOrderService.UpdateSupplierOrderItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), req, actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierOrderResponse(order))
}

// removeSupplierOrderItem godoc
// @Summary Remove a line item from a draft supplier order
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.SupplierOrderResponse
// @Failure 404 {object} map[string]string "Order or item not found"
// @Failure 409 {object} map[string]string "Order is not editable"
// @Failure 500 {object} map[string]string "Failed to remove item"
// @Router /purchase-orders/{id}/items/{itemID} [delete]
func (h *orderHandler) removeSupplierOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.supplierOrderService.RemoveSupplierOrderItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), actorID(c))
	if err != nil {
		respondServiceError(c, logger, err, "order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierOrderResponse(order))
}
