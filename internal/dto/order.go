package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateCustomerOrderRequest defines the data needed to create a draft customer order.
type CreateCustomerOrderRequest struct {
	ClientID     string  `json:"clientID" binding:"required"`
	OrderDate    string  `json:"orderDate" binding:"required,datetime=2006-01-02"`
	DeliveryDate *string `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	Description  string  `json:"description"`
	Notes        string  `json:"notes"`
}

// UpdateCustomerOrderRequest defines the header fields that may be edited.
type UpdateCustomerOrderRequest struct {
	OrderDate    *string `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	DeliveryDate *string `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	Description  *string `json:"description"`
	Notes        *string `json:"notes"`
}

// CustomerOrderResponse defines the data returned for a customer order.
type CustomerOrderResponse struct {
	OrderID      string             `json:"orderID"`
	Number       string             `json:"number"`
	ClientID     string             `json:"clientID"`
	OrderDate    string             `json:"orderDate"`
	DeliveryDate *string            `json:"deliveryDate,omitempty"`
	Status       string             `json:"status"`
	Description  string             `json:"description"`
	Notes        string             `json:"notes"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	TaxAmount    decimal.Decimal    `json:"taxAmount"`
	Total        decimal.Decimal    `json:"total"`
	Items        []LineItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// ToCustomerOrderResponse converts a domain.CustomerOrder to CustomerOrderResponse DTO.
func ToCustomerOrderResponse(o *domain.CustomerOrder) CustomerOrderResponse {
	resp := CustomerOrderResponse{
		OrderID:      o.OrderID,
		Number:       o.Number,
		ClientID:     o.ClientID,
		OrderDate:    FormatDate(o.OrderDate),
		DeliveryDate: FormatOptionalDate(o.DeliveryDate),
		Status:       string(o.Status),
		Description:  o.Description,
		Notes:        o.Notes,
		Subtotal:     o.Subtotal,
		TaxAmount:    o.TaxAmount,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
		CreatedBy:    o.CreatedBy,
	}
	if len(o.Items) > 0 {
		resp.Items = ToLineItemResponses(o.Items)
	}
	return resp
}

// CreateSupplierOrderRequest defines the data needed to create a draft supplier order.
type CreateSupplierOrderRequest struct {
	SupplierID       string  `json:"supplierID" binding:"required"`
	OrderDate        string  `json:"orderDate" binding:"required,datetime=2006-01-02"`
	ExpectedDelivery *string `json:"expectedDelivery" binding:"omitempty,datetime=2006-01-02"`
	Description      string  `json:"description"`
	Notes            string  `json:"notes"`
}

// UpdateSupplierOrderRequest defines the header fields that may be edited.
type UpdateSupplierOrderRequest struct {
	OrderDate        *string `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	ExpectedDelivery *string `json:"expectedDelivery" binding:"omitempty,datetime=2006-01-02"`
	Description      *string `json:"description"`
	Notes            *string `json:"notes"`
}

// SupplierOrderResponse defines the data returned for a supplier order.
type SupplierOrderResponse struct {
	OrderID          string             `json:"orderID"`
	Number           string             `json:"number"`
	SupplierID       string             `json:"supplierID"`
	OrderDate        string             `json:"orderDate"`
	ExpectedDelivery *string            `json:"expectedDelivery,omitempty"`
	Status           string             `json:"status"`
	Description      string             `json:"description"`
	Notes            string             `json:"notes"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	TaxAmount        decimal.Decimal    `json:"taxAmount"`
	Total            decimal.Decimal    `json:"total"`
	Items            []LineItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy"`
}

// ToSupplierOrderResponse converts a domain.SupplierOrder to SupplierOrderResponse DTO.
func ToSupplierOrderResponse(o *domain.SupplierOrder) SupplierOrderResponse {
	resp := SupplierOrderResponse{
		OrderID:          o.OrderID,
		Number:           o.Number,
		SupplierID:       o.SupplierID,
		OrderDate:        FormatDate(o.OrderDate),
		ExpectedDelivery: FormatOptionalDate(o.ExpectedDelivery),
		Status:           string(o.Status),
		Description:      o.Description,
		Notes:            o.Notes,
		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		Total:            o.Total,
		CreatedAt:        o.CreatedAt,
		CreatedBy:        o.CreatedBy,
	}
	if len(o.Items) > 0 {
		resp.Items = ToLineItemResponses(o.Items)
	}
	return resp
}

// ListOrdersParams holds the query parameters of an order listing.
type ListOrdersParams struct {
	ListParams
	Status  string `form:"status"`
	PartyID string `form:"party"`
	Search  string `form:"search"`
}

// ListCustomerOrdersResponse is the paginated customer order listing envelope.
type ListCustomerOrdersResponse struct {
	Orders []CustomerOrderResponse `json:"orders"`
	Total  int64                   `json:"total"`
	Page   int                     `json:"page"`
	Limit  int                     `json:"limit"`
}

// ListSupplierOrdersResponse is the paginated supplier order listing envelope.
type ListSupplierOrdersResponse struct {
	Orders []SupplierOrderResponse `json:"orders"`
	Total  int64                   `json:"total"`
	Page   int                     `json:"page"`
	Limit  int                     `json:"limit"`
}
