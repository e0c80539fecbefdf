package dto

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// AddItemRequest defines the data needed to add a line item to a document.
type AddItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	ProductID   *string         `json:"productID"` // Optional catalog reference
}

// UpdateItemRequest defines the data allowed for updating a line item.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateItemRequest struct {
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO.
func ToLineItemResponse(item *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		ItemID:      item.ItemID,
		ProductID:   item.ProductID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		TaxRate:     item.TaxRate,
		Subtotal:    item.Subtotal,
		Tax:         item.Tax,
		Total:       item.Total,
	}
}

// ToLineItemResponses converts a slice of domain.LineItem to DTOs.
func ToLineItemResponses(items []domain.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i := range items {
		responses[i] = ToLineItemResponse(&items[i])
	}
	return responses
}
