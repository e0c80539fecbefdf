package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateDeliveryNoteRequest defines the data needed to create a delivery note.
type CreateDeliveryNoteRequest struct {
	ClientID         string  `json:"clientID" binding:"required"`
	InvoiceID        *string `json:"invoiceID"`
	DeliveryDate     string  `json:"deliveryDate" binding:"required,datetime=2006-01-02"`
	ExpectedDelivery *string `json:"expectedDelivery" binding:"omitempty,datetime=2006-01-02"`
	Description      string  `json:"description"`
	Notes            string  `json:"notes"`
}

// UpdateDeliveryNoteRequest defines the header fields that may be edited.
type UpdateDeliveryNoteRequest struct {
	DeliveryDate     *string `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	ExpectedDelivery *string `json:"expectedDelivery" binding:"omitempty,datetime=2006-01-02"`
	ActualDelivery   *string `json:"actualDelivery" binding:"omitempty,datetime=2006-01-02"`
	Description      *string `json:"description"`
	Notes            *string `json:"notes"`
}

// AddDeliveryItemRequest defines a line on a delivery note.
type AddDeliveryItemRequest struct {
	ProductID         *string         `json:"productID"`
	Description       string          `json:"description" binding:"required"`
	QuantityOrdered   decimal.Decimal `json:"quantityOrdered" binding:"required"`
	QuantityDelivered decimal.Decimal `json:"quantityDelivered"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
}

// UpdateDeliveryItemRequest defines the editable fields of a delivery note line.
type UpdateDeliveryItemRequest struct {
	Description       *string          `json:"description"`
	QuantityOrdered   *decimal.Decimal `json:"quantityOrdered"`
	QuantityDelivered *decimal.Decimal `json:"quantityDelivered"`
	UnitPrice         *decimal.Decimal `json:"unitPrice"`
}

// DeliveryItemResponse defines the data returned for a delivery note line.
type DeliveryItemResponse struct {
	ItemID            string          `json:"itemID"`
	DeliveryID        string          `json:"deliveryID"`
	ProductID         *string         `json:"productID,omitempty"`
	Description       string          `json:"description"`
	QuantityOrdered   decimal.Decimal `json:"quantityOrdered"`
	QuantityDelivered decimal.Decimal `json:"quantityDelivered"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
}

// DeliveryNoteResponse defines the data returned for a delivery note.
type DeliveryNoteResponse struct {
	DeliveryID       string                 `json:"deliveryID"`
	Number           string                 `json:"number"`
	ClientID         string                 `json:"clientID"`
	InvoiceID        *string                `json:"invoiceID,omitempty"`
	DeliveryDate     string                 `json:"deliveryDate"`
	ExpectedDelivery *string                `json:"expectedDelivery,omitempty"`
	ActualDelivery   *string                `json:"actualDelivery,omitempty"`
	Description      string                 `json:"description"`
	Notes            string                 `json:"notes"`
	Items            []DeliveryItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	CreatedBy        string                 `json:"createdBy"`
}

// ToDeliveryItemResponse converts a domain.DeliveryItem to DeliveryItemResponse DTO.
func ToDeliveryItemResponse(it domain.DeliveryItem) DeliveryItemResponse {
	return DeliveryItemResponse{
		ItemID:            it.ItemID,
		DeliveryID:        it.DeliveryID,
		ProductID:         it.ProductID,
		Description:       it.Description,
		QuantityOrdered:   it.QuantityOrdered,
		QuantityDelivered: it.QuantityDelivered,
		UnitPrice:         it.UnitPrice,
	}
}

// ToDeliveryNoteResponse converts a domain.DeliveryNote to DeliveryNoteResponse DTO.
func ToDeliveryNoteResponse(d *domain.DeliveryNote) DeliveryNoteResponse {
	resp := DeliveryNoteResponse{
		DeliveryID:       d.DeliveryID,
		Number:           d.Number,
		ClientID:         d.ClientID,
		InvoiceID:        d.InvoiceID,
		DeliveryDate:     FormatDate(d.DeliveryDate),
		ExpectedDelivery: FormatOptionalDate(d.ExpectedDelivery),
		ActualDelivery:   FormatOptionalDate(d.ActualDelivery),
		Description:      d.Description,
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
	}
	if len(d.Items) > 0 {
		resp.Items = make([]DeliveryItemResponse, 0, len(d.Items))
		for _, it := range d.Items {
			resp.Items = append(resp.Items, ToDeliveryItemResponse(it))
		}
	}
	return resp
}

// ListDeliveryNotesParams holds the query parameters of a delivery note listing.
type ListDeliveryNotesParams struct {
	ListParams
	ClientID  string `form:"client"`
	InvoiceID string `form:"invoice"`
	Search    string `form:"search"`
}

// ListDeliveryNotesResponse is the paginated delivery note listing envelope.
type ListDeliveryNotesResponse struct {
	DeliveryNotes []DeliveryNoteResponse `json:"deliveryNotes"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}
