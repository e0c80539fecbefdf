package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to create a draft invoice.
// The document number is allocated server-side and must not be supplied.
type CreateInvoiceRequest struct {
	ClientID    string `json:"clientID" binding:"required"`
	InvoiceDate string `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	DueDate     string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

// UpdateInvoiceRequest defines the header fields that may be edited.
type UpdateInvoiceRequest struct {
	InvoiceDate *string `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}

// TransitionRequest asks for an explicit status change on a document.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID   string          `json:"invoiceID"`
	Number      string          `json:"number"`
	ClientID    string          `json:"clientID"`
	InvoiceDate string          `json:"invoiceDate"`
	DueDate     string          `json:"dueDate"`
	Status      string          `json:"status"`
	Overdue     bool            `json:"overdue"` // query-time predicate, independent of stored status
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	SentAt      *time.Time      `json:"sentAt,omitempty"`
	Items       []LineItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice, today time.Time) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		Number:      inv.Number,
		ClientID:    inv.ClientID,
		InvoiceDate: FormatDate(inv.InvoiceDate),
		DueDate:     FormatDate(inv.DueDate),
		Status:      string(inv.Status),
		Overdue:     inv.IsOverdue(today),
		Description: inv.Description,
		Notes:       inv.Notes,
		Subtotal:    inv.Subtotal,
		TaxAmount:   inv.TaxAmount,
		Total:       inv.Total,
		PaidAmount:  inv.PaidAmount,
		SentAt:      inv.SentAt,
		CreatedAt:   inv.CreatedAt,
		CreatedBy:   inv.CreatedBy,
	}
	if len(inv.Items) > 0 {
		resp.Items = ToLineItemResponses(inv.Items)
	}
	return resp
}

// ListInvoicesParams holds the query parameters of an invoice listing.
type ListInvoicesParams struct {
	ListParams
	Status   string `form:"status"`
	ClientID string `form:"client"`
	Search   string `form:"search"`
	Overdue  bool   `form:"overdue"`
}

// ListInvoicesResponse is the paginated invoice listing envelope.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
