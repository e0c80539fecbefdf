package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateProformaRequest defines the data needed to create a draft proforma.
type CreateProformaRequest struct {
	ClientID    string `json:"clientID" binding:"required"`
	IssueDate   string `json:"issueDate" binding:"required,datetime=2006-01-02"`
	ExpiryDate  string `json:"expiryDate" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

// UpdateProformaRequest defines the header fields that may be edited.
type UpdateProformaRequest struct {
	IssueDate   *string `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate  *string `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}

// ConvertProformaRequest asks for an accepted proforma to be turned
// into an invoice. Dates default from the proforma when omitted.
type ConvertProformaRequest struct {
	InvoiceDate *string `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// ProformaResponse defines the data returned for a proforma invoice.
type ProformaResponse struct {
	ProformaID  string             `json:"proformaID"`
	Number      string             `json:"number"`
	ClientID    string             `json:"clientID"`
	IssueDate   string             `json:"issueDate"`
	ExpiryDate  string             `json:"expiryDate"`
	Status      string             `json:"status"`
	Description string             `json:"description"`
	Notes       string             `json:"notes"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	TaxAmount   decimal.Decimal    `json:"taxAmount"`
	Total       decimal.Decimal    `json:"total"`
	Items       []LineItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// ToProformaResponse converts a domain.ProformaInvoice to ProformaResponse DTO.
func ToProformaResponse(p *domain.ProformaInvoice) ProformaResponse {
	resp := ProformaResponse{
		ProformaID:  p.ProformaID,
		Number:      p.Number,
		ClientID:    p.ClientID,
		IssueDate:   FormatDate(p.IssueDate),
		ExpiryDate:  FormatDate(p.ExpiryDate),
		Status:      string(p.Status),
		Description: p.Description,
		Notes:       p.Notes,
		Subtotal:    p.Subtotal,
		TaxAmount:   p.TaxAmount,
		Total:       p.Total,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
	if len(p.Items) > 0 {
		resp.Items = ToLineItemResponses(p.Items)
	}
	return resp
}

// ListProformasParams holds the query parameters of a proforma listing.
type ListProformasParams struct {
	ListParams
	Status   string `form:"status"`
	ClientID string `form:"client"`
	Search   string `form:"search"`
}

// ListProformasResponse is the paginated proforma listing envelope.
type ListProformasResponse struct {
	Proformas []ProformaResponse `json:"proformas"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
