package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// RecordPaymentRequest defines the data needed to record a payment
// against an invoice.
type RecordPaymentRequest struct {
	PaymentDate string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
}

// PaymentResponse defines the data returned for a recorded payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	InvoiceID   string          `json:"invoiceID"`
	PaymentDate string          `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		InvoiceID:   p.InvoiceID,
		PaymentDate: FormatDate(p.PaymentDate),
		Amount:      p.Amount,
		Method:      string(p.Method),
		Reference:   p.Reference,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, ToPaymentResponse(&payments[i]))
	}
	return out
}

// RecordPaymentResponse returns the stored payment together with the
// reconciled invoice so callers see the new paid amount and status.
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}
