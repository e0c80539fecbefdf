package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the only document type whose status is also driven by the
// payment ledger. Number is immutable once assigned.
type Invoice struct {
	InvoiceID   string          `json:"invoiceID"`
	Number      string          `json:"number"`
	ClientID    string          `json:"clientID"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	DueDate     time.Time       `json:"dueDate"`
	Status      InvoiceStatus   `json:"status"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	SentAt      *time.Time      `json:"sentAt,omitempty"`
	DocumentTotals
	Items []LineItem `json:"items,omitempty"`
	AuditFields
}

// IsOverdue reports whether the invoice is past due. Overdue is a
// query-time predicate on top of the stored status: an invoice still in
// sent or partial whose due date has passed is overdue even if the stored
// status was never swept to overdue.
func (i *Invoice) IsOverdue(today time.Time) bool {
	if i.Status != InvoiceStatusSent && i.Status != InvoiceStatusPartial {
		return i.Status == InvoiceStatusOverdue
	}
	due := time.Date(i.DueDate.Year(), i.DueDate.Month(), i.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(now)
}

// ApplyPaidAmount sets the ledger-derived paid amount and, when payments
// exist, derives the payment status: paid when the invoice is covered,
// partial when partly covered. A draft or cancelled invoice keeps its
// status. When all payments are removed again, a payment-derived status
// reverts to sent.
func (i *Invoice) ApplyPaidAmount(paid decimal.Decimal) {
	i.PaidAmount = paid
	switch i.Status {
	case InvoiceStatusDraft, InvoiceStatusCancelled:
		return
	}
	switch {
	case paid.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(i.Total):
		i.Status = InvoiceStatusPaid
	case paid.GreaterThan(decimal.Zero):
		i.Status = InvoiceStatusPartial
	default:
		if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusPartial {
			i.Status = InvoiceStatusSent
		}
	}
}

// MarkPaid is the manual override: it forces status to paid and paid
// amount to the invoice total regardless of recorded payments. It can
// desynchronize PaidAmount from the ledger sum; the next recorded or
// deleted payment re-derives both.
func (i *Invoice) MarkPaid() {
	i.Status = InvoiceStatusPaid
	i.PaidAmount = i.Total
}
