package repositories

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListPaymentsFilter narrows a payment listing.
type ListPaymentsFilter struct {
	InvoiceID string
	Method    string
	Page      int
	Limit     int
}

// PaymentReader defines read operations for the payment ledger
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentsByInvoiceID retrieves all payments recorded against an
	// invoice, oldest first.
	FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	ListPayments(ctx context.Context, filter ListPaymentsFilter) ([]domain.Payment, int64, error)
}

// PaymentWriter defines write operations for the payment ledger. Both
// methods lock the owning invoice, replay the ledger sum and rewrite the
// invoice's paid amount and status within one transaction; they return the
// reconciled invoice.
type PaymentWriter interface {
	SavePaymentAndReconcile(ctx context.Context, payment domain.Payment) (*domain.Invoice, error)
	DeletePaymentAndReconcile(ctx context.Context, paymentID string) (*domain.Invoice, error)
}

// PaymentRepositoryFacade combines the payment ledger interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
