package services

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// PaymentSvcFacade defines the operations of the invoice payment ledger.
type PaymentSvcFacade interface {
	// ListPaymentsForInvoice retrieves all payments recorded against an invoice.
	ListPaymentsForInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// RecordPayment appends a ledger entry and returns it together with the
	// reconciled invoice.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, *domain.Invoice, error)

	// DeletePayment removes a ledger entry and returns the reconciled invoice.
	DeletePayment(ctx context.Context, paymentID string, userID string) (*domain.Invoice, error)
}
