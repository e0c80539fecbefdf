package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewPaymentService builds the payment ledger service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *paymentService {
	return &paymentService{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

func (s *paymentService) ListPaymentsForInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

// RecordPayment appends a ledger entry. The repository reconciles the
// owning invoice in the same transaction: paid amount becomes the ledger
// sum and the status is re-derived from it.
func (s *paymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, *domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	switch invoice.Status {
	case domain.InvoiceStatusDraft:
		return nil, nil, fmt.Errorf("%w: invoice %s is a draft, send it before recording payments", apperrors.ErrConflict, invoice.Number)
	case domain.InvoiceStatusCancelled:
		return nil, nil, fmt.Errorf("%w: invoice %s is cancelled", apperrors.ErrConflict, invoice.Number)
	}

	paymentDate, err := dto.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid payment date: %s", apperrors.ErrValidation, req.PaymentDate)
	}
	payment, err := domain.NewPayment(uuid.NewString(), invoiceID, req.Amount, paymentDate, domain.PaymentMethod(req.Method), req.Reference, req.Notes, userID, time.Now())
	if err != nil {
		return nil, nil, err
	}

	reconciled, err := s.paymentRepo.SavePaymentAndReconcile(ctx, payment)
	if err != nil {
		logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("invoice_id", invoiceID),
		slog.String("amount", payment.Amount.String()),
		slog.String("invoice_status", string(reconciled.Status)))
	return &payment, reconciled, nil
}

// DeletePayment removes a ledger entry and re-derives the invoice's paid
// amount and status from the remaining payments.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID string, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reconciled, err := s.paymentRepo.DeletePaymentAndReconcile(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return nil, err
	}

	logger.Info("Payment deleted",
		slog.String("payment_id", paymentID),
		slog.String("invoice_id", reconciled.InvoiceID),
		slog.String("invoice_status", string(reconciled.Status)))
	return reconciled, nil
}
