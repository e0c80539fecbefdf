package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService builds the invoice lifecycle service.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade) *invoiceService {
	return &invoiceService{invoiceRepo: repo}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoiceDate, err := dto.ParseDate(req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoice date: %s", apperrors.ErrValidation, req.InvoiceDate)
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date: %s", apperrors.ErrValidation, req.DueDate)
	}
	if dueDate.Before(invoiceDate) {
		return nil, fmt.Errorf("%w: due date precedes invoice date", apperrors.ErrValidation)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		ClientID:    req.ClientID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Status:      domain.InvoiceStatusDraft,
		Description: req.Description,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	invoice.DocumentTotals = domain.SumLineItems(nil)
	invoice.PaidAmount = decimal.Zero

	created, err := createWithNumberRetry(ctx, invoice, s.invoiceRepo.CreateInvoice)
	if err != nil {
		logger.Error("Failed to create invoice", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		return nil, err
	}

	logger.Info("Invoice created", slog.String("invoice_id", created.InvoiceID), slog.String("number", created.Number))
	return created, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoiceWithItems(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoice, err := s.invoiceRepo.FindInvoiceWithItems(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find invoice with items", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams, today time.Time) ([]domain.Invoice, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()
	if params.Status != "" && !domain.InvoiceStatus(params.Status).IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, params.Status)
	}

	filter := portsrepo.ListInvoicesFilter{
		Status:      params.Status,
		ClientID:    params.ClientID,
		Search:      params.Search,
		OverdueOnly: params.Overdue,
		Today:       today,
		Page:        params.Page,
		Limit:       params.Limit,
	}
	invoices, total, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, total, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: invoice %s is %s, only draft invoices are editable", apperrors.ErrConflict, invoice.Number, invoice.Status)
	}

	if req.InvoiceDate != nil {
		d, err := dto.ParseDate(*req.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid invoice date: %s", apperrors.ErrValidation, *req.InvoiceDate)
		}
		invoice.InvoiceDate = d
	}
	if req.DueDate != nil {
		d, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date: %s", apperrors.ErrValidation, *req.DueDate)
		}
		invoice.DueDate = d
	}
	if invoice.DueDate.Before(invoice.InvoiceDate) {
		return nil, fmt.Errorf("%w: due date precedes invoice date", apperrors.ErrValidation)
	}
	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		logger.Error("Failed to update invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) TransitionInvoice(ctx context.Context, invoiceID string, target domain.InvoiceStatus, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, target)
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: invoice %s cannot move from %s to %s", apperrors.ErrInvalidTransition, invoice.Number, invoice.Status, target)
	}

	now := time.Now()
	invoice.Status = target
	if target == domain.InvoiceStatusSent && invoice.SentAt == nil {
		invoice.SentAt = &now
	}
	if target == domain.InvoiceStatusPaid {
		invoice.MarkPaid()
	}
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		logger.Error("Failed to transition invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID), slog.String("target", string(target)))
		return nil, err
	}
	logger.Info("Invoice status changed", slog.String("invoice_id", invoiceID), slog.String("status", string(target)))
	return invoice, nil
}

func (s *invoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	return s.TransitionInvoice(ctx, invoiceID, domain.InvoiceStatusPaid, userID)
}

func (s *invoiceService) AddInvoiceItem(ctx context.Context, invoiceID string, req dto.AddItemRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: invoice %s is %s, items can only change on a draft", apperrors.ErrConflict, invoice.Number, invoice.Status)
	}

	item, err := domain.NewLineItem(uuid.NewString(), invoiceID, req.Description, req.Quantity, req.UnitPrice, req.TaxRate, req.ProductID, time.Now())
	if err != nil {
		return nil, err
	}
	updated, err := s.invoiceRepo.AddInvoiceItem(ctx, item)
	if err != nil {
		logger.Error("Failed to add invoice item", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return updated, nil
}

func (s *invoiceService) UpdateInvoiceItem(ctx context.Context, invoiceID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: invoice %s is %s, items can only change on a draft", apperrors.ErrConflict, invoice.Number, invoice.Status)
	}

	items, err := s.invoiceRepo.FindInvoiceItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	item, err := pickItem(items, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.Update(req.Quantity, req.UnitPrice, req.TaxRate, req.Description); err != nil {
		return nil, err
	}
	updated, err := s.invoiceRepo.UpdateInvoiceItem(ctx, *item)
	if err != nil {
		logger.Error("Failed to update invoice item", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID), slog.String("item_id", itemID))
		return nil, err
	}
	return updated, nil
}

func (s *invoiceService) RemoveInvoiceItem(ctx context.Context, invoiceID string, itemID string, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: invoice %s is %s, items can only change on a draft", apperrors.ErrConflict, invoice.Number, invoice.Status)
	}

	updated, err := s.invoiceRepo.DeleteInvoiceItem(ctx, invoiceID, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete invoice item", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return updated, nil
}
