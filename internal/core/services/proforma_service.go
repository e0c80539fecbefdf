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

// defaultDueDays is time given to pay an invoice converted from a proforma
// when the caller does not state a due date.
const defaultDueDays = 30

type proformaService struct {
	proformaRepo portsrepo.ProformaRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
}

// NewProformaService builds the proforma lifecycle service. The invoice
// repository backs the conversion of accepted proformas into invoices.
func NewProformaService(proformaRepo portsrepo.ProformaRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *proformaService {
	return &proformaService{proformaRepo: proformaRepo, invoiceRepo: invoiceRepo}
}

func (s *proformaService) CreateProforma(ctx context.Context, req dto.CreateProformaRequest, userID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	issueDate, err := dto.ParseDate(req.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue date: %s", apperrors.ErrValidation, req.IssueDate)
	}
	expiryDate, err := dto.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expiry date: %s", apperrors.ErrValidation, req.ExpiryDate)
	}
	if expiryDate.Before(issueDate) {
		return nil, fmt.Errorf("%w: expiry date precedes issue date", apperrors.ErrValidation)
	}

	now := time.Now()
	proforma := domain.ProformaInvoice{
		ProformaID:  uuid.NewString(),
		ClientID:    req.ClientID,
		IssueDate:   issueDate,
		ExpiryDate:  expiryDate,
		Status:      domain.ProformaStatusDraft,
		Description: req.Description,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	proforma.DocumentTotals = domain.SumLineItems(nil)

	created, err := createWithNumberRetry(ctx, proforma, s.proformaRepo.CreateProforma)
	if err != nil {
		logger.Error("Failed to create proforma", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		return nil, err
	}

	logger.Info("Proforma created", slog.String("proforma_id", created.ProformaID), slog.String("number", created.Number))
	return created, nil
}

func (s *proformaService) GetProformaByID(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	proforma, err := s.proformaRepo.FindProformaByID(ctx, proformaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find proforma", slog.String("error", err.Error()), slog.String("proforma_id", proformaID))
		}
		return nil, err
	}
	return proforma, nil
}

func (s *proformaService) GetProformaWithItems(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	proforma, err := s.proformaRepo.FindProformaWithItems(ctx, proformaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find proforma with items", slog.String("error", err.Error()), slog.String("proforma_id", proformaID))
		}
		return nil, err
	}
	return proforma, nil
}

func (s *proformaService) ListProformas(ctx context.Context, params dto.ListProformasParams) ([]domain.ProformaInvoice, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()
	if params.Status != "" && !domain.ProformaStatus(params.Status).IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown proforma status %q", apperrors.ErrValidation, params.Status)
	}

	filter := portsrepo.ListProformasFilter{
		Status:   params.Status,
		ClientID: params.ClientID,
		Search:   params.Search,
		Page:     params.Page,
		Limit:    params.Limit,
	}
	proformas, total, err := s.proformaRepo.ListProformas(ctx, filter)
	if err != nil {
		logger.Error("Failed to list proformas", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list proformas: %w", err)
	}
	if proformas == nil {
		proformas = []domain.ProformaInvoice{}
	}
	return proformas, total, nil
}

func (s *proformaService) UpdateProforma(ctx context.Context, proformaID string, req dto.UpdateProformaRequest, userID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proforma, err := s.proformaRepo.FindProformaByID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	if proforma.Status != domain.ProformaStatusDraft {
		return nil, fmt.Errorf("%w: proforma %s is %s, only drafts are editable", apperrors.ErrConflict, proforma.Number, proforma.Status)
	}

	if req.IssueDate != nil {
		d, err := dto.ParseDate(*req.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid issue date: %s", apperrors.ErrValidation, *req.IssueDate)
		}
		proforma.IssueDate = d
	}
	if req.ExpiryDate != nil {
		d, err := dto.ParseDate(*req.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expiry date: %s", apperrors.ErrValidation, *req.ExpiryDate)
		}
		proforma.ExpiryDate = d
	}
	if proforma.ExpiryDate.Before(proforma.IssueDate) {
		return nil, fmt.Errorf("%w: expiry date precedes issue date", apperrors.ErrValidation)
	}
	if req.Description != nil {
		proforma.Description = *req.Description
	}
	if req.Notes != nil {
		proforma.Notes = *req.Notes
	}
	proforma.LastUpdatedAt = time.Now()
	proforma.LastUpdatedBy = userID

	if err := s.proformaRepo.UpdateProforma(ctx, *proforma); err != nil {
		logger.Error("Failed to update proforma", slog.String("error", err.Error()), slog.String("proforma_id", proformaID))
		return nil, err
	}
	return proforma, nil
}

func (s *proformaService) TransitionProforma(ctx context.Context, proformaID string, target domain.ProformaStatus, userID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown proforma status %q", apperrors.ErrValidation, target)
	}
	proforma, err := s.proformaRepo.FindProformaByID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	if !proforma.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: proforma %s cannot move from %s to %s", apperrors.ErrInvalidTransition, proforma.Number, proforma.Status, target)
	}

	proforma.Status = target
	proforma.LastUpdatedAt = time.Now()
	proforma.LastUpdatedBy = userID

	if err := s.proformaRepo.UpdateProforma(ctx, *proforma); err != nil {
		logger.Error("Failed to transition proforma", slog.String("error", err.Error()), slog.String("proforma_id", proformaID), slog.String("target", string(target)))
		return nil, err
	}
	logger.Info("Proforma status changed", slog.String("proforma_id", proformaID), slog.String("status", string(target)))
	return proforma, nil
}

// ConvertToInvoice copies an accepted proforma into a fresh draft invoice.
// The invoice gets its own number and its own copies of the line items;
// the proforma is left untouched so the audit trail keeps both documents.
func (s *proformaService) ConvertToInvoice(ctx context.Context, proformaID string, req dto.ConvertProformaRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proforma, err := s.proformaRepo.FindProformaWithItems(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	if proforma.Status != domain.ProformaStatusAccepted {
		return nil, fmt.Errorf("%w: proforma %s is %s, only accepted proformas convert to invoices", apperrors.ErrConflict, proforma.Number, proforma.Status)
	}

	now := time.Now()
	invoiceDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.InvoiceDate != nil {
		d, err := dto.ParseDate(*req.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid invoice date: %s", apperrors.ErrValidation, *req.InvoiceDate)
		}
		invoiceDate = d
	}
	dueDate := invoiceDate.AddDate(0, 0, defaultDueDays)
	if req.DueDate != nil {
		d, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date: %s", apperrors.ErrValidation, *req.DueDate)
		}
		dueDate = d
	}
	if dueDate.Before(invoiceDate) {
		return nil, fmt.Errorf("%w: due date precedes invoice date", apperrors.ErrValidation)
	}

	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		ClientID:    proforma.ClientID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Status:      domain.InvoiceStatusDraft,
		Description: proforma.Description,
		Notes:       proforma.Notes,
		PaidAmount:  decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for _, src := range proforma.Items {
		item, err := domain.NewLineItem(uuid.NewString(), invoice.InvoiceID, src.Description, src.Quantity, src.UnitPrice, src.TaxRate, src.ProductID, now)
		if err != nil {
			return nil, err
		}
		invoice.Items = append(invoice.Items, item)
	}
	invoice.DocumentTotals = domain.SumLineItems(invoice.Items)

	created, err := createWithNumberRetry(ctx, invoice, s.invoiceRepo.CreateInvoice)
	if err != nil {
		logger.Error("Failed to convert proforma to invoice", slog.String("error", err.Error()), slog.String("proforma_id", proformaID))
		return nil, err
	}

	logger.Info("Proforma converted to invoice", slog.String("proforma_id", proformaID), slog.String("invoice_id", created.InvoiceID), slog.String("number", created.Number))
	return created, nil
}

func (s *proformaService) AddProformaItem(ctx context.Context, proformaID string, req dto.AddItemRequest, userID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proforma, err := s.proformaRepo.FindProformaByID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	if proforma.Status != domain.ProformaStatusDraft {
		return nil, fmt.Errorf("%w: proforma %s is %s, items can only change on a draft", apperrors.ErrConflict, proforma.Number, proforma.Status)
	}

	item, err := domain.NewLineItem(uuid.NewString(), proformaID, req.Description, req.Quantity, req.UnitPrice, req.TaxRate, req.ProductID, time.Now())
	if err != nil {
		return nil, err
	}
	updated, err := s.proformaRepo.AddProformaItem(ctx, item)
	if err != nil {
		logger.Error("Failed to add proforma item", slog.String("error", err.Error()), slog.String("proforma_id", proformaID))
		return nil, err
	}
	return updated, nil
}

func (s *proformaService) UpdateProformaItem(ctx context.Context, proformaID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proforma, err := s.proformaRepo.FindProformaByID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	if proforma.Status != domain.ProformaStatusDraft {
		return nil, fmt.Errorf("%w: proforma %s is %s, items can only change on a draft", apperrors.ErrConflict, proforma.Number, proforma.Status)
	}

	items, err := s.proformaRepo.FindProformaItems(ctx, proformaID)
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
	updated, err := s.proformaRepo.UpdateProformaItem(ctx, *item)
	if err != nil {
		logger.Error("Failed to update proforma item", slog.String("error", err.Error()), slog.String("proforma_id", proformaID), slog.String("item_id", itemID))
		return nil, err
	}
	return updated, nil
}

func (s *proformaService) RemoveProformaItem(ctx context.Context, proformaID string, itemID string, userID string) (*domain.ProformaInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proforma, err := s.proformaRepo.FindProformaByID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	if proforma.Status != domain.ProformaStatusDraft {
		return nil, fmt.Errorf("%w: proforma %s is %s, items can only change on a draft", apperrors.ErrConflict, proforma.Number, proforma.Status)
	}

	updated, err := s.proformaRepo.DeleteProformaItem(ctx, proformaID, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete proforma item", slog.String("error", err.Error()), slog.String("proforma_id", proformaID), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return updated, nil
}
