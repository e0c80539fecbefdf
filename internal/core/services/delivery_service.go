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

type deliveryService struct {
	deliveryRepo portsrepo.DeliveryRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
}

// NewDeliveryService builds the delivery note service. The invoice
// repository validates the optional invoice link on creation.
func NewDeliveryService(deliveryRepo portsrepo.DeliveryRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *deliveryService {
	return &deliveryService{deliveryRepo: deliveryRepo, invoiceRepo: invoiceRepo}
}

func (s *deliveryService) CreateDeliveryNote(ctx context.Context, req dto.CreateDeliveryNoteRequest, userID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deliveryDate, err := dto.ParseDate(req.DeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid delivery date: %s", apperrors.ErrValidation, req.DeliveryDate)
	}
	expected, err := dto.ParseOptionalDate(derefOr(req.ExpectedDelivery, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expected delivery date: %s", apperrors.ErrValidation, *req.ExpectedDelivery)
	}

	if req.InvoiceID != nil {
		if _, err := s.invoiceRepo.FindInvoiceByID(ctx, *req.InvoiceID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: linked invoice %s", apperrors.ErrNotFound, *req.InvoiceID)
			}
			return nil, err
		}
	}

	now := time.Now()
	delivery := domain.DeliveryNote{
		DeliveryID:       uuid.NewString(),
		ClientID:         req.ClientID,
		InvoiceID:        req.InvoiceID,
		DeliveryDate:     deliveryDate,
		ExpectedDelivery: expected,
		Description:      req.Description,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	created, err := createWithNumberRetry(ctx, delivery, s.deliveryRepo.CreateDelivery)
	if err != nil {
		logger.Error("Failed to create delivery note", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		return nil, err
	}

	logger.Info("Delivery note created", slog.String("delivery_id", created.DeliveryID), slog.String("number", created.Number))
	return created, nil
}

func (s *deliveryService) GetDeliveryNoteByID(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	delivery, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find delivery note", slog.String("error", err.Error()), slog.String("delivery_id", deliveryID))
		}
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) GetDeliveryNoteWithItems(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	delivery, err := s.deliveryRepo.FindDeliveryWithItems(ctx, deliveryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find delivery note with items", slog.String("error", err.Error()), slog.String("delivery_id", deliveryID))
		}
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) ListDeliveryNotes(ctx context.Context, params dto.ListDeliveryNotesParams) ([]domain.DeliveryNote, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()

	filter := portsrepo.ListDeliveriesFilter{
		ClientID:  params.ClientID,
		InvoiceID: params.InvoiceID,
		Search:    params.Search,
		Page:      params.Page,
		Limit:     params.Limit,
	}
	deliveries, total, err := s.deliveryRepo.ListDeliveries(ctx, filter)
	if err != nil {
		logger.Error("Failed to list delivery notes", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list delivery notes: %w", err)
	}
	if deliveries == nil {
		deliveries = []domain.DeliveryNote{}
	}
	return deliveries, total, nil
}

func (s *deliveryService) UpdateDeliveryNote(ctx context.Context, deliveryID string, req dto.UpdateDeliveryNoteRequest, userID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	delivery, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if req.DeliveryDate != nil {
		d, err := dto.ParseDate(*req.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid delivery date: %s", apperrors.ErrValidation, *req.DeliveryDate)
		}
		delivery.DeliveryDate = d
	}
	if req.ExpectedDelivery != nil {
		d, err := dto.ParseOptionalDate(*req.ExpectedDelivery)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expected delivery date: %s", apperrors.ErrValidation, *req.ExpectedDelivery)
		}
		delivery.ExpectedDelivery = d
	}
	if req.ActualDelivery != nil {
		d, err := dto.ParseOptionalDate(*req.ActualDelivery)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid actual delivery date: %s", apperrors.ErrValidation, *req.ActualDelivery)
		}
		delivery.ActualDelivery = d
	}
	if req.Description != nil {
		delivery.Description = *req.Description
	}
	if req.Notes != nil {
		delivery.Notes = *req.Notes
	}
	delivery.LastUpdatedAt = time.Now()
	delivery.LastUpdatedBy = userID

	if err := s.deliveryRepo.UpdateDelivery(ctx, *delivery); err != nil {
		logger.Error("Failed to update delivery note", slog.String("error", err.Error()), slog.String("delivery_id", deliveryID))
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) AddDeliveryItem(ctx context.Context, deliveryID string, req dto.AddDeliveryItemRequest, userID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID); err != nil {
		return nil, err
	}
	if req.QuantityOrdered.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: ordered quantity must be greater than zero", apperrors.ErrValidation)
	}
	if req.QuantityDelivered.IsNegative() || req.QuantityDelivered.GreaterThan(req.QuantityOrdered) {
		return nil, fmt.Errorf("%w: delivered quantity must be between zero and the ordered quantity", apperrors.ErrValidation)
	}

	item := domain.DeliveryItem{
		ItemID:            uuid.NewString(),
		DeliveryID:        deliveryID,
		ProductID:         req.ProductID,
		Description:       req.Description,
		QuantityOrdered:   req.QuantityOrdered,
		QuantityDelivered: req.QuantityDelivered,
		UnitPrice:         req.UnitPrice,
	}
	if err := s.deliveryRepo.AddDeliveryItem(ctx, item); err != nil {
		logger.Error("Failed to add delivery item", slog.String("error", err.Error()), slog.String("delivery_id", deliveryID))
		return nil, err
	}
	return s.deliveryRepo.FindDeliveryWithItems(ctx, deliveryID)
}

func (s *deliveryService) UpdateDeliveryItem(ctx context.Context, deliveryID string, itemID string, req dto.UpdateDeliveryItemRequest, userID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	delivery, err := s.deliveryRepo.FindDeliveryWithItems(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	var item *domain.DeliveryItem
	for i := range delivery.Items {
		if delivery.Items[i].ItemID == itemID {
			item = &delivery.Items[i]
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("%w: delivery item %s", apperrors.ErrNotFound, itemID)
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.QuantityOrdered != nil {
		item.QuantityOrdered = *req.QuantityOrdered
	}
	if req.QuantityDelivered != nil {
		item.QuantityDelivered = *req.QuantityDelivered
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}

	if item.QuantityOrdered.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: ordered quantity must be greater than zero", apperrors.ErrValidation)
	}
	if item.QuantityDelivered.IsNegative() || item.QuantityDelivered.GreaterThan(item.QuantityOrdered) {
		return nil, fmt.Errorf("%w: delivered quantity must be between zero and the ordered quantity", apperrors.ErrValidation)
	}

	if err := s.deliveryRepo.UpdateDeliveryItem(ctx, *item); err != nil {
		logger.Error("Failed to update delivery item", slog.String("error", err.Error()), slog.String("delivery_id", deliveryID), slog.String("item_id", itemID))
		return nil, err
	}
	return s.deliveryRepo.FindDeliveryWithItems(ctx, deliveryID)
}

func (s *deliveryService) RemoveDeliveryItem(ctx context.Context, deliveryID string, itemID string, userID string) (*domain.DeliveryNote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.deliveryRepo.DeleteDeliveryItem(ctx, deliveryID, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete delivery item", slog.String("error", err.Error()), slog.String("delivery_id", deliveryID), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return s.deliveryRepo.FindDeliveryWithItems(ctx, deliveryID)
}
