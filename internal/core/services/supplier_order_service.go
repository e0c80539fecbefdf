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

type supplierOrderService struct {
	orderRepo portsrepo.SupplierOrderRepositoryFacade
}

// NewSupplierOrderService builds the purchase order lifecycle service.
func NewSupplierOrderService(repo portsrepo.SupplierOrderRepositoryFacade) *supplierOrderService {
	return &supplierOrderService{orderRepo: repo}
}

func (s *supplierOrderService) CreateSupplierOrder(ctx context.Context, req dto.CreateSupplierOrderRequest, userID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	orderDate, err := dto.ParseDate(req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order date: %s", apperrors.ErrValidation, req.OrderDate)
	}
	expected, err := dto.ParseOptionalDate(derefOr(req.ExpectedDelivery, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expected delivery date: %s", apperrors.ErrValidation, *req.ExpectedDelivery)
	}

	now := time.Now()
	order := domain.SupplierOrder{
		OrderID:          uuid.NewString(),
		SupplierID:       req.SupplierID,
		OrderDate:        orderDate,
		ExpectedDelivery: expected,
		Status:           domain.SupplierOrderStatusDraft,
		Description:      req.Description,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	order.DocumentTotals = domain.SumLineItems(nil)

	created, err := createWithNumberRetry(ctx, order, s.orderRepo.CreateSupplierOrder)
	if err != nil {
		logger.Error("Failed to create supplier order", slog.String("error", err.Error()), slog.String("supplier_id", req.SupplierID))
		return nil, err
	}

	logger.Info("Supplier order created", slog.String("order_id", created.OrderID), slog.String("number", created.Number))
	return created, nil
}

func (s *supplierOrderService) GetSupplierOrderByID(ctx context.Context, orderID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.orderRepo.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find supplier order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *supplierOrderService) GetSupplierOrderWithItems(ctx context.Context, orderID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.orderRepo.FindSupplierOrderWithItems(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find supplier order with items", slog.String("error", err.Error()), slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *supplierOrderService) ListSupplierOrders(ctx context.Context, params dto.ListOrdersParams) ([]domain.SupplierOrder, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()
	if params.Status != "" && !domain.SupplierOrderStatus(params.Status).IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, params.Status)
	}

	filter := portsrepo.ListOrdersFilter{
		Status:  params.Status,
		PartyID: params.PartyID,
		Search:  params.Search,
		Page:    params.Page,
		Limit:   params.Limit,
	}
	orders, total, err := s.orderRepo.ListSupplierOrders(ctx, filter)
	if err != nil {
		logger.Error("Failed to list supplier orders", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list supplier orders: %w", err)
	}
	if orders == nil {
		orders = []domain.SupplierOrder{}
	}
	return orders, total, nil
}

func (s *supplierOrderService) UpdateSupplierOrder(ctx context.Context, orderID string, req dto.UpdateSupplierOrderRequest, userID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.SupplierOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, only drafts are editable", apperrors.ErrConflict, order.Number, order.Status)
	}

	if req.OrderDate != nil {
		d, err := dto.ParseDate(*req.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid order date: %s", apperrors.ErrValidation, *req.OrderDate)
		}
		order.OrderDate = d
	}
	if req.ExpectedDelivery != nil {
		d, err := dto.ParseOptionalDate(*req.ExpectedDelivery)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expected delivery date: %s", apperrors.ErrValidation, *req.ExpectedDelivery)
		}
		order.ExpectedDelivery = d
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateSupplierOrder(ctx, *order); err != nil {
		logger.Error("Failed to update supplier order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}

func (s *supplierOrderService) TransitionSupplierOrder(ctx context.Context, orderID string, target domain.SupplierOrderStatus, userID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, target)
	}
	order, err := s.orderRepo.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: order %s cannot move from %s to %s", apperrors.ErrInvalidTransition, order.Number, order.Status, target)
	}

	order.Status = target
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateSupplierOrder(ctx, *order); err != nil {
		logger.Error("Failed to transition supplier order", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("target", string(target)))
		return nil, err
	}
	logger.Info("Supplier order status changed", slog.String("order_id", orderID), slog.String("status", string(target)))
	return order, nil
}

func (s *supplierOrderService) AddSupplierOrderItem(ctx context.Context, orderID string, req dto.AddItemRequest, userID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.SupplierOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, items can only change on a draft", apperrors.ErrConflict, order.Number, order.Status)
	}

	item, err := domain.NewLineItem(uuid.NewString(), orderID, req.Description, req.Quantity, req.UnitPrice, req.TaxRate, req.ProductID, time.Now())
	if err != nil {
		return nil, err
	}
	updated, err := s.orderRepo.AddSupplierOrderItem(ctx, item)
	if err != nil {
		logger.Error("Failed to add supplier order item", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, err
	}
	return updated, nil
}

func (s *supplierOrderService) UpdateSupplierOrderItem(ctx context.Context, orderID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.SupplierOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, items can only change on a draft", apperrors.ErrConflict, order.Number, order.Status)
	}

	items, err := s.orderRepo.FindSupplierOrderItems(ctx, orderID)
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
	updated, err := s.orderRepo.UpdateSupplierOrderItem(ctx, *item)
	if err != nil {
		logger.Error("Failed to update supplier order item", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("item_id", itemID))
		return nil, err
	}
	return updated, nil
}

func (s *supplierOrderService) RemoveSupplierOrderItem(ctx context.Context, orderID string, itemID string, userID string) (*domain.SupplierOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.SupplierOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, items can only change on a draft", apperrors.ErrConflict, order.Number, order.Status)
	}

	updated, err := s.orderRepo.DeleteSupplierOrderItem(ctx, orderID, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete supplier order item", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return updated, nil
}
