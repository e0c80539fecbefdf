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

type customerOrderService struct {
	orderRepo portsrepo.CustomerOrderRepositoryFacade
}

// NewCustomerOrderService builds the customer order lifecycle service.
func NewCustomerOrderService(repo portsrepo.CustomerOrderRepositoryFacade) *customerOrderService {
	return &customerOrderService{orderRepo: repo}
}

func (s *customerOrderService) CreateCustomerOrder(ctx context.Context, req dto.CreateCustomerOrderRequest, userID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	orderDate, err := dto.ParseDate(req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order date: %s", apperrors.ErrValidation, req.OrderDate)
	}
	deliveryDate, err := dto.ParseOptionalDate(derefOr(req.DeliveryDate, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid delivery date: %s", apperrors.ErrValidation, *req.DeliveryDate)
	}

	now := time.Now()
	order := domain.CustomerOrder{
		OrderID:      uuid.NewString(),
		ClientID:     req.ClientID,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Status:       domain.CustomerOrderStatusDraft,
		Description:  req.Description,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	order.DocumentTotals = domain.SumLineItems(nil)

	created, err := createWithNumberRetry(ctx, order, s.orderRepo.CreateCustomerOrder)
	if err != nil {
		logger.Error("Failed to create customer order", slog.String("error", err.Error()), slog.String("client_id", req.ClientID))
		return nil, err
	}

	logger.Info("Customer order created", slog.String("order_id", created.OrderID), slog.String("number", created.Number))
	return created, nil
}

func (s *customerOrderService) GetCustomerOrderByID(ctx context.Context, orderID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.orderRepo.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *customerOrderService) GetCustomerOrderWithItems(ctx context.Context, orderID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.orderRepo.FindCustomerOrderWithItems(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer order with items", slog.String("error", err.Error()), slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *customerOrderService) ListCustomerOrders(ctx context.Context, params dto.ListOrdersParams) ([]domain.CustomerOrder, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()
	if params.Status != "" && !domain.CustomerOrderStatus(params.Status).IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, params.Status)
	}

	filter := portsrepo.ListOrdersFilter{
		Status:  params.Status,
		PartyID: params.PartyID,
		Search:  params.Search,
		Page:    params.Page,
		Limit:   params.Limit,
	}
	orders, total, err := s.orderRepo.ListCustomerOrders(ctx, filter)
	if err != nil {
		logger.Error("Failed to list customer orders", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list customer orders: %w", err)
	}
	if orders == nil {
		orders = []domain.CustomerOrder{}
	}
	return orders, total, nil
}

func (s *customerOrderService) UpdateCustomerOrder(ctx context.Context, orderID string, req dto.UpdateCustomerOrderRequest, userID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.CustomerOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, only drafts are editable", apperrors.ErrConflict, order.Number, order.Status)
	}

	if req.OrderDate != nil {
		d, err := dto.ParseDate(*req.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid order date: %s", apperrors.ErrValidation, *req.OrderDate)
		}
		order.OrderDate = d
	}
	if req.DeliveryDate != nil {
		d, err := dto.ParseOptionalDate(*req.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid delivery date: %s", apperrors.ErrValidation, *req.DeliveryDate)
		}
		order.DeliveryDate = d
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateCustomerOrder(ctx, *order); err != nil {
		logger.Error("Failed to update customer order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}

func (s *customerOrderService) TransitionCustomerOrder(ctx context.Context, orderID string, target domain.CustomerOrderStatus, userID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, target)
	}
	order, err := s.orderRepo.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: order %s cannot move from %s to %s", apperrors.ErrInvalidTransition, order.Number, order.Status, target)
	}

	order.Status = target
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateCustomerOrder(ctx, *order); err != nil {
		logger.Error("Failed to transition customer order", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("target", string(target)))
		return nil, err
	}
	logger.Info("Customer order status changed", slog.String("order_id", orderID), slog.String("status", string(target)))
	return order, nil
}

func (s *customerOrderService) AddCustomerOrderItem(ctx context.Context, orderID string, req dto.AddItemRequest, userID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.CustomerOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, items can only change on a draft", apperrors.ErrConflict, order.Number, order.Status)
	}

	item, err := domain.NewLineItem(uuid.NewString(), orderID, req.Description, req.Quantity, req.UnitPrice, req.TaxRate, req.ProductID, time.Now())
	if err != nil {
		return nil, err
	}
	updated, err := s.orderRepo.AddCustomerOrderItem(ctx, item)
	if err != nil {
		logger.Error("Failed to add customer order item", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, err
	}
	return updated, nil
}

func (s *customerOrderService) UpdateCustomerOrderItem(ctx context.Context, orderID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.CustomerOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, items can only change on a draft", apperrors.ErrConflict, order.Number, order.Status)
	}

	items, err := s.orderRepo.FindCustomerOrderItems(ctx, orderID)
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
	updated, err := s.orderRepo.UpdateCustomerOrderItem(ctx, *item)
	if err != nil {
		logger.Error("Failed to update customer order item", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("item_id", itemID))
		return nil, err
	}
	return updated, nil
}

func (s *customerOrderService) RemoveCustomerOrderItem(ctx context.Context, orderID string, itemID string, userID string) (*domain.CustomerOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.CustomerOrderStatusDraft {
		return nil, fmt.Errorf("%w: order %s is %s, items can only change on a draft", apperrors.ErrConflict, order.Number, order.Status)
	}

	updated, err := s.orderRepo.DeleteCustomerOrderItem(ctx, orderID, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete customer order item", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return updated, nil
}
