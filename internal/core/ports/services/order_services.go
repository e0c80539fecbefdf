package services

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// CustomerOrderSvcFacade defines the operations available on customer orders.
type CustomerOrderSvcFacade interface {
	// GetCustomerOrderByID retrieves an order header by its unique identifier.
	GetCustomerOrderByID(ctx context.Context, orderID string) (*domain.CustomerOrder, error)

	// GetCustomerOrderWithItems retrieves an order together with its line items.
	GetCustomerOrderWithItems(ctx context.Context, orderID string) (*domain.CustomerOrder, error)

	// ListCustomerOrders retrieves a paginated, filtered list of orders.
	ListCustomerOrders(ctx context.Context, params dto.ListOrdersParams) ([]domain.CustomerOrder, int64, error)

	// CreateCustomerOrder persists a new draft order with a freshly allocated number.
	CreateCustomerOrder(ctx context.Context, req dto.CreateCustomerOrderRequest, userID string) (*domain.CustomerOrder, error)

	// UpdateCustomerOrder updates the editable header fields of a draft order.
	UpdateCustomerOrder(ctx context.Context, orderID string, req dto.UpdateCustomerOrderRequest, userID string) (*domain.CustomerOrder, error)

	// TransitionCustomerOrder moves the order to the target status when allowed.
	TransitionCustomerOrder(ctx context.Context, orderID string, target domain.CustomerOrderStatus, userID string) (*domain.CustomerOrder, error)

	// AddCustomerOrderItem appends a line item and returns the reconciled order.
	AddCustomerOrderItem(ctx context.Context, orderID string, req dto.AddItemRequest, userID string) (*domain.CustomerOrder, error)

	// UpdateCustomerOrderItem edits a line item and returns the reconciled order.
	UpdateCustomerOrderItem(ctx context.Context, orderID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.CustomerOrder, error)

	// RemoveCustomerOrderItem deletes a line item and returns the reconciled order.
	RemoveCustomerOrderItem(ctx context.Context, orderID string, itemID string, userID string) (*domain.CustomerOrder, error)
}

// SupplierOrderSvcFacade defines the operations available on supplier orders.
type SupplierOrderSvcFacade interface {
	// GetSupplierOrderByID retrieves an order header by its unique identifier.
	GetSupplierOrderByID(ctx context.Context, orderID string) (*domain.SupplierOrder, error)

	// GetSupplierOrderWithItems retrieves an order together with its line items.
	GetSupplierOrderWithItems(ctx context.Context, orderID string) (*domain.SupplierOrder, error)

	// ListSupplierOrders retrieves a paginated, filtered list of orders.
	ListSupplierOrders(ctx context.Context, params dto.ListOrdersParams) ([]domain.SupplierOrder, int64, error)

	// CreateSupplierOrder persists a new draft order with a freshly allocated number.
	CreateSupplierOrder(ctx context.Context, req dto.CreateSupplierOrderRequest, userID string) (*domain.SupplierOrder, error)

	// UpdateSupplierOrder updates the editable header fields of a draft order.
	UpdateSupplierOrder(ctx context.Context, orderID string, req dto.UpdateSupplierOrderRequest, userID string) (*domain.SupplierOrder, error)

	// TransitionSupplierOrder moves the order to the target status when allowed.
	TransitionSupplierOrder(ctx context.Context, orderID string, target domain.SupplierOrderStatus, userID string) (*domain.SupplierOrder, error)

	// AddSupplierOrderItem appends a line item and returns the reconciled order.
	AddSupplierOrderItem(ctx context.Context, orderID string, req dto.AddItemRequest, userID string) (*domain.SupplierOrder, error)

	// UpdateSupplierOrderItem edits a line item and returns the reconciled order.
	UpdateSupplierOrderItem(ctx context.Context, orderID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.SupplierOrder, error)

	// RemoveSupplierOrderItem deletes a line item and returns the reconciled order.
	RemoveSupplierOrderItem(ctx context.Context, orderID string, itemID string, userID string) (*domain.SupplierOrder, error)
}
