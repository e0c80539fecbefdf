package repositories

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListOrdersFilter narrows an order listing (customer or supplier side).
type ListOrdersFilter struct {
	Status  string
	PartyID string // client or supplier depending on the order side
	Search  string
	Page    int
	Limit   int
}

// CustomerOrderReader defines read operations for customer order data
type CustomerOrderReader interface {
	FindCustomerOrderByID(ctx context.Context, orderID string) (*domain.CustomerOrder, error)
	FindCustomerOrderWithItems(ctx context.Context, orderID string) (*domain.CustomerOrder, error)
	FindCustomerOrderItems(ctx context.Context, orderID string) ([]domain.LineItem, error)
	ListCustomerOrders(ctx context.Context, filter ListOrdersFilter) ([]domain.CustomerOrder, int64, error)
}

// CustomerOrderWriter defines write operations for customer order data.
type CustomerOrderWriter interface {
	CreateCustomerOrder(ctx context.Context, order domain.CustomerOrder) (*domain.CustomerOrder, error)
	UpdateCustomerOrder(ctx context.Context, order domain.CustomerOrder) error

	AddCustomerOrderItem(ctx context.Context, item domain.LineItem) (*domain.CustomerOrder, error)
	UpdateCustomerOrderItem(ctx context.Context, item domain.LineItem) (*domain.CustomerOrder, error)
	DeleteCustomerOrderItem(ctx context.Context, orderID, itemID string) (*domain.CustomerOrder, error)
}

// CustomerOrderRepositoryFacade combines the customer order interfaces.
type CustomerOrderRepositoryFacade interface {
	CustomerOrderReader
	CustomerOrderWriter
}

// SupplierOrderReader defines read operations for supplier order data
type SupplierOrderReader interface {
	FindSupplierOrderByID(ctx context.Context, orderID string) (*domain.SupplierOrder, error)
	FindSupplierOrderWithItems(ctx context.Context, orderID string) (*domain.SupplierOrder, error)
	FindSupplierOrderItems(ctx context.Context, orderID string) ([]domain.LineItem, error)
	ListSupplierOrders(ctx context.Context, filter ListOrdersFilter) ([]domain.SupplierOrder, int64, error)
}

// SupplierOrderWriter defines write operations for supplier order data.
type SupplierOrderWriter interface {
	CreateSupplierOrder(ctx context.Context, order domain.SupplierOrder) (*domain.SupplierOrder, error)
	UpdateSupplierOrder(ctx context.Context, order domain.SupplierOrder) error

	AddSupplierOrderItem(ctx context.Context, item domain.LineItem) (*domain.SupplierOrder, error)
	UpdateSupplierOrderItem(ctx context.Context, item domain.LineItem) (*domain.SupplierOrder, error)
	DeleteSupplierOrderItem(ctx context.Context, orderID, itemID string) (*domain.SupplierOrder, error)
}

// SupplierOrderRepositoryFacade combines the supplier order interfaces.
type SupplierOrderRepositoryFacade interface {
	SupplierOrderReader
	SupplierOrderWriter
}
