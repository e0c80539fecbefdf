package repositories

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListDeliveriesFilter narrows a delivery note listing.
type ListDeliveriesFilter struct {
	ClientID  string
	InvoiceID string
	Search    string
	Page      int
	Limit     int
}

// DeliveryReader defines read operations for delivery note data
type DeliveryReader interface {
	FindDeliveryByID(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error)
	FindDeliveryWithItems(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error)
	ListDeliveries(ctx context.Context, filter ListDeliveriesFilter) ([]domain.DeliveryNote, int64, error)
}

// DeliveryWriter defines write operations for delivery note data. Delivery
// notes carry no totals, so item writes do not reconcile a header.
type DeliveryWriter interface {
	CreateDelivery(ctx context.Context, delivery domain.DeliveryNote) (*domain.DeliveryNote, error)
	UpdateDelivery(ctx context.Context, delivery domain.DeliveryNote) error

	AddDeliveryItem(ctx context.Context, item domain.DeliveryItem) error
	UpdateDeliveryItem(ctx context.Context, item domain.DeliveryItem) error
	DeleteDeliveryItem(ctx context.Context, deliveryID, itemID string) error
}

// DeliveryRepositoryFacade combines the delivery note interfaces.
type DeliveryRepositoryFacade interface {
	DeliveryReader
	DeliveryWriter
}
