package repositories

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListPartiesFilter narrows a client or supplier listing.
type ListPartiesFilter struct {
	Search     string // partial match on name, company or email
	ActiveOnly bool
	Page       int
	Limit      int
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, filter ListPartiesFilter) ([]domain.Client, int64, error)
	DeactivateClient(ctx context.Context, clientID string, updatedBy string) error
}

// SupplierRepository defines persistence operations for suppliers.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, filter ListPartiesFilter) ([]domain.Supplier, int64, error)
	DeactivateSupplier(ctx context.Context, supplierID string, updatedBy string) error
}
