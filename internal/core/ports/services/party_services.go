package services

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// ClientSvcFacade defines the operations available on clients.
type ClientSvcFacade interface {
	// GetClientByID retrieves a client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated, filtered list of clients.
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, int64, error)

	// CreateClient persists a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error)

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)

	// DeactivateClient marks a client as inactive.
	DeactivateClient(ctx context.Context, clientID string, userID string) error
}

// SupplierSvcFacade defines the operations available on suppliers.
type SupplierSvcFacade interface {
	// GetSupplierByID retrieves a supplier by its unique identifier.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated, filtered list of suppliers.
	ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, int64, error)

	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)

	// UpdateSupplier updates an existing supplier's details.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)

	// DeactivateSupplier marks a supplier as inactive.
	DeactivateSupplier(ctx context.Context, supplierID string, userID string) error
}
