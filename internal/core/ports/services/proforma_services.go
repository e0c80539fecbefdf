package services

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// ProformaReaderSvc defines read operations for proforma invoices
type ProformaReaderSvc interface {
	// GetProformaByID retrieves a proforma header by its unique identifier.
	GetProformaByID(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error)

	// GetProformaWithItems retrieves a proforma together with its line items.
	GetProformaWithItems(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error)

	// ListProformas retrieves a paginated, filtered list of proformas.
	ListProformas(ctx context.Context, params dto.ListProformasParams) ([]domain.ProformaInvoice, int64, error)
}

// ProformaWriterSvc defines write operations for proforma invoices
type ProformaWriterSvc interface {
	// CreateProforma persists a new draft proforma with a freshly allocated number.
	CreateProforma(ctx context.Context, req dto.CreateProformaRequest, userID string) (*domain.ProformaInvoice, error)

	// UpdateProforma updates the editable header fields of a draft proforma.
	UpdateProforma(ctx context.Context, proformaID string, req dto.UpdateProformaRequest, userID string) (*domain.ProformaInvoice, error)

	// TransitionProforma moves the proforma to the target status when allowed.
	TransitionProforma(ctx context.Context, proformaID string, target domain.ProformaStatus, userID string) (*domain.ProformaInvoice, error)

	// ConvertToInvoice creates a draft invoice from an accepted proforma,
	// copying its line items.
	ConvertToInvoice(ctx context.Context, proformaID string, req dto.ConvertProformaRequest, userID string) (*domain.Invoice, error)
}

// ProformaItemSvc defines line item operations on proformas
type ProformaItemSvc interface {
	// AddProformaItem appends a line item and returns the reconciled proforma.
	AddProformaItem(ctx context.Context, proformaID string, req dto.AddItemRequest, userID string) (*domain.ProformaInvoice, error)

	// UpdateProformaItem edits a line item and returns the reconciled proforma.
	UpdateProformaItem(ctx context.Context, proformaID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.ProformaInvoice, error)

	// RemoveProformaItem deletes a line item and returns the reconciled proforma.
	RemoveProformaItem(ctx context.Context, proformaID string, itemID string, userID string) (*domain.ProformaInvoice, error)
}

// ProformaSvcFacade combines all proforma-related service interfaces
type ProformaSvcFacade interface {
	ProformaReaderSvc
	ProformaWriterSvc
	ProformaItemSvc
}
