package repositories

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListProformasFilter narrows a proforma listing.
type ListProformasFilter struct {
	Status   string
	ClientID string
	Search   string
	Page     int
	Limit    int
}

// ProformaReader defines read operations for proforma data
type ProformaReader interface {
	FindProformaByID(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error)
	FindProformaWithItems(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error)
	FindProformaItems(ctx context.Context, proformaID string) ([]domain.LineItem, error)
	ListProformas(ctx context.Context, filter ListProformasFilter) ([]domain.ProformaInvoice, int64, error)
}

// ProformaWriter defines write operations for proforma data. The same
// numbering and header-reconciliation contracts as InvoiceWriter apply.
type ProformaWriter interface {
	CreateProforma(ctx context.Context, proforma domain.ProformaInvoice) (*domain.ProformaInvoice, error)
	UpdateProforma(ctx context.Context, proforma domain.ProformaInvoice) error

	AddProformaItem(ctx context.Context, item domain.LineItem) (*domain.ProformaInvoice, error)
	UpdateProformaItem(ctx context.Context, item domain.LineItem) (*domain.ProformaInvoice, error)
	DeleteProformaItem(ctx context.Context, proformaID, itemID string) (*domain.ProformaInvoice, error)
}

// ProformaRepositoryFacade combines all proforma-related repository interfaces.
type ProformaRepositoryFacade interface {
	ProformaReader
	ProformaWriter
}
