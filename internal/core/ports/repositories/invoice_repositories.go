package repositories

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListInvoicesFilter narrows an invoice listing.
type ListInvoicesFilter struct {
	Status      string // empty for all
	ClientID    string
	Search      string // partial match on number or client name
	OverdueOnly bool
	Today       time.Time // reference date for the overdue predicate
	Page        int
	Limit       int
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceWithItems retrieves an invoice with its line items in
	// insertion order.
	FindInvoiceWithItems(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceItems retrieves the line items of an invoice in insertion order.
	FindInvoiceItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error)

	// ListInvoices retrieves a paginated, filtered invoice listing and the
	// total number of matches.
	ListInvoices(ctx context.Context, filter ListInvoicesFilter) ([]domain.Invoice, int64, error)
}

// InvoiceWriter defines write operations for invoice data.
//
// CreateInvoice allocates the document number inside the creation
// transaction, serialized per document type; it returns
// apperrors.ErrNumberingConflict when the allocated number already exists
// so the caller can retry once.
//
// The item methods re-read the invoice's current items and rewrite the
// header totals within the same transaction, so a reader never observes
// stale header totals. They return the reconciled invoice.
type InvoiceWriter interface {
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice persists header fields (dates, status, descriptions,
	// paid amount). It never changes the number.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	AddInvoiceItem(ctx context.Context, item domain.LineItem) (*domain.Invoice, error)
	UpdateInvoiceItem(ctx context.Context, item domain.LineItem) (*domain.Invoice, error)
	DeleteInvoiceItem(ctx context.Context, invoiceID, itemID string) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
