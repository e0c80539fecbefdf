package services

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice header by its unique identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// GetInvoiceWithItems retrieves an invoice together with its line items.
	GetInvoiceWithItems(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated, filtered list of invoices.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams, today time.Time) ([]domain.Invoice, int64, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new draft invoice with a freshly allocated number.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// UpdateInvoice updates the editable header fields of a draft invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error)

	// TransitionInvoice moves the invoice to the target status when the
	// transition is allowed.
	TransitionInvoice(ctx context.Context, invoiceID string, target domain.InvoiceStatus, userID string) (*domain.Invoice, error)

	// MarkInvoicePaid forces an invoice to paid regardless of the ledger.
	MarkInvoicePaid(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error)
}

// InvoiceItemSvc defines line item operations on invoices
type InvoiceItemSvc interface {
	// AddInvoiceItem appends a line item and returns the reconciled invoice.
	AddInvoiceItem(ctx context.Context, invoiceID string, req dto.AddItemRequest, userID string) (*domain.Invoice, error)

	// UpdateInvoiceItem edits a line item and returns the reconciled invoice.
	UpdateInvoiceItem(ctx context.Context, invoiceID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.Invoice, error)

	// RemoveInvoiceItem deletes a line item and returns the reconciled invoice.
	RemoveInvoiceItem(ctx context.Context, invoiceID string, itemID string, userID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceItemSvc
}
