package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/models"
	"github.com/facturio/facturio/internal/utils/mapping"
)

const (
	invoicesTable     = "invoices"
	invoiceItemsTable = "invoice_items"

	invoiceColumns = `invoice_id, number, client_id, invoice_date, due_date, status, description, notes, subtotal, tax_amount, total, paid_amount, sent_at, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.Number,
		&m.ClientID,
		&m.InvoiceDate,
		&m.DueDate,
		&m.Status,
		&m.Description,
		&m.Notes,
		&m.Subtotal,
		&m.TaxAmount,
		&m.Total,
		&m.PaidAmount,
		&m.SentAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateInvoice inserts a new invoice, allocating its number within the
// same transaction. Items attached to the invoice (conversion from a
// proforma) are inserted alongside the header.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := allocateNumber(ctx, tx, invoicesTable, domain.DocTypeInvoice.Prefix())
	if err != nil {
		return nil, err
	}
	invoice.Number = number

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID, m.Number, m.ClientID, m.InvoiceDate, m.DueDate, m.Status,
		m.Description, m.Notes, m.Subtotal, m.TaxAmount, m.Total, m.PaidAmount,
		m.SentAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: invoice number %s", apperrors.ErrNumberingConflict, m.Number)
		}
		return nil, fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}

	for i := range invoice.Items {
		invoice.Items[i].DocumentID = invoice.InvoiceID
		if err := insertLineItem(ctx, tx, invoiceItemsTable, invoice.Items[i]); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceWithItems(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := r.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := fetchLineItems(ctx, r.Pool, invoiceItemsTable, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	return fetchLineItems(ctx, r.Pool, invoiceItemsTable, invoiceID)
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.ListInvoicesFilter) ([]domain.Invoice, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where += ` AND i.status = ` + arg(filter.Status)
	}
	if filter.ClientID != "" {
		where += ` AND i.client_id = ` + arg(filter.ClientID)
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		where += ` AND (i.number ILIKE ` + p + ` OR EXISTS (SELECT 1 FROM clients c WHERE c.client_id = i.client_id AND (c.name ILIKE ` + p + ` OR c.company ILIKE ` + p + `)))`
	}
	if filter.OverdueOnly {
		where += ` AND (i.status = 'overdue' OR (i.status IN ('sent', 'partial') AND i.due_date < ` + arg(filter.Today) + `))`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices i`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	query := `SELECT ` + prefixColumns("i", invoiceColumns) + ` FROM invoices i` + where +
		` ORDER BY i.created_at DESC` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}
	return mapping.ToDomainInvoiceSlice(ms), total, nil
}

// UpdateInvoice persists header fields. The number column is deliberately
// absent from the SET list.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET client_id = $2, invoice_date = $3, due_date = $4, status = $5,
		    description = $6, notes = $7, paid_amount = $8, sent_at = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE invoice_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.ClientID, m.InvoiceDate, m.DueDate, m.Status,
		m.Description, m.Notes, m.PaidAmount, m.SentAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, m.InvoiceID)
	}
	return nil
}

func (r *PgxInvoiceRepository) AddInvoiceItem(ctx context.Context, item domain.LineItem) (*domain.Invoice, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return insertLineItem(ctx, tx, invoiceItemsTable, item)
	})
}

func (r *PgxInvoiceRepository) UpdateInvoiceItem(ctx context.Context, item domain.LineItem) (*domain.Invoice, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return updateLineItem(ctx, tx, invoiceItemsTable, item)
	})
}

func (r *PgxInvoiceRepository) DeleteInvoiceItem(ctx context.Context, invoiceID, itemID string) (*domain.Invoice, error) {
	return r.mutateItems(ctx, invoiceID, func(tx pgx.Tx) error {
		return deleteLineItem(ctx, tx, invoiceItemsTable, invoiceID, itemID)
	})
}

// mutateItems runs an item write and rewrites the header totals in one
// transaction, so readers never observe totals that disagree with the
// items. The header row is locked first to serialize concurrent item
// writes on the same invoice.
func (r *PgxInvoiceRepository) mutateItems(ctx context.Context, invoiceID string, op func(pgx.Tx) error) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 FOR UPDATE`
	m, err := scanInvoice(tx.QueryRow(ctx, lockQuery, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to lock invoice %s: %w", invoiceID, err)
	}

	if err := op(tx); err != nil {
		return nil, err
	}

	items, err := fetchLineItems(ctx, tx, invoiceItemsTable, invoiceID)
	if err != nil {
		return nil, err
	}
	totals := domain.SumLineItems(items)

	_, err = tx.Exec(ctx,
		`UPDATE invoices SET subtotal = $2, tax_amount = $3, total = $4 WHERE invoice_id = $1`,
		invoiceID, totals.Subtotal, totals.TaxAmount, totals.Total,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice totals %s: %w", invoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice := mapping.ToDomainInvoice(m)
	invoice.DocumentTotals = totals
	invoice.Items = items
	return &invoice, nil
}
