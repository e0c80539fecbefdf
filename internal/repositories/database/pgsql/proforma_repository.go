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
	proformasTable     = "proformas"
	proformaItemsTable = "proforma_items"

	proformaColumns = `proforma_id, number, client_id, issue_date, expiry_date, status, description, notes, subtotal, tax_amount, total, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxProformaRepository struct {
	BaseRepository
}

func newPgxProformaRepository(pool *pgxpool.Pool) portsrepo.ProformaRepositoryFacade {
	return &PgxProformaRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProformaRepositoryFacade = (*PgxProformaRepository)(nil)

func scanProforma(row pgx.Row) (models.ProformaInvoice, error) {
	var m models.ProformaInvoice
	err := row.Scan(
		&m.ProformaID,
		&m.Number,
		&m.ClientID,
		&m.IssueDate,
		&m.ExpiryDate,
		&m.Status,
		&m.Description,
		&m.Notes,
		&m.Subtotal,
		&m.TaxAmount,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProformaRepository) CreateProforma(ctx context.Context, proforma domain.ProformaInvoice) (*domain.ProformaInvoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := allocateNumber(ctx, tx, proformasTable, domain.DocTypeProforma.Prefix())
	if err != nil {
		return nil, err
	}
	proforma.Number = number

	m := mapping.ToModelProforma(proforma)
	query := `
		INSERT INTO proformas (` + proformaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = tx.Exec(ctx, query,
		m.ProformaID, m.Number, m.ClientID, m.IssueDate, m.ExpiryDate, m.Status,
		m.Description, m.Notes, m.Subtotal, m.TaxAmount, m.Total,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: proforma number %s", apperrors.ErrNumberingConflict, m.Number)
		}
		return nil, fmt.Errorf("failed to save proforma %s: %w", m.ProformaID, err)
	}

	for i := range proforma.Items {
		proforma.Items[i].DocumentID = proforma.ProformaID
		if err := insertLineItem(ctx, tx, proformaItemsTable, proforma.Items[i]); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &proforma, nil
}

func (r *PgxProformaRepository) FindProformaByID(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error) {
	query := `SELECT ` + proformaColumns + ` FROM proformas WHERE proforma_id = $1`
	m, err := scanProforma(r.Pool.QueryRow(ctx, query, proformaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: proforma %s", apperrors.ErrNotFound, proformaID)
		}
		return nil, fmt.Errorf("failed to find proforma %s: %w", proformaID, err)
	}
	proforma := mapping.ToDomainProforma(m)
	return &proforma, nil
}

func (r *PgxProformaRepository) FindProformaWithItems(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error) {
	proforma, err := r.FindProformaByID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	items, err := fetchLineItems(ctx, r.Pool, proformaItemsTable, proformaID)
	if err != nil {
		return nil, err
	}
	proforma.Items = items
	return proforma, nil
}

func (r *PgxProformaRepository) FindProformaItems(ctx context.Context, proformaID string) ([]domain.LineItem, error) {
	return fetchLineItems(ctx, r.Pool, proformaItemsTable, proformaID)
}

func (r *PgxProformaRepository) ListProformas(ctx context.Context, filter portsrepo.ListProformasFilter) ([]domain.ProformaInvoice, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where += ` AND p.status = ` + arg(filter.Status)
	}
	if filter.ClientID != "" {
		where += ` AND p.client_id = ` + arg(filter.ClientID)
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (p.number ILIKE ` + pattern + ` OR EXISTS (SELECT 1 FROM clients c WHERE c.client_id = p.client_id AND (c.name ILIKE ` + pattern + ` OR c.company ILIKE ` + pattern + `)))`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM proformas p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count proformas: %w", err)
	}

	query := `SELECT ` + prefixColumns("p", proformaColumns) + ` FROM proformas p` + where +
		` ORDER BY p.created_at DESC` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list proformas: %w", err)
	}
	defer rows.Close()

	var ms []models.ProformaInvoice
	for rows.Next() {
		m, err := scanProforma(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan proforma row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate proforma rows: %w", err)
	}
	return mapping.ToDomainProformaSlice(ms), total, nil
}

func (r *PgxProformaRepository) UpdateProforma(ctx context.Context, proforma domain.ProformaInvoice) error {
	m := mapping.ToModelProforma(proforma)
	query := `
		UPDATE proformas
		SET client_id = $2, issue_date = $3, expiry_date = $4, status = $5,
		    description = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE proforma_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProformaID, m.ClientID, m.IssueDate, m.ExpiryDate, m.Status,
		m.Description, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update proforma %s: %w", m.ProformaID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: proforma %s", apperrors.ErrNotFound, m.ProformaID)
	}
	return nil
}

func (r *PgxProformaRepository) AddProformaItem(ctx context.Context, item domain.LineItem) (*domain.ProformaInvoice, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return insertLineItem(ctx, tx, proformaItemsTable, item)
	})
}

func (r *PgxProformaRepository) UpdateProformaItem(ctx context.Context, item domain.LineItem) (*domain.ProformaInvoice, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return updateLineItem(ctx, tx, proformaItemsTable, item)
	})
}

func (r *PgxProformaRepository) DeleteProformaItem(ctx context.Context, proformaID, itemID string) (*domain.ProformaInvoice, error) {
	return r.mutateItems(ctx, proformaID, func(tx pgx.Tx) error {
		return deleteLineItem(ctx, tx, proformaItemsTable, proformaID, itemID)
	})
}

func (r *PgxProformaRepository) mutateItems(ctx context.Context, proformaID string, op func(pgx.Tx) error) (*domain.ProformaInvoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + proformaColumns + ` FROM proformas WHERE proforma_id = $1 FOR UPDATE`
	m, err := scanProforma(tx.QueryRow(ctx, lockQuery, proformaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: proforma %s", apperrors.ErrNotFound, proformaID)
		}
		return nil, fmt.Errorf("failed to lock proforma %s: %w", proformaID, err)
	}

	if err := op(tx); err != nil {
		return nil, err
	}

	items, err := fetchLineItems(ctx, tx, proformaItemsTable, proformaID)
	if err != nil {
		return nil, err
	}
	totals := domain.SumLineItems(items)

	_, err = tx.Exec(ctx,
		`UPDATE proformas SET subtotal = $2, tax_amount = $3, total = $4 WHERE proforma_id = $1`,
		proformaID, totals.Subtotal, totals.TaxAmount, totals.Total,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update proforma totals %s: %w", proformaID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	proforma := mapping.ToDomainProforma(m)
	proforma.DocumentTotals = totals
	proforma.Items = items
	return &proforma, nil
}
