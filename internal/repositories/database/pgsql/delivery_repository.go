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
	deliveryNotesTable = "delivery_notes"
	deliveryItemsTable = "delivery_items"

	deliveryColumns = `delivery_id, number, client_id, invoice_id, delivery_date, expected_delivery, actual_delivery, description, notes, created_at, created_by, last_updated_at, last_updated_by`

	deliveryItemColumns = `item_id, delivery_id, product_id, description, quantity_ordered, quantity_delivered, unit_price`
)

type PgxDeliveryRepository struct {
	BaseRepository
}

func newPgxDeliveryRepository(pool *pgxpool.Pool) portsrepo.DeliveryRepositoryFacade {
	return &PgxDeliveryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DeliveryRepositoryFacade = (*PgxDeliveryRepository)(nil)

func scanDeliveryNote(row pgx.Row) (models.DeliveryNote, error) {
	var m models.DeliveryNote
	err := row.Scan(
		&m.DeliveryID,
		&m.Number,
		&m.ClientID,
		&m.InvoiceID,
		&m.DeliveryDate,
		&m.ExpectedDelivery,
		&m.ActualDelivery,
		&m.Description,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanDeliveryItem(row pgx.Row) (models.DeliveryItem, error) {
	var m models.DeliveryItem
	err := row.Scan(
		&m.ItemID,
		&m.DeliveryID,
		&m.ProductID,
		&m.Description,
		&m.QuantityOrdered,
		&m.QuantityDelivered,
		&m.UnitPrice,
	)
	return m, err
}

func (r *PgxDeliveryRepository) CreateDelivery(ctx context.Context, delivery domain.DeliveryNote) (*domain.DeliveryNote, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := allocateNumber(ctx, tx, deliveryNotesTable, domain.DocTypeDeliveryNote.Prefix())
	if err != nil {
		return nil, err
	}
	delivery.Number = number

	m := mapping.ToModelDeliveryNote(delivery)
	query := `
		INSERT INTO delivery_notes (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.Exec(ctx, query,
		m.DeliveryID, m.Number, m.ClientID, m.InvoiceID, m.DeliveryDate,
		m.ExpectedDelivery, m.ActualDelivery, m.Description, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: delivery number %s", apperrors.ErrNumberingConflict, m.Number)
		}
		return nil, fmt.Errorf("failed to save delivery note %s: %w", m.DeliveryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *PgxDeliveryRepository) FindDeliveryByID(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_notes WHERE delivery_id = $1`
	m, err := scanDeliveryNote(r.Pool.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: delivery note %s", apperrors.ErrNotFound, deliveryID)
		}
		return nil, fmt.Errorf("failed to find delivery note %s: %w", deliveryID, err)
	}
	delivery := mapping.ToDomainDeliveryNote(m)
	return &delivery, nil
}

func (r *PgxDeliveryRepository) FindDeliveryWithItems(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error) {
	delivery, err := r.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + deliveryItemColumns + ` FROM delivery_items WHERE delivery_id = $1 ORDER BY item_id`
	rows, err := r.Pool.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch delivery items for %s: %w", deliveryID, err)
	}
	defer rows.Close()

	var ms []models.DeliveryItem
	for rows.Next() {
		m, err := scanDeliveryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery item row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery item rows: %w", err)
	}

	delivery.Items = mapping.ToDomainDeliveryItemSlice(ms)
	return delivery, nil
}

func (r *PgxDeliveryRepository) ListDeliveries(ctx context.Context, filter portsrepo.ListDeliveriesFilter) ([]domain.DeliveryNote, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ClientID != "" {
		where += ` AND d.client_id = ` + arg(filter.ClientID)
	}
	if filter.InvoiceID != "" {
		where += ` AND d.invoice_id = ` + arg(filter.InvoiceID)
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (d.number ILIKE ` + pattern + ` OR EXISTS (SELECT 1 FROM clients c WHERE c.client_id = d.client_id AND (c.name ILIKE ` + pattern + ` OR c.company ILIKE ` + pattern + `)))`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM delivery_notes d`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count delivery notes: %w", err)
	}

	query := `SELECT ` + prefixColumns("d", deliveryColumns) + ` FROM delivery_notes d` + where +
		` ORDER BY d.created_at DESC` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list delivery notes: %w", err)
	}
	defer rows.Close()

	var ms []models.DeliveryNote
	for rows.Next() {
		m, err := scanDeliveryNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan delivery note row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate delivery note rows: %w", err)
	}
	return mapping.ToDomainDeliveryNoteSlice(ms), total, nil
}

func (r *PgxDeliveryRepository) UpdateDelivery(ctx context.Context, delivery domain.DeliveryNote) error {
	m := mapping.ToModelDeliveryNote(delivery)
	query := `
		UPDATE delivery_notes
		SET client_id = $2, invoice_id = $3, delivery_date = $4, expected_delivery = $5,
		    actual_delivery = $6, description = $7, notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE delivery_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.DeliveryID, m.ClientID, m.InvoiceID, m.DeliveryDate, m.ExpectedDelivery,
		m.ActualDelivery, m.Description, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update delivery note %s: %w", m.DeliveryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: delivery note %s", apperrors.ErrNotFound, m.DeliveryID)
	}
	return nil
}

func (r *PgxDeliveryRepository) AddDeliveryItem(ctx context.Context, item domain.DeliveryItem) error {
	m := mapping.ToModelDeliveryItem(item)
	query := `
		INSERT INTO delivery_items (` + deliveryItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.DeliveryID, m.ProductID, m.Description,
		m.QuantityOrdered, m.QuantityDelivered, m.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to save delivery item %s: %w", m.ItemID, err)
	}
	return nil
}

func (r *PgxDeliveryRepository) UpdateDeliveryItem(ctx context.Context, item domain.DeliveryItem) error {
	m := mapping.ToModelDeliveryItem(item)
	query := `
		UPDATE delivery_items
		SET product_id = $3, description = $4, quantity_ordered = $5, quantity_delivered = $6, unit_price = $7
		WHERE item_id = $1 AND delivery_id = $2`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.DeliveryID, m.ProductID, m.Description,
		m.QuantityOrdered, m.QuantityDelivered, m.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to update delivery item %s: %w", m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: delivery item %s", apperrors.ErrNotFound, m.ItemID)
	}
	return nil
}

func (r *PgxDeliveryRepository) DeleteDeliveryItem(ctx context.Context, deliveryID, itemID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM delivery_items WHERE item_id = $1 AND delivery_id = $2`,
		itemID, deliveryID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete delivery item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: delivery item %s", apperrors.ErrNotFound, itemID)
	}
	return nil
}
