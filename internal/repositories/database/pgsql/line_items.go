package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
	"github.com/facturio/facturio/internal/utils/mapping"
)

// Line item helpers shared by the four financial document repositories.
// Each document type owns its item table, but the tables have the same
// shape, so the table name is the only variable.

const lineItemColumns = `item_id, document_id, product_id, description, quantity, unit_price, tax_rate, subtotal, tax, total, created_at`

func scanLineItem(row pgx.Row) (models.LineItem, error) {
	var m models.LineItem
	err := row.Scan(
		&m.ItemID,
		&m.DocumentID,
		&m.ProductID,
		&m.Description,
		&m.Quantity,
		&m.UnitPrice,
		&m.TaxRate,
		&m.Subtotal,
		&m.Tax,
		&m.Total,
		&m.CreatedAt,
	)
	return m, err
}

// fetchLineItems reads all items of a document in insertion order.
func fetchLineItems(ctx context.Context, q querier, table, documentID string) ([]domain.LineItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE document_id = $1 ORDER BY created_at, item_id`, lineItemColumns, table)
	rows, err := q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var ms []models.LineItem
	for rows.Next() {
		m, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", table, err)
	}
	return mapping.ToDomainLineItemSlice(ms), nil
}

func insertLineItem(ctx context.Context, q querier, table string, item domain.LineItem) error {
	m := mapping.ToModelLineItem(item)
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, table, lineItemColumns)
	_, err := q.Exec(ctx, query,
		m.ItemID,
		m.DocumentID,
		m.ProductID,
		m.Description,
		m.Quantity,
		m.UnitPrice,
		m.TaxRate,
		m.Subtotal,
		m.Tax,
		m.Total,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func updateLineItem(ctx context.Context, q querier, table string, item domain.LineItem) error {
	m := mapping.ToModelLineItem(item)
	query := fmt.Sprintf(`
		UPDATE %s
		SET description = $3, quantity = $4, unit_price = $5, tax_rate = $6, subtotal = $7, tax = $8, total = $9, product_id = $10
		WHERE item_id = $1 AND document_id = $2`, table)
	tag, err := q.Exec(ctx, query,
		m.ItemID,
		m.DocumentID,
		m.Description,
		m.Quantity,
		m.UnitPrice,
		m.TaxRate,
		m.Subtotal,
		m.Tax,
		m.Total,
		m.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: line item %s", apperrors.ErrNotFound, item.ItemID)
	}
	return nil
}

func deleteLineItem(ctx context.Context, q querier, table, documentID, itemID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE item_id = $1 AND document_id = $2`, table)
	tag, err := q.Exec(ctx, query, itemID, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: line item %s", apperrors.ErrNotFound, itemID)
	}
	return nil
}
