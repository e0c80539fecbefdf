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
	supplierOrdersTable     = "supplier_orders"
	supplierOrderItemsTable = "supplier_order_items"

	supplierOrderColumns = `order_id, number, supplier_id, order_date, expected_delivery, status, description, notes, subtotal, tax_amount, total, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxSupplierOrderRepository struct {
	BaseRepository
}

func newPgxSupplierOrderRepository(pool *pgxpool.Pool) portsrepo.SupplierOrderRepositoryFacade {
	return &PgxSupplierOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierOrderRepositoryFacade = (*PgxSupplierOrderRepository)(nil)

func scanSupplierOrder(row pgx.Row) (models.SupplierOrder, error) {
	var m models.SupplierOrder
	err := row.Scan(
		&m.OrderID,
		&m.Number,
		&m.SupplierID,
		&m.OrderDate,
		&m.ExpectedDelivery,
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

func (r *PgxSupplierOrderRepository) CreateSupplierOrder(ctx context.Context, order domain.SupplierOrder) (*domain.SupplierOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := allocateNumber(ctx, tx, supplierOrdersTable, domain.DocTypeSupplierOrder.Prefix())
	if err != nil {
		return nil, err
	}
	order.Number = number

	m := mapping.ToModelSupplierOrder(order)
	query := `
		INSERT INTO supplier_orders (` + supplierOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = tx.Exec(ctx, query,
		m.OrderID, m.Number, m.SupplierID, m.OrderDate, m.ExpectedDelivery, m.Status,
		m.Description, m.Notes, m.Subtotal, m.TaxAmount, m.Total,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: order number %s", apperrors.ErrNumberingConflict, m.Number)
		}
		return nil, fmt.Errorf("failed to save supplier order %s: %w", m.OrderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PgxSupplierOrderRepository) FindSupplierOrderByID(ctx context.Context, orderID string) (*domain.SupplierOrder, error) {
	query := `SELECT ` + supplierOrderColumns + ` FROM supplier_orders WHERE order_id = $1`
	m, err := scanSupplierOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to find supplier order %s: %w", orderID, err)
	}
	order := mapping.ToDomainSupplierOrder(m)
	return &order, nil
}

func (r *PgxSupplierOrderRepository) FindSupplierOrderWithItems(ctx context.Context, orderID string) (*domain.SupplierOrder, error) {
	order, err := r.FindSupplierOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := fetchLineItems(ctx, r.Pool, supplierOrderItemsTable, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PgxSupplierOrderRepository) FindSupplierOrderItems(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	return fetchLineItems(ctx, r.Pool, supplierOrderItemsTable, orderID)
}

func (r *PgxSupplierOrderRepository) ListSupplierOrders(ctx context.Context, filter portsrepo.ListOrdersFilter) ([]domain.SupplierOrder, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where += ` AND o.status = ` + arg(filter.Status)
	}
	if filter.PartyID != "" {
		where += ` AND o.supplier_id = ` + arg(filter.PartyID)
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (o.number ILIKE ` + pattern + ` OR EXISTS (SELECT 1 FROM suppliers s WHERE s.supplier_id = o.supplier_id AND (s.name ILIKE ` + pattern + ` OR s.company ILIKE ` + pattern + `)))`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM supplier_orders o`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count supplier orders: %w", err)
	}

	query := `SELECT ` + prefixColumns("o", supplierOrderColumns) + ` FROM supplier_orders o` + where +
		` ORDER BY o.created_at DESC` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list supplier orders: %w", err)
	}
	defer rows.Close()

	var ms []models.SupplierOrder
	for rows.Next() {
		m, err := scanSupplierOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier order row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate supplier order rows: %w", err)
	}
	return mapping.ToDomainSupplierOrderSlice(ms), total, nil
}

func (r *PgxSupplierOrderRepository) UpdateSupplierOrder(ctx context.Context, order domain.SupplierOrder) error {
	m := mapping.ToModelSupplierOrder(order)
	query := `
		UPDATE supplier_orders
		SET supplier_id = $2, order_date = $3, expected_delivery = $4, status = $5,
		    description = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE order_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrderID, m.SupplierID, m.OrderDate, m.ExpectedDelivery, m.Status,
		m.Description, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier order %s: %w", m.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: supplier order %s", apperrors.ErrNotFound, m.OrderID)
	}
	return nil
}

func (r *PgxSupplierOrderRepository) AddSupplierOrderItem(ctx context.Context, item domain.LineItem) (*domain.SupplierOrder, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return insertLineItem(ctx, tx, supplierOrderItemsTable, item)
	})
}

func (r *PgxSupplierOrderRepository) UpdateSupplierOrderItem(ctx context.Context, item domain.LineItem) (*domain.SupplierOrder, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return updateLineItem(ctx, tx, supplierOrderItemsTable, item)
	})
}

func (r *PgxSupplierOrderRepository) DeleteSupplierOrderItem(ctx context.Context, orderID, itemID string) (*domain.SupplierOrder, error) {
	return r.mutateItems(ctx, orderID, func(tx pgx.Tx) error {
		return deleteLineItem(ctx, tx, supplierOrderItemsTable, orderID, itemID)
	})
}

func (r *PgxSupplierOrderRepository) mutateItems(ctx context.Context, orderID string, op func(pgx.Tx) error) (*domain.SupplierOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + supplierOrderColumns + ` FROM supplier_orders WHERE order_id = $1 FOR UPDATE`
	m, err := scanSupplierOrder(tx.QueryRow(ctx, lockQuery, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to lock supplier order %s: %w", orderID, err)
	}

	if err := op(tx); err != nil {
		return nil, err
	}

	items, err := fetchLineItems(ctx, tx, supplierOrderItemsTable, orderID)
	if err != nil {
		return nil, err
	}
	totals := domain.SumLineItems(items)

	_, err = tx.Exec(ctx,
		`UPDATE supplier_orders SET subtotal = $2, tax_amount = $3, total = $4 WHERE order_id = $1`,
		orderID, totals.Subtotal, totals.TaxAmount, totals.Total,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier order totals %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	order := mapping.ToDomainSupplierOrder(m)
	order.DocumentTotals = totals
	order.Items = items
	return &order, nil
}
