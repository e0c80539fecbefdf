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
	customerOrdersTable     = "customer_orders"
	customerOrderItemsTable = "customer_order_items"

	customerOrderColumns = `order_id, number, client_id, order_date, delivery_date, status, description, notes, subtotal, tax_amount, total, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxCustomerOrderRepository struct {
	BaseRepository
}

func newPgxCustomerOrderRepository(pool *pgxpool.Pool) portsrepo.CustomerOrderRepositoryFacade {
	return &PgxCustomerOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerOrderRepositoryFacade = (*PgxCustomerOrderRepository)(nil)

func scanCustomerOrder(row pgx.Row) (models.CustomerOrder, error) {
	var m models.CustomerOrder
	err := row.Scan(
		&m.OrderID,
		&m.Number,
		&m.ClientID,
		&m.OrderDate,
		&m.DeliveryDate,
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

func (r *PgxCustomerOrderRepository) CreateCustomerOrder(ctx context.Context, order domain.CustomerOrder) (*domain.CustomerOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := allocateNumber(ctx, tx, customerOrdersTable, domain.DocTypeCustomerOrder.Prefix())
	if err != nil {
		return nil, err
	}
	order.Number = number

	m := mapping.ToModelCustomerOrder(order)
	query := `
		INSERT INTO customer_orders (` + customerOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = tx.Exec(ctx, query,
		m.OrderID, m.Number, m.ClientID, m.OrderDate, m.DeliveryDate, m.Status,
		m.Description, m.Notes, m.Subtotal, m.TaxAmount, m.Total,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: order number %s", apperrors.ErrNumberingConflict, m.Number)
		}
		return nil, fmt.Errorf("failed to save customer order %s: %w", m.OrderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PgxCustomerOrderRepository) FindCustomerOrderByID(ctx context.Context, orderID string) (*domain.CustomerOrder, error) {
	query := `SELECT ` + customerOrderColumns + ` FROM customer_orders WHERE order_id = $1`
	m, err := scanCustomerOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to find customer order %s: %w", orderID, err)
	}
	order := mapping.ToDomainCustomerOrder(m)
	return &order, nil
}

func (r *PgxCustomerOrderRepository) FindCustomerOrderWithItems(ctx context.Context, orderID string) (*domain.CustomerOrder, error) {
	order, err := r.FindCustomerOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := fetchLineItems(ctx, r.Pool, customerOrderItemsTable, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PgxCustomerOrderRepository) FindCustomerOrderItems(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	return fetchLineItems(ctx, r.Pool, customerOrderItemsTable, orderID)
}

func (r *PgxCustomerOrderRepository) ListCustomerOrders(ctx context.Context, filter portsrepo.ListOrdersFilter) ([]domain.CustomerOrder, int64, error) {
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
		where += ` AND o.client_id = ` + arg(filter.PartyID)
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (o.number ILIKE ` + pattern + ` OR EXISTS (SELECT 1 FROM clients c WHERE c.client_id = o.client_id AND (c.name ILIKE ` + pattern + ` OR c.company ILIKE ` + pattern + `)))`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM customer_orders o`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customer orders: %w", err)
	}

	query := `SELECT ` + prefixColumns("o", customerOrderColumns) + ` FROM customer_orders o` + where +
		` ORDER BY o.created_at DESC` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customer orders: %w", err)
	}
	defer rows.Close()

	var ms []models.CustomerOrder
	for rows.Next() {
		m, err := scanCustomerOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer order row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate customer order rows: %w", err)
	}
	return mapping.ToDomainCustomerOrderSlice(ms), total, nil
}

func (r *PgxCustomerOrderRepository) UpdateCustomerOrder(ctx context.Context, order domain.CustomerOrder) error {
	m := mapping.ToModelCustomerOrder(order)
	query := `
		UPDATE customer_orders
		SET client_id = $2, order_date = $3, delivery_date = $4, status = $5,
		    description = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE order_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrderID, m.ClientID, m.OrderDate, m.DeliveryDate, m.Status,
		m.Description, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer order %s: %w", m.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer order %s", apperrors.ErrNotFound, m.OrderID)
	}
	return nil
}

func (r *PgxCustomerOrderRepository) AddCustomerOrderItem(ctx context.Context, item domain.LineItem) (*domain.CustomerOrder, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return insertLineItem(ctx, tx, customerOrderItemsTable, item)
	})
}

func (r *PgxCustomerOrderRepository) UpdateCustomerOrderItem(ctx context.Context, item domain.LineItem) (*domain.CustomerOrder, error) {
	return r.mutateItems(ctx, item.DocumentID, func(tx pgx.Tx) error {
		return updateLineItem(ctx, tx, customerOrderItemsTable, item)
	})
}

func (r *PgxCustomerOrderRepository) DeleteCustomerOrderItem(ctx context.Context, orderID, itemID string) (*domain.CustomerOrder, error) {
	return r.mutateItems(ctx, orderID, func(tx pgx.Tx) error {
		return deleteLineItem(ctx, tx, customerOrderItemsTable, orderID, itemID)
	})
}

func (r *PgxCustomerOrderRepository) mutateItems(ctx context.Context, orderID string, op func(pgx.Tx) error) (*domain.CustomerOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + customerOrderColumns + ` FROM customer_orders WHERE order_id = $1 FOR UPDATE`
	m, err := scanCustomerOrder(tx.QueryRow(ctx, lockQuery, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to lock customer order %s: %w", orderID, err)
	}

	if err := op(tx); err != nil {
		return nil, err
	}

	items, err := fetchLineItems(ctx, tx, customerOrderItemsTable, orderID)
	if err != nil {
		return nil, err
	}
	totals := domain.SumLineItems(items)

	_, err = tx.Exec(ctx,
		`UPDATE customer_orders SET subtotal = $2, tax_amount = $3, total = $4 WHERE order_id = $1`,
		orderID, totals.Subtotal, totals.TaxAmount, totals.Total,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer order totals %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	order := mapping.ToDomainCustomerOrder(m)
	order.DocumentTotals = totals
	order.Items = items
	return &order, nil
}
