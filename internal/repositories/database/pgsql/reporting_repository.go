package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetDashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		InvoicesByStatus: make(map[domain.InvoiceStatus]int64),
	}

	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COALESCE(SUM(paid_amount), 0)
		FROM invoices
		WHERE status <> 'cancelled'`,
	).Scan(&summary.TotalInvoiced, &summary.TotalPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate invoice totals: %w", err)
	}
	summary.TotalOutstanding = summary.TotalInvoiced.Sub(summary.TotalPaid)

	rows, err := r.Pool.Query(ctx, `SELECT status, COUNT(*) FROM invoices GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan invoice status count: %w", err)
		}
		summary.InvoicesByStatus[domain.InvoiceStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice status counts: %w", err)
	}

	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices
		WHERE status = 'overdue'
		   OR (status IN ('sent', 'partial') AND due_date < $1)`,
		asOf,
	).Scan(&summary.OverdueCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue invoices: %w", err)
	}

	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM customer_orders
		WHERE status NOT IN ('completed', 'cancelled')`,
	).Scan(&summary.OpenOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to count open orders: %w", err)
	}

	err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE is_active`).Scan(&summary.ActiveClients)
	if err != nil {
		return nil, fmt.Errorf("failed to count active clients: %w", err)
	}

	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM products
		WHERE is_active AND quantity_in_stock <= reorder_level`,
	).Scan(&summary.LowStockProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}

	return summary, nil
}
