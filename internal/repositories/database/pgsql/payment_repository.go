package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/models"
	"github.com/facturio/facturio/internal/utils/mapping"
)

const paymentColumns = `payment_id, invoice_id, payment_date, amount, method, reference, notes, created_at, created_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.InvoiceID,
		&m.PaymentDate,
		&m.Amount,
		&m.Method,
		&m.Reference,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = $1 ORDER BY payment_date, created_at`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.ListPaymentsFilter) ([]domain.Payment, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.InvoiceID != "" {
		where += ` AND p.invoice_id = ` + arg(filter.InvoiceID)
	}
	if filter.Method != "" {
		where += ` AND p.method = ` + arg(filter.Method)
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `SELECT ` + prefixColumns("p", paymentColumns) + ` FROM payments p` + where +
		` ORDER BY p.payment_date DESC, p.created_at DESC` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), total, nil
}

// SavePaymentAndReconcile inserts a payment row and rewrites the owning
// invoice's paid amount and status from the ledger sum, all in one
// transaction. The invoice header is locked for the duration so concurrent
// payments against the same invoice serialize.
func (r *PgxPaymentRepository) SavePaymentAndReconcile(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	invoice, err := lockInvoice(ctx, tx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}

	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.Exec(ctx, query,
		m.PaymentID, m.InvoiceID, m.PaymentDate, m.Amount, m.Method,
		m.Reference, m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}

	reconciled, err := reconcileInvoice(ctx, tx, invoice)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return reconciled, nil
}

// DeletePaymentAndReconcile removes a payment row and rewrites the owning
// invoice from the remaining ledger entries.
func (r *PgxPaymentRepository) DeletePaymentAndReconcile(ctx context.Context, paymentID string) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var invoiceID string
	err = tx.QueryRow(ctx, `SELECT invoice_id FROM payments WHERE payment_id = $1`, paymentID).Scan(&invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	invoice, err := lockInvoice(ctx, tx, invoiceID)
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}

	reconciled, err := reconcileInvoice(ctx, tx, invoice)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return reconciled, nil
}

func lockInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 FOR UPDATE`
	m, err := scanInvoice(tx.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to lock invoice %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func reconcileInvoice(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) (*domain.Invoice, error) {
	var paid decimal.Decimal
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`,
		invoice.InvoiceID,
	).Scan(&paid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for invoice %s: %w", invoice.InvoiceID, err)
	}

	invoice.ApplyPaidAmount(paid)

	_, err = tx.Exec(ctx,
		`UPDATE invoices SET paid_amount = $2, status = $3 WHERE invoice_id = $1`,
		invoice.InvoiceID, invoice.PaidAmount, string(invoice.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice %s after reconcile: %w", invoice.InvoiceID, err)
	}
	return invoice, nil
}
