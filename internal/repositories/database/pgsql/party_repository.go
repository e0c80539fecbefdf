package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/models"
	"github.com/facturio/facturio/internal/utils/mapping"
)

const (
	clientColumns = `client_id, name, company, email, phone, address, city, postal_code, country, tax_id, contact_person, payment_terms, credit_limit, is_active, notes, created_at, created_by, last_updated_at, last_updated_by`

	supplierColumns = `supplier_id, name, company, email, phone, address, city, postal_code, country, tax_id, contact_person, payment_terms, is_active, notes, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Company,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.City,
		&m.PostalCode,
		&m.Country,
		&m.TaxID,
		&m.ContactPerson,
		&m.PaymentTerms,
		&m.CreditLimit,
		&m.IsActive,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.Name, m.Company, m.Email, m.Phone, m.Address, m.City,
		m.PostalCode, m.Country, m.TaxID, m.ContactPerson, m.PaymentTerms,
		m.CreditLimit, m.IsActive, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client %s", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, company = $3, email = $4, phone = $5, address = $6, city = $7,
		    postal_code = $8, country = $9, tax_id = $10, contact_person = $11,
		    payment_terms = $12, credit_limit = $13, is_active = $14, notes = $15,
		    last_updated_at = $16, last_updated_by = $17
		WHERE client_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.Name, m.Company, m.Email, m.Phone, m.Address, m.City,
		m.PostalCode, m.Country, m.TaxID, m.ContactPerson, m.PaymentTerms,
		m.CreditLimit, m.IsActive, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, m.ClientID)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, filter portsrepo.ListPartiesFilter) ([]domain.Client, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		where += ` AND c.is_active`
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (c.name ILIKE ` + pattern + ` OR c.company ILIKE ` + pattern + ` OR c.email ILIKE ` + pattern + `)`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients c`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `SELECT ` + prefixColumns("c", clientColumns) + ` FROM clients c` + where +
		` ORDER BY c.name` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var ms []models.Client
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return mapping.ToDomainClientSlice(ms), total, nil
}

func (r *PgxClientRepository) DeactivateClient(ctx context.Context, clientID string, updatedBy string) error {
	query := `
		UPDATE clients
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE client_id = $1`
	tag, err := r.Pool.Exec(ctx, query, clientID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return nil
}

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.Name,
		&m.Company,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.City,
		&m.PostalCode,
		&m.Country,
		&m.TaxID,
		&m.ContactPerson,
		&m.PaymentTerms,
		&m.IsActive,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Company, m.Email, m.Phone, m.Address, m.City,
		m.PostalCode, m.Country, m.TaxID, m.ContactPerson, m.PaymentTerms,
		m.IsActive, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: supplier %s", apperrors.ErrDuplicate, m.SupplierID)
		}
		return fmt.Errorf("failed to save supplier %s: %w", m.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $2, company = $3, email = $4, phone = $5, address = $6, city = $7,
		    postal_code = $8, country = $9, tax_id = $10, contact_person = $11,
		    payment_terms = $12, is_active = $13, notes = $14,
		    last_updated_at = $15, last_updated_by = $16
		WHERE supplier_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Company, m.Email, m.Phone, m.Address, m.City,
		m.PostalCode, m.Country, m.TaxID, m.ContactPerson, m.PaymentTerms,
		m.IsActive, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, m.SupplierID)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1`
	m, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, filter portsrepo.ListPartiesFilter) ([]domain.Supplier, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		where += ` AND s.is_active`
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (s.name ILIKE ` + pattern + ` OR s.company ILIKE ` + pattern + ` OR s.email ILIKE ` + pattern + `)`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers s`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	query := `SELECT ` + prefixColumns("s", supplierColumns) + ` FROM suppliers s` + where +
		` ORDER BY s.name` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var ms []models.Supplier
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate supplier rows: %w", err)
	}
	return mapping.ToDomainSupplierSlice(ms), total, nil
}

func (r *PgxSupplierRepository) DeactivateSupplier(ctx context.Context, supplierID string, updatedBy string) error {
	query := `
		UPDATE suppliers
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE supplier_id = $1`
	tag, err := r.Pool.Exec(ctx, query, supplierID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
	}
	return nil
}
