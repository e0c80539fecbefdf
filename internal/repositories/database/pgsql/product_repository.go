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

const productColumns = `product_id, name, description, sku, reference, unit_price, cost_price, tax_rate, quantity_in_stock, reorder_level, category, unit, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Description,
		&m.SKU,
		&m.Reference,
		&m.UnitPrice,
		&m.CostPrice,
		&m.TaxRate,
		&m.QuantityInStock,
		&m.ReorderLevel,
		&m.Category,
		&m.Unit,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Name, m.Description, m.SKU, m.Reference,
		m.UnitPrice, m.CostPrice, m.TaxRate, m.QuantityInStock, m.ReorderLevel,
		m.Category, m.Unit, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product SKU %s", apperrors.ErrDuplicate, m.SKU)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, description = $3, sku = $4, reference = $5, unit_price = $6,
		    cost_price = $7, tax_rate = $8, quantity_in_stock = $9, reorder_level = $10,
		    category = $11, unit = $12, is_active = $13, last_updated_at = $14, last_updated_by = $15
		WHERE product_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Name, m.Description, m.SKU, m.Reference, m.UnitPrice,
		m.CostPrice, m.TaxRate, m.QuantityInStock, m.ReorderLevel,
		m.Category, m.Unit, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product SKU %s", apperrors.ErrDuplicate, m.SKU)
		}
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, m.ProductID)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product SKU %s", apperrors.ErrNotFound, sku)
		}
		return nil, fmt.Errorf("failed to find product by SKU %s: %w", sku, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, filter portsrepo.ListProductsFilter) ([]domain.Product, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		where += ` AND p.is_active`
	}
	if filter.LowStock {
		where += ` AND p.quantity_in_stock <= p.reorder_level`
	}
	if filter.Category != "" {
		where += ` AND p.category = ` + arg(filter.Category)
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where += ` AND (p.name ILIKE ` + pattern + ` OR p.sku ILIKE ` + pattern + ` OR p.reference ILIKE ` + pattern + `)`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `SELECT ` + prefixColumns("p", productColumns) + ` FROM products p` + where +
		` ORDER BY p.name` +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg((filter.Page-1)*filter.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate product rows: %w", err)
	}
	return mapping.ToDomainProductSlice(ms), total, nil
}

func (r *PgxProductRepository) DeactivateProduct(ctx context.Context, productID string, updatedBy string) error {
	query := `
		UPDATE products
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE product_id = $1`
	tag, err := r.Pool.Exec(ctx, query, productID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}
