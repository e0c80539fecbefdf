package repositories

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
)

// ListProductsFilter narrows a product listing.
type ListProductsFilter struct {
	Search     string // partial match on name, SKU or reference
	Category   string
	ActiveOnly bool
	LowStock   bool
	Page       int
	Limit      int
}

// ProductRepository defines persistence operations for the product catalog.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]domain.Product, int64, error)
	DeactivateProduct(ctx context.Context, productID string, updatedBy string) error
}
