package services

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// ProductSvcFacade defines the operations available on the product catalog.
type ProductSvcFacade interface {
	// GetProductByID retrieves a product by its unique identifier.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetProductBySKU retrieves a product by its SKU.
	GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// ListProducts retrieves a paginated, filtered list of products.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, int64, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)

	// DeactivateProduct marks a product as inactive.
	DeactivateProduct(ctx context.Context, productID string, userID string) error
}
