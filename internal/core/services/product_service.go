package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService builds the product catalog service.
func NewProductService(repo portsrepo.ProductRepository) *productService {
	return &productService{productRepo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	if req.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}

	// SKU is the natural key of the catalog.
	if _, err := s.productRepo.FindProductBySKU(ctx, req.SKU); err == nil {
		return nil, fmt.Errorf("%w: product with SKU %s", apperrors.ErrDuplicate, req.SKU)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:       uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		SKU:             req.SKU,
		Reference:       req.Reference,
		UnitPrice:       req.UnitPrice,
		CostPrice:       req.CostPrice,
		TaxRate:         req.TaxRate,
		QuantityInStock: req.QuantityInStock,
		ReorderLevel:    req.ReorderLevel,
		Category:        req.Category,
		Unit:            req.Unit,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()), slog.String("product_id", product.ProductID))
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	product, err := s.productRepo.FindProductBySKU(ctx, sku)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product by SKU", slog.String("error", err.Error()), slog.String("sku", sku))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()

	filter := portsrepo.ListProductsFilter{
		Search:     params.Search,
		Category:   params.Category,
		ActiveOnly: params.ActiveOnly,
		LowStock:   params.LowStock,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, total, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: product name must not be empty", apperrors.ErrValidation)
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Reference != nil {
		product.Reference = *req.Reference
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
		}
		product.TaxRate = *req.TaxRate
	}
	if req.QuantityInStock != nil {
		product.QuantityInStock = *req.QuantityInStock
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *productService) DeactivateProduct(ctx context.Context, productID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeactivateProduct(ctx, productID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate product", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return err
	}
	logger.Info("Product deactivated", slog.String("product_id", productID))
	return nil
}
