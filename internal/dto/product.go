package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	SKU             string          `json:"sku" binding:"required"`
	Reference       string          `json:"reference"`
	UnitPrice       decimal.Decimal `json:"unitPrice" binding:"required"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	QuantityInStock int             `json:"quantityInStock"`
	ReorderLevel    int             `json:"reorderLevel"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Reference       *string          `json:"reference"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
	CostPrice       *decimal.Decimal `json:"costPrice"`
	TaxRate         *decimal.Decimal `json:"taxRate"`
	QuantityInStock *int             `json:"quantityInStock"`
	ReorderLevel    *int             `json:"reorderLevel"`
	Category        *string          `json:"category"`
	Unit            *string          `json:"unit"`
	IsActive        *bool            `json:"isActive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID       string          `json:"productID"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	SKU             string          `json:"sku"`
	Reference       string          `json:"reference"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	QuantityInStock int             `json:"quantityInStock"`
	ReorderLevel    int             `json:"reorderLevel"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit"`
	LowStock        bool            `json:"lowStock"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:       p.ProductID,
		Name:            p.Name,
		Description:     p.Description,
		SKU:             p.SKU,
		Reference:       p.Reference,
		UnitPrice:       p.UnitPrice,
		CostPrice:       p.CostPrice,
		TaxRate:         p.TaxRate,
		QuantityInStock: p.QuantityInStock,
		ReorderLevel:    p.ReorderLevel,
		Category:        p.Category,
		Unit:            p.Unit,
		LowStock:        p.IsLowStock(),
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
	}
}

// ListProductsParams holds the query parameters of a product listing.
type ListProductsParams struct {
	ListParams
	Search     string `form:"search"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active"`
	LowStock   bool   `form:"lowStock"`
}

// ListProductsResponse is the paginated product listing envelope.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
