package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Unit price and tax rate seed new line items
// but are copied, never referenced, so later price changes do not rewrite
// issued documents.
type Product struct {
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
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// IsLowStock reports whether the stock has reached the reorder level.
func (p *Product) IsLowStock() bool {
	return p.QuantityInStock <= p.ReorderLevel
}
