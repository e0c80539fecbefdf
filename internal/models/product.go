package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog row.
type Product struct {
	ProductID       string          `db:"product_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	SKU             string          `db:"sku"`
	Reference       string          `db:"reference"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	CostPrice       decimal.Decimal `db:"cost_price"`
	TaxRate         decimal.Decimal `db:"tax_rate"`
	QuantityInStock int             `db:"quantity_in_stock"`
	ReorderLevel    int             `db:"reorder_level"`
	Category        string          `db:"category"`
	Unit            string          `db:"unit"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}
