package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:       d.ProductID,
		Name:            d.Name,
		Description:     d.Description,
		SKU:             d.SKU,
		Reference:       d.Reference,
		UnitPrice:       d.UnitPrice,
		CostPrice:       d.CostPrice,
		TaxRate:         d.TaxRate,
		QuantityInStock: d.QuantityInStock,
		ReorderLevel:    d.ReorderLevel,
		Category:        d.Category,
		Unit:            d.Unit,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:       m.ProductID,
		Name:            m.Name,
		Description:     m.Description,
		SKU:             m.SKU,
		Reference:       m.Reference,
		UnitPrice:       m.UnitPrice,
		CostPrice:       m.CostPrice,
		TaxRate:         m.TaxRate,
		QuantityInStock: m.QuantityInStock,
		ReorderLevel:    m.ReorderLevel,
		Category:        m.Category,
		Unit:            m.Unit,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
