package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		ItemID:      d.ItemID,
		DocumentID:  d.DocumentID,
		ProductID:   d.ProductID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		Subtotal:    d.Subtotal,
		Tax:         d.Tax,
		Total:       d.Total,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		ItemID:      m.ItemID,
		DocumentID:  m.DocumentID,
		ProductID:   m.ProductID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		Subtotal:    m.Subtotal,
		Tax:         m.Tax,
		Total:       m.Total,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
