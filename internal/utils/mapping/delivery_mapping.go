package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelDeliveryNote converts a domain DeliveryNote to a model DeliveryNote
func ToModelDeliveryNote(d domain.DeliveryNote) models.DeliveryNote {
	return models.DeliveryNote{
		DeliveryID:       d.DeliveryID,
		Number:           d.Number,
		ClientID:         d.ClientID,
		InvoiceID:        d.InvoiceID,
		DeliveryDate:     d.DeliveryDate,
		ExpectedDelivery: d.ExpectedDelivery,
		ActualDelivery:   d.ActualDelivery,
		Description:      d.Description,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeliveryNote converts a model DeliveryNote to a domain DeliveryNote
func ToDomainDeliveryNote(m models.DeliveryNote) domain.DeliveryNote {
	return domain.DeliveryNote{
		DeliveryID:       m.DeliveryID,
		Number:           m.Number,
		ClientID:         m.ClientID,
		InvoiceID:        m.InvoiceID,
		DeliveryDate:     m.DeliveryDate,
		ExpectedDelivery: m.ExpectedDelivery,
		ActualDelivery:   m.ActualDelivery,
		Description:      m.Description,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDeliveryNoteSlice converts a slice of model DeliveryNotes to domain ones
func ToDomainDeliveryNoteSlice(ms []models.DeliveryNote) []domain.DeliveryNote {
	ds := make([]domain.DeliveryNote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeliveryNote(m)
	}
	return ds
}

// ToModelDeliveryItem converts a domain DeliveryItem to a model DeliveryItem
func ToModelDeliveryItem(d domain.DeliveryItem) models.DeliveryItem {
	return models.DeliveryItem{
		ItemID:            d.ItemID,
		DeliveryID:        d.DeliveryID,
		ProductID:         d.ProductID,
		Description:       d.Description,
		QuantityOrdered:   d.QuantityOrdered,
		QuantityDelivered: d.QuantityDelivered,
		UnitPrice:         d.UnitPrice,
	}
}

// ToDomainDeliveryItem converts a model DeliveryItem to a domain DeliveryItem
func ToDomainDeliveryItem(m models.DeliveryItem) domain.DeliveryItem {
	return domain.DeliveryItem{
		ItemID:            m.ItemID,
		DeliveryID:        m.DeliveryID,
		ProductID:         m.ProductID,
		Description:       m.Description,
		QuantityOrdered:   m.QuantityOrdered,
		QuantityDelivered: m.QuantityDelivered,
		UnitPrice:         m.UnitPrice,
	}
}

// ToDomainDeliveryItemSlice converts a slice of model DeliveryItems to domain ones
func ToDomainDeliveryItemSlice(ms []models.DeliveryItem) []domain.DeliveryItem {
	ds := make([]domain.DeliveryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeliveryItem(m)
	}
	return ds
}
