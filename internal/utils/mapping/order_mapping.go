package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelCustomerOrder converts a domain CustomerOrder to a model CustomerOrder
func ToModelCustomerOrder(d domain.CustomerOrder) models.CustomerOrder {
	return models.CustomerOrder{
		OrderID:      d.OrderID,
		Number:       d.Number,
		ClientID:     d.ClientID,
		OrderDate:    d.OrderDate,
		DeliveryDate: d.DeliveryDate,
		Status:       string(d.Status),
		Description:  d.Description,
		Notes:        d.Notes,
		Subtotal:     d.Subtotal,
		TaxAmount:    d.TaxAmount,
		Total:        d.Total,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomerOrder converts a model CustomerOrder to a domain CustomerOrder
func ToDomainCustomerOrder(m models.CustomerOrder) domain.CustomerOrder {
	return domain.CustomerOrder{
		OrderID:      m.OrderID,
		Number:       m.Number,
		ClientID:     m.ClientID,
		OrderDate:    m.OrderDate,
		DeliveryDate: m.DeliveryDate,
		Status:       domain.CustomerOrderStatus(m.Status),
		Description:  m.Description,
		Notes:        m.Notes,
		DocumentTotals: domain.DocumentTotals{
			Subtotal:  m.Subtotal,
			TaxAmount: m.TaxAmount,
			Total:     m.Total,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerOrderSlice converts a slice of model CustomerOrders to domain ones
func ToDomainCustomerOrderSlice(ms []models.CustomerOrder) []domain.CustomerOrder {
	ds := make([]domain.CustomerOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomerOrder(m)
	}
	return ds
}

// ToModelSupplierOrder converts a domain SupplierOrder to a model SupplierOrder
func ToModelSupplierOrder(d domain.SupplierOrder) models.SupplierOrder {
	return models.SupplierOrder{
		OrderID:          d.OrderID,
		Number:           d.Number,
		SupplierID:       d.SupplierID,
		OrderDate:        d.OrderDate,
		ExpectedDelivery: d.ExpectedDelivery,
		Status:           string(d.Status),
		Description:      d.Description,
		Notes:            d.Notes,
		Subtotal:         d.Subtotal,
		TaxAmount:        d.TaxAmount,
		Total:            d.Total,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplierOrder converts a model SupplierOrder to a domain SupplierOrder
func ToDomainSupplierOrder(m models.SupplierOrder) domain.SupplierOrder {
	return domain.SupplierOrder{
		OrderID:          m.OrderID,
		Number:           m.Number,
		SupplierID:       m.SupplierID,
		OrderDate:        m.OrderDate,
		ExpectedDelivery: m.ExpectedDelivery,
		Status:           domain.SupplierOrderStatus(m.Status),
		Description:      m.Description,
		Notes:            m.Notes,
		DocumentTotals: domain.DocumentTotals{
			Subtotal:  m.Subtotal,
			TaxAmount: m.TaxAmount,
			Total:     m.Total,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierOrderSlice converts a slice of model SupplierOrders to domain ones
func ToDomainSupplierOrderSlice(ms []models.SupplierOrder) []domain.SupplierOrder {
	ds := make([]domain.SupplierOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplierOrder(m)
	}
	return ds
}
