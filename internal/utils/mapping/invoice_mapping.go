package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		Number:      d.Number,
		ClientID:    d.ClientID,
		InvoiceDate: d.InvoiceDate,
		DueDate:     d.DueDate,
		Status:      string(d.Status),
		Description: d.Description,
		Notes:       d.Notes,
		Subtotal:    d.Subtotal,
		TaxAmount:   d.TaxAmount,
		Total:       d.Total,
		PaidAmount:  d.PaidAmount,
		SentAt:      d.SentAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		Number:      m.Number,
		ClientID:    m.ClientID,
		InvoiceDate: m.InvoiceDate,
		DueDate:     m.DueDate,
		Status:      domain.InvoiceStatus(m.Status),
		Description: m.Description,
		Notes:       m.Notes,
		PaidAmount:  m.PaidAmount,
		SentAt:      m.SentAt,
		DocumentTotals: domain.DocumentTotals{
			Subtotal:  m.Subtotal,
			TaxAmount: m.TaxAmount,
			Total:     m.Total,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
