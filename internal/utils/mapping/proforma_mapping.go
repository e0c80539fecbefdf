package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelProforma converts a domain ProformaInvoice to a model ProformaInvoice
func ToModelProforma(d domain.ProformaInvoice) models.ProformaInvoice {
	return models.ProformaInvoice{
		ProformaID:  d.ProformaID,
		Number:      d.Number,
		ClientID:    d.ClientID,
		IssueDate:   d.IssueDate,
		ExpiryDate:  d.ExpiryDate,
		Status:      string(d.Status),
		Description: d.Description,
		Notes:       d.Notes,
		Subtotal:    d.Subtotal,
		TaxAmount:   d.TaxAmount,
		Total:       d.Total,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProforma converts a model ProformaInvoice to a domain ProformaInvoice
func ToDomainProforma(m models.ProformaInvoice) domain.ProformaInvoice {
	return domain.ProformaInvoice{
		ProformaID:  m.ProformaID,
		Number:      m.Number,
		ClientID:    m.ClientID,
		IssueDate:   m.IssueDate,
		ExpiryDate:  m.ExpiryDate,
		Status:      domain.ProformaStatus(m.Status),
		Description: m.Description,
		Notes:       m.Notes,
		DocumentTotals: domain.DocumentTotals{
			Subtotal:  m.Subtotal,
			TaxAmount: m.TaxAmount,
			Total:     m.Total,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProformaSlice converts a slice of model ProformaInvoices to domain ones
func ToDomainProformaSlice(ms []models.ProformaInvoice) []domain.ProformaInvoice {
	ds := make([]domain.ProformaInvoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProforma(m)
	}
	return ds
}
