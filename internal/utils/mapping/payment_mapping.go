package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		InvoiceID:   d.InvoiceID,
		PaymentDate: d.PaymentDate,
		Amount:      d.Amount,
		Method:      string(d.Method),
		Reference:   d.Reference,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		InvoiceID:   m.InvoiceID,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Method:      domain.PaymentMethod(m.Method),
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
