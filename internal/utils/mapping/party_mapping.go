package mapping

import (
	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:      d.ClientID,
		Name:          d.Name,
		Company:       d.Company,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		City:          d.City,
		PostalCode:    d.PostalCode,
		Country:       d.Country,
		TaxID:         d.TaxID,
		ContactPerson: d.ContactPerson,
		PaymentTerms:  d.PaymentTerms,
		CreditLimit:   d.CreditLimit,
		IsActive:      d.IsActive,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:      m.ClientID,
		Name:          m.Name,
		Company:       m.Company,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		City:          m.City,
		PostalCode:    m.PostalCode,
		Country:       m.Country,
		TaxID:         m.TaxID,
		ContactPerson: m.ContactPerson,
		PaymentTerms:  m.PaymentTerms,
		CreditLimit:   m.CreditLimit,
		IsActive:      m.IsActive,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:    d.SupplierID,
		Name:          d.Name,
		Company:       d.Company,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		City:          d.City,
		PostalCode:    d.PostalCode,
		Country:       d.Country,
		TaxID:         d.TaxID,
		ContactPerson: d.ContactPerson,
		PaymentTerms:  d.PaymentTerms,
		IsActive:      d.IsActive,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:    m.SupplierID,
		Name:          m.Name,
		Company:       m.Company,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		City:          m.City,
		PostalCode:    m.PostalCode,
		Country:       m.Country,
		TaxID:         m.TaxID,
		ContactPerson: m.ContactPerson,
		PaymentTerms:  m.PaymentTerms,
		IsActive:      m.IsActive,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}
