package models

import (
	"github.com/shopspring/decimal"
)

// Client represents a customer row.
type Client struct {
	ClientID      string           `db:"client_id"`
	Name          string           `db:"name"`
	Company       string           `db:"company"`
	Email         string           `db:"email"`
	Phone         string           `db:"phone"`
	Address       string           `db:"address"`
	City          string           `db:"city"`
	PostalCode    string           `db:"postal_code"`
	Country       string           `db:"country"`
	TaxID         string           `db:"tax_id"`
	ContactPerson string           `db:"contact_person"`
	PaymentTerms  string           `db:"payment_terms"`
	CreditLimit   *decimal.Decimal `db:"credit_limit"` // Nullable
	IsActive      bool             `db:"is_active"`
	Notes         string           `db:"notes"`
	AuditFields
}

// Supplier represents a vendor row.
type Supplier struct {
	SupplierID    string `db:"supplier_id"`
	Name          string `db:"name"`
	Company       string `db:"company"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Address       string `db:"address"`
	City          string `db:"city"`
	PostalCode    string `db:"postal_code"`
	Country       string `db:"country"`
	TaxID         string `db:"tax_id"`
	ContactPerson string `db:"contact_person"`
	PaymentTerms  string `db:"payment_terms"`
	IsActive      bool   `db:"is_active"`
	Notes         string `db:"notes"`
	AuditFields
}
