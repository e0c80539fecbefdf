package domain

import "github.com/shopspring/decimal"

// Client is a customer the business invoices.
type Client struct {
	ClientID      string           `json:"clientID"`
	Name          string           `json:"name"`
	Company       string           `json:"company"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	PostalCode    string           `json:"postalCode"`
	Country       string           `json:"country"`
	TaxID         string           `json:"taxID"`
	ContactPerson string           `json:"contactPerson"`
	PaymentTerms  string           `json:"paymentTerms"`
	CreditLimit   *decimal.Decimal `json:"creditLimit,omitempty"`
	IsActive      bool             `json:"isActive"`
	Notes         string           `json:"notes"`
	AuditFields
}

// DisplayName returns "name (company)" when a company is set.
func (c *Client) DisplayName() string {
	if c.Company != "" {
		return c.Name + " (" + c.Company + ")"
	}
	return c.Name
}

// Supplier is a vendor the business orders from.
type Supplier struct {
	SupplierID    string `json:"supplierID"`
	Name          string `json:"name"`
	Company       string `json:"company"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	TaxID         string `json:"taxID"`
	ContactPerson string `json:"contactPerson"`
	PaymentTerms  string `json:"paymentTerms"`
	IsActive      bool   `json:"isActive"`
	Notes         string `json:"notes"`
	AuditFields
}

// DisplayName returns "name (company)" when a company is set.
func (s *Supplier) DisplayName() string {
	if s.Company != "" {
		return s.Name + " (" + s.Company + ")"
	}
	return s.Name
}
