package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client.
type CreateClientRequest struct {
	Name          string           `json:"name" binding:"required"`
	Company       string           `json:"company"`
	Email         string           `json:"email" binding:"omitempty,email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	PostalCode    string           `json:"postalCode"`
	Country       string           `json:"country"`
	TaxID         string           `json:"taxID"`
	ContactPerson string           `json:"contactPerson"`
	PaymentTerms  string           `json:"paymentTerms"`
	CreditLimit   *decimal.Decimal `json:"creditLimit"`
	Notes         string           `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name          *string          `json:"name"`
	Company       *string          `json:"company"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	City          *string          `json:"city"`
	PostalCode    *string          `json:"postalCode"`
	Country       *string          `json:"country"`
	TaxID         *string          `json:"taxID"`
	ContactPerson *string          `json:"contactPerson"`
	PaymentTerms  *string          `json:"paymentTerms"`
	CreditLimit   *decimal.Decimal `json:"creditLimit"`
	Notes         *string          `json:"notes"`
	IsActive      *bool            `json:"isActive"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string           `json:"clientID"`
	Name          string           `json:"name"`
	Company       string           `json:"company"`
	DisplayName   string           `json:"displayName"`
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
	Notes         string           `json:"notes"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		Company:       c.Company,
		DisplayName:   c.DisplayName(),
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		City:          c.City,
		PostalCode:    c.PostalCode,
		Country:       c.Country,
		TaxID:         c.TaxID,
		ContactPerson: c.ContactPerson,
		PaymentTerms:  c.PaymentTerms,
		CreditLimit:   c.CreditLimit,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
	}
}

// ListClientsParams holds the query parameters of a client listing.
type ListClientsParams struct {
	ListParams
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active"`
}

// ListClientsResponse is the paginated client listing envelope.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
