package dto

import (
	"time"

	"github.com/facturio/facturio/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	Company       string `json:"company"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	TaxID         string `json:"taxID"`
	ContactPerson string `json:"contactPerson"`
	PaymentTerms  string `json:"paymentTerms"`
	Notes         string `json:"notes"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	Company       *string `json:"company"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	PostalCode    *string `json:"postalCode"`
	Country       *string `json:"country"`
	TaxID         *string `json:"taxID"`
	ContactPerson *string `json:"contactPerson"`
	PaymentTerms  *string `json:"paymentTerms"`
	Notes         *string `json:"notes"`
	IsActive      *bool   `json:"isActive"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	Name          string    `json:"name"`
	Company       string    `json:"company"`
	DisplayName   string    `json:"displayName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	PostalCode    string    `json:"postalCode"`
	Country       string    `json:"country"`
	TaxID         string    `json:"taxID"`
	ContactPerson string    `json:"contactPerson"`
	PaymentTerms  string    `json:"paymentTerms"`
	Notes         string    `json:"notes"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		Company:       s.Company,
		DisplayName:   s.DisplayName(),
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		PostalCode:    s.PostalCode,
		Country:       s.Country,
		TaxID:         s.TaxID,
		ContactPerson: s.ContactPerson,
		PaymentTerms:  s.PaymentTerms,
		Notes:         s.Notes,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

// ListSuppliersParams holds the query parameters of a supplier listing.
type ListSuppliersParams struct {
	ListParams
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active"`
}

// ListSuppliersResponse is the paginated supplier listing envelope.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
