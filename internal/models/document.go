package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem represents a line row attached to a financial document.
// document_id points into whichever header table owns the line.
type LineItem struct {
	ItemID      string          `db:"item_id"`
	DocumentID  string          `db:"document_id"`
	ProductID   *string         `db:"product_id"` // Nullable
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	Tax         decimal.Decimal `db:"tax"`
	Total       decimal.Decimal `db:"total"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Invoice represents an invoice header row.
type Invoice struct {
	InvoiceID   string          `db:"invoice_id"`
	Number      string          `db:"number"`
	ClientID    string          `db:"client_id"`
	InvoiceDate time.Time       `db:"invoice_date"`
	DueDate     time.Time       `db:"due_date"`
	Status      string          `db:"status"`
	Description string          `db:"description"`
	Notes       string          `db:"notes"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	Total       decimal.Decimal `db:"total"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	SentAt      *time.Time      `db:"sent_at"` // Nullable
	AuditFields
}

// ProformaInvoice represents a proforma header row.
type ProformaInvoice struct {
	ProformaID  string          `db:"proforma_id"`
	Number      string          `db:"number"`
	ClientID    string          `db:"client_id"`
	IssueDate   time.Time       `db:"issue_date"`
	ExpiryDate  time.Time       `db:"expiry_date"`
	Status      string          `db:"status"`
	Description string          `db:"description"`
	Notes       string          `db:"notes"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	Total       decimal.Decimal `db:"total"`
	AuditFields
}

// CustomerOrder represents a customer order header row.
type CustomerOrder struct {
	OrderID      string          `db:"order_id"`
	Number       string          `db:"number"`
	ClientID     string          `db:"client_id"`
	OrderDate    time.Time       `db:"order_date"`
	DeliveryDate *time.Time      `db:"delivery_date"` // Nullable
	Status       string          `db:"status"`
	Description  string          `db:"description"`
	Notes        string          `db:"notes"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
	Total        decimal.Decimal `db:"total"`
	AuditFields
}

// SupplierOrder represents a purchase order header row.
type SupplierOrder struct {
	OrderID          string          `db:"order_id"`
	Number           string          `db:"number"`
	SupplierID       string          `db:"supplier_id"`
	OrderDate        time.Time       `db:"order_date"`
	ExpectedDelivery *time.Time      `db:"expected_delivery"` // Nullable
	Status           string          `db:"status"`
	Description      string          `db:"description"`
	Notes            string          `db:"notes"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	TaxAmount        decimal.Decimal `db:"tax_amount"`
	Total            decimal.Decimal `db:"total"`
	AuditFields
}

// DeliveryNote represents a delivery note header row.
type DeliveryNote struct {
	DeliveryID       string     `db:"delivery_id"`
	Number           string     `db:"number"`
	ClientID         string     `db:"client_id"`
	InvoiceID        *string    `db:"invoice_id"` // Nullable
	DeliveryDate     time.Time  `db:"delivery_date"`
	ExpectedDelivery *time.Time `db:"expected_delivery"` // Nullable
	ActualDelivery   *time.Time `db:"actual_delivery"`   // Nullable
	Description      string     `db:"description"`
	Notes            string     `db:"notes"`
	AuditFields
}

// DeliveryItem represents a delivery note line row.
type DeliveryItem struct {
	ItemID            string          `db:"item_id"`
	DeliveryID        string          `db:"delivery_id"`
	ProductID         *string         `db:"product_id"` // Nullable
	Description       string          `db:"description"`
	QuantityOrdered   decimal.Decimal `db:"quantity_ordered"`
	QuantityDelivered decimal.Decimal `db:"quantity_delivered"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
}
