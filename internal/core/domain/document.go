package domain

import "github.com/shopspring/decimal"

// DocumentType identifies one of the numbered document families.
type DocumentType string

const (
	DocTypeInvoice       DocumentType = "INVOICE"
	DocTypeProforma      DocumentType = "PROFORMA"
	DocTypeDeliveryNote  DocumentType = "DELIVERY_NOTE"
	DocTypeCustomerOrder DocumentType = "CUSTOMER_ORDER"
	DocTypeSupplierOrder DocumentType = "SUPPLIER_ORDER"
)

// Prefix returns the human-readable number prefix for the document type.
func (t DocumentType) Prefix() string {
	switch t {
	case DocTypeInvoice:
		return "INV"
	case DocTypeProforma:
		return "PRO"
	case DocTypeDeliveryNote:
		return "BL"
	case DocTypeCustomerOrder:
		return "CMD"
	case DocTypeSupplierOrder:
		return "PO"
	}
	return ""
}

// IsValid checks if the type is a known DocumentType.
func (t DocumentType) IsValid() bool {
	return t.Prefix() != ""
}

// DocumentTotals holds the header-level monetary aggregates of a financial
// document. They are derived from the document's line items and must never
// be stale relative to them.
type DocumentTotals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}

// Recalculate replaces the totals with the sum over the given line items.
func (t *DocumentTotals) Recalculate(items []LineItem) {
	*t = SumLineItems(items)
}
