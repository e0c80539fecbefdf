package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryNote accompanies goods to a client. It carries no monetary
// totals; its items track ordered versus delivered quantities.
type DeliveryNote struct {
	DeliveryID       string         `json:"deliveryID"`
	Number           string         `json:"number"`
	ClientID         string         `json:"clientID"`
	InvoiceID        *string        `json:"invoiceID,omitempty"`
	DeliveryDate     time.Time      `json:"deliveryDate"`
	ExpectedDelivery *time.Time     `json:"expectedDelivery,omitempty"`
	ActualDelivery   *time.Time     `json:"actualDelivery,omitempty"`
	Description      string         `json:"description"`
	Notes            string         `json:"notes"`
	Items            []DeliveryItem `json:"items,omitempty"`
	AuditFields
}

// DeliveryItem is one row of a delivery note.
type DeliveryItem struct {
	ItemID            string          `json:"itemID"`
	DeliveryID        string          `json:"deliveryID"`
	ProductID         *string         `json:"productID,omitempty"`
	Description       string          `json:"description"`
	QuantityOrdered   decimal.Decimal `json:"quantityOrdered"`
	QuantityDelivered decimal.Decimal `json:"quantityDelivered"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
}
