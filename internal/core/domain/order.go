package domain

import "time"

// CustomerOrder is a sales order placed by a client.
type CustomerOrder struct {
	OrderID      string              `json:"orderID"`
	Number       string              `json:"number"`
	ClientID     string              `json:"clientID"`
	OrderDate    time.Time           `json:"orderDate"`
	DeliveryDate *time.Time          `json:"deliveryDate,omitempty"`
	Status       CustomerOrderStatus `json:"status"`
	Description  string              `json:"description"`
	Notes        string              `json:"notes"`
	DocumentTotals
	Items []LineItem `json:"items,omitempty"`
	AuditFields
}

// SupplierOrder is a purchase order sent to a supplier.
type SupplierOrder struct {
	OrderID          string              `json:"orderID"`
	Number           string              `json:"number"`
	SupplierID       string              `json:"supplierID"`
	OrderDate        time.Time           `json:"orderDate"`
	ExpectedDelivery *time.Time          `json:"expectedDelivery,omitempty"`
	Status           SupplierOrderStatus `json:"status"`
	Description      string              `json:"description"`
	Notes            string              `json:"notes"`
	DocumentTotals
	Items []LineItem `json:"items,omitempty"`
	AuditFields
}
