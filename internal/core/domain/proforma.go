package domain

import "time"

// ProformaInvoice is a quote: structurally an invoice without a payment
// ledger, with its own status vocabulary and an expiry date instead of a
// due date.
type ProformaInvoice struct {
	ProformaID  string         `json:"proformaID"`
	Number      string         `json:"number"`
	ClientID    string         `json:"clientID"`
	IssueDate   time.Time      `json:"issueDate"`
	ExpiryDate  time.Time      `json:"expiryDate"`
	Status      ProformaStatus `json:"status"`
	Description string         `json:"description"`
	Notes       string         `json:"notes"`
	DocumentTotals
	Items []LineItem `json:"items,omitempty"`
	AuditFields
}
