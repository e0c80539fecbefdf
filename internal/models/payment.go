package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a payment row in the invoice ledger.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	InvoiceID   string          `db:"invoice_id"`
	PaymentDate time.Time       `db:"payment_date"`
	Amount      decimal.Decimal `db:"amount"`
	Method      string          `db:"method"`
	Reference   string          `db:"reference"`
	Notes       string          `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
	CreatedBy   string          `db:"created_by"`
}
