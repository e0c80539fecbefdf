package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/apperrors"
)

// PaymentMethod enumerates how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodOther        PaymentMethod = "other"
)

// IsValid checks if the method is a known PaymentMethod.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer,
		PaymentMethodCreditCard, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is one immutable entry of the payment ledger. Creating one is
// the trigger for recomputing the owning invoice's paid amount and status.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	InvoiceID   string          `json:"invoiceID"`
	PaymentDate time.Time       `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// NewPayment validates and builds a ledger entry.
func NewPayment(paymentID, invoiceID string, amount decimal.Decimal, date time.Time, method PaymentMethod, reference, notes string, createdBy string, now time.Time) (Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Payment{}, fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrValidation)
	}
	if !method.IsValid() {
		return Payment{}, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, method)
	}
	return Payment{
		PaymentID:   paymentID,
		InvoiceID:   invoiceID,
		PaymentDate: date,
		Amount:      amount,
		Method:      method,
		Reference:   reference,
		Notes:       notes,
		CreatedAt:   now,
		CreatedBy:   createdBy,
	}, nil
}

// SumPayments returns the ledger total for an invoice.
func SumPayments(payments []Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}
