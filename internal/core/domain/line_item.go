package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/apperrors"
)

// LineItem is one row of a financial document: a quantity of a product or
// service at a unit price and tax rate. Subtotal, Tax and Total are derived
// and are never set directly; they are recomputed on every mutation of
// Quantity, UnitPrice or TaxRate.
type LineItem struct {
	ItemID      string           `json:"itemID"`
	DocumentID  string           `json:"documentID"`
	ProductID   *string          `json:"productID,omitempty"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TaxRate     decimal.Decimal  `json:"taxRate"` // percent, e.g. 20 for 20%
	Subtotal    decimal.Decimal  `json:"subtotal"`
	Tax         decimal.Decimal  `json:"tax"`
	Total       decimal.Decimal  `json:"total"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ValidateLineItemInput checks the user-settable fields of a line item.
func ValidateLineItemInput(quantity, unitPrice, taxRate decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	if taxRate.IsNegative() {
		return fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// NewLineItem builds a line item attached to a document and computes its
// derived amounts.
func NewLineItem(itemID, documentID, description string, quantity, unitPrice, taxRate decimal.Decimal, productID *string, now time.Time) (LineItem, error) {
	if err := ValidateLineItemInput(quantity, unitPrice, taxRate); err != nil {
		return LineItem{}, err
	}
	item := LineItem{
		ItemID:      itemID,
		DocumentID:  documentID,
		ProductID:   productID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TaxRate:     taxRate,
		CreatedAt:   now,
	}
	item.Recompute()
	return item, nil
}

// Update applies the provided fields (nil means keep the current value),
// re-validates and recomputes the derived amounts.
func (li *LineItem) Update(quantity, unitPrice, taxRate *decimal.Decimal, description *string) error {
	q, p, r := li.Quantity, li.UnitPrice, li.TaxRate
	if quantity != nil {
		q = *quantity
	}
	if unitPrice != nil {
		p = *unitPrice
	}
	if taxRate != nil {
		r = *taxRate
	}
	if err := ValidateLineItemInput(q, p, r); err != nil {
		return err
	}
	li.Quantity, li.UnitPrice, li.TaxRate = q, p, r
	if description != nil {
		li.Description = *description
	}
	li.Recompute()
	return nil
}

// Recompute recalculates the derived amounts. The tax is computed from the
// rounded subtotal, not the raw product; the source system rounds at each
// stage and totals must match it exactly.
func (li *LineItem) Recompute() {
	li.Subtotal = RoundMoney(li.Quantity.Mul(li.UnitPrice))
	li.Tax = RoundMoney(li.Subtotal.Mul(li.TaxRate).Div(decimal.NewFromInt(100)))
	li.Total = li.Subtotal.Add(li.Tax)
}

// SumLineItems aggregates line items into header totals, in slice order.
func SumLineItems(items []LineItem) DocumentTotals {
	totals := DocumentTotals{
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Total:     decimal.Zero,
	}
	for _, item := range items {
		totals.Subtotal = totals.Subtotal.Add(item.Subtotal)
		totals.TaxAmount = totals.TaxAmount.Add(item.Tax)
	}
	totals.Total = totals.Subtotal.Add(totals.TaxAmount)
	return totals
}
