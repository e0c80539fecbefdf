package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exact", "10.00", "10"},
		{"half rounds up", "2.345", "2.35"},
		{"half rounds away from zero when negative", "-2.345", "-2.35"},
		{"below half rounds down", "2.344", "2.34"},
		{"above half rounds up", "2.346", "2.35"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.RoundMoney(d(tt.in))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNewLineItem_ComputesDerivedAmounts(t *testing.T) {
	now := time.Now()

	// 2 x 16.665 = 33.33 exactly after rounding; tax is computed from the
	// rounded subtotal, so 20% of 33.33 = 6.666 rounds to 6.67.
	item, err := domain.NewLineItem("item-1", "doc-1", "Widget", d("2"), d("16.665"), d("20"), nil, now)
	require.NoError(t, err)

	assert.True(t, item.Subtotal.Equal(d("33.33")), "subtotal %s", item.Subtotal)
	assert.True(t, item.Tax.Equal(d("6.67")), "tax %s", item.Tax)
	assert.True(t, item.Total.Equal(d("40.00")), "total %s", item.Total)
}

func TestNewLineItem_ZeroTaxRate(t *testing.T) {
	item, err := domain.NewLineItem("item-1", "doc-1", "Service", d("3"), d("9.99"), d("0"), nil, time.Now())
	require.NoError(t, err)

	assert.True(t, item.Subtotal.Equal(d("29.97")))
	assert.True(t, item.Tax.IsZero())
	assert.True(t, item.Total.Equal(d("29.97")))
}

func TestNewLineItem_FractionalQuantity(t *testing.T) {
	// 1.5 x 7.333 = 10.9995 rounds to 11.00; 10% of 11.00 = 1.10.
	item, err := domain.NewLineItem("item-1", "doc-1", "Bulk", d("1.5"), d("7.333"), d("10"), nil, time.Now())
	require.NoError(t, err)

	assert.True(t, item.Subtotal.Equal(d("11.00")))
	assert.True(t, item.Tax.Equal(d("1.10")))
	assert.True(t, item.Total.Equal(d("12.10")))
}

func TestNewLineItem_Validation(t *testing.T) {
	now := time.Now()

	_, err := domain.NewLineItem("i", "doc", "x", d("0"), d("1"), d("0"), nil, now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewLineItem("i", "doc", "x", d("-1"), d("1"), d("0"), nil, now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewLineItem("i", "doc", "x", d("1"), d("-0.01"), d("0"), nil, now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewLineItem("i", "doc", "x", d("1"), d("1"), d("-5"), nil, now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// zero unit price is allowed (free-of-charge lines)
	_, err = domain.NewLineItem("i", "doc", "x", d("1"), d("0"), d("0"), nil, now)
	assert.NoError(t, err)
}

func TestLineItem_Update_Recomputes(t *testing.T) {
	item, err := domain.NewLineItem("item-1", "doc-1", "Widget", d("2"), d("10"), d("20"), nil, time.Now())
	require.NoError(t, err)

	newQty := d("3")
	require.NoError(t, item.Update(&newQty, nil, nil, nil))

	assert.True(t, item.Subtotal.Equal(d("30")))
	assert.True(t, item.Tax.Equal(d("6")))
	assert.True(t, item.Total.Equal(d("36")))

	// invalid update leaves the item untouched
	badQty := d("0")
	err = item.Update(&badQty, nil, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, item.Quantity.Equal(d("3")))
	assert.True(t, item.Total.Equal(d("36")))
}

func TestSumLineItems(t *testing.T) {
	now := time.Now()

	// Two identical lines whose per-line amounts already carry a rounding
	// step: header totals are sums of rounded line amounts, not a re-rounded
	// raw sum.
	a, err := domain.NewLineItem("i1", "doc", "A", d("2"), d("16.665"), d("20"), nil, now)
	require.NoError(t, err)
	b, err := domain.NewLineItem("i2", "doc", "B", d("2"), d("16.665"), d("20"), nil, now)
	require.NoError(t, err)

	totals := domain.SumLineItems([]domain.LineItem{a, b})
	assert.True(t, totals.Subtotal.Equal(d("66.66")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("13.34")), "tax %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(d("80.00")), "total %s", totals.Total)
}

func TestSumLineItems_Empty(t *testing.T) {
	totals := domain.SumLineItems(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}
