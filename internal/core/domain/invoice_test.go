package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/facturio/facturio/internal/core/domain"
)

func testInvoice(status domain.InvoiceStatus, total string) *domain.Invoice {
	inv := &domain.Invoice{
		InvoiceID: "inv-1",
		Number:    "INV-00001",
		Status:    status,
	}
	inv.Total = d(total)
	return inv
}

func TestApplyPaidAmount_FullyCovered(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusSent, "100")
	inv.ApplyPaidAmount(d("100"))
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
	assert.True(t, inv.PaidAmount.Equal(d("100")))
}

func TestApplyPaidAmount_Overpaid(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusPartial, "100")
	inv.ApplyPaidAmount(d("120"))
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
}

func TestApplyPaidAmount_PartiallyCovered(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusSent, "100")
	inv.ApplyPaidAmount(d("40"))
	assert.Equal(t, domain.InvoiceStatusPartial, inv.Status)
	assert.True(t, inv.PaidAmount.Equal(d("40")))
}

func TestApplyPaidAmount_DraftKeepsStatus(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusDraft, "100")
	inv.ApplyPaidAmount(d("100"))
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.PaidAmount.Equal(d("100")))
}

func TestApplyPaidAmount_CancelledKeepsStatus(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusCancelled, "100")
	inv.ApplyPaidAmount(d("50"))
	assert.Equal(t, domain.InvoiceStatusCancelled, inv.Status)
}

func TestApplyPaidAmount_ZeroRevertsToSent(t *testing.T) {
	// all payments deleted again: a payment-derived status goes back to sent
	inv := testInvoice(domain.InvoiceStatusPaid, "100")
	inv.ApplyPaidAmount(d("0"))
	assert.Equal(t, domain.InvoiceStatusSent, inv.Status)

	inv = testInvoice(domain.InvoiceStatusPartial, "100")
	inv.ApplyPaidAmount(d("0"))
	assert.Equal(t, domain.InvoiceStatusSent, inv.Status)

	// overdue is not payment-derived and stays
	inv = testInvoice(domain.InvoiceStatusOverdue, "100")
	inv.ApplyPaidAmount(d("0"))
	assert.Equal(t, domain.InvoiceStatusOverdue, inv.Status)
}

func TestApplyPaidAmount_ZeroTotalWithPayment(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusSent, "0")
	inv.ApplyPaidAmount(d("10"))
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
}

func TestMarkPaid(t *testing.T) {
	inv := testInvoice(domain.InvoiceStatusSent, "250")
	inv.MarkPaid()
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
	assert.True(t, inv.PaidAmount.Equal(d("250")))
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	inv := testInvoice(domain.InvoiceStatusSent, "100")
	inv.DueDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, inv.IsOverdue(today))

	// due today is not overdue yet
	inv.DueDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, inv.IsOverdue(today))

	inv.DueDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, inv.IsOverdue(today))

	// partial past due is overdue
	inv.Status = domain.InvoiceStatusPartial
	inv.DueDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, inv.IsOverdue(today))

	// paid invoices are never overdue regardless of due date
	inv.Status = domain.InvoiceStatusPaid
	assert.False(t, inv.IsOverdue(today))

	// stored overdue status reports overdue even without date arithmetic
	inv.Status = domain.InvoiceStatusOverdue
	inv.DueDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, inv.IsOverdue(today))
}
