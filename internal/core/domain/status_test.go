package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturio/facturio/internal/core/domain"
)

func TestInvoiceStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to domain.InvoiceStatus
	}{
		{domain.InvoiceStatusDraft, domain.InvoiceStatusSent},
		{domain.InvoiceStatusDraft, domain.InvoiceStatusCancelled},
		{domain.InvoiceStatusSent, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusSent, domain.InvoiceStatusPartial},
		{domain.InvoiceStatusSent, domain.InvoiceStatusOverdue},
		{domain.InvoiceStatusSent, domain.InvoiceStatusCancelled},
		{domain.InvoiceStatusPartial, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusPartial, domain.InvoiceStatusOverdue},
		{domain.InvoiceStatusPartial, domain.InvoiceStatusCancelled},
		{domain.InvoiceStatusOverdue, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusOverdue, domain.InvoiceStatusPartial},
		{domain.InvoiceStatusOverdue, domain.InvoiceStatusCancelled},
	}
	for _, tr := range allowed {
		assert.True(t, tr.from.CanTransitionTo(tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct {
		from, to domain.InvoiceStatus
	}{
		{domain.InvoiceStatusDraft, domain.InvoiceStatusPaid},
		{domain.InvoiceStatusDraft, domain.InvoiceStatusPartial},
		{domain.InvoiceStatusSent, domain.InvoiceStatusDraft},
		{domain.InvoiceStatusPaid, domain.InvoiceStatusSent},
		{domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled},
		{domain.InvoiceStatusCancelled, domain.InvoiceStatusSent},
	}
	for _, tr := range denied {
		assert.False(t, tr.from.CanTransitionTo(tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestProformaStatusTransitions(t *testing.T) {
	assert.True(t, domain.ProformaStatusDraft.CanTransitionTo(domain.ProformaStatusSent))
	assert.True(t, domain.ProformaStatusSent.CanTransitionTo(domain.ProformaStatusAccepted))
	assert.True(t, domain.ProformaStatusSent.CanTransitionTo(domain.ProformaStatusRejected))
	assert.True(t, domain.ProformaStatusSent.CanTransitionTo(domain.ProformaStatusExpired))

	assert.False(t, domain.ProformaStatusDraft.CanTransitionTo(domain.ProformaStatusAccepted))
	assert.False(t, domain.ProformaStatusAccepted.CanTransitionTo(domain.ProformaStatusSent))
	assert.False(t, domain.ProformaStatusRejected.CanTransitionTo(domain.ProformaStatusSent))
	assert.False(t, domain.ProformaStatusExpired.CanTransitionTo(domain.ProformaStatusSent))
}

func TestCustomerOrderStatusTransitions(t *testing.T) {
	assert.True(t, domain.CustomerOrderStatusDraft.CanTransitionTo(domain.CustomerOrderStatusPending))
	assert.True(t, domain.CustomerOrderStatusPending.CanTransitionTo(domain.CustomerOrderStatusConfirmed))
	assert.True(t, domain.CustomerOrderStatusConfirmed.CanTransitionTo(domain.CustomerOrderStatusPartial))
	assert.True(t, domain.CustomerOrderStatusConfirmed.CanTransitionTo(domain.CustomerOrderStatusCompleted))
	assert.True(t, domain.CustomerOrderStatusPartial.CanTransitionTo(domain.CustomerOrderStatusCompleted))

	assert.False(t, domain.CustomerOrderStatusDraft.CanTransitionTo(domain.CustomerOrderStatusConfirmed))
	assert.False(t, domain.CustomerOrderStatusCompleted.CanTransitionTo(domain.CustomerOrderStatusCancelled))
	assert.False(t, domain.CustomerOrderStatusCancelled.CanTransitionTo(domain.CustomerOrderStatusDraft))
}

func TestSupplierOrderStatusTransitions(t *testing.T) {
	assert.True(t, domain.SupplierOrderStatusDraft.CanTransitionTo(domain.SupplierOrderStatusSent))
	assert.True(t, domain.SupplierOrderStatusSent.CanTransitionTo(domain.SupplierOrderStatusConfirmed))
	assert.True(t, domain.SupplierOrderStatusConfirmed.CanTransitionTo(domain.SupplierOrderStatusReceived))
	assert.True(t, domain.SupplierOrderStatusPartial.CanTransitionTo(domain.SupplierOrderStatusReceived))

	assert.False(t, domain.SupplierOrderStatusDraft.CanTransitionTo(domain.SupplierOrderStatusConfirmed))
	assert.False(t, domain.SupplierOrderStatusReceived.CanTransitionTo(domain.SupplierOrderStatusSent))
	assert.False(t, domain.SupplierOrderStatusCancelled.CanTransitionTo(domain.SupplierOrderStatusDraft))
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, domain.InvoiceStatusDraft.IsValid())
	assert.False(t, domain.InvoiceStatus("bogus").IsValid())
	assert.True(t, domain.ProformaStatusAccepted.IsValid())
	assert.False(t, domain.ProformaStatus("paid").IsValid())
	assert.True(t, domain.CustomerOrderStatusPending.IsValid())
	assert.False(t, domain.CustomerOrderStatus("sent").IsValid())
	assert.True(t, domain.SupplierOrderStatusReceived.IsValid())
	assert.False(t, domain.SupplierOrderStatus("pending").IsValid())
}
