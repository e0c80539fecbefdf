package domain

// Status values deliberately keep the lowercase vocabulary of the legacy
// system so that exported records stay comparable.

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the status is a known InvoiceStatus.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusPartial, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can move to the target status via an
// explicit user action. Payment-driven updates (sent/partial/overdue to
// partial/paid) are derivations handled by the payment ledger and also pass
// through this table.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft:
		return target == InvoiceStatusSent || target == InvoiceStatusCancelled
	case InvoiceStatusSent:
		return target == InvoiceStatusPaid || target == InvoiceStatusPartial ||
			target == InvoiceStatusOverdue || target == InvoiceStatusCancelled
	case InvoiceStatusPartial:
		return target == InvoiceStatusPaid || target == InvoiceStatusOverdue ||
			target == InvoiceStatusCancelled
	case InvoiceStatusOverdue:
		return target == InvoiceStatusPaid || target == InvoiceStatusPartial ||
			target == InvoiceStatusCancelled
	case InvoiceStatusPaid, InvoiceStatusCancelled:
		return false // terminal
	}
	return false
}

// ProformaStatus represents the lifecycle state of a proforma invoice.
type ProformaStatus string

const (
	ProformaStatusDraft    ProformaStatus = "draft"
	ProformaStatusSent     ProformaStatus = "sent"
	ProformaStatusAccepted ProformaStatus = "accepted"
	ProformaStatusRejected ProformaStatus = "rejected"
	ProformaStatusExpired  ProformaStatus = "expired"
)

// IsValid checks if the status is a known ProformaStatus.
func (s ProformaStatus) IsValid() bool {
	switch s {
	case ProformaStatusDraft, ProformaStatusSent, ProformaStatusAccepted,
		ProformaStatusRejected, ProformaStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can move to the target status.
func (s ProformaStatus) CanTransitionTo(target ProformaStatus) bool {
	switch s {
	case ProformaStatusDraft:
		return target == ProformaStatusSent
	case ProformaStatusSent:
		return target == ProformaStatusAccepted || target == ProformaStatusRejected ||
			target == ProformaStatusExpired
	case ProformaStatusAccepted, ProformaStatusRejected, ProformaStatusExpired:
		return false // terminal
	}
	return false
}

// CustomerOrderStatus represents the lifecycle state of a customer order.
type CustomerOrderStatus string

const (
	CustomerOrderStatusDraft     CustomerOrderStatus = "draft"
	CustomerOrderStatusPending   CustomerOrderStatus = "pending"
	CustomerOrderStatusConfirmed CustomerOrderStatus = "confirmed"
	CustomerOrderStatusPartial   CustomerOrderStatus = "partial"
	CustomerOrderStatusCompleted CustomerOrderStatus = "completed"
	CustomerOrderStatusCancelled CustomerOrderStatus = "cancelled"
)

// IsValid checks if the status is a known CustomerOrderStatus.
func (s CustomerOrderStatus) IsValid() bool {
	switch s {
	case CustomerOrderStatusDraft, CustomerOrderStatusPending, CustomerOrderStatusConfirmed,
		CustomerOrderStatusPartial, CustomerOrderStatusCompleted, CustomerOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can move to the target status.
func (s CustomerOrderStatus) CanTransitionTo(target CustomerOrderStatus) bool {
	switch s {
	case CustomerOrderStatusDraft:
		return target == CustomerOrderStatusPending || target == CustomerOrderStatusCancelled
	case CustomerOrderStatusPending:
		return target == CustomerOrderStatusConfirmed || target == CustomerOrderStatusCancelled
	case CustomerOrderStatusConfirmed:
		return target == CustomerOrderStatusPartial || target == CustomerOrderStatusCompleted ||
			target == CustomerOrderStatusCancelled
	case CustomerOrderStatusPartial:
		return target == CustomerOrderStatusCompleted || target == CustomerOrderStatusCancelled
	case CustomerOrderStatusCompleted, CustomerOrderStatusCancelled:
		return false // terminal
	}
	return false
}

// SupplierOrderStatus represents the lifecycle state of a supplier
// purchase order.
type SupplierOrderStatus string

const (
	SupplierOrderStatusDraft     SupplierOrderStatus = "draft"
	SupplierOrderStatusSent      SupplierOrderStatus = "sent"
	SupplierOrderStatusConfirmed SupplierOrderStatus = "confirmed"
	SupplierOrderStatusPartial   SupplierOrderStatus = "partial"
	SupplierOrderStatusReceived  SupplierOrderStatus = "received"
	SupplierOrderStatusCancelled SupplierOrderStatus = "cancelled"
)

// IsValid checks if the status is a known SupplierOrderStatus.
func (s SupplierOrderStatus) IsValid() bool {
	switch s {
	case SupplierOrderStatusDraft, SupplierOrderStatusSent, SupplierOrderStatusConfirmed,
		SupplierOrderStatusPartial, SupplierOrderStatusReceived, SupplierOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can move to the target status.
func (s SupplierOrderStatus) CanTransitionTo(target SupplierOrderStatus) bool {
	switch s {
	case SupplierOrderStatusDraft:
		return target == SupplierOrderStatusSent || target == SupplierOrderStatusCancelled
	case SupplierOrderStatusSent:
		return target == SupplierOrderStatusConfirmed || target == SupplierOrderStatusCancelled
	case SupplierOrderStatusConfirmed:
		return target == SupplierOrderStatusPartial || target == SupplierOrderStatusReceived ||
			target == SupplierOrderStatusCancelled
	case SupplierOrderStatusPartial:
		return target == SupplierOrderStatusReceived || target == SupplierOrderStatusCancelled
	case SupplierOrderStatusReceived, SupplierOrderStatusCancelled:
		return false // terminal
	}
	return false
}
