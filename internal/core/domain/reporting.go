package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the figures shown on the dashboard.
type DashboardSummary struct {
	TotalInvoiced    decimal.Decimal `json:"totalInvoiced"`    // sum of non-cancelled invoice totals
	TotalPaid        decimal.Decimal `json:"totalPaid"`        // sum of invoice paid amounts
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"` // invoiced minus paid
	InvoicesByStatus map[InvoiceStatus]int64 `json:"invoicesByStatus"`
	OverdueCount     int64           `json:"overdueCount"` // sent/partial past due date
	OpenOrders       int64           `json:"openOrders"`   // customer orders not completed/cancelled
	ActiveClients    int64           `json:"activeClients"`
	LowStockProducts int64           `json:"lowStockProducts"`
}
