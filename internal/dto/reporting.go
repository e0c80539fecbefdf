package dto

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio/internal/core/domain"
)

// DashboardSummaryResponse defines the aggregate figures shown on the
// dashboard.
type DashboardSummaryResponse struct {
	TotalInvoiced    decimal.Decimal  `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal  `json:"totalPaid"`
	TotalOutstanding decimal.Decimal  `json:"totalOutstanding"`
	InvoicesByStatus map[string]int64 `json:"invoicesByStatus"`
	OverdueCount     int64            `json:"overdueCount"`
	OpenOrders       int64            `json:"openOrders"`
	ActiveClients    int64            `json:"activeClients"`
	LowStockProducts int64            `json:"lowStockProducts"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	byStatus := make(map[string]int64, len(s.InvoicesByStatus))
	for status, count := range s.InvoicesByStatus {
		byStatus[string(status)] = count
	}
	return DashboardSummaryResponse{
		TotalInvoiced:    s.TotalInvoiced,
		TotalPaid:        s.TotalPaid,
		TotalOutstanding: s.TotalOutstanding,
		InvoicesByStatus: byStatus,
		OverdueCount:     s.OverdueCount,
		OpenOrders:       s.OpenOrders,
		ActiveClients:    s.ActiveClients,
		LowStockProducts: s.LowStockProducts,
	}
}
