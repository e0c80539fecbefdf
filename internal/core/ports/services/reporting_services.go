package services

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/core/domain"
)

// ReportingService exposes the dashboard aggregates.
type ReportingService interface {
	// GetDashboardSummary computes the aggregate figures as of the given day.
	GetDashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error)
}

// ExportService renders documents into downloadable artifacts.
type ExportService interface {
	// RenderInvoicePDF renders an invoice with its line items as a PDF.
	RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error)

	// RenderProformaPDF renders a proforma with its line items as a PDF.
	RenderProformaPDF(ctx context.Context, proformaID string) ([]byte, error)

	// ExportInvoicesExcel renders the filtered invoice list as an XLSX workbook.
	ExportInvoicesExcel(ctx context.Context, today time.Time) ([]byte, error)
}
