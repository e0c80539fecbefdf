package repositories

import (
	"context"
	"time"

	"github.com/facturio/facturio/internal/core/domain"
)

// ReportingRepository defines operations for retrieving dashboard data.
type ReportingRepository interface {
	// GetDashboardSummary aggregates invoice, order, client and stock
	// figures as of the given date.
	GetDashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error)
}
