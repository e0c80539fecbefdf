package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/middleware"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService builds the dashboard aggregation service.
func NewReportingService(repo portsrepo.ReportingRepository) *reportingService {
	return &reportingService{reportingRepo: repo}
}

func (s *reportingService) GetDashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.reportingRepo.GetDashboardSummary(ctx, asOf)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	return summary, nil
}
