package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain/wellness"
	"github.com/pulsecheck-app/pulsecheck-api/internal/platform/logger"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

// ReportService produces the organization-wide monthly report.
type ReportService interface {
	// MonthlyReport composes the report for one calendar month (UTC).
	// Returns ErrInvalidPeriod if year or month is out of bounds.
	MonthlyReport(ctx context.Context, year, month int) (*wellness.MonthlyReport, error)
}

// Verify interface compliance at compile time
var _ ReportService = (*reportService)(nil)

type reportService struct {
	assessments store.AssessmentStore
	composer    *wellness.Composer
	logger      *slog.Logger
}

// NewReportService creates a ReportService sharing the given composer.
func NewReportService(
	assessments store.AssessmentStore,
	composer *wellness.Composer,
	log *slog.Logger,
) ReportService {
	if assessments == nil {
		panic("assessments store cannot be nil")
	}
	if composer == nil {
		panic("composer cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &reportService{
		assessments: assessments,
		composer:    composer,
		logger:      log.With(slog.String("component", "report_service")),
	}
}

// MonthlyReport implements ReportService.
func (s *reportService) MonthlyReport(
	ctx context.Context,
	year, month int,
) (*wellness.MonthlyReport, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Bounds are checked here, before any storage work, so the composer
	// only ever sees a valid period.
	if year < 1 {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}

	records, err := s.assessments.ListByMonth(ctx, year, month)
	if err != nil {
		log.Error("failed to load monthly assessments",
			slog.String("error", err.Error()),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to load monthly assessments: %w", err)
	}

	report, err := s.composer.ComposeMonthly(year, month, records)
	if err != nil {
		log.Error("monthly report composition failed",
			slog.String("error", err.Error()),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, err
	}

	log.Debug("monthly report composed",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("findings", len(report.KeyFindings)))
	return report, nil
}
