package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain/wellness"
	"github.com/pulsecheck-app/pulsecheck-api/internal/platform/logger"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

// RecommendationService produces personalized recommendations from a user's
// recent assessment history.
type RecommendationService interface {
	// RecommendationsForUser derives recommendations from the user's
	// assessments within the configured lookback window. A user with no
	// history receives exactly the onboarding recommendation, never an
	// empty list.
	RecommendationsForUser(ctx context.Context, userID uuid.UUID) ([]wellness.Recommendation, error)
}

// Verify interface compliance at compile time
var _ RecommendationService = (*recommendationService)(nil)

type recommendationService struct {
	assessments store.AssessmentStore
	engine      *wellness.Engine
	templates   wellness.TemplateTable
	lookback    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewRecommendationService creates a RecommendationService. The engine and
// template table are built once at startup and shared read-only across
// requests.
func NewRecommendationService(
	assessments store.AssessmentStore,
	engine *wellness.Engine,
	templates wellness.TemplateTable,
	lookbackDays int,
	log *slog.Logger,
) RecommendationService {
	if assessments == nil {
		panic("assessments store cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if lookbackDays <= 0 {
		lookbackDays = wellness.NewDefaultParams().LookbackDays
	}
	if log == nil {
		log = slog.Default()
	}

	return &recommendationService{
		assessments: assessments,
		engine:      engine,
		templates:   templates,
		lookback:    time.Duration(lookbackDays) * 24 * time.Hour,
		now:         time.Now,
		logger:      log.With(slog.String("component", "recommendation_service")),
	}
}

// RecommendationsForUser implements RecommendationService.
func (s *recommendationService) RecommendationsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]wellness.Recommendation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	until := s.now().UTC()
	since := until.Add(-s.lookback)

	records, err := s.assessments.ListByUserSince(ctx, userID, since, until)
	if err != nil {
		log.Error("failed to load assessment history",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load assessment history: %w", err)
	}

	window, err := wellness.Aggregate(records)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate assessments: %w", err)
	}

	categories := s.engine.Evaluate(window, window.HasData())

	recommendations, err := wellness.Synthesize(categories, s.templates)
	if err != nil {
		// A missing template is a deployment defect; surface it loudly
		// instead of returning a partial list.
		log.Error("recommendation synthesis failed",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	log.Debug("recommendations derived",
		slog.String("user_id", userID.String()),
		slog.Int("assessments", window.Count),
		slog.Int("recommendations", len(recommendations)))
	return recommendations, nil
}
