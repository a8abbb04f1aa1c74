package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
	"github.com/pulsecheck-app/pulsecheck-api/internal/platform/logger"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

// AssessmentStore implements the store.AssessmentStore interface using
// PostgreSQL.
type AssessmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAssessmentStore creates a new PostgreSQL implementation of
// store.AssessmentStore.
func NewAssessmentStore(db store.DBTX, log *slog.Logger) *AssessmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AssessmentStore{
		db:     db,
		logger: log.With(slog.String("component", "assessment_store")),
	}
}

// Ensure AssessmentStore implements store.AssessmentStore
var _ store.AssessmentStore = (*AssessmentStore)(nil)

// Create implements store.AssessmentStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *AssessmentStore) Create(ctx context.Context, assessment *domain.Assessment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := assessment.Validate(); err != nil {
		log.Warn("assessment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return err
	}

	query := `
		INSERT INTO assessments (id, user_id, occurred_at, mood, stress, workload, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		assessment.ID,
		assessment.UserID,
		assessment.OccurredAt,
		assessment.Mood,
		assessment.Stress,
		assessment.Workload,
		assessment.Notes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during assessment creation",
				slog.String("assessment_id", assessment.ID.String()),
				slog.String("user_id", assessment.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, assessment.UserID)
		}
		log.Error("failed to create assessment",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return err
	}

	log.Info("assessment created",
		slog.String("assessment_id", assessment.ID.String()),
		slog.String("user_id", assessment.UserID.String()))
	return nil
}

// GetByID implements store.AssessmentStore.GetByID.
// Returns store.ErrAssessmentNotFound if the assessment does not exist.
func (s *AssessmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, occurred_at, mood, stress, workload, notes
		FROM assessments
		WHERE id = $1
	`

	var a domain.Assessment
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.UserID,
		&a.OccurredAt,
		&a.Mood,
		&a.Stress,
		&a.Workload,
		&a.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAssessmentNotFound
		}
		log.Error("failed to get assessment",
			slog.String("error", err.Error()),
			slog.String("assessment_id", id.String()))
		return nil, err
	}

	a.OccurredAt = a.OccurredAt.UTC()
	return &a, nil
}

// ListByUserSince implements store.AssessmentStore.ListByUserSince.
func (s *AssessmentStore) ListByUserSince(
	ctx context.Context,
	userID uuid.UUID,
	since, until time.Time,
) ([]domain.Assessment, error) {
	query := `
		SELECT id, user_id, occurred_at, mood, stress, workload, notes
		FROM assessments
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at ASC
	`
	return s.list(ctx, query, userID, since.UTC(), until.UTC())
}

// ListByMonth implements store.AssessmentStore.ListByMonth. The calendar
// month boundary is the half-open UTC interval [startOfMonth, startOfNextMonth).
func (s *AssessmentStore) ListByMonth(
	ctx context.Context,
	year, month int,
) ([]domain.Assessment, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, user_id, occurred_at, mood, stress, workload, notes
		FROM assessments
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at ASC
	`
	return s.list(ctx, query, start, end)
}

// WithTx implements store.AssessmentStore.WithTx.
func (s *AssessmentStore) WithTx(tx *sql.Tx) store.AssessmentStore {
	return &AssessmentStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *AssessmentStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Assessment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list assessments", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var assessments []domain.Assessment
	for rows.Next() {
		var a domain.Assessment
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.OccurredAt,
			&a.Mood,
			&a.Stress,
			&a.Workload,
			&a.Notes,
		); err != nil {
			log.Error("failed to scan assessment row", slog.String("error", err.Error()))
			return nil, err
		}
		a.OccurredAt = a.OccurredAt.UTC()
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assessments, nil
}
