package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
)

// AssessmentStore defines the interface for assessment persistence. It is
// the storage collaborator of the derivation pipeline: the pipeline never
// queries storage itself, it is handed pre-filtered record sets produced by
// these methods.
type AssessmentStore interface {
	// Create saves a new assessment.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, assessment *domain.Assessment) error

	// GetByID retrieves an assessment by its unique ID.
	// Returns ErrAssessmentNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error)

	// ListByUserSince returns one user's assessments with
	// occurred_at in [since, until), oldest first.
	ListByUserSince(
		ctx context.Context,
		userID uuid.UUID,
		since, until time.Time,
	) ([]domain.Assessment, error)

	// ListByMonth returns every assessment in the organization whose
	// occurred_at falls within the given calendar month, computed as the
	// half-open UTC interval [startOfMonth, startOfNextMonth), oldest first.
	ListByMonth(ctx context.Context, year, month int) ([]domain.Assessment, error)

	// WithTx returns an AssessmentStore bound to the given transaction.
	WithTx(tx *sql.Tx) AssessmentStore
}
