package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Assessment-specific validation errors
var (
	// ErrAssessmentIDEmpty is returned when an assessment ID is empty or nil.
	ErrAssessmentIDEmpty = errors.New("assessment ID cannot be empty")

	// ErrAssessmentUserIDEmpty is returned when an assessment's user ID is empty or nil.
	ErrAssessmentUserIDEmpty = errors.New("assessment user ID cannot be empty")

	// ErrAssessmentTimeEmpty is returned when an assessment has no occurrence time.
	ErrAssessmentTimeEmpty = errors.New("assessment occurrence time cannot be zero")
)

// Ordinal level bounds for self-reported metrics.
const (
	MinLevel = 1
	MaxLevel = 5
)

// Assessment is a single self-reported wellness check-in: mood, stress and
// workload, each an ordinal level between MinLevel and MaxLevel. Assessments
// are immutable once stored; the derivation logic only ever reads them.
type Assessment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Mood       int       `json:"mood"`
	Stress     int       `json:"stress"`
	Workload   int       `json:"workload"`
	Notes      string    `json:"notes,omitempty"`
}

// NewAssessment creates a new Assessment for the given user.
// It generates a new UUID and normalizes the occurrence time to UTC.
// Returns an error if validation fails.
func NewAssessment(
	userID uuid.UUID,
	occurredAt time.Time,
	mood, stress, workload int,
	notes string,
) (*Assessment, error) {
	a := &Assessment{
		ID:         uuid.New(),
		UserID:     userID,
		OccurredAt: occurredAt.UTC(),
		Mood:       mood,
		Stress:     stress,
		Workload:   workload,
		Notes:      notes,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Assessment has valid data.
// Ordinal values outside MinLevel..MaxLevel are a contract violation and are
// reported with the offending field name, never silently clamped.
func (a *Assessment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAssessmentIDEmpty
	}

	if a.UserID == uuid.Nil {
		return ErrAssessmentUserIDEmpty
	}

	if a.OccurredAt.IsZero() {
		return ErrAssessmentTimeEmpty
	}

	if err := ValidateLevel("mood", a.Mood); err != nil {
		return err
	}
	if err := ValidateLevel("stress", a.Stress); err != nil {
		return err
	}
	return ValidateLevel("workload", a.Workload)
}

// ValidateLevel checks a single ordinal metric value against the 1..5 contract.
// The returned error wraps ErrOrdinalOutOfRange and names the offending field.
func ValidateLevel(field string, value int) error {
	if value < MinLevel || value > MaxLevel {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrOrdinalOutOfRange, field, MinLevel, MaxLevel, value)
	}
	return nil
}
