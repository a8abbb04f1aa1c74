package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain/wellness"
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the payload for exchanging a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned on successful registration, login or refresh.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// CreateAssessmentRequest is the payload for recording a self-assessment.
// The three levels share the same 1..5 ordinal scale.
type CreateAssessmentRequest struct {
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
	Mood       int       `json:"mood"        validate:"required,min=1,max=5"`
	Stress     int       `json:"stress"      validate:"required,min=1,max=5"`
	Workload   int       `json:"workload"    validate:"required,min=1,max=5"`
	Notes      string    `json:"notes"       validate:"max=2000"`
}

// AssessmentResponse is the API representation of a stored assessment.
type AssessmentResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Mood       int       `json:"mood"`
	Stress     int       `json:"stress"`
	Workload   int       `json:"workload"`
	Notes      string    `json:"notes,omitempty"`
}

// NewAssessmentResponse converts a domain assessment to its API shape.
func NewAssessmentResponse(a *domain.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		OccurredAt: a.OccurredAt,
		Mood:       a.Mood,
		Stress:     a.Stress,
		Workload:   a.Workload,
		Notes:      a.Notes,
	}
}

// RecommendationsResponse wraps the derived recommendations for a user.
type RecommendationsResponse struct {
	Recommendations []wellness.Recommendation `json:"recommendations"`
}
