package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pulsecheck-app/pulsecheck-api/internal/api/middleware"
	"github.com/pulsecheck-app/pulsecheck-api/internal/api/shared"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

// Default and maximum lookback, in days, for listing a user's own
// assessments.
const (
	defaultListDays = 30
	maxListDays     = 365
)

// AssessmentHandler handles assessment recording and listing.
type AssessmentHandler struct {
	assessmentStore store.AssessmentStore
	validator       *validator.Validate
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentStore store.AssessmentStore) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentStore: assessmentStore,
		validator:       validator.New(),
	}
}

// Create handles POST /api/assessments, recording a self-assessment for the
// authenticated user.
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateAssessmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	assessment, err := domain.NewAssessment(
		userID, req.OccurredAt, req.Mood, req.Stress, req.Workload, req.Notes)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	if err := h.assessmentStore.Create(r.Context(), assessment); err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewAssessmentResponse(assessment))
}

// Get handles GET /api/assessments/{id}. A member can only read their own
// assessments; someone else's ID answers 404 rather than 403 so IDs cannot
// be probed for existence.
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid assessment ID")
		return
	}

	assessment, err := h.assessmentStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAssessmentNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Assessment not found")
			return
		}
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to load assessment", err)
		return
	}

	if assessment.UserID != userID {
		shared.RespondWithError(w, r, http.StatusNotFound, "Assessment not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAssessmentResponse(assessment))
}

// List handles GET /api/assessments, returning the authenticated user's
// assessments from the last N days (default 30), oldest first.
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	days := defaultListDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxListDays {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Query parameter 'days' must be an integer between 1 and 365")
			return
		}
		days = parsed
	}

	until := time.Now().UTC()
	since := until.AddDate(0, 0, -days)

	assessments, err := h.assessmentStore.ListByUserSince(r.Context(), userID, since, until)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to list assessments", err)
		return
	}

	responses := make([]AssessmentResponse, 0, len(assessments))
	for i := range assessments {
		responses = append(responses, NewAssessmentResponse(&assessments[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}
