package api

import (
	"net/http"

	"github.com/pulsecheck-app/pulsecheck-api/internal/api/middleware"
	"github.com/pulsecheck-app/pulsecheck-api/internal/api/shared"
	"github.com/pulsecheck-app/pulsecheck-api/internal/service"
)

// RecommendationHandler serves personalized recommendations.
type RecommendationHandler struct {
	recommendations service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendations service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// Get handles GET /api/recommendations, deriving recommendations from the
// authenticated user's recent assessment history. A user with no history
// receives the onboarding recommendation, never an empty list.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	recommendations, err := h.recommendations.RecommendationsForUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), "Failed to derive recommendations", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RecommendationsResponse{
		Recommendations: recommendations,
	})
}
