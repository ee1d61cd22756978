package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type RecommendationHandler struct {
	recommendations services.RecommendationServiceInterface
}

func NewRecommendationHandler(recommendations services.RecommendationServiceInterface) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

type StackResponse struct {
	Stack models.ToolStack `json:"stack"`
}

// Recommend runs the engine on a full profile in one request.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var draft models.DraftProfile
	if !decodeJSON(w, r, &draft) {
		return
	}

	stack, err := h.recommendations.Recommend(r.Context(), draft)
	if err != nil {
		writeServiceError(w, r, "recommend", err)
		return
	}
	writeJSON(w, http.StatusOK, StackResponse{Stack: stack})
}
