package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wearloop/wearloop-backend/internal/http/response"
	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/requestdata"
	"github.com/wearloop/wearloop-backend/internal/services"
)

type RecommendationHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:    log.With("handler", "RecommendationHandler"),
		recSvc: recSvc,
	}
}

// GET /api/recommendations
// Cohort-based recommendations for the authenticated user. A user the
// pipeline cannot recommend for (no profile, no age) gets an empty list,
// never an error.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}

	recommendations, err := h.recSvc.RecommendationsFor(c.Request.Context(), rd.UserID)
	if err != nil {
		h.log.Warn("Recommendation request failed", "user_id", rd.UserID.String(), "error", err)
		response.RespondError(c, http.StatusServiceUnavailable, "recommendations_unavailable", errors.New("recommendations unavailable"))
		return
	}
	response.RespondOK(c, recommendations)
}
