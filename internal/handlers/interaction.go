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

type InteractionHandler struct {
	log            *logger.Logger
	interactionSvc services.InteractionService
}

func NewInteractionHandler(log *logger.Logger, interactionSvc services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		log:            log.With("handler", "InteractionHandler"),
		interactionSvc: interactionSvc,
	}
}

// POST /api/interactions
// Appends a view/like/purchase event for the authenticated user.
func (h *InteractionHandler) Track(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
		Type      string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", errors.New("invalid product id"))
		return
	}

	interaction, err := h.interactionSvc.Record(c.Request.Context(), rd.UserID, productID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInteractionKind), errors.Is(err, services.ErrInvalidArgument):
			response.RespondError(c, http.StatusBadRequest, "invalid_interaction", err)
		case errors.Is(err, services.ErrStorageUnavailable):
			response.RespondError(c, http.StatusServiceUnavailable, "storage_unavailable", errors.New("failed to record interaction"))
		default:
			response.RespondError(c, http.StatusInternalServerError, "interaction_failed", errors.New("failed to record interaction"))
		}
		return
	}
	response.RespondCreated(c, interaction)
}
