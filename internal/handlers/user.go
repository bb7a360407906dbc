package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearloop/wearloop-backend/internal/http/response"
	"github.com/wearloop/wearloop-backend/internal/services"
)

type UserHandler struct {
	userSvc services.UserService
}

func NewUserHandler(userSvc services.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GET /api/user
func (uh *UserHandler) GetMe(c *gin.Context) {
	user, err := uh.userSvc.GetMe(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "user_not_found", errors.New("user not found"))
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "user_failed", errors.New("failed to fetch user"))
		return
	}
	response.RespondOK(c, user)
}
