package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearloop/wearloop-backend/internal/http/response"
	"github.com/wearloop/wearloop-backend/internal/services"
	"github.com/wearloop/wearloop-backend/internal/types"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/user/register
func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Age      *int   `json:"age"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	user := types.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
	}
	created, token, err := ah.authService.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			response.RespondError(c, http.StatusBadRequest, "invalid_registration", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "registration_failed", errors.New("registration failed"))
		return
	}
	response.RespondCreated(c, gin.H{"user": created, "token": token})
}

// POST /api/user/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	user, token, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", errors.New("invalid credentials"))
			return
		}
		if errors.Is(err, services.ErrInvalidArgument) {
			response.RespondError(c, http.StatusBadRequest, "invalid_login", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "login_failed", errors.New("login failed"))
		return
	}
	response.RespondOK(c, gin.H{"user": user, "token": token})
}
