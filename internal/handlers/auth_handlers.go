package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// RegisterUser handles creation of a new staff/admin account.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req services.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	user, err := h.authService.RegisterUser(req)
	if err != nil {
		utils.LogError(err, "RegisterUser: Error from authService.RegisterUser")
		switch {
		case errors.Is(err, services.ErrUsernameExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Username already exists.", err.Error()))
		case errors.Is(err, services.ErrUnknownRole):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Unknown role.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register user.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

// LoginUser handles login and token issuance.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	resp, err := h.authService.LoginUser(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password.", ""))
			return
		}
		utils.LogError(err, "LoginUser: Error from authService.LoginUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log in.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser returns the profile of the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", ""))
		return
	}

	user, err := h.authService.GetUserProfile(userID.(int64))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", ""))
			return
		}
		utils.LogError(err, "GetCurrentUser: Error from authService.GetUserProfile")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch profile.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, user)
}
