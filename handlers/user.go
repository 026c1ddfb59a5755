package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account registration, authentication and profile
// endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("User registration failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, auth)
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	usr, err := h.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load profile", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	userID := c.GetString("userID")
	updated, err := h.UserService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RevokeAuthTokenHandler handles POST /api/users/logout. It invalidates
// the caller's current bearer token.
func (h *UserHandler) RevokeAuthTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	if err := h.UserService.RevokeAuthToken(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to revoke auth token", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
