package handlers

import (
	"net/http"

	userRepo "stylebook/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler covers the authenticated profile surface.
type UserHandler struct {
	Users userRepo.UserRepository
}

func NewUserHandler(users userRepo.UserRepository) *UserHandler {
	return &UserHandler{Users: users}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.Users.GetByID(c.Request.Context(), userID.(string))
	if err != nil {
		getLogger(c).Error("failed to get user profile", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler updates the authenticated user's profile fields.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	u, err := h.Users.Update(c.Request.Context(), userID.(string), fields)
	if err != nil {
		getLogger(c).Error("failed to update profile", zap.Error(err))
		jsonError(c, http.StatusBadRequest, "failed to update profile: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateFCMTokenHandler stores the device push token for the caller.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.Users.UpdateFCMToken(c.Request.Context(), userID.(string), req.Token); err != nil {
		getLogger(c).Error("failed to update FCM token", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to update push token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "push token updated"})
}
