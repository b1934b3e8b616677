package handlers

import (
	"errors"
	"net/http"

	"stayx/database/repository"
	userRepo "stayx/database/repository/user"
	"stayx/middleware"
	"stayx/models"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the caller's own profile.
type UserHandler struct {
	Users userRepo.Repository
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users userRepo.Repository) *UserHandler {
	return &UserHandler{Users: users}
}

// MeHandler handles GET /api/users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}
	usr, err := h.Users.GetByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		utils.GetLogger().Error("failed to load user", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	usr, err := h.Users.GetByID(c.Request.Context(), uid)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}

	if req.Name != "" {
		usr.Name = req.Name
	}
	if req.ProfileImage != "" {
		usr.ProfileImage = req.ProfileImage
	}
	if req.Preferences != nil {
		usr.Preferences = req.Preferences
	}
	if req.FCMToken != "" {
		usr.FCMToken = req.FCMToken
	}

	if err := h.Users.Update(c.Request.Context(), usr); err != nil {
		utils.GetLogger().Error("failed to update user", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}
