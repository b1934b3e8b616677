package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"stayx/database/repository"
	userRepo "stayx/database/repository/user"
	"stayx/models"
	"stayx/services/report"
	"stayx/services/session"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the super-admin dashboard endpoints.
type AdminHandler struct {
	Reports  report.Service
	Users    userRepo.Repository
	Sessions session.Service
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reports report.Service, users userRepo.Repository, sessions session.Service) *AdminHandler {
	return &AdminHandler{Reports: reports, Users: users, Sessions: sessions}
}

// OverviewHandler handles GET /api/admin/overview.
func (h *AdminHandler) OverviewHandler(c *gin.Context) {
	ov, err := h.Reports.Overview(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to build admin overview", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "")
		return
	}
	c.JSON(http.StatusOK, ov)
}

// UsersHandler handles GET /api/admin/users.
func (h *AdminHandler) UsersHandler(c *gin.Context) {
	users, err := h.Reports.ListUsers(c.Request.Context(), queryLimit(c, 100))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// TransactionsHandler handles GET /api/admin/transactions.
func (h *AdminHandler) TransactionsHandler(c *gin.Context) {
	txs, err := h.Reports.ListTransactions(c.Request.Context(), queryLimit(c, 100))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load transactions", "")
		return
	}
	c.JSON(http.StatusOK, txs)
}

// UpdateRoleHandler handles PUT /api/admin/users/:id/role. The cached role
// is invalidated so the change takes effect on the next request.
func (h *AdminHandler) UpdateRoleHandler(c *gin.Context) {
	var req struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if !req.Role.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "Unknown role", string(req.Role))
		return
	}

	uid := c.Param("id")
	if err := h.Users.UpdateRole(c.Request.Context(), uid, req.Role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		utils.GetLogger().Error("failed to update role", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update role", "")
		return
	}

	if err := h.Sessions.InvalidateRole(c.Request.Context(), uid); err != nil {
		utils.GetLogger().Warn("failed to invalidate cached role", zap.String("uid", uid), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "role": req.Role})
}

func queryLimit(c *gin.Context, def int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 500 {
		return def
	}
	return n
}
