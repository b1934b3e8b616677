package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"stayx/database/repository"
	"stayx/middleware"
	"stayx/models"
	"stayx/services/property"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler serves property listings and owner CRUD.
type PropertyHandler struct {
	Properties property.Service
}

// NewPropertyHandler constructs a PropertyHandler.
func NewPropertyHandler(props property.Service) *PropertyHandler {
	return &PropertyHandler{Properties: props}
}

// FeaturedHandler handles GET /api/properties/featured.
func (h *PropertyHandler) FeaturedHandler(c *gin.Context) {
	limit := 6
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}
	props, err := h.Properties.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		utils.GetLogger().Error("failed to list featured properties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load properties", "")
		return
	}
	c.JSON(http.StatusOK, props)
}

// GetHandler handles GET /api/properties/:id.
func (h *PropertyHandler) GetHandler(c *gin.Context) {
	p, err := h.Properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Property not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load property", "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// OwnerListHandler handles GET /api/properties/owner.
func (h *PropertyHandler) OwnerListHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	props, err := h.Properties.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load properties", "")
		return
	}
	c.JSON(http.StatusOK, props)
}

// CreateHandler handles POST /api/properties.
func (h *PropertyHandler) CreateHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	var in models.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	p, err := h.Properties.Create(c.Request.Context(), uid, in)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create property", err.Error())
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateHandler handles PUT /api/properties/:id.
func (h *PropertyHandler) UpdateHandler(c *gin.Context) {
	actor := actorSnapshot(c)

	var in models.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	p, err := h.Properties.Update(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		writePropertyError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteHandler handles DELETE /api/properties/:id.
func (h *PropertyHandler) DeleteHandler(c *gin.Context) {
	actor := actorSnapshot(c)
	if err := h.Properties.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writePropertyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// actorSnapshot builds the acting identity from the auth and role middleware.
func actorSnapshot(c *gin.Context) *models.AuthSnapshot {
	uid, _ := middleware.UserID(c)
	return &models.AuthSnapshot{UID: uid, Role: middleware.Role(c)}
}

func writePropertyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Property not found", "")
	case errors.Is(err, property.ErrNotPropertyOwner):
		utils.JSONError(c, http.StatusForbidden, "Not the property owner", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Property operation failed", err.Error())
	}
}
