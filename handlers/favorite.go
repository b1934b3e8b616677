package handlers

import (
	"errors"
	"net/http"
	"time"

	"stayx/database/repository"
	favoriteRepo "stayx/database/repository/favorite"
	propertyRepo "stayx/database/repository/property"
	"stayx/middleware"
	"stayx/models"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavoriteHandler serves the per-user favorites list.
type FavoriteHandler struct {
	Favorites  favoriteRepo.Repository
	Properties propertyRepo.Repository
}

// NewFavoriteHandler constructs a FavoriteHandler.
func NewFavoriteHandler(favorites favoriteRepo.Repository, properties propertyRepo.Repository) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites, Properties: properties}
}

// AddHandler handles POST /api/favorites/:propertyId. Favoriting a property
// twice is a no-op.
func (h *FavoriteHandler) AddHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	propertyID := c.Param("propertyId")

	if _, err := h.Properties.GetByID(c.Request.Context(), propertyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Property not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add favorite", "")
		return
	}

	already, err := h.Favorites.Exists(c.Request.Context(), uid, propertyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add favorite", "")
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Favorite added"})
		return
	}

	f := &models.Favorite{
		UserID:     uid,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Favorites.Add(c.Request.Context(), f); err != nil {
		utils.GetLogger().Error("failed to add favorite", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add favorite", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite added"})
}

// RemoveHandler handles DELETE /api/favorites/:propertyId. Removing a
// favorite that does not exist is a no-op.
func (h *FavoriteHandler) RemoveHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	if err := h.Favorites.Remove(c.Request.Context(), uid, c.Param("propertyId")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove favorite", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

// ListHandler handles GET /api/favorites. The response carries the full
// property documents; favorites whose property has since been deleted are
// skipped.
func (h *FavoriteHandler) ListHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	favs, err := h.Favorites.ListByUser(c.Request.Context(), uid)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load favorites", "")
		return
	}

	props := make([]models.Property, 0, len(favs))
	for _, f := range favs {
		p, err := h.Properties.GetByID(c.Request.Context(), f.PropertyID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load favorites", "")
			return
		}
		props = append(props, *p)
	}
	c.JSON(http.StatusOK, props)
}
