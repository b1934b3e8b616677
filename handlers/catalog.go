package handlers

import (
	"net/http"

	"stayx/models"
	"stayx/services/catalog"
	"stayx/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the services catalog.
type CatalogHandler struct {
	Catalog catalog.Service
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ActiveHandler handles GET /api/services/active.
func (h *CatalogHandler) ActiveHandler(c *gin.Context) {
	offerings, err := h.Catalog.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", "")
		return
	}
	c.JSON(http.StatusOK, offerings)
}

// ComingSoonHandler handles GET /api/services/coming-soon.
func (h *CatalogHandler) ComingSoonHandler(c *gin.Context) {
	offerings, err := h.Catalog.ListComingSoon(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", "")
		return
	}
	c.JSON(http.StatusOK, offerings)
}

// UpsertHandler handles PUT /api/admin/services.
func (h *CatalogHandler) UpsertHandler(c *gin.Context) {
	var offering models.ServiceOffering
	if err := c.ShouldBindJSON(&offering); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	saved, err := h.Catalog.Upsert(c.Request.Context(), &offering)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to save service", err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteHandler handles DELETE /api/admin/services/:id.
func (h *CatalogHandler) DeleteHandler(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
