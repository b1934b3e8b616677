package handlers

import (
	"net/http"

	"stayx/config"
	"stayx/utils"

	"github.com/gin-gonic/gin"
)

// StatusHandler handles GET /api/status.
func StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"env":    config.GetEnv(),
		"health": utils.GetHealthStatus(),
	})
}
