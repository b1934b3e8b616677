package middleware

import (
	"net/http"

	"stayx/models"
	"stayx/services/session"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireRole allows the request through only when the caller's stored role
// is one of the given roles. Must run after FirebaseAuthMiddleware.
func RequireRole(sessions session.Service, roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		uid, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		role, err := sessions.ResolveRole(c.Request.Context(), uid)
		if err != nil {
			utils.GetLogger().Error("role resolution failed", zap.String("uid", uid), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unable to verify permissions"})
			return
		}

		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set("userRole", string(role))
		c.Next()
	}
}

// Role returns the resolved role from the context, if RequireRole ran.
func Role(c *gin.Context) models.Role {
	v, ok := c.Get("userRole")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return models.Role(s)
}
