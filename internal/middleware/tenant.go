package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantGuard ensures a usable tenant context before any document or
// catalog route runs. AuthMiddleware sets the tenant ID from the token
// claims; the guard rejects requests where it is missing or malformed so
// handlers can assume a valid tenant scope.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextKeyTenantID)
		if !exists {
			abortTenantRequired(c)
			return
		}
		tenantID, ok := val.(uuid.UUID)
		if !ok || tenantID == uuid.Nil {
			abortTenantRequired(c)
			return
		}
		c.Next()
	}
}

func abortTenantRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": "tenant context required"},
	})
}
