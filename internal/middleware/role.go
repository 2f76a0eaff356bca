package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

// RequireRole runs after AuthMiddleware and rejects callers whose token
// carries a different role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get(ContextUserRole)
		if got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + "_required"})
			return
		}
		c.Next()
	}
}
