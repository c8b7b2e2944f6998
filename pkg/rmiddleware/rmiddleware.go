package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/gegidze/arena/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route group to callers holding one of the required
// roles. AuthMiddleware must have run first so the DB-backed role is set.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := middleware.GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		for _, required := range requiredRoles {
			if strings.EqualFold(role, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": "You don't have permission to access this resource",
		})
	}
}

// AdminMiddleware is a convenience middleware for admin-only access.
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}
