package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group behind a role claim set by
// JWTAuthUserMiddleware. Admins pass every role check.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get("role")
		r, _ := got.(string)
		if r != role && r != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// JWTAuthAdminMiddleware restricts a route to admin accounts.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return RequireRole("admin")
}
