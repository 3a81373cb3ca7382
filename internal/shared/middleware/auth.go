package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cuentista-backend/pkg/jwt"
)

// Context keys set by AuthMiddleware.
const (
	CtxAdminID    = "adminID"
	CtxAdminEmail = "adminEmail"
	CtxAdminRole  = "adminRole"
)

// AuthMiddleware verifies the bearer token and injects the admin identity
// into the gin context. Guard failures answer with a true HTTP 401, unlike
// business outcomes which ride in the envelope body.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(CtxAdminID, claims.UserID)
		c.Set(CtxAdminEmail, claims.Email)
		c.Set(CtxAdminRole, claims.Role)

		c.Next()
	}
}

// AdminIDFromContext returns the authenticated admin id set by the guard.
func AdminIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxAdminID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
