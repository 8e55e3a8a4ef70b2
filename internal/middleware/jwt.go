package middleware

import (
	"net/http"
	"strings"

	"marketplace_api/internal/repository"
	"marketplace_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "currentUser"

// JWTAuthMiddleware validates the bearer token and resolves its subject to a
// live user row. Every failure mode (missing header, malformed token, wrong
// key, expired token, deleted user) yields the same 401 so callers cannot
// tell which check failed.
func JWTAuthMiddleware(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			unauthorized(c)
			return
		}
		user, err := users.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(ContextUserKey, user) // Store the authenticated user in context
		c.Next()
	}
}

// unauthorized aborts with the uniform challenge response.
func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}
