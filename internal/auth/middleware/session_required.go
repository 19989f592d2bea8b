package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devportfolio/portfolio-backend/internal/auth/session"
)

const usernameContextKey = "auth_username"

// SessionRequired requires an authenticated session. The resolved username
// is stored on the request context for handlers that want it.
func SessionRequired(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := store.Get(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(usernameContextKey, username)
		c.Next()
	}
}

// Username returns the session username resolved by SessionRequired.
func Username(c *gin.Context) string {
	return c.GetString(usernameContextKey)
}
