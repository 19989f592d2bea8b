package http

import "github.com/gin-gonic/gin"

// Register attaches the auth routes. Both routes sit behind the API-key
// guard; login additionally carries the rate limiter.
func (h *Handler) Register(rg *gin.RouterGroup, apiKeyGuard, loginLimiter gin.HandlerFunc) {
	rg.POST("/login", loginLimiter, apiKeyGuard, h.login)
	rg.POST("/logout", apiKeyGuard, h.logout)
}
