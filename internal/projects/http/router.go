package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Read routes
// require only the API-key guard; mutating routes run the session guard
// first, then the API-key guard.
func (h *Handler) Register(rg *gin.RouterGroup, sessionGuard, apiKeyGuard gin.HandlerFunc) {
	rg.GET("", apiKeyGuard, h.list)
	rg.GET("/:id", apiKeyGuard, h.getByID)
	rg.POST("", sessionGuard, apiKeyGuard, h.create)
	rg.PUT("/:id", sessionGuard, apiKeyGuard, h.update)
	rg.DELETE("/:id", sessionGuard, apiKeyGuard, h.delete)
}
