package http

import (
	"github.com/gin-gonic/gin"

	"sofia-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both routes sit behind the per-user rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sofia := rg.Group("/sofia")
	{
		sofia.POST("/command", mw.RateLimit(), h.HandleCommand)
		sofia.GET("/actions", mw.RateLimit(), h.ListActions)
	}
}
