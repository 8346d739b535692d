package http

import (
	"github.com/gin-gonic/gin"

	"university-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// The chat route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.Detail)
	}
}
