package http

import (
	"github.com/gin-gonic/gin"

	"github.com/enesozmus/betterrest/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Recommendations are rate limited; the model detail route is cheap and
// stays open.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sleep := rg.Group("/sleep")
	{
		sleep.POST("/recommendations", mw.RateLimit(), h.Recommend)
		sleep.GET("/model", h.ModelInfo)
	}
}
