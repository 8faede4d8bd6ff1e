package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/api"
	"github.com/pageza/fittrack/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(svcs api.Services, limiter *middleware.RateLimiter, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS middleware
	router.Use(middleware.CORS(corsOrigins))

	api.SetupAPI(router, svcs, limiter)
	return router
}
