package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
)

// Services bundles the collaborators the HTTP layer needs.
type Services struct {
	Auth     service.IAuthService
	Profile  service.IProfileService
	Activity service.IActivityService
	Progress service.IProgressService
	Health   Pinger
}

// SetupAPI registers every /api/v1 route. limiter may be nil to disable rate
// limiting of log appends.
func SetupAPI(router *gin.Engine, svcs Services, limiter *middleware.RateLimiter) {
	router.Use(middleware.ErrorHandler())

	NewHealthHandler(svcs.Health).RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	{
		auth := middleware.AuthMiddleware(svcs.Auth)
		appendLimit := func(c *gin.Context) { c.Next() }
		if limiter != nil {
			appendLimit = limiter.RateLimitMiddleware()
		}

		NewAuthHandler(svcs.Auth).RegisterRoutes(v1)
		NewProfileHandler(svcs.Profile).RegisterRoutes(v1, auth)
		NewActivityHandler(svcs.Activity).RegisterRoutes(v1, auth, appendLimit)
		NewProgressHandler(svcs.Progress).RegisterRoutes(v1, auth)
	}
}

// currentUser reads the authenticated user id; AuthMiddleware guarantees it
// on protected routes.
func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, false
	}
	return userID, true
}

// bindError reports a request body that failed validation.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
}
