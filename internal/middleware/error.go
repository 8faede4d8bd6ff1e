package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrSearchSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSearchSessionForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrGoalUndefined):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrArchiveUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrInvalidGatewayKey):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides internal details of unexpected failures.
func messageFor(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return "profile not found: set your profile first"
	case status == http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return err.Error()
	}
}

// ErrorHandler turns errors attached with c.Error into {"error": "..."}
// responses and recovers from panics.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[ErrorHandler] panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("[ErrorHandler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(status, ErrorResponse{Error: messageFor(err, status)})
	}
}
