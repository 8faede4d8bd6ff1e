package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with the chat user, path, status
// and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		userID, _ := UserID(c)
		log.Printf("[Request] user=%d %s %s status=%d latency=%s",
			userID, c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
