package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoiceportal/internal/logger"
)

// RequestLogger tags every request with an id and logs method, path,
// status, and duration once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		log := logger.WithRequestID(requestID)
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
