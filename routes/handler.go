package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Validate a request
func HandlerWrap(f func(c *gin.Context)) gin.HandlerFunc {

	return func(c *gin.Context) {
		f(c)
	}
}

// RequestLogger logs one line per served request.
func RequestLogger(logger log.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		entry := logger.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("request served")
			return
		}
		entry.Info("request served")
	}
}
