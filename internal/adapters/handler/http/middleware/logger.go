package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one entry per request, including any errors handlers
// attached with c.Error.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if userID, ok := GetUserID(c); ok {
			fields = append(fields, zap.String("user_id", userID))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("Request failed", append(fields, zap.String("errors", c.Errors.String()))...)
		case len(c.Errors) > 0:
			log.Warn("Request rejected", append(fields, zap.String("errors", c.Errors.String()))...)
		default:
			log.Info("Request", fields...)
		}
	}
}
