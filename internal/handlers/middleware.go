package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/magnani/pagseguro-pix/internal/logger"
)

// RequestIDMiddleware adiciona um request id único a cada requisição
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(logger.RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger registra cada requisição com logrus
func RequestLogger() gin.HandlerFunc {
	log := logger.NewModuleLogger("http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := logger.LoggerWithContext(log, c).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"uri":        c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    latency.String(),
			"latency_ns": latency.Nanoseconds(),
			"remote_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithError(c.Errors.Last())
		}
		entry.Info("http_request")
	}
}
