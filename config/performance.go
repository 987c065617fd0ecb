package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		c.Set("requestId", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()

		latency := time.Since(start)

		log.Printf("[PERF] %s %s %s | Status: %d | Time: %v",
			reqID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > 200*time.Millisecond {
			log.Printf("SLOW REQUEST: %s %s %s took %v",
				reqID, c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
