package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 请求日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		log.Printf("[API] %s %s -> %d (%v)",
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
		)
	}
}
