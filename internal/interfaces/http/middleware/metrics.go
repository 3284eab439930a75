package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver is satisfied by metrics.Metrics.
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records request counts and latency labelled by route template, so
// /api/clients/:sid stays one series regardless of the ID.
func Metrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
