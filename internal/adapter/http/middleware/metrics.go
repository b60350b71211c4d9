package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/funkybooboo/alle-sub000/internal/metrics"
)

// Metrics records request latency labelled by route template, so ids in the
// path do not blow up the label set.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
