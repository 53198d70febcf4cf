package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request counts, durations and sizes.  The path label is
// the matched route template so ids do not explode label cardinality;
// unmatched requests are labelled "unmatched".
func Metrics(metrics *prometheus.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}
		method := c.Request.Method
		active := metrics.HTTPActiveRequests.WithLabelValues(method)
		active.Inc()
		start := time.Now()

		c.Next()

		active.Dec()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}
		prometheus.RecordHTTPRequest(metrics, method, path, c.Writer.Status(), time.Since(start), size)
	}
}

//Personal.AI order the ending
