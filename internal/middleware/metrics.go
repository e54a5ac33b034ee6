package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight requests per route.
// Unmatched paths are reported under a single label to bound cardinality.
func (mw Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.metrics == nil {
			c.Next()
			return
		}

		mw.metrics.InFlight.Inc()
		start := time.Now()
		defer func() {
			rec := recover()
			status := c.Writer.Status()
			if rec != nil {
				status = http.StatusInternalServerError
			}

			mw.metrics.InFlight.Dec()
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request.Method
			mw.metrics.RequestCount.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			mw.metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			// Recovery sits outside and writes the 500.
			if rec != nil {
				panic(rec)
			}
		}()
		c.Next()
	}
}
