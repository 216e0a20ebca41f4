package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prashilgroup/prashil-backend/internal/metrics"
)

// Metrics records a counter and duration histogram per request, labeled by
// route pattern rather than raw path to keep cardinality bounded.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		method := c.Method()
		code := strconv.Itoa(status)

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())

		return err
	}
}
