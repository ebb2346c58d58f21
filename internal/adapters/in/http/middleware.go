package http

import (
	"strconv"
	"time"

	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records a request counter and duration histogram per
// route. Uses the route pattern rather than the raw URL so path parameters
// do not explode label cardinality.
func MetricsMiddleware(sink *metrics.PromSink) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sink == nil {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}

			sink.RecordRequest(
				ctx.Request().Method,
				ctx.Path(),
				strconv.Itoa(status),
				time.Since(start).Seconds(),
			)

			return err
		}
	}
}
