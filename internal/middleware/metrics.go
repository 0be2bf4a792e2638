package middleware

import (
	"time"

	"sales-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency for every route through the
// given recorder. Errors are routed to the error handler first so the
// recorded status reflects what the client actually received.
func Metrics(recorder services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			recorder.RecordHTTPRequest(
				c.Request().Method,
				c.Path(),
				c.Response().Status,
				time.Since(start),
			)
			return nil
		}
	}
}
