package middleware

import (
	"sales-analytics/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader is the header name for the trace ID
const TraceIDHeader = "X-Trace-ID"

// RequestID assigns every request a trace ID, reusing the caller's value
// when the header already carries one. The ID is stored under the handlers
// package's context key so the response helpers log the same identifier
// that appears in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(handlers.TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(handlers.TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
