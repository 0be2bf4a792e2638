package handlers

import (
	"log/slog"
	"net/http"

	"sales-analytics/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	// TraceIDContextKey is the context key for the trace ID. The request-ID
	// middleware populates it; the response helpers read it when logging.
	TraceIDContextKey = "trace_id"
)

// APIResponse is the envelope every analytics endpoint returns. Status echoes
// the HTTP status; Message is "success" or "fail"; exactly one of Data and
// Error is set.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess sends a success envelope with the given payload
func SendSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Status:  http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// SendFailure sends a failure envelope for the given error code. An optional
// detail string overrides the code's default message.
func SendFailure(c echo.Context, code errors.ErrorCode, details ...string) error {
	message := errors.GetErrorMessage(code)
	if len(details) > 0 {
		message = details[0]
	}

	status := errors.GetHTTPStatus(code)
	return c.JSON(status, APIResponse{
		Status:  status,
		Message: "fail",
		Error:   message,
	})
}

// SendSystemFailure logs the internal error and sends a generic failure
// envelope without exposing internal details
func SendSystemFailure(c echo.Context, err error) error {
	slog.Error("request failed",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"error", err)

	return c.JSON(http.StatusInternalServerError, APIResponse{
		Status:  http.StatusInternalServerError,
		Message: "fail",
		Error:   errors.GetErrorMessage(errors.SystemInternalError),
	})
}
