package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"sales-analytics/internal/errors"
	"sales-analytics/internal/handlers"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_api_errors_total",
			Help: "Total number of API errors by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats
// errors escaping the handlers as standardized failure envelopes and logs
// them appropriately
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var httpStatus int
	var message string

	if echoErr, ok := err.(*echo.HTTPError); ok {
		httpStatus = echoErr.Code
		message = fmt.Sprintf("%v", echoErr.Message)
	} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
		httpStatus = http.StatusBadRequest
		message = formatValidationErrors(validationErrs)
	} else {
		httpStatus = http.StatusInternalServerError
		message = errors.GetErrorMessage(errors.SystemInternalError)
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	response := handlers.APIResponse{
		Status:  httpStatus,
		Message: "fail",
		Error:   message,
	}
	if sendErr := c.JSON(httpStatus, response); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// formatValidationErrors converts validator field errors into a single
// human-readable message
func formatValidationErrors(validationErrs validator.ValidationErrors) string {
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fieldErr.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
		case "numeric":
			return fmt.Sprintf("%s must be a valid number", fieldErr.Field())
		default:
			return fmt.Sprintf("%s failed validation for '%s'", fieldErr.Field(), fieldErr.Tag())
		}
	}
	return errors.GetErrorMessage(errors.ValidationGeneral)
}
