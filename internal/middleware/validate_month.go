package middleware

import (
	"strconv"

	"sales-analytics/internal/errors"
	"sales-analytics/internal/handlers"

	"github.com/labstack/echo/v4"
)

// ValidateMonth is a middleware for routes carrying a :month path parameter.
// It rejects non-numeric or out-of-range values before any handler logic
// runs, and stores the parsed month in the context for handlers to read.
func ValidateMonth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Param("month")

			month, err := strconv.Atoi(raw)
			if err != nil || month < 1 || month > 12 {
				return handlers.SendFailure(c, errors.ValidationInvalidMonth)
			}

			c.Set(handlers.MonthContextKey, month)
			return next(c)
		}
	}
}
