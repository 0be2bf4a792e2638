package handlers

import "github.com/labstack/echo/v4"

const (
	// MonthContextKey holds the validated month set by the month middleware
	MonthContextKey = "month"
)

// getMonthFromContext returns the validated month placed in the context by
// the month-validation middleware, or 0 when the route carries no month.
func getMonthFromContext(c echo.Context) int {
	monthValue := c.Get(MonthContextKey)
	if monthValue == nil {
		return 0
	}

	month, ok := monthValue.(int)
	if !ok {
		return 0
	}

	return month
}
