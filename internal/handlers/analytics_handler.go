package handlers

import (
	stderrors "errors"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/errors"
	"sales-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles the monthly aggregation endpoints
type AnalyticsHandler struct {
	statisticsService services.StatisticsServiceInterface
	priceRangeService services.PriceRangeServiceInterface
	categoryService   services.CategoryAnalyticsServiceInterface
	reportService     services.ReportServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	statisticsService services.StatisticsServiceInterface,
	priceRangeService services.PriceRangeServiceInterface,
	categoryService services.CategoryAnalyticsServiceInterface,
	reportService services.ReportServiceInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		statisticsService: statisticsService,
		priceRangeService: priceRangeService,
		categoryService:   categoryService,
		reportService:     reportService,
	}
}

// Statistics serves GET /statistics/:month
func (h *AnalyticsHandler) Statistics(c echo.Context) error {
	summary, err := h.statisticsService.ComputeStatistics(c.Request().Context(), getMonthFromContext(c))
	if err != nil {
		return h.sendAggregationFailure(c, err)
	}
	return SendSuccess(c, dto.NewStatisticsResponse(summary))
}

// PriceRanges serves GET /priceRanges/:month
func (h *AnalyticsHandler) PriceRanges(c echo.Context) error {
	histogram, err := h.priceRangeService.ComputePriceRanges(c.Request().Context(), getMonthFromContext(c))
	if err != nil {
		return h.sendAggregationFailure(c, err)
	}
	return SendSuccess(c, histogram)
}

// Categories serves GET /categories/:month
func (h *AnalyticsHandler) Categories(c echo.Context) error {
	counts, err := h.categoryService.ComputeCategories(c.Request().Context(), getMonthFromContext(c))
	if err != nil {
		return h.sendAggregationFailure(c, err)
	}
	return SendSuccess(c, counts)
}

// CompleteAnalysis serves GET /completeAnalysis/:month. The three
// aggregations run concurrently; if any one fails the whole request fails.
func (h *AnalyticsHandler) CompleteAnalysis(c echo.Context) error {
	report, err := h.reportService.ComputeCompleteAnalysis(c.Request().Context(), getMonthFromContext(c))
	if err != nil {
		return h.sendAggregationFailure(c, err)
	}
	return SendSuccess(c, dto.NewCompleteAnalysisResponse(report))
}

func (h *AnalyticsHandler) sendAggregationFailure(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrInvalidMonth) {
		return SendFailure(c, errors.ValidationInvalidMonth)
	}
	return SendFailure(c, errors.StoreUnavailable)
}
