package services

import (
	"context"
	"time"

	"sales-analytics/internal/models"
)

// ListingServiceInterface answers the paginated, searchable transaction
// listing. A month of 0 means no month filter.
type ListingServiceInterface interface {
	ListTransactions(ctx context.Context, month, page, perPage int, search string) ([]models.ProductTransaction, error)
}

// StatisticsServiceInterface computes per-month sales statistics
type StatisticsServiceInterface interface {
	ComputeStatistics(ctx context.Context, month int) (*models.StatisticsSummary, error)
}

// PriceRangeServiceInterface computes the per-month price histogram
type PriceRangeServiceInterface interface {
	ComputePriceRanges(ctx context.Context, month int) (models.PriceRangeHistogram, error)
}

// CategoryAnalyticsServiceInterface computes per-month category counts
type CategoryAnalyticsServiceInterface interface {
	ComputeCategories(ctx context.Context, month int) (models.CategoryCounts, error)
}

// ReportServiceInterface combines the three monthly aggregates into one report
type ReportServiceInterface interface {
	ComputeCompleteAnalysis(ctx context.Context, month int) (*models.MonthlyReport, error)
}

// SeedServiceInterface performs the one-shot bootstrap load of the store
type SeedServiceInterface interface {
	Initialize(ctx context.Context) (int, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
	RecordReportBuild(duration time.Duration)
	RecordSeededTransactions(count int)
}
