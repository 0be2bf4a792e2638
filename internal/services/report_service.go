package services

import (
	"context"
	"log/slog"
	"time"

	"sales-analytics/internal/models"

	"golang.org/x/sync/errgroup"
)

type reportService struct {
	statisticsService StatisticsServiceInterface
	priceRangeService PriceRangeServiceInterface
	categoryService   CategoryAnalyticsServiceInterface
	metrics           MetricsRecorderInterface
}

func NewReportService(
	statisticsService StatisticsServiceInterface,
	priceRangeService PriceRangeServiceInterface,
	categoryService CategoryAnalyticsServiceInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		statisticsService: statisticsService,
		priceRangeService: priceRangeService,
		categoryService:   categoryService,
		metrics:           metrics,
	}
}

// ComputeCompleteAnalysis fans out to the three monthly aggregators
// concurrently and merges their results by field. The three reductions are
// independent over a read-only store, so no ordering or locking is needed
// between them. If any one fails, or the caller cancels, the whole report
// fails; no partial merge is produced.
func (s *reportService) ComputeCompleteAnalysis(ctx context.Context, month int) (*models.MonthlyReport, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	start := time.Now()

	var (
		summary     *models.StatisticsSummary
		priceRanges models.PriceRangeHistogram
		categories  models.CategoryCounts
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.statisticsService.ComputeStatistics(ctx, month)
		return err
	})

	g.Go(func() error {
		var err error
		priceRanges, err = s.priceRangeService.ComputePriceRanges(ctx, month)
		return err
	})

	g.Go(func() error {
		var err error
		categories, err = s.categoryService.ComputeCategories(ctx, month)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("complete analysis failed",
			"month", month,
			"error", err)
		return nil, err
	}

	report := &models.MonthlyReport{
		StatisticsSummary: *summary,
		Categories:        categories,
		PriceRanges:       priceRanges,
	}

	if s.metrics != nil {
		s.metrics.RecordReportBuild(time.Since(start))
	}

	slog.Info("complete analysis computed",
		"month", month,
		"duration_ms", time.Since(start).Milliseconds())

	return report, nil
}
