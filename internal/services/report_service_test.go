package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// Inline function mocks for the aggregator interfaces, used where the fan-out
// behaviour itself is under test
type MockStatisticsService struct {
	ComputeStatisticsFunc func(ctx context.Context, month int) (*models.StatisticsSummary, error)
}

func (m *MockStatisticsService) ComputeStatistics(ctx context.Context, month int) (*models.StatisticsSummary, error) {
	return m.ComputeStatisticsFunc(ctx, month)
}

type MockPriceRangeService struct {
	ComputePriceRangesFunc func(ctx context.Context, month int) (models.PriceRangeHistogram, error)
}

func (m *MockPriceRangeService) ComputePriceRanges(ctx context.Context, month int) (models.PriceRangeHistogram, error) {
	return m.ComputePriceRangesFunc(ctx, month)
}

type MockCategoryAnalyticsService struct {
	ComputeCategoriesFunc func(ctx context.Context, month int) (models.CategoryCounts, error)
}

func (m *MockCategoryAnalyticsService) ComputeCategories(ctx context.Context, month int) (models.CategoryCounts, error) {
	return m.ComputeCategoriesFunc(ctx, month)
}

type MockMetricsRecorder struct {
	reportBuilds int
	seeded       int
}

func (m *MockMetricsRecorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
}
func (m *MockMetricsRecorder) RecordReportBuild(duration time.Duration) { m.reportBuilds++ }
func (m *MockMetricsRecorder) RecordSeededTransactions(count int)      { m.seeded += count }

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
	ctx      context.Context
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.ctx = context.Background()
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

// The composite report must be the structural union of the three aggregates
// computed independently for the same month.
func (s *ReportServiceTestSuite) TestComputeCompleteAnalysis_EqualsIndependentAggregates() {
	store := []models.ProductTransaction{
		makeTransaction(1, 50, time.March, true),
		makeTransaction(2, 950, time.March, false),
		makeTransaction(3, 120, time.April, true),
	}
	s.mockRepo.EXPECT().GetAll(gomock.Any()).Return(store, nil).AnyTimes()

	statistics := NewStatisticsService(s.mockRepo)
	priceRanges := NewPriceRangeService(s.mockRepo)
	categories := NewCategoryAnalyticsService(s.mockRepo)
	metrics := &MockMetricsRecorder{}
	service := NewReportService(statistics, priceRanges, categories, metrics)

	report, err := service.ComputeCompleteAnalysis(s.ctx, 3)
	s.NoError(err)

	wantSummary, err := statistics.ComputeStatistics(s.ctx, 3)
	s.NoError(err)
	wantHistogram, err := priceRanges.ComputePriceRanges(s.ctx, 3)
	s.NoError(err)
	wantCategories, err := categories.ComputeCategories(s.ctx, 3)
	s.NoError(err)

	s.True(report.TotalSaleAmount.Equal(wantSummary.TotalSaleAmount))
	s.Equal(wantSummary.NumberOfSoldItems, report.NumberOfSoldItems)
	s.Equal(wantSummary.NumberOfUnsoldItems, report.NumberOfUnsoldItems)
	s.Equal(wantHistogram, report.PriceRanges)
	s.Equal(wantCategories, report.Categories)
	s.Equal(1, metrics.reportBuilds)
}

func (s *ReportServiceTestSuite) TestComputeCompleteAnalysis_FailsAsAWholeWhenOneAggregatorFails() {
	service := NewReportService(
		&MockStatisticsService{ComputeStatisticsFunc: func(ctx context.Context, month int) (*models.StatisticsSummary, error) {
			return &models.StatisticsSummary{}, nil
		}},
		&MockPriceRangeService{ComputePriceRangesFunc: func(ctx context.Context, month int) (models.PriceRangeHistogram, error) {
			return nil, errors.New("store scan failed")
		}},
		&MockCategoryAnalyticsService{ComputeCategoriesFunc: func(ctx context.Context, month int) (models.CategoryCounts, error) {
			return models.CategoryCounts{}, nil
		}},
		nil,
	)

	report, err := service.ComputeCompleteAnalysis(s.ctx, 3)

	s.Error(err)
	s.Nil(report)
	s.Contains(err.Error(), "store scan failed")
}

func (s *ReportServiceTestSuite) TestComputeCompleteAnalysis_SiblingsObserveFailureViaContext() {
	block := func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("sibling was not cancelled")
		}
	}

	service := NewReportService(
		&MockStatisticsService{ComputeStatisticsFunc: func(ctx context.Context, month int) (*models.StatisticsSummary, error) {
			return nil, errors.New("boom")
		}},
		&MockPriceRangeService{ComputePriceRangesFunc: func(ctx context.Context, month int) (models.PriceRangeHistogram, error) {
			return nil, block(ctx)
		}},
		&MockCategoryAnalyticsService{ComputeCategoriesFunc: func(ctx context.Context, month int) (models.CategoryCounts, error) {
			return nil, block(ctx)
		}},
		nil,
	)

	start := time.Now()
	_, err := service.ComputeCompleteAnalysis(s.ctx, 3)

	s.Error(err)
	s.Less(time.Since(start), 2*time.Second)
}

func (s *ReportServiceTestSuite) TestComputeCompleteAnalysis_CallerCancellationAborts() {
	ctx, cancel := context.WithCancel(context.Background())

	waitForCancel := func(c context.Context) error {
		<-c.Done()
		return c.Err()
	}

	service := NewReportService(
		&MockStatisticsService{ComputeStatisticsFunc: func(c context.Context, month int) (*models.StatisticsSummary, error) {
			return nil, waitForCancel(c)
		}},
		&MockPriceRangeService{ComputePriceRangesFunc: func(c context.Context, month int) (models.PriceRangeHistogram, error) {
			return nil, waitForCancel(c)
		}},
		&MockCategoryAnalyticsService{ComputeCategoriesFunc: func(c context.Context, month int) (models.CategoryCounts, error) {
			return nil, waitForCancel(c)
		}},
		nil,
	)

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := service.ComputeCompleteAnalysis(ctx, 3)

	s.ErrorIs(err, context.Canceled)
}

func (s *ReportServiceTestSuite) TestComputeCompleteAnalysis_InvalidMonth() {
	service := NewReportService(nil, nil, nil, nil)

	_, err := service.ComputeCompleteAnalysis(s.ctx, 0)
	s.ErrorIs(err, ErrInvalidMonth)
}
