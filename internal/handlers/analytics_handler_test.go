package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-analytics/internal/models"
	"sales-analytics/internal/services"
	"sales-analytics/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AnalyticsHandlerSuite defines the test suite for AnalyticsHandler
type AnalyticsHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockStatistics *service_mocks.MockStatisticsServiceInterface
	mockPriceRange *service_mocks.MockPriceRangeServiceInterface
	mockCategory   *service_mocks.MockCategoryAnalyticsServiceInterface
	mockReport     *service_mocks.MockReportServiceInterface
	handler        *AnalyticsHandler
	echo           *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *AnalyticsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStatistics = service_mocks.NewMockStatisticsServiceInterface(s.ctrl)
	s.mockPriceRange = service_mocks.NewMockPriceRangeServiceInterface(s.ctrl)
	s.mockCategory = service_mocks.NewMockCategoryAnalyticsServiceInterface(s.ctrl)
	s.mockReport = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewAnalyticsHandler(s.mockStatistics, s.mockPriceRange, s.mockCategory, s.mockReport)

	s.echo = echo.New()
	s.echo.Validator = &CustomValidator{validator: validator.New()}
}

// TearDownTest runs after each test in the suite
func (s *AnalyticsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAnalyticsHandlerSuite runs the test suite
func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerSuite))
}

func (s *AnalyticsHandlerSuite) createContext(target string, month int) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(MonthContextKey, month)
	return c, rec
}

// TestStatistics_Success tests the statistics envelope
func (s *AnalyticsHandlerSuite) TestStatistics_Success() {
	c, rec := s.createContext("/statistics/6", 6)

	s.mockStatistics.EXPECT().
		ComputeStatistics(gomock.Any(), 6).
		Return(&models.StatisticsSummary{
			TotalSaleAmount:     decimal.NewFromFloat(642.31),
			NumberOfSoldItems:   3,
			NumberOfUnsoldItems: 2,
		}, nil)

	err := s.handler.Statistics(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(http.StatusOK, response.Status)
	s.Equal("success", response.Message)

	data := response.Data.(map[string]interface{})
	s.Equal(642.31, data["totalSaleAmount"])
	s.Equal(float64(3), data["numberOfSoldItems"])
	s.Equal(float64(2), data["numberOfUnsoldItems"])
}

// TestStatistics_StoreFailure tests the aggregation failure envelope
func (s *AnalyticsHandlerSuite) TestStatistics_StoreFailure() {
	c, rec := s.createContext("/statistics/6", 6)

	s.mockStatistics.EXPECT().
		ComputeStatistics(gomock.Any(), 6).
		Return(nil, stderrors.New("connection refused"))

	err := s.handler.Statistics(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("fail", response.Message)
	s.Nil(response.Data)
	s.NotNil(response.Error)
}

// TestStatistics_InvalidMonth tests the invalid month failure envelope
func (s *AnalyticsHandlerSuite) TestStatistics_InvalidMonth() {
	c, rec := s.createContext("/statistics/13", 13)

	s.mockStatistics.EXPECT().
		ComputeStatistics(gomock.Any(), 13).
		Return(nil, services.ErrInvalidMonth)

	err := s.handler.Statistics(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "month must be in the range 1-12")
}

// TestPriceRanges_Success tests that the histogram carries every bucket
func (s *AnalyticsHandlerSuite) TestPriceRanges_Success() {
	c, rec := s.createContext("/priceRanges/3", 3)

	histogram := models.NewPriceRangeHistogram()
	histogram["0-100"] = 4
	histogram["901-above"] = 1

	s.mockPriceRange.EXPECT().
		ComputePriceRanges(gomock.Any(), 3).
		Return(histogram, nil)

	err := s.handler.PriceRanges(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("success", response.Message)

	data := response.Data.(map[string]interface{})
	s.Len(data, 10)
	s.Equal(float64(4), data["0-100"])
	s.Equal(float64(1), data["901-above"])
	s.Equal(float64(0), data["401-500"])
}

// TestPriceRanges_StoreFailure tests the failure envelope
func (s *AnalyticsHandlerSuite) TestPriceRanges_StoreFailure() {
	c, rec := s.createContext("/priceRanges/3", 3)

	s.mockPriceRange.EXPECT().
		ComputePriceRanges(gomock.Any(), 3).
		Return(nil, stderrors.New("connection refused"))

	err := s.handler.PriceRanges(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "fail")
}

// TestCategories_Success tests the category counts envelope
func (s *AnalyticsHandlerSuite) TestCategories_Success() {
	c, rec := s.createContext("/categories/9", 9)

	counts := models.CategoryCounts{
		"electronics": 2,
		"jewelery":    1,
	}

	s.mockCategory.EXPECT().
		ComputeCategories(gomock.Any(), 9).
		Return(counts, nil)

	err := s.handler.Categories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal(float64(2), data["electronics"])
	s.Equal(float64(1), data["jewelery"])
}

// TestCategories_EmptyMonth tests that a month with no sales returns an
// empty object rather than null
func (s *AnalyticsHandlerSuite) TestCategories_EmptyMonth() {
	c, rec := s.createContext("/categories/2", 2)

	s.mockCategory.EXPECT().
		ComputeCategories(gomock.Any(), 2).
		Return(models.CategoryCounts{}, nil)

	err := s.handler.Categories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"data":{}`)
}

// TestCompleteAnalysis_Success tests the combined report envelope
func (s *AnalyticsHandlerSuite) TestCompleteAnalysis_Success() {
	c, rec := s.createContext("/completeAnalysis/11", 11)

	histogram := models.NewPriceRangeHistogram()
	histogram["0-100"] = 2

	s.mockReport.EXPECT().
		ComputeCompleteAnalysis(gomock.Any(), 11).
		Return(&models.MonthlyReport{
			StatisticsSummary: models.StatisticsSummary{
				TotalSaleAmount:     decimal.NewFromFloat(223.98),
				NumberOfSoldItems:   2,
				NumberOfUnsoldItems: 0,
			},
			Categories:  models.CategoryCounts{"men's clothing": 2},
			PriceRanges: histogram,
		}, nil)

	err := s.handler.CompleteAnalysis(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("success", response.Message)

	data := response.Data.(map[string]interface{})
	s.Equal(223.98, data["totalSaleAmount"])
	s.Equal(float64(2), data["numberOfSoldItems"])

	categories := data["categories"].(map[string]interface{})
	s.Equal(float64(2), categories["men's clothing"])

	priceRanges := data["priceRanges"].(map[string]interface{})
	s.Len(priceRanges, 10)
	s.Equal(float64(2), priceRanges["0-100"])
}

// TestCompleteAnalysis_PartialFailureFailsWhole tests that one failed
// aggregation fails the whole request
func (s *AnalyticsHandlerSuite) TestCompleteAnalysis_PartialFailureFailsWhole() {
	c, rec := s.createContext("/completeAnalysis/11", 11)

	s.mockReport.EXPECT().
		ComputeCompleteAnalysis(gomock.Any(), 11).
		Return(nil, stderrors.New("failed to get transactions: timeout"))

	err := s.handler.CompleteAnalysis(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("fail", response.Message)
	s.Nil(response.Data)
}
