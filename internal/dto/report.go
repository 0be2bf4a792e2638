package dto

import "sales-analytics/internal/models"

// StatisticsResponse is the wire form of a monthly statistics summary
type StatisticsResponse struct {
	TotalSaleAmount     float64 `json:"totalSaleAmount"`
	NumberOfSoldItems   int     `json:"numberOfSoldItems"`
	NumberOfUnsoldItems int     `json:"numberOfUnsoldItems"`
}

// NewStatisticsResponse converts a summary to its wire form. The total is
// already rounded to 2 decimals by the aggregator.
func NewStatisticsResponse(summary *models.StatisticsSummary) StatisticsResponse {
	return StatisticsResponse{
		TotalSaleAmount:     summary.TotalSaleAmount.InexactFloat64(),
		NumberOfSoldItems:   summary.NumberOfSoldItems,
		NumberOfUnsoldItems: summary.NumberOfUnsoldItems,
	}
}

// CompleteAnalysisResponse is the wire form of the composite monthly report
type CompleteAnalysisResponse struct {
	StatisticsResponse
	Categories  models.CategoryCounts      `json:"categories"`
	PriceRanges models.PriceRangeHistogram `json:"priceRanges"`
}

// NewCompleteAnalysisResponse converts a monthly report to its wire form
func NewCompleteAnalysisResponse(report *models.MonthlyReport) CompleteAnalysisResponse {
	return CompleteAnalysisResponse{
		StatisticsResponse: NewStatisticsResponse(&report.StatisticsSummary),
		Categories:         report.Categories,
		PriceRanges:        report.PriceRanges,
	}
}
