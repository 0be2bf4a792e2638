package models

import "github.com/shopspring/decimal"

// StatisticsSummary holds the per-month sales statistics. TotalSaleAmount
// covers sold transactions only and is rounded to 2 decimals at output.
type StatisticsSummary struct {
	TotalSaleAmount     decimal.Decimal `json:"totalSaleAmount"`
	NumberOfSoldItems   int             `json:"numberOfSoldItems"`
	NumberOfUnsoldItems int             `json:"numberOfUnsoldItems"`
}

// CategoryCounts maps a category name, exactly as it appears in the data,
// to the number of transactions in that category for the filtered month.
type CategoryCounts map[string]int

// Add increments the count for the literal category string
func (c CategoryCounts) Add(category string) {
	c[category]++
}

// MonthlyReport is the structural union of the three independent monthly
// aggregates. No field is derived across aggregators.
type MonthlyReport struct {
	StatisticsSummary
	Categories  CategoryCounts      `json:"categories"`
	PriceRanges PriceRangeHistogram `json:"priceRanges"`
}
