package services

import (
	"context"
	"fmt"
	"log/slog"

	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"

	"github.com/shopspring/decimal"
)

type statisticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewStatisticsService(transactionRepo repositories.TransactionRepositoryInterface) StatisticsServiceInterface {
	return &statisticsService{
		transactionRepo: transactionRepo,
	}
}

// ComputeStatistics reduces the month-filtered transaction set into the total
// sale amount over sold items plus sold and unsold counts. The total is
// rounded to 2 decimals only at output.
func (s *statisticsService) ComputeStatistics(ctx context.Context, month int) (*models.StatisticsSummary, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		slog.Error("failed to scan transaction store for statistics",
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := &models.StatisticsSummary{
		TotalSaleAmount: decimal.Zero,
	}

	for i := range transactions {
		t := &transactions[i]
		if !matchesMonth(t, month) {
			continue
		}

		if t.Sold {
			summary.NumberOfSoldItems++
			summary.TotalSaleAmount = summary.TotalSaleAmount.Add(t.Price)
		} else {
			summary.NumberOfUnsoldItems++
		}
	}

	summary.TotalSaleAmount = summary.TotalSaleAmount.Round(2)

	slog.Info("statistics computed",
		"month", month,
		"sold", summary.NumberOfSoldItems,
		"unsold", summary.NumberOfUnsoldItems,
		"total_sale_amount", summary.TotalSaleAmount.String())

	return summary, nil
}
