package services

import (
	"context"
	"fmt"
	"log/slog"

	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"
)

type categoryAnalyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewCategoryAnalyticsService(transactionRepo repositories.TransactionRepositoryInterface) CategoryAnalyticsServiceInterface {
	return &categoryAnalyticsService{
		transactionRepo: transactionRepo,
	}
}

// ComputeCategories counts month-filtered transactions per category. Keys are
// the literal category strings from the data: case-sensitive, no trimming or
// normalization, new categories appear on first occurrence.
func (s *categoryAnalyticsService) ComputeCategories(ctx context.Context, month int) (models.CategoryCounts, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		slog.Error("failed to scan transaction store for categories",
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	counts := make(models.CategoryCounts)
	for i := range transactions {
		t := &transactions[i]
		if !matchesMonth(t, month) {
			continue
		}
		counts.Add(t.Category)
	}

	slog.Info("categories computed",
		"month", month,
		"categories", len(counts))

	return counts, nil
}
