package services

import (
	"context"
	"fmt"
	"log/slog"

	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"
)

type priceRangeService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewPriceRangeService(transactionRepo repositories.TransactionRepositoryInterface) PriceRangeServiceInterface {
	return &priceRangeService{
		transactionRepo: transactionRepo,
	}
}

// ComputePriceRanges buckets the month-filtered transactions into the fixed
// ten-range histogram. Every matching transaction lands in exactly one bucket.
func (s *priceRangeService) ComputePriceRanges(ctx context.Context, month int) (models.PriceRangeHistogram, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		slog.Error("failed to scan transaction store for price ranges",
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	histogram := models.NewPriceRangeHistogram()
	for i := range transactions {
		t := &transactions[i]
		if !matchesMonth(t, month) {
			continue
		}
		histogram.Add(t.Price)
	}

	slog.Info("price ranges computed",
		"month", month,
		"bucketed", histogram.Total())

	return histogram, nil
}
