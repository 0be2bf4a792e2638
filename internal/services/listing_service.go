package services

import (
	"context"
	"fmt"
	"log/slog"

	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

type listingService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewListingService(transactionRepo repositories.TransactionRepositoryInterface) ListingServiceInterface {
	return &listingService{
		transactionRepo: transactionRepo,
	}
}

// ListTransactions scans the store in ascending product-id order, applies the
// search matcher, then the optional month filter, then pagination. The result
// ordering is always ascending by product id.
func (s *listingService) ListTransactions(ctx context.Context, month, page, perPage int, search string) ([]models.ProductTransaction, error) {
	if month != 0 {
		if err := validateMonth(month); err != nil {
			return nil, err
		}
	}
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		slog.Error("failed to scan transaction store for listing",
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	filtered := make([]models.ProductTransaction, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		if !matchesSearch(t, search) {
			continue
		}
		if month != 0 && !matchesMonth(t, month) {
			continue
		}
		filtered = append(filtered, *t)
	}

	result := paginate(filtered, page, perPage)

	slog.Info("transactions listed",
		"month", month,
		"page", page,
		"per_page", perPage,
		"search", search,
		"matched", len(filtered),
		"returned", len(result))

	return result, nil
}
