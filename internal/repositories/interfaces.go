package repositories

import (
	"context"

	"sales-analytics/internal/models"
)

// TransactionRepositoryInterface defines the contract for reading and
// populating the product transaction store. The analytics layer treats the
// store as read-only; CreateBatch exists solely for the one-shot bootstrap.
type TransactionRepositoryInterface interface {
	// GetAll returns every transaction ordered by ascending product id
	GetAll(ctx context.Context) ([]models.ProductTransaction, error)
	CreateBatch(ctx context.Context, transactions []models.ProductTransaction) error
	Count(ctx context.Context) (int64, error)
}
