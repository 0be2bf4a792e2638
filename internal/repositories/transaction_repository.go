package repositories

import (
	"context"
	"errors"
	"fmt"

	"sales-analytics/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDuplicateProductID = errors.New("transaction with this product id already exists")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// GetAll retrieves the full transaction set ordered by ascending product id.
// Ascending order is part of the listing contract, not a presentation choice.
func (r *transactionRepository) GetAll(ctx context.Context) ([]models.ProductTransaction, error) {
	var transactions []models.ProductTransaction
	if err := r.db.WithContext(ctx).
		Order("product_id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// CreateBatch inserts the bootstrap dataset in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.ProductTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateProductID
			}
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// Count returns the number of transactions in the store
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductTransaction{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
