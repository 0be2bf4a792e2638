package database

import (
	"testing"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM product_transactions").Error; err != nil {
		t.Logf("failed to cleanup product_transactions: %v", err)
	}
}

func CreateTestTransaction(t *testing.T, db *DB, productID int64, price float64, category string, sold bool, dateOfSale time.Time) *models.ProductTransaction {
	t.Helper()

	tx := &models.ProductTransaction{
		ProductID:  productID,
		Title:      "Test Product",
		Price:      decimal.NewFromFloat(price),
		Category:   category,
		Sold:       sold,
		DateOfSale: dateOfSale,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}
