package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() *ProductTransaction {
	return &ProductTransaction{
		ProductID:  1,
		Title:      "Mens Cotton Jacket",
		Price:      decimal.NewFromFloat(55.99),
		Category:   "men's clothing",
		Sold:       true,
		DateOfSale: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProductTransaction_Validate(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())
}

func TestProductTransaction_Validate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ProductTransaction)
		expected error
	}{
		{"missing product id", func(tx *ProductTransaction) { tx.ProductID = 0 }, ErrProductIDRequired},
		{"missing title", func(tx *ProductTransaction) { tx.Title = "" }, ErrTitleRequired},
		{"missing category", func(tx *ProductTransaction) { tx.Category = "" }, ErrCategoryRequired},
		{"negative price", func(tx *ProductTransaction) { tx.Price = decimal.NewFromInt(-1) }, ErrNegativePrice},
		{"missing sale date", func(tx *ProductTransaction) { tx.DateOfSale = time.Time{} }, ErrMissingSaleDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(tx)
			assert.ErrorIs(t, tx.Validate(), tt.expected)
		})
	}
}

func TestProductTransaction_Validate_ZeroPriceAllowed(t *testing.T) {
	tx := validTransaction()
	tx.Price = decimal.Zero
	assert.NoError(t, tx.Validate())
}

func TestProductTransaction_SaleMonth_UsesUTC(t *testing.T) {
	// 2021-11-30 23:30 in UTC-5 is already December in UTC
	loc := time.FixedZone("EST", -5*3600)
	tx := validTransaction()
	tx.DateOfSale = time.Date(2021, time.November, 30, 23, 30, 0, 0, loc)

	assert.Equal(t, 12, tx.SaleMonth())
}

func TestProductTransaction_SaleMonth_IgnoresYear(t *testing.T) {
	older := validTransaction()
	older.DateOfSale = time.Date(2019, time.March, 20, 0, 0, 0, 0, time.UTC)

	newer := validTransaction()
	newer.DateOfSale = time.Date(2022, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, older.SaleMonth(), newer.SaleMonth())
}
