package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrProductIDRequired = errors.New("product id is required")
	ErrTitleRequired     = errors.New("transaction title is required")
	ErrCategoryRequired  = errors.New("transaction category is required")
	ErrNegativePrice     = errors.New("transaction price must not be negative")
	ErrMissingSaleDate   = errors.New("transaction sale date is required")
)

// ProductTransaction represents one historical sale record in the catalogue.
// Records are write-once: the analytics layer only reads and aggregates them.
type ProductTransaction struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID   int64           `gorm:"uniqueIndex;not null" json:"id"`
	Title       string          `gorm:"type:text;not null" json:"title"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Image       string          `gorm:"type:text" json:"image,omitempty"`
	Sold        bool            `gorm:"not null;default:false" json:"sold"`
	DateOfSale  time.Time       `gorm:"not null;index" json:"dateOfSale"`
	CreatedAt   time.Time       `gorm:"not null" json:"-"`
}

// TableName returns the table name for ProductTransaction
func (t *ProductTransaction) TableName() string {
	return "product_transactions"
}

// Validate validates the transaction fields
func (t *ProductTransaction) Validate() error {
	if t.ProductID <= 0 {
		return ErrProductIDRequired
	}
	if t.Title == "" {
		return ErrTitleRequired
	}
	if t.Category == "" {
		return ErrCategoryRequired
	}
	if t.Price.IsNegative() {
		return ErrNegativePrice
	}
	if t.DateOfSale.IsZero() {
		return ErrMissingSaleDate
	}
	return nil
}

// SaleMonth returns the 1-based calendar month of the sale in UTC.
// The year is intentionally not part of the result: monthly analytics
// aggregate the same calendar month across every year in the dataset.
func (t *ProductTransaction) SaleMonth() int {
	return int(t.DateOfSale.UTC().Month())
}
