package services

import (
	"errors"
	"strings"

	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// matchesMonth reports whether the transaction's sale date falls in the given
// 1-based calendar month. Years are ignored: March 2019 and March 2022 both
// match month 3. Callers validate the month range before invoking this.
func matchesMonth(t *models.ProductTransaction, month int) bool {
	return t.SaleMonth() == month
}

// matchesSearch reports whether the transaction matches a free-text query.
// The empty query matches everything. The price comparison is a substring
// test on the decimal string form, not a numeric one: "5" matches a price of
// 150. That mirrors the behaviour browse clients already depend on.
func matchesSearch(t *models.ProductTransaction, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(priceSearchForm(t.Price), q)
}

// priceSearchForm renders a price the way browse clients type it: trailing
// fractional zeros stripped, so a value scanned back from a decimal(12,2)
// column as 150.00 still reads as "150". Without this, the same row would
// match different queries depending on the storage backend.
func priceSearchForm(price decimal.Decimal) string {
	s := price.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// paginate slices an ordered sequence into a 1-based page of perPage items.
// Out-of-range pages yield an empty result, never an error.
func paginate(transactions []models.ProductTransaction, page, perPage int) []models.ProductTransaction {
	start := (page - 1) * perPage
	if start < 0 || start >= len(transactions) {
		return []models.ProductTransaction{}
	}

	end := start + perPage
	if end > len(transactions) {
		end = len(transactions)
	}
	return transactions[start:end]
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}
