package dto

import (
	"time"

	"sales-analytics/internal/models"
)

// ListTransactionsParams contains query parameters for the listing endpoint.
// Missing parameters keep the defaults the caller pre-populates before
// binding, so min/max apply unconditionally: an explicit page=0 is a
// validation failure, not an absent value.
type ListTransactionsParams struct {
	Page    int    `query:"page" validate:"min=1"`
	PerPage int    `query:"perPage" validate:"min=1,max=100"`
	Search  string `query:"search"`
}

// TransactionResponse is the wire form of one catalogue transaction
type TransactionResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	Sold        bool    `json:"sold"`
	DateOfSale  string  `json:"dateOfSale"`
}

// NewTransactionResponse converts a stored transaction to its wire form
func NewTransactionResponse(t *models.ProductTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ProductID,
		Title:       t.Title,
		Price:       t.Price.InexactFloat64(),
		Description: t.Description,
		Category:    t.Category,
		Image:       t.Image,
		Sold:        t.Sold,
		DateOfSale:  t.DateOfSale.UTC().Format(time.RFC3339),
	}
}

// NewTransactionResponses converts a slice preserving order
func NewTransactionResponses(transactions []models.ProductTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}
