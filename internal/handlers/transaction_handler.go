package handlers

import (
	stderrors "errors"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/errors"
	"sales-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles the transaction listing endpoint
type TransactionHandler struct {
	listingService services.ListingServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(listingService services.ListingServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		listingService: listingService,
	}
}

// ListTransactions serves GET /transactions and GET /transactions/:month.
// Query parameters page, perPage and search default to 1, 10 and "".
// When the month path segment is present the month middleware has already
// validated it and placed it in the context.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	params := dto.ListTransactionsParams{
		Page:    services.DefaultPage,
		PerPage: services.DefaultPerPage,
	}
	if err := c.Bind(&params); err != nil {
		return SendFailure(c, errors.ValidationGeneral, "invalid query parameters")
	}
	if err := c.Validate(&params); err != nil {
		return SendFailure(c, errors.ValidationOutOfRange, err.Error())
	}

	month := getMonthFromContext(c)

	transactions, err := h.listingService.ListTransactions(
		c.Request().Context(), month, params.Page, params.PerPage, params.Search)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidMonth) {
			return SendFailure(c, errors.ValidationInvalidMonth)
		}
		return SendFailure(c, errors.StoreUnavailable)
	}

	return SendSuccess(c, dto.NewTransactionResponses(transactions))
}
