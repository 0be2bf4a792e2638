package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrSeedSourceUnavailable = errors.New("bootstrap source could not be reached")
	ErrMalformedSeedRecord   = errors.New("bootstrap record is malformed")
)

// seedRecord mirrors one entry of the remote bootstrap fixture
type seedRecord struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Sold        bool    `json:"sold"`
	DateOfSale  string  `json:"dateOfSale"`
}

type seedService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	client          *http.Client
	cfg             config.SeedConfig
	metrics         MetricsRecorderInterface
}

func NewSeedService(
	transactionRepo repositories.TransactionRepositoryInterface,
	cfg config.SeedConfig,
	metrics MetricsRecorderInterface,
) SeedServiceInterface {
	return &seedService{
		transactionRepo: transactionRepo,
		client:          &http.Client{Timeout: cfg.FetchTimeout},
		cfg:             cfg,
		metrics:         metrics,
	}
}

// Initialize populates the store from the remote JSON fixture. It is a
// one-shot administrative operation: when the store already holds rows the
// load is skipped entirely, so re-running it cannot duplicate the dataset.
// Returns the number of transactions inserted.
func (s *seedService) Initialize(ctx context.Context) (int, error) {
	count, err := s.transactionRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect transaction store: %w", err)
	}
	if count > 0 {
		slog.Info("transaction store already populated, skipping bootstrap",
			"existing", count)
		return 0, nil
	}

	records, err := s.fetchRecords(ctx)
	if err != nil {
		return 0, err
	}

	transactions := make([]models.ProductTransaction, 0, len(records))
	for _, record := range records {
		tx, err := record.toTransaction()
		if err != nil {
			slog.Error("rejecting malformed bootstrap record",
				"product_id", record.ID,
				"error", err)
			return 0, fmt.Errorf("%w: product %d: %v", ErrMalformedSeedRecord, record.ID, err)
		}
		transactions = append(transactions, *tx)
	}

	for start := 0; start < len(transactions); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(transactions) {
			end = len(transactions)
		}
		if err := s.transactionRepo.CreateBatch(ctx, transactions[start:end]); err != nil {
			return 0, fmt.Errorf("failed to insert bootstrap batch: %w", err)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordSeededTransactions(len(transactions))
	}

	slog.Info("transaction store bootstrapped",
		"source", s.cfg.SourceURL,
		"inserted", len(transactions))

	return len(transactions), nil
}

func (s *seedService) fetchRecords(ctx context.Context) ([]seedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build bootstrap request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSeedSourceUnavailable, resp.StatusCode)
	}

	var records []seedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSeedRecord, err)
	}

	return records, nil
}

func (r *seedRecord) toTransaction() (*models.ProductTransaction, error) {
	dateOfSale, err := time.Parse(time.RFC3339, r.DateOfSale)
	if err != nil {
		return nil, fmt.Errorf("unparsable sale date %q: %w", r.DateOfSale, err)
	}

	tx := &models.ProductTransaction{
		ProductID:   r.ID,
		Title:       r.Title,
		Price:       decimal.NewFromFloat(r.Price),
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Sold:        r.Sold,
		DateOfSale:  dateOfSale.UTC(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}
