package receipt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cedricbahirwe/Cashew/internal/extraction"
	"github.com/cedricbahirwe/Cashew/internal/scanning"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyScan is returned when neither text nor a QR payload was supplied
	ErrEmptyScan = errors.New("nothing to scan: text and QR payload are empty")
	// ErrNotFound is returned for unknown receipt IDs
	ErrNotFound = errors.New("receipt not found")
	// ErrInvalidReceipt is returned when a reviewed receipt fails validation
	ErrInvalidReceipt = errors.New("invalid receipt")
)

// IDGenerator generates unique IDs for receipts
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

type uuidGenerator struct{}

func (g *uuidGenerator) Generate() string {
	return uuid.NewString()
}

type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service handles receipt operations. The scanner is optional; without it
// only the deterministic parser is used.
type Service struct {
	db          DB
	scanner     scanning.Scanner
	storage     Storage
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, scanner scanning.Scanner, storage Storage) *Service {
	return NewServiceWithDeps(db, scanner, storage, &uuidGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, scanner scanning.Scanner, storage Storage, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// ScanReceipt builds a draft receipt from OCR text and an optional fiscal QR
// payload. When a scanner is configured it runs alongside the parser and its
// fields take precedence; a scanner failure falls back to the parser alone.
// The draft is not saved.
func (s *Service) ScanReceipt(ctx context.Context, rawText, qrPayload string) (*Receipt, error) {
	qrPayload = strings.TrimSpace(qrPayload)
	if strings.TrimSpace(rawText) == "" && qrPayload == "" {
		return nil, ErrEmptyScan
	}

	now := s.timeSource.Now()

	var (
		parsed   extraction.ParsedReceipt
		assisted *scanning.ReceiptData
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		parsed = extraction.ParseAt(rawText, qrPayload, now)
		return nil
	})
	if s.scanner != nil && strings.TrimSpace(rawText) != "" {
		g.Go(func() error {
			data, err := s.scanner.ExtractReceipt(gctx, rawText)
			if err != nil {
				slog.Warn("Assisted extraction failed, using parser only",
					"text_length", len(rawText),
					"error", err,
				)
				return nil
			}
			assisted = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scanning receipt: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scanning receipt: %w", err)
	}

	receipt := &Receipt{Source: SourceHeuristic}
	if assisted != nil {
		parsed = extraction.Merge(parsed, hintFrom(assisted))
		receipt.Source = SourceAssisted
		receipt.Items = itemsFrom(assisted.Items)
	}

	receipt.StoreName = parsed.StoreName
	receipt.Date = parsed.Date
	receipt.Total = parsed.Total
	receipt.Currency = parsed.Currency
	receipt.TerminalID = parsed.TerminalID

	slog.Debug("Scanned receipt",
		"store", receipt.StoreName,
		"total", receipt.Total.String(),
		"currency", receipt.Currency,
		"source", receipt.Source,
	)
	return receipt, nil
}

func hintFrom(data *scanning.ReceiptData) *extraction.Hint {
	return &extraction.Hint{
		StoreName: data.StoreName,
		Total:     decimal.NewFromFloat(data.TotalAmount),
		Currency:  data.Currency,
	}
}

func itemsFrom(scanned []scanning.ReceiptItem) []Item {
	if len(scanned) == 0 {
		return nil
	}
	items := make([]Item, 0, len(scanned))
	for _, it := range scanned {
		items = append(items, Item{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    decimal.NewFromFloat(it.Price),
		})
	}
	return items
}

// validate checks a reviewed receipt before it is saved
func validate(receipt *Receipt) error {
	if strings.TrimSpace(receipt.StoreName) == "" {
		return fmt.Errorf("%w: store name is required", ErrInvalidReceipt)
	}
	if receipt.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidReceipt)
	}
	if receipt.Total.IsNegative() {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidReceipt)
	}
	if _, ok := extraction.ParseCurrency(string(receipt.Currency)); !ok {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidReceipt, receipt.Currency)
	}
	return nil
}

// CreateReceipt saves a reviewed receipt under a freshly generated ID.
// rawText, when given, is stored alongside it for audit.
func (s *Service) CreateReceipt(receipt *Receipt, rawText string) error {
	if err := validate(receipt); err != nil {
		return err
	}

	currency, _ := extraction.ParseCurrency(string(receipt.Currency))
	receipt.Currency = currency
	receipt.StoreName = strings.TrimSpace(receipt.StoreName)
	// ID and text file are server-owned; client values are discarded
	receipt.ID = s.idGenerator.Generate()
	receipt.TextFile = ""
	if receipt.Source == "" {
		receipt.Source = SourceHeuristic
	}
	now := s.timeSource.Now()
	receipt.CreatedAt = now
	receipt.UpdatedAt = now

	if rawText != "" {
		savedName, err := s.storage.Save(receipt.ID+".txt", []byte(rawText))
		if err != nil {
			return fmt.Errorf("saving receipt text: %w", err)
		}
		receipt.TextFile = savedName
	}

	if err := s.db.SaveReceipt(receipt); err != nil {
		if receipt.TextFile != "" {
			if delErr := s.storage.Delete(receipt.TextFile); delErr != nil {
				slog.Warn("Failed to clean up receipt text", "filename", receipt.TextFile, "error", delErr)
			}
		}
		return fmt.Errorf("saving receipt to database: %w", err)
	}
	return nil
}

// GetReceipt retrieves a receipt by ID
func (s *Service) GetReceipt(id string) (*Receipt, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return nil, fmt.Errorf("getting receipt: %w", err)
	}
	return receipt, nil
}

// ListReceipts returns all receipts, most recent purchase first
func (s *Service) ListReceipts() ([]*Receipt, error) {
	receipts, err := s.db.ListReceipts()
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	slices.SortStableFunc(receipts, func(a, b *Receipt) int {
		return b.Date.Compare(a.Date)
	})
	return receipts, nil
}

// DeleteReceipt removes a receipt and its stored text
func (s *Service) DeleteReceipt(id string) error {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return fmt.Errorf("getting receipt for deletion: %w", err)
	}

	if receipt.TextFile != "" {
		if err := s.storage.Delete(receipt.TextFile); err != nil {
			// Log error but continue with database deletion
			slog.Warn("Failed to delete receipt text", "filename", receipt.TextFile, "error", err)
		}
	}

	if err := s.db.DeleteReceipt(id); err != nil {
		return fmt.Errorf("deleting receipt from database: %w", err)
	}
	return nil
}

// GetReceiptText returns the OCR text a receipt was saved with
func (s *Service) GetReceiptText(id string) (string, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return "", fmt.Errorf("getting receipt: %w", err)
	}
	if receipt.TextFile == "" {
		return "", fmt.Errorf("%w: no text stored for %s", ErrNotFound, id)
	}

	data, err := s.storage.Get(receipt.TextFile)
	if err != nil {
		return "", fmt.Errorf("getting receipt text: %w", err)
	}
	return string(data), nil
}
