package receipt

import (
	"time"

	"github.com/cedricbahirwe/Cashew/internal/extraction"
	"github.com/shopspring/decimal"
)

// Source records which path produced a receipt's fields
type Source string

const (
	// SourceHeuristic means only the deterministic parser was used
	SourceHeuristic Source = "heuristic"
	// SourceAssisted means an LLM extraction was merged in
	SourceAssisted Source = "assisted"
)

// Receipt represents a scanned receipt awaiting review or already saved
type Receipt struct {
	ID         string              `json:"id,omitempty"`
	StoreName  string              `json:"store_name"`
	Date       time.Time           `json:"date"`
	Total      decimal.Decimal     `json:"total"`
	Currency   extraction.Currency `json:"currency"`
	TerminalID string              `json:"terminal_id,omitempty"` // fiscal device from the QR code
	Source     Source              `json:"source"`
	Items      []Item              `json:"items,omitempty"`
	TextFile   string              `json:"text_file,omitempty"` // stored OCR text, kept for audit
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Item is a purchased line, only available from assisted scans or manual entry
type Item struct {
	Name     string          `json:"name"`
	Quantity float64         `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
