package scanning

import "context"

// ReceiptData contains the fields an LLM extracted from receipt text
type ReceiptData struct {
	StoreName   string        `json:"store_name"`
	TotalAmount float64       `json:"total_amount"`
	Currency    string        `json:"currency"` // ISO 4217 code
	Items       []ReceiptItem `json:"items"`
}

// ReceiptItem is a single purchased line
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Scanner defines the interface for structured receipt extraction
type Scanner interface {
	// ExtractReceipt reads OCR text and extracts structured fields
	ExtractReceipt(ctx context.Context, text string) (*ReceiptData, error)
	// Close closes the scanner and releases resources
	Close() error
}
