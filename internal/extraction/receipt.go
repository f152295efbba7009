package extraction

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownStore is returned when no line qualifies as a business name
const UnknownStore = "Unknown Store"

// ParsedReceipt is the structured result of parsing one scan
type ParsedReceipt struct {
	StoreName  string          `json:"store_name"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Currency   Currency        `json:"currency"`
	RawText    string          `json:"raw_text"`
	TerminalID string          `json:"terminal_id,omitempty"`
}

// FiscalQRRecord holds the fields decoded from a fiscal QR payload
type FiscalQRRecord struct {
	Date       time.Time
	TerminalID string
}

// Hint carries fields produced by an external structured extractor.
// Zero values mean the extractor did not find the field.
type Hint struct {
	StoreName string
	Total     decimal.Decimal
	Currency  string
}
