package extraction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Parse extracts a receipt from OCR text and an optional fiscal QR payload.
// An empty qrPayload means no QR code was decoded. Fields that cannot be
// found take their defaults: UnknownStore, the current time, zero and
// DefaultCurrency.
func Parse(rawText, qrPayload string) ParsedReceipt {
	return ParseAt(rawText, qrPayload, time.Now())
}

// ParseAt is Parse with an explicit clock. now is the fallback date and its
// location is used to interpret printed dates.
func ParseAt(rawText, qrPayload string, now time.Time) ParsedReceipt {
	lines := Lines(rawText)

	r := ParsedReceipt{
		StoreName: ExtractStoreName(lines),
		Total:     ExtractTotal(lines),
		Currency:  DetectCurrency(rawText),
		RawText:   rawText,
	}

	date, ok := extractDate(lines, now.Location())
	if !ok {
		date = now
	}
	r.Date = date

	// the QR timestamp is machine encoded and always wins over OCR
	if qrPayload != "" {
		if qr, ok := parseFiscalQR(qrPayload, now.Location()); ok {
			r.Date = qr.Date
			r.TerminalID = qr.TerminalID
		}
	}
	return r
}

// Merge overlays fields from an external structured extraction onto r.
// Blank names, non-positive totals and unsupported currencies in h are
// ignored. Date, raw text and terminal id always come from r.
func Merge(r ParsedReceipt, h *Hint) ParsedReceipt {
	if h == nil {
		return r
	}
	if name := strings.TrimSpace(h.StoreName); name != "" {
		r.StoreName = name
	}
	if h.Total.GreaterThan(decimal.Zero) {
		r.Total = h.Total
	}
	if c, ok := ParseCurrency(h.Currency); ok {
		r.Currency = c
	}
	return r
}
