package extraction

import (
	"strings"
	"time"
)

// fiscalQRLayout is the date field followed by the time field, DDMMYYYYHHmmss
const fiscalQRLayout = "02012006150405"

// ParseFiscalQR decodes a DDMMYYYY#HHMMSS#TERMINALID#... payload.
// Trailing hash and signature fields are ignored. The bool is false when the
// payload is not a fiscal QR record.
func ParseFiscalQR(payload string) (FiscalQRRecord, bool) {
	return parseFiscalQR(payload, time.Local)
}

func parseFiscalQR(payload string, loc *time.Location) (FiscalQRRecord, bool) {
	fields := strings.Split(strings.TrimSpace(payload), "#")
	if len(fields) < 3 || len(fields[0]) != 8 || len(fields[1]) != 6 {
		return FiscalQRRecord{}, false
	}

	date, err := time.ParseInLocation(fiscalQRLayout, fields[0]+fields[1], loc)
	if err != nil {
		return FiscalQRRecord{}, false
	}
	return FiscalQRRecord{
		Date:       date,
		TerminalID: fields[2],
	}, true
}
