package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const totalLabel = "TOTAL"

// totalModifiers mark TOTAL lines that are tax or subtotal breakdowns
var totalModifiers = []string{"TAX", "A-EX", "B-18", "HT", "TTC", "TVA", "NET"}

// valueBlockLabels may appear between a bare TOTAL and its value column
var (
	valueBlockPrefixes  = []string{totalLabel, "CASH", "ITEMS NUMBER"}
	valueBlockFragments = []string{"TAX", "CASHIER", "RCVD", "CHAN", "PAY"}
)

var numericLine = regexp.MustCompile(`^[\d.,\s]*\d[\d.,\s]*$`)

// totalStrategy finds a grand total in lines or reports that it found none
type totalStrategy func(lines []string) (decimal.Decimal, bool)

// totalStrategies run in order until one succeeds
var totalStrategies = []totalStrategy{
	sameLineTotal,
	twoColumnTotal,
}

// ExtractTotal returns the grand total, or zero when it needs manual entry
func ExtractTotal(lines []string) decimal.Decimal {
	for _, strategy := range totalStrategies {
		if total, ok := strategy(lines); ok {
			return total
		}
	}
	return decimal.Zero
}

// sameLineTotal handles "TOTAL 5,400.00" where label and value share a line
func sameLineTotal(lines []string) (decimal.Decimal, bool) {
	for _, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.HasPrefix(upper, totalLabel) {
			continue
		}
		if isBreakdown(upper[len(totalLabel):]) {
			continue
		}
		if amount, ok := ExtractAmount(line); ok && amount.IsPositive() {
			return amount, true
		}
	}
	return decimal.Zero, false
}

func isBreakdown(suffix string) bool {
	suffix = strings.TrimLeft(suffix, " \t:")
	for _, mod := range totalModifiers {
		if strings.HasPrefix(suffix, mod) {
			return true
		}
	}
	return false
}

// twoColumnTotal handles layouts where OCR emits the label column before
// the value column, so the value follows a bare TOTAL several lines later.
func twoColumnTotal(lines []string) (decimal.Decimal, bool) {
	start := -1
	for i, line := range lines {
		if strings.ToUpper(strings.TrimSpace(line)) == totalLabel {
			start = i
			break
		}
	}
	if start < 0 {
		return decimal.Zero, false
	}

	for _, line := range lines[start+1:] {
		if numericLine.MatchString(line) {
			if amount, ok := ExtractAmount(line); ok && amount.IsPositive() {
				return amount, true
			}
			continue
		}
		if !isValueBlockLabel(strings.ToUpper(line)) {
			// value block ended
			return decimal.Zero, false
		}
	}
	return decimal.Zero, false
}

func isValueBlockLabel(upper string) bool {
	for _, prefix := range valueBlockPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	for _, frag := range valueBlockFragments {
		if strings.Contains(upper, frag) {
			return true
		}
	}
	return false
}
