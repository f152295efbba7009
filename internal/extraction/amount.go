package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// "5,400. 00" is OCR splitting the decimal part off
	strayDecimalSpace = regexp.MustCompile(`(\d)\.\s+(\d)`)
	priceToken        = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?`)
)

// ExtractAmount returns the rightmost price-shaped number in line.
// The bool is false when the line carries no number at all.
func ExtractAmount(line string) (decimal.Decimal, bool) {
	line = strayDecimalSpace.ReplaceAllString(line, "$1.$2")
	tokens := priceToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(tokens[len(tokens)-1], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
