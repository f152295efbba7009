package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// storeNameWindow is how many lines after the banner are considered
const storeNameWindow = 10

// systemMarkers identify POS software banners and web footers
var systemMarkers = []string{
	"version", "devnet", "cis version", "pos version", "software",
	"www.", ".com", ".net", ".org", "http", "fax:", "powered by",
}

// metadataMarkers identify tax id and customer lines
var metadataMarkers = []string{"tin:", "tin ", "client"}

var (
	onlyDigitsAndPunct = regexp.MustCompile(`^[\d\p{P}\p{S}\s]+$`)
	timeOfDay          = regexp.MustCompile(`\d{1,2}:\d{2}`)
	phoneNumber        = regexp.MustCompile(`^\+?\d[\d\s-]{7,}`)
)

// ExtractStoreName returns the first plausible business name that follows
// any POS banner, or UnknownStore.
func ExtractStoreName(lines []string) string {
	start := 0
	for i, line := range lines {
		if hasSystemMarker(line) {
			start = i + 1
			break
		}
	}

	end := min(start+storeNameWindow, len(lines))
	for _, line := range lines[start:end] {
		if IsValidStoreName(line) {
			return strings.TrimSpace(line)
		}
	}
	return UnknownStore
}

// IsValidStoreName reports whether line could be a business name heading
func IsValidStoreName(line string) bool {
	line = strings.TrimSpace(line)
	if n := utf8.RuneCountInString(line); n < 4 || n > 60 {
		return false
	}
	if onlyDigitsAndPunct.MatchString(line) {
		return false
	}

	letters := countLetters(line)
	if looksLikeDate(line) || (timeOfDay.MatchString(line) && letters < 4) {
		return false
	}
	if letters < 4 {
		return false
	}
	if phoneNumber.MatchString(line) {
		return false
	}
	if hasSystemMarker(line) {
		return false
	}

	lower := strings.ToLower(line)
	for _, marker := range metadataMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

func hasSystemMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range systemMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
