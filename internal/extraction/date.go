package extraction

import (
	"regexp"
	"time"
)

// dateFormat pairs a shape with the layout used to parse what it captures
type dateFormat struct {
	name    string
	pattern *regexp.Regexp
	layout  string
}

// dateFormats is ordered most specific first. DD/MM/YY must stay after
// DD/MM/YYYY; the digit guards keep it from matching a four-digit year while
// still allowing letters to touch the date.
var dateFormats = []dateFormat{
	{"iso", digitGuarded(`\d{4}-\d{1,2}-\d{1,2}`), "2006-1-2"},
	{"slash", digitGuarded(`\d{1,2}/\d{1,2}/\d{4}`), "2/1/2006"},
	{"dash", digitGuarded(`\d{1,2}-\d{1,2}-\d{4}`), "2-1-2006"},
	{"slash-short", digitGuarded(`\d{1,2}/\d{1,2}/\d{2}`), "2/1/06"},
	{"dot", digitGuarded(`\d{1,2}\.\d{1,2}\.\d{4}`), "2.1.2006"},
}

// digitGuarded compiles expr so it only matches when not flanked by digits.
// The date itself is the first capture group.
func digitGuarded(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|\D)(` + expr + `)(?:\D|$)`)
}

// match returns the parsed date when line carries this format and the
// captured text is a real calendar date.
func (f dateFormat) match(line string, loc *time.Location) (time.Time, bool) {
	m := f.pattern.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(f.layout, m[1], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractDate returns the first date found in lines, interpreted in time.Local
func ExtractDate(lines []string) (time.Time, bool) {
	return extractDate(lines, time.Local)
}

func extractDate(lines []string, loc *time.Location) (time.Time, bool) {
	for _, line := range lines {
		for _, f := range dateFormats {
			if t, ok := f.match(line, loc); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// looksLikeDate reports whether any date shape occurs in s, valid or not
func looksLikeDate(s string) bool {
	for _, f := range dateFormats {
		if f.pattern.MatchString(s) {
			return true
		}
	}
	return false
}
