package extraction

import "strings"

// Lines splits raw OCR text into trimmed, non-empty lines in printed order
func Lines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
