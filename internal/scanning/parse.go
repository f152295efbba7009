package scanning

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseReceiptJSON parses the JSON response from an LLM
func parseReceiptJSON(text string) (*ReceiptData, error) {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	// Find the JSON object boundaries - look for first { and last }
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON object in response")
	}

	text = text[startIdx : endIdx+1]

	var data ReceiptData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	data.StoreName = strings.TrimSpace(data.StoreName)
	data.Currency = strings.ToUpper(strings.TrimSpace(data.Currency))
	if data.TotalAmount < 0 {
		data.TotalAmount = 0
	}

	items := make([]ReceiptItem, 0, len(data.Items))
	for _, item := range data.Items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		items = append(items, item)
	}
	data.Items = items

	return &data, nil
}
