package scanning

import "fmt"

// receiptExtractPrompt is the shared prompt used by all LLM providers
const receiptExtractPrompt = `You are reading the OCR text of a photographed retail receipt. The text may contain recognition errors and the columns of the receipt may be printed out of order. Extract the following information:

1. **Store Name**: The business name, usually near the top. Ignore point-of-sale software banners ("CIS Version", "Powered by", web addresses), tax identification numbers and phone numbers.

2. **Total Amount**: The grand total paid. Ignore tax breakdowns and subtotals such as "TOTAL TAX", "TOTAL A-EX", "TOTAL B-18", "TOTAL HT" or "TOTAL TVA". Extract only the numeric value (e.g., 5400.00 for "5,400.00").

3. **Currency**: The ISO 4217 code: one of RWF, KES, UGX, TZS, USD, EUR or GBP. "Frw" means RWF and "Ksh" means KES.

4. **Items**: Each purchased line with its name, quantity and line price.

Return ONLY valid JSON in this exact format:
{
  "store_name": "Store Name",
  "total_amount": 0.00,
  "currency": "RWF",
  "items": [{"name": "Item", "quantity": 1, "price": 0.00}]
}

Important:
- The amounts must be numbers (not strings)
- If you cannot find a field, use null for that field
- Do not include any text before or after the JSON
- Do not use markdown code blocks

Receipt text:
%s`

// buildPrompt appends the receipt text to the extraction prompt
func buildPrompt(text string) string {
	return fmt.Sprintf(receiptExtractPrompt, text)
}
