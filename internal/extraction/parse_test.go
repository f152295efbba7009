package extraction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const sampleReceipt = `CIS Version 2.1 DEVNET
Kigali Fresh Market
KN 3 Rd, Kigali
TIN: 101234567
Date: 05/02/2026 14:22:10
MILK 1L            1,200.00
BREAD              3,800.00
TOTAL A-EX           0.00
TOTAL B-18       5,000.00
TOTAL TAX B        762.71
TOTAL Frw        5,000.00
CASH             10,000.00
`

var _ = Describe("ParseAt", func() {
	var (
		rawText   string
		qrPayload string
		now       time.Time
		receipt   ParsedReceipt
	)

	BeforeEach(func() {
		rawText = sampleReceipt
		qrPayload = ""
		now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	})

	JustBeforeEach(func() {
		receipt = ParseAt(rawText, qrPayload, now)
	})

	When("parsing a full receipt", func() {
		It("extracts the store name", func() {
			Expect(receipt.StoreName).To(Equal("Kigali Fresh Market"))
		})

		It("extracts the printed date", func() {
			Expect(receipt.Date).To(Equal(time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)))
		})

		It("extracts the grand total", func() {
			Expect(receipt.Total.Equal(decimal.NewFromInt(5000))).To(BeTrue())
		})

		It("detects the currency", func() {
			Expect(receipt.Currency).To(Equal(RWF))
		})

		It("carries the raw text through", func() {
			Expect(receipt.RawText).To(Equal(sampleReceipt))
		})

		It("has no terminal id", func() {
			Expect(receipt.TerminalID).To(BeEmpty())
		})
	})

	When("a fiscal QR payload decodes", func() {
		BeforeEach(func() {
			qrPayload = "08022026#185412#SDC011000805#abc#def#def"
		})

		It("uses the QR date over the printed date", func() {
			Expect(receipt.Date).To(Equal(time.Date(2026, 2, 8, 18, 54, 12, 0, time.UTC)))
		})

		It("records the terminal id", func() {
			Expect(receipt.TerminalID).To(Equal("SDC011000805"))
		})
	})

	When("the QR payload is malformed", func() {
		BeforeEach(func() {
			qrPayload = "not-a-valid-payload"
		})

		It("keeps the printed date", func() {
			Expect(receipt.Date).To(Equal(time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)))
		})
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			rawText = ""
		})

		It("returns every default", func() {
			Expect(receipt.StoreName).To(Equal(UnknownStore))
			Expect(receipt.Date).To(Equal(now))
			Expect(receipt.Total.IsZero()).To(BeTrue())
			Expect(receipt.Currency).To(Equal(RWF))
		})
	})

	When("the text has Windows line endings", func() {
		BeforeEach(func() {
			rawText = strings.ReplaceAll(sampleReceipt, "\n", "\r\n")
		})

		It("parses the same fields", func() {
			Expect(receipt.StoreName).To(Equal("Kigali Fresh Market"))
			Expect(receipt.Total.Equal(decimal.NewFromInt(5000))).To(BeTrue())
		})
	})

	It("is idempotent", func() {
		again := ParseAt(rawText, qrPayload, now)
		Expect(again).To(Equal(receipt))
	})

	It("never returns a negative total", func() {
		Expect(ParseAt("TOTAL -500", "", now).Total.IsNegative()).To(BeFalse())
	})
})

var _ = Describe("Parse", func() {
	It("defaults the date to the current time", func() {
		before := time.Now()
		receipt := Parse("no date here", "")
		Expect(receipt.Date).To(BeTemporally(">=", before))
		Expect(receipt.Date).To(BeTemporally("<=", time.Now()))
	})
})

var _ = Describe("Merge", func() {
	var parsed ParsedReceipt

	BeforeEach(func() {
		parsed = ParsedReceipt{
			StoreName:  UnknownStore,
			Date:       time.Date(2026, 2, 8, 18, 54, 12, 0, time.UTC),
			Total:      decimal.Zero,
			Currency:   RWF,
			RawText:    "raw",
			TerminalID: "SDC1",
		}
	})

	It("returns the receipt unchanged without a hint", func() {
		Expect(Merge(parsed, nil)).To(Equal(parsed))
	})

	It("prefers the hint's fields", func() {
		merged := Merge(parsed, &Hint{StoreName: " Java House ", Total: decimal.NewFromFloat(12.5), Currency: "kes"})
		Expect(merged.StoreName).To(Equal("Java House"))
		Expect(merged.Total.Equal(decimal.NewFromFloat(12.5))).To(BeTrue())
		Expect(merged.Currency).To(Equal(KES))
	})

	It("ignores empty and unsupported hint fields", func() {
		merged := Merge(parsed, &Hint{StoreName: "  ", Total: decimal.NewFromInt(-3), Currency: "NGN"})
		Expect(merged).To(Equal(parsed))
	})

	It("never takes the date, raw text or terminal id from the hint", func() {
		merged := Merge(parsed, &Hint{StoreName: "Other"})
		Expect(merged.Date).To(Equal(parsed.Date))
		Expect(merged.RawText).To(Equal("raw"))
		Expect(merged.TerminalID).To(Equal("SDC1"))
	})
})
