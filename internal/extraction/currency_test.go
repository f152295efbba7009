package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DetectCurrency", func() {
	DescribeTable("indicators",
		func(text string, expected Currency) {
			Expect(DetectCurrency(text)).To(Equal(expected))
		},
		Entry("Frw", "Total Frw 5,000", RWF),
		Entry("RWF", "TOTAL RWF 1,200", RWF),
		Entry("Ksh", "Amount Ksh 300", KES),
		Entry("UGX", "UGX 45,000", UGX),
		Entry("TZS", "TZS 9,000", TZS),
		Entry("dollar sign", "$12.00", USD),
		Entry("euro sign", "9,99 €", EUR),
		Entry("pound sign", "£4.50", GBP),
		Entry("no indicator", "TOTAL 12.00", RWF),
		Entry("empty text", "", RWF),
	)

	It("matches alphabetic codes case-sensitively", func() {
		Expect(DetectCurrency("paid in ksh and usd")).To(Equal(RWF))
	})

	It("prefers the higher-priority currency", func() {
		Expect(DetectCurrency("USD 10\nFRW 13,000")).To(Equal(RWF))
	})
})

var _ = Describe("ParseCurrency", func() {
	It("accepts supported codes in any case", func() {
		c, ok := ParseCurrency(" kes ")
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(KES))
	})

	It("rejects unsupported codes", func() {
		_, ok := ParseCurrency("NGN")
		Expect(ok).To(BeFalse())
	})

	It("lists every supported code", func() {
		Expect(Currencies()).To(Equal([]Currency{RWF, KES, UGX, TZS, USD, EUR, GBP}))
	})
})
