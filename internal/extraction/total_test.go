package extraction

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractTotal", func() {
	var (
		lines []string
		total decimal.Decimal
	)

	JustBeforeEach(func() {
		total = ExtractTotal(lines)
	})

	When("label and value share a line", func() {
		BeforeEach(func() {
			lines = []string{"SUBTOTAL 5,000.00", "TOTAL  5,400.00", "CASH 6,000.00"}
		})

		It("returns the value", func() {
			Expect(total.Equal(decimal.NewFromInt(5400))).To(BeTrue())
		})
	})

	When("only breakdown lines are present", func() {
		BeforeEach(func() {
			lines = []string{"TOTAL TAX  823.73"}
		})

		It("returns zero", func() {
			Expect(total.IsZero()).To(BeTrue())
		})
	})

	When("breakdown lines precede the grand total", func() {
		BeforeEach(func() {
			lines = []string{"TOTAL A-EX 1,000.00", "TOTAL B-18 4,400.00", "TOTAL TAX B 671.19", "TOTAL: 5,400.00"}
		})

		It("skips the breakdowns", func() {
			Expect(total.Equal(decimal.NewFromInt(5400))).To(BeTrue())
		})
	})

	DescribeTable("modifiers",
		func(line string) {
			Expect(ExtractTotal([]string{line}).IsZero()).To(BeTrue())
		},
		Entry("TAX", "TOTAL TAX 100"),
		Entry("A-EX", "TOTAL A-EX 100"),
		Entry("B-18", "TOTAL B-18 100"),
		Entry("HT", "TOTAL HT 100"),
		Entry("TTC", "TOTAL TTC 100"),
		Entry("TVA", "TOTAL TVA 100"),
		Entry("NET", "Total Net 100"),
	)

	When("the same-line value is zero", func() {
		BeforeEach(func() {
			lines = []string{"TOTAL 0.00", "TOTAL 250"}
		})

		It("keeps looking", func() {
			Expect(total.Equal(decimal.NewFromInt(250))).To(BeTrue())
		})
	})

	When("values are printed in a separate column", func() {
		BeforeEach(func() {
			lines = []string{
				"SHOP",
				"TOTAL",
				"TOTAL A-EX",
				"TOTAL B-18",
				"TOTAL TAX B",
				"CASH",
				"ITEMS NUMBER",
				"12,000",
				"0.00",
			}
		})

		It("returns the first positive value in the block", func() {
			Expect(total.Equal(decimal.NewFromInt(12000))).To(BeTrue())
		})
	})

	When("the value column starts with zero", func() {
		BeforeEach(func() {
			lines = []string{"TOTAL", "CASHIER: Alice", "0.00", "3,500. 00"}
		})

		It("skips the zero", func() {
			Expect(total.Equal(decimal.NewFromInt(3500))).To(BeTrue())
		})
	})

	When("the label block ends before any value", func() {
		BeforeEach(func() {
			lines = []string{"TOTAL", "CASH", "Thank you for shopping", "12,000"}
		})

		It("returns zero", func() {
			Expect(total.IsZero()).To(BeTrue())
		})
	})

	When("there is no total at all", func() {
		BeforeEach(func() {
			lines = []string{"MILK 1,200", "BREAD 800"}
		})

		It("returns zero", func() {
			Expect(total.IsZero()).To(BeTrue())
		})
	})

	When("there are no lines", func() {
		BeforeEach(func() {
			lines = nil
		})

		It("returns zero", func() {
			Expect(total.IsZero()).To(BeTrue())
		})
	})
})
