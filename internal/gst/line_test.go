package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gstdesk/internal/gst"
)

func TestComputeLine_IntrastateScenario(t *testing.T) {
	// qty=2, rate=118 inclusive of 18% tax.
	line := gst.ComputeLine(gst.LineInput{
		Quantity: dec("2"),
		Rate:     dec("118"),
		TaxRate:  dec("18"),
	}, gst.Intrastate)

	assert.True(t, line.TaxableAmount.Equal(dec("200")), "taxable = %s", line.TaxableAmount)
	assert.True(t, line.CGSTAmount.Equal(dec("18")), "cgst = %s", line.CGSTAmount)
	assert.True(t, line.SGSTAmount.Equal(dec("18")), "sgst = %s", line.SGSTAmount)
	assert.True(t, line.IGSTAmount.IsZero())
	assert.True(t, line.Total.Equal(dec("236")), "total = %s", line.Total)
}

func TestComputeLine_InterstateScenario(t *testing.T) {
	line := gst.ComputeLine(gst.LineInput{
		Quantity: dec("2"),
		Rate:     dec("118"),
		TaxRate:  dec("18"),
	}, gst.Interstate)

	assert.True(t, line.TaxableAmount.Equal(dec("200")))
	assert.True(t, line.CGSTAmount.IsZero())
	assert.True(t, line.SGSTAmount.IsZero())
	assert.True(t, line.IGSTAmount.Equal(dec("36")), "igst = %s", line.IGSTAmount)
	assert.True(t, line.Total.Equal(dec("236")))
}

func TestComputeLine_ZeroTaxRate(t *testing.T) {
	line := gst.ComputeLine(gst.LineInput{
		Quantity: dec("3"),
		Rate:     dec("50"),
	}, gst.Intrastate)

	assert.True(t, line.TaxableAmount.Equal(dec("150")))
	assert.True(t, line.CGSTAmount.IsZero())
	assert.True(t, line.SGSTAmount.IsZero())
	assert.True(t, line.IGSTAmount.IsZero())
	assert.True(t, line.Total.Equal(dec("150")))
}

func TestComputeLine_PercentDiscount(t *testing.T) {
	line := gst.ComputeLine(gst.LineInput{
		Quantity: dec("2"),
		Rate:     dec("118"),
		Discount: gst.PercentDiscount(dec("10")),
		TaxRate:  dec("18"),
	}, gst.Intrastate)

	// 236 - 23.6 = 212.4 inclusive; taxable = 212.4/1.18 = 180.
	assert.True(t, line.DiscountAmount.Equal(dec("23.6")), "discount = %s", line.DiscountAmount)
	assert.True(t, line.TaxableAmount.Equal(dec("180")), "taxable = %s", line.TaxableAmount)
	assert.True(t, line.Total.Equal(dec("212.4")))
}

func TestComputeLine_FixedDiscount(t *testing.T) {
	line := gst.ComputeLine(gst.LineInput{
		Quantity: dec("2"),
		Rate:     dec("118"),
		Discount: gst.FixedDiscount(dec("36")),
		TaxRate:  dec("18"),
	}, gst.Interstate)

	assert.True(t, line.DiscountAmount.Equal(dec("36")))
	assert.True(t, line.Total.Equal(dec("200")))
	// 200/1.18 exact to the division precision; check the identity instead.
	assert.InDelta(t, 169.4915, line.TaxableAmount.InexactFloat64(), 0.0001)
}

func TestComputeLine_ZeroPercentDiscountFallsThrough(t *testing.T) {
	// A percent discount of 0 means no discount, not a zeroed line.
	line := gst.ComputeLine(gst.LineInput{
		Quantity: dec("1"),
		Rate:     dec("118"),
		Discount: gst.PercentDiscount(decimal.Zero),
		TaxRate:  dec("18"),
	}, gst.Intrastate)
	assert.True(t, line.DiscountAmount.IsZero())
	assert.True(t, line.Total.Equal(dec("118")))
}

func TestComputeLine_ReverseTaxRoundTrip(t *testing.T) {
	// qty=1, no discount: taxable * (1 + t/100) must reproduce the rate.
	for _, tc := range []struct{ rate, taxRate string }{
		{"118", "18"}, {"105", "5"}, {"112", "12"}, {"128", "28"}, {"99.99", "18"},
	} {
		line := gst.ComputeLine(gst.LineInput{
			Quantity: dec("1"),
			Rate:     dec(tc.rate),
			TaxRate:  dec(tc.taxRate),
		}, gst.Intrastate)
		back := line.TaxableAmount.Mul(decimal.NewFromInt(1).Add(dec(tc.taxRate).Div(dec("100"))))
		assert.InDelta(t, dec(tc.rate).InexactFloat64(), back.InexactFloat64(), 1e-6,
			"rate %s tax %s", tc.rate, tc.taxRate)
	}
}

func TestComputeLine_TaxDecompositionIdentity(t *testing.T) {
	// cgst + sgst + igst ≈ taxable * taxRate / 100 for both jurisdictions.
	inputs := []gst.LineInput{
		{Quantity: dec("2"), Rate: dec("118"), TaxRate: dec("18")},
		{Quantity: dec("7"), Rate: dec("33.33"), TaxRate: dec("5")},
		{Quantity: dec("1.5"), Rate: dec("240"), Discount: gst.PercentDiscount(dec("12.5")), TaxRate: dec("28")},
		{Quantity: dec("10"), Rate: dec("9.99"), Discount: gst.FixedDiscount(dec("5")), TaxRate: dec("12")},
	}
	for _, typ := range []gst.GSTType{gst.Intrastate, gst.Interstate} {
		for i, in := range inputs {
			line := gst.ComputeLine(in, typ)
			taxSum := line.CGSTAmount.Add(line.SGSTAmount).Add(line.IGSTAmount)
			expected := line.TaxableAmount.Mul(line.TaxRate).Div(dec("100"))
			assert.InDelta(t, expected.InexactFloat64(), taxSum.InexactFloat64(), 1e-6,
				"input %d %s", i, typ)

			// Line invariant: total = taxable + tax components.
			sum := line.TaxableAmount.Add(taxSum)
			assert.InDelta(t, line.Total.InexactFloat64(), sum.InexactFloat64(), 1e-6,
				"input %d %s", i, typ)
		}
	}
}

func TestComputeLine_DiscountMonotonicity(t *testing.T) {
	prev := decimal.NewFromInt(1 << 30)
	for _, pct := range []string{"0", "5", "10", "25", "50", "99"} {
		line := gst.ComputeLine(gst.LineInput{
			Quantity: dec("2"),
			Rate:     dec("118"),
			Discount: gst.PercentDiscount(dec(pct)),
			TaxRate:  dec("18"),
		}, gst.Intrastate)
		assert.True(t, line.Total.LessThan(prev), "pct %s: total %s not < %s", pct, line.Total, prev)
		prev = line.Total
	}
}

func TestDiscount_AmountOn(t *testing.T) {
	base := dec("250")
	assert.True(t, gst.PercentDiscount(dec("10")).AmountOn(base).Equal(dec("25")))
	assert.True(t, gst.FixedDiscount(dec("40")).AmountOn(base).Equal(dec("40")))
	assert.True(t, gst.Discount{}.AmountOn(base).IsZero())
}
