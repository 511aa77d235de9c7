package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstdesk/internal/gst"
)

func intrastateLine(t *testing.T) gst.Line {
	t.Helper()
	return gst.ComputeLine(gst.LineInput{
		Quantity: dec("2"),
		Rate:     dec("118"),
		TaxRate:  dec("18"),
	}, gst.Intrastate)
}

func TestAggregate_SingleLine(t *testing.T) {
	totals := gst.Aggregate([]gst.Line{intrastateLine(t)}, gst.Discount{})

	assert.True(t, totals.Subtotal.Equal(dec("200")))
	assert.True(t, totals.CGST.Equal(dec("18")))
	assert.True(t, totals.SGST.Equal(dec("18")))
	assert.True(t, totals.IGST.IsZero())
	assert.True(t, totals.TotalTax.Equal(dec("36")))
	assert.True(t, totals.BeforeDiscount.Equal(dec("236")))
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.Total.Equal(dec("236")))
	assert.True(t, totals.RoundOff.IsZero())
}

func TestAggregate_DocumentDiscountScenario(t *testing.T) {
	// One 236 line with a 10% document discount:
	// 236 - 23.6 = 212.4 → total 212, round-off -0.4.
	totals := gst.Aggregate([]gst.Line{intrastateLine(t)}, gst.PercentDiscount(dec("10")))

	assert.True(t, totals.BeforeDiscount.Equal(dec("236")))
	assert.True(t, totals.DiscountAmount.Equal(dec("23.6")), "discount = %s", totals.DiscountAmount)
	assert.True(t, totals.Total.Equal(dec("212")), "total = %s", totals.Total)
	assert.True(t, totals.RoundOff.Equal(dec("-0.4")), "round-off = %s", totals.RoundOff)
}

func TestAggregate_FixedDocumentDiscount(t *testing.T) {
	totals := gst.Aggregate([]gst.Line{intrastateLine(t)}, gst.FixedDiscount(dec("36")))
	assert.True(t, totals.DiscountAmount.Equal(dec("36")))
	assert.True(t, totals.Total.Equal(dec("200")))
	assert.True(t, totals.RoundOff.IsZero())
}

func TestAggregate_RoundOffProperties(t *testing.T) {
	lines := []gst.Line{
		gst.ComputeLine(gst.LineInput{Quantity: dec("3"), Rate: dec("99.99"), TaxRate: dec("18")}, gst.Intrastate),
		gst.ComputeLine(gst.LineInput{Quantity: dec("1"), Rate: dec("47.5"), TaxRate: dec("5")}, gst.Intrastate),
		gst.ComputeLine(gst.LineInput{Quantity: dec("2.25"), Rate: dec("12.8"), TaxRate: dec("12")}, gst.Intrastate),
	}
	for _, discount := range []gst.Discount{
		{},
		gst.PercentDiscount(dec("7.5")),
		gst.FixedDiscount(dec("13.13")),
	} {
		totals := gst.Aggregate(lines, discount)

		// |roundOff| < 1 and rounded total minus residue is the unrounded total.
		require.True(t, totals.RoundOff.Abs().LessThan(decimal.NewFromInt(1)),
			"round-off %s out of bound", totals.RoundOff)
		unrounded := totals.BeforeDiscount.Sub(totals.DiscountAmount)
		assert.True(t, totals.Total.Sub(totals.RoundOff).Equal(unrounded))

		// The surfaced total is a whole currency unit.
		assert.True(t, totals.Total.Equal(totals.Total.Round(0)))
	}
}

func TestAggregate_HalfRoundsUp(t *testing.T) {
	// A single untaxed line of 10.5 must round to 11, residue +0.5.
	line := gst.ComputeLine(gst.LineInput{Quantity: dec("1"), Rate: dec("10.5")}, gst.Intrastate)
	totals := gst.Aggregate([]gst.Line{line}, gst.Discount{})
	assert.True(t, totals.Total.Equal(dec("11")), "total = %s", totals.Total)
	assert.True(t, totals.RoundOff.Equal(dec("0.5")))
}

func TestAggregate_Empty(t *testing.T) {
	totals := gst.Aggregate(nil, gst.Discount{})
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.RoundOff.IsZero())
}

func TestAggregate_MultipleLinesSum(t *testing.T) {
	a := intrastateLine(t)
	b := gst.ComputeLine(gst.LineInput{Quantity: dec("1"), Rate: dec("105"), TaxRate: dec("5")}, gst.Intrastate)
	totals := gst.Aggregate([]gst.Line{a, b}, gst.Discount{})

	assert.True(t, totals.Subtotal.Equal(dec("300")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.CGST.Equal(dec("20.5")))
	assert.True(t, totals.SGST.Equal(dec("20.5")))
	assert.True(t, totals.BeforeDiscount.Equal(dec("341")))
}
