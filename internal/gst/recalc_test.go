package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstdesk/internal/gst"
)

func twoLineState(t *testing.T) gst.DocumentState {
	t.Helper()
	state := gst.DocumentState{GSTType: gst.Intrastate}
	state = gst.Recalculate(state, gst.LineAdded{Input: gst.LineInput{
		Quantity: dec("2"), Rate: dec("118"), TaxRate: dec("18"),
	}})
	state = gst.Recalculate(state, gst.LineAdded{Input: gst.LineInput{
		Quantity: dec("1"), Rate: dec("105"), TaxRate: dec("5"),
	}})
	return state
}

func TestRecalculate_LineAdded(t *testing.T) {
	state := twoLineState(t)
	require.Len(t, state.Lines, 2)
	assert.True(t, state.Totals.Subtotal.Equal(dec("300")))
	assert.True(t, state.Totals.BeforeDiscount.Equal(dec("341")))
}

func TestRecalculate_LineEditedTouchesOnlyThatLine(t *testing.T) {
	state := twoLineState(t)
	before := state.Lines[1]

	next := gst.Recalculate(state, gst.LineEdited{Index: 0, Input: gst.LineInput{
		Quantity: dec("4"), Rate: dec("118"), TaxRate: dec("18"),
	}})

	assert.True(t, next.Lines[0].Total.Equal(dec("472")))
	assert.True(t, next.Lines[0].TaxableAmount.Equal(dec("400")))
	// The untouched line is carried over verbatim.
	assert.Equal(t, before, next.Lines[1])
	// The prior state is not mutated.
	assert.True(t, state.Lines[0].Total.Equal(dec("236")))
}

func TestRecalculate_LineEditedOutOfRange(t *testing.T) {
	state := twoLineState(t)
	next := gst.Recalculate(state, gst.LineEdited{Index: 5, Input: gst.LineInput{Quantity: dec("1"), Rate: dec("1")}})
	assert.Equal(t, state.Lines, next.Lines)
}

func TestRecalculate_LineRemoved(t *testing.T) {
	state := twoLineState(t)
	next := gst.Recalculate(state, gst.LineRemoved{Index: 0})
	require.Len(t, next.Lines, 1)
	assert.True(t, next.Totals.Subtotal.Equal(dec("100")))
	assert.True(t, next.Totals.BeforeDiscount.Equal(dec("105")))
}

func TestRecalculate_JurisdictionFlipPreservesTaxableBase(t *testing.T) {
	state := twoLineState(t)
	baseBefore := []string{"200", "100"}

	next := gst.Recalculate(state, gst.JurisdictionChanged{Type: gst.Interstate})

	assert.Equal(t, gst.Interstate, next.GSTType)
	for i, line := range next.Lines {
		assert.True(t, line.TaxableAmount.Equal(dec(baseBefore[i])),
			"line %d taxable = %s", i, line.TaxableAmount)
		assert.True(t, line.CGSTAmount.IsZero())
		assert.True(t, line.SGSTAmount.IsZero())
		assert.True(t, line.IGSTAmount.Equal(line.TaxableAmount.Mul(line.TaxRate).Div(dec("100"))))
		assert.True(t, line.Total.Equal(line.TaxableAmount.Add(line.IGSTAmount)))
	}
	assert.True(t, next.Totals.IGST.Equal(dec("41")))
	assert.True(t, next.Totals.CGST.IsZero())
	assert.True(t, next.Totals.BeforeDiscount.Equal(dec("341")))
}

func TestRecalculate_JurisdictionFlipRoundTrip(t *testing.T) {
	state := twoLineState(t)
	flipped := gst.Recalculate(state, gst.JurisdictionChanged{Type: gst.Interstate})
	back := gst.Recalculate(flipped, gst.JurisdictionChanged{Type: gst.Intrastate})

	for i := range state.Lines {
		assert.True(t, back.Lines[i].TaxableAmount.Equal(state.Lines[i].TaxableAmount))
		assert.True(t, back.Lines[i].CGSTAmount.Equal(state.Lines[i].CGSTAmount))
		assert.True(t, back.Lines[i].Total.Equal(state.Lines[i].Total))
	}
}

func TestRecalculate_JurisdictionFlipSkipsUntaxedLines(t *testing.T) {
	state := gst.DocumentState{GSTType: gst.Intrastate}
	state = gst.Recalculate(state, gst.LineAdded{Input: gst.LineInput{
		Quantity: dec("1"), Rate: dec("75"),
	}})
	untaxed := state.Lines[0]

	next := gst.Recalculate(state, gst.JurisdictionChanged{Type: gst.Interstate})
	assert.Equal(t, untaxed, next.Lines[0])
}

func TestRecalculate_DiscountChanged(t *testing.T) {
	state := twoLineState(t)

	next := gst.Recalculate(state, gst.DiscountChanged{Discount: gst.PercentDiscount(dec("10"))})
	assert.True(t, next.Totals.DiscountAmount.Equal(dec("34.1")))
	assert.True(t, next.Totals.Total.Equal(dec("307")), "total = %s", next.Totals.Total)
	assert.True(t, next.Totals.RoundOff.Equal(dec("0.1")))

	// Switching to a fixed discount replaces the percentage entirely.
	next = gst.Recalculate(next, gst.DiscountChanged{Discount: gst.FixedDiscount(dec("41"))})
	assert.True(t, next.Totals.DiscountAmount.Equal(dec("41")))
	assert.True(t, next.Totals.Total.Equal(dec("300")))
}
