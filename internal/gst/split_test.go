package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gstdesk/internal/gst"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitRate_Intrastate(t *testing.T) {
	split := gst.SplitRate(dec("18"), gst.Intrastate)
	assert.True(t, split.CGST.Equal(dec("9")), "cgst = %s", split.CGST)
	assert.True(t, split.SGST.Equal(dec("9")), "sgst = %s", split.SGST)
	assert.True(t, split.IGST.IsZero())
}

func TestSplitRate_Interstate(t *testing.T) {
	split := gst.SplitRate(dec("18"), gst.Interstate)
	assert.True(t, split.CGST.IsZero())
	assert.True(t, split.SGST.IsZero())
	assert.True(t, split.IGST.Equal(dec("18")))
}

func TestSplitRate_OddRateHalves(t *testing.T) {
	split := gst.SplitRate(dec("5"), gst.Intrastate)
	assert.True(t, split.CGST.Equal(dec("2.5")))
	assert.True(t, split.SGST.Equal(dec("2.5")))
}

func TestSplitRate_ZeroRate(t *testing.T) {
	for _, typ := range []gst.GSTType{gst.Intrastate, gst.Interstate} {
		split := gst.SplitRate(decimal.Zero, typ)
		assert.True(t, split.CGST.IsZero())
		assert.True(t, split.SGST.IsZero())
		assert.True(t, split.IGST.IsZero())
	}
}

func TestSplitRate_UnresolvedType(t *testing.T) {
	split := gst.SplitRate(dec("18"), "")
	assert.True(t, split.CGST.IsZero())
	assert.True(t, split.SGST.IsZero())
	assert.True(t, split.IGST.IsZero())
}

func TestSplitRate_ComponentsSumToAggregate(t *testing.T) {
	for _, rate := range []string{"0", "0.25", "3", "5", "12", "18", "28"} {
		for _, typ := range []gst.GSTType{gst.Intrastate, gst.Interstate} {
			split := gst.SplitRate(dec(rate), typ)
			sum := split.CGST.Add(split.SGST).Add(split.IGST)
			assert.True(t, sum.Equal(dec(rate)), "rate %s %s: sum %s", rate, typ, sum)
		}
	}
}
