package gst

import "github.com/shopspring/decimal"

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// RateSplit holds the component rates an aggregate GST rate decomposes
// into. Exactly one side is populated: CGST+SGST for intrastate, IGST
// for interstate. CGST + SGST + IGST always equals the aggregate rate.
type RateSplit struct {
	CGST decimal.Decimal `json:"cgst_rate"`
	SGST decimal.Decimal `json:"sgst_rate"`
	IGST decimal.Decimal `json:"igst_rate"`
}

// SplitRate decomposes an aggregate tax rate by jurisdiction. A zero
// rate yields an all-zero split. An unresolved GSTType also yields an
// all-zero split: no classification, no tax components.
func SplitRate(taxRate decimal.Decimal, t GSTType) RateSplit {
	switch t {
	case Intrastate:
		half := taxRate.Div(two)
		return RateSplit{CGST: half, SGST: half}
	case Interstate:
		return RateSplit{IGST: taxRate}
	default:
		return RateSplit{}
	}
}
