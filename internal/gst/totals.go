package gst

import "github.com/shopspring/decimal"

// Totals is the fully derived document summary. It owns no state of its
// own: it is recomputed from the lines and the document discount after
// every mutation, and is surfaced as plain serializable data.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	IGST           decimal.Decimal `json:"igst"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	BeforeDiscount decimal.Decimal `json:"before_discount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	RoundOff       decimal.Decimal `json:"round_off"`
	Total          decimal.Decimal `json:"total"`
}

// Aggregate sums the computed lines and applies the document-level
// discount. The grand total is rounded to a whole currency unit (ties
// away from zero, i.e. half-up for the non-negative totals documents
// produce) and the signed residue is kept as RoundOff, so that
// Total - RoundOff reproduces the unrounded value exactly.
func Aggregate(lines []Line, docDiscount Discount) Totals {
	var t Totals
	for i := range lines {
		t.Subtotal = t.Subtotal.Add(lines[i].TaxableAmount)
		t.CGST = t.CGST.Add(lines[i].CGSTAmount)
		t.SGST = t.SGST.Add(lines[i].SGSTAmount)
		t.IGST = t.IGST.Add(lines[i].IGSTAmount)
	}
	t.TotalTax = t.CGST.Add(t.SGST).Add(t.IGST)
	t.BeforeDiscount = t.Subtotal.Add(t.TotalTax)
	t.DiscountAmount = docDiscount.AmountOn(t.BeforeDiscount)

	unrounded := t.BeforeDiscount.Sub(t.DiscountAmount)
	t.Total = unrounded.Round(0)
	t.RoundOff = t.Total.Sub(unrounded)
	return t
}
