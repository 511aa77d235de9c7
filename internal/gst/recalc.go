package gst

// DocumentState is the in-memory value the reducer operates on: the
// computed lines, the document discount, the resolved jurisdiction, and
// the derived totals. States are independent values; editing two
// documents concurrently shares nothing.
type DocumentState struct {
	GSTType  GSTType  `json:"gst_type"`
	Discount Discount `json:"discount"`
	Lines    []Line   `json:"lines"`
	Totals   Totals   `json:"totals"`
}

// Event is one editing mutation applied to a DocumentState.
type Event interface {
	event()
}

// LineAdded appends a new row computed from its input.
type LineAdded struct {
	Input LineInput
}

// LineEdited replaces the editable fields of one row and recomputes
// that row only; other rows are untouched.
type LineEdited struct {
	Index int
	Input LineInput
}

// LineRemoved deletes one row.
type LineRemoved struct {
	Index int
}

// JurisdictionChanged re-splits the tax of every taxed row under the
// new classification while holding each row's taxable base fixed.
type JurisdictionChanged struct {
	Type GSTType
}

// DiscountChanged replaces the document-level discount.
type DiscountChanged struct {
	Discount Discount
}

func (LineAdded) event()           {}
func (LineEdited) event()          {}
func (LineRemoved) event()         {}
func (JurisdictionChanged) event() {}
func (DiscountChanged) event()     {}

// Recalculate applies one editing event and returns the next state with
// totals re-derived. It is a dispatcher, not a mode machine: only the
// work the event requires is performed. Out-of-range line indexes leave
// the lines unchanged.
func Recalculate(state DocumentState, ev Event) DocumentState {
	next := state
	next.Lines = make([]Line, len(state.Lines))
	copy(next.Lines, state.Lines)

	switch e := ev.(type) {
	case LineAdded:
		next.Lines = append(next.Lines, ComputeLine(e.Input, next.GSTType))

	case LineEdited:
		if e.Index >= 0 && e.Index < len(next.Lines) {
			next.Lines[e.Index] = ComputeLine(e.Input, next.GSTType)
		}

	case LineRemoved:
		if e.Index >= 0 && e.Index < len(next.Lines) {
			next.Lines = append(next.Lines[:e.Index], next.Lines[e.Index+1:]...)
		}

	case JurisdictionChanged:
		next.GSTType = e.Type
		for i := range next.Lines {
			next.Lines[i] = resplitLine(next.Lines[i], e.Type)
		}

	case DiscountChanged:
		next.Discount = e.Discount
	}

	next.Totals = Aggregate(next.Lines, next.Discount)
	return next
}

// resplitLine recomputes the tax components of a row from its existing
// taxable amount under a new jurisdiction. The taxable base is
// deliberately NOT re-derived from quantity and rate: a jurisdiction
// flip preserves the previously computed base and only moves the tax
// between CGST/SGST and IGST. Untaxed rows pass through unchanged.
func resplitLine(l Line, t GSTType) Line {
	if !l.TaxRate.IsPositive() {
		return l
	}
	split := SplitRate(l.TaxRate, t)
	l.CGSTRate = split.CGST
	l.SGSTRate = split.SGST
	l.IGSTRate = split.IGST
	l.CGSTAmount = l.TaxableAmount.Mul(split.CGST).Div(hundred)
	l.SGSTAmount = l.TaxableAmount.Mul(split.SGST).Div(hundred)
	l.IGSTAmount = l.TaxableAmount.Mul(split.IGST).Div(hundred)
	l.Total = l.TaxableAmount.Add(l.CGSTAmount).Add(l.SGSTAmount).Add(l.IGSTAmount)
	return l
}
