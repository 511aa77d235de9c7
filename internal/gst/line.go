package gst

import "github.com/shopspring/decimal"

// DiscountMode selects how a discount value is interpreted.
type DiscountMode string

const (
	// DiscountPercent interprets the value as a percentage of the base.
	DiscountPercent DiscountMode = "percent"
	// DiscountFixed interprets the value as an absolute currency amount.
	DiscountFixed DiscountMode = "fixed"
)

// Discount is a tagged percentage-or-fixed discount. The two modes are
// mutually exclusive by construction; a zero Discount means none.
type Discount struct {
	Mode  DiscountMode    `json:"mode"`
	Value decimal.Decimal `json:"value"`
}

// PercentDiscount returns a percentage discount.
func PercentDiscount(value decimal.Decimal) Discount {
	return Discount{Mode: DiscountPercent, Value: value}
}

// FixedDiscount returns a fixed-amount discount.
func FixedDiscount(value decimal.Decimal) Discount {
	return Discount{Mode: DiscountFixed, Value: value}
}

// AmountOn resolves the discount against a base amount. A percentage
// discount is preferred only when its value is positive, matching the
// percentage-over-amount precedence of the document forms.
func (d Discount) AmountOn(base decimal.Decimal) decimal.Decimal {
	switch {
	case d.Mode == DiscountPercent && d.Value.IsPositive():
		return base.Mul(d.Value).Div(hundred)
	case d.Mode == DiscountFixed:
		return d.Value
	default:
		return decimal.Zero
	}
}

// LineInput carries the editable fields of one document row. Rate is the
// unit price inclusive of tax; TaxRate is the aggregate GST percentage.
type LineInput struct {
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Discount Discount        `json:"discount"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// Line is a fully computed document row.
type Line struct {
	Quantity       decimal.Decimal `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	Discount       Discount        `json:"discount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	CGSTRate       decimal.Decimal `json:"cgst_rate"`
	SGSTRate       decimal.Decimal `json:"sgst_rate"`
	IGSTRate       decimal.Decimal `json:"igst_rate"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	CGSTAmount     decimal.Decimal `json:"cgst_amount"`
	SGSTAmount     decimal.Decimal `json:"sgst_amount"`
	IGSTAmount     decimal.Decimal `json:"igst_amount"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeLine derives all computed fields of one row. The order of
// operations is fixed: gross amount, discount, reverse tax-exclusive
// derivation, component amounts. Rates entered by the user already
// include tax, so the taxable base is recovered by dividing the
// discounted amount by (1 + taxRate/100); the tax-inclusive line total
// is the discounted amount itself.
func ComputeLine(in LineInput, t GSTType) Line {
	lineAmount := in.Quantity.Mul(in.Rate)
	discountAmount := in.Discount.AmountOn(lineAmount)
	afterDiscount := lineAmount.Sub(discountAmount)

	taxableAmount := afterDiscount
	if in.TaxRate.IsPositive() {
		taxableAmount = afterDiscount.Div(decimal.NewFromInt(1).Add(in.TaxRate.Div(hundred)))
	}

	split := SplitRate(in.TaxRate, t)
	return Line{
		Quantity:       in.Quantity,
		Rate:           in.Rate,
		Discount:       in.Discount,
		DiscountAmount: discountAmount,
		TaxRate:        in.TaxRate,
		CGSTRate:       split.CGST,
		SGSTRate:       split.SGST,
		IGSTRate:       split.IGST,
		TaxableAmount:  taxableAmount,
		CGSTAmount:     taxableAmount.Mul(split.CGST).Div(hundred),
		SGSTAmount:     taxableAmount.Mul(split.SGST).Div(hundred),
		IGSTAmount:     taxableAmount.Mul(split.IGST).Div(hundred),
		Total:          afterDiscount,
	}
}

// Input returns the editable fields of a computed line, for re-running
// the calculation after a field edit.
func (l Line) Input() LineInput {
	return LineInput{
		Quantity: l.Quantity,
		Rate:     l.Rate,
		Discount: l.Discount,
		TaxRate:  l.TaxRate,
	}
}
