// Package gst implements the GST-aware line item and document totals
// engine: jurisdiction classification, CGST/SGST vs IGST rate splits,
// reverse derivation of the taxable base from tax-inclusive rates, and
// document aggregation with integer round-off. Every function is pure
// and total over already-sanitized numeric input; validation belongs to
// the calling form layer.
package gst

import "strings"

// GSTType classifies a transaction by jurisdiction.
type GSTType string

const (
	// Intrastate means seller and counterparty are in the same state:
	// tax splits into equal CGST and SGST halves.
	Intrastate GSTType = "intrastate"
	// Interstate means different states: the full rate applies as IGST.
	Interstate GSTType = "interstate"
)

// ResolveType classifies a transaction from the seller and counterparty
// states. It returns the zero GSTType when either state is missing, in
// which case no tax split may be applied. Comparison is case-insensitive
// and ignores surrounding whitespace.
func ResolveType(sellerState, counterpartyState string) GSTType {
	seller := strings.TrimSpace(sellerState)
	counterparty := strings.TrimSpace(counterpartyState)
	if seller == "" || counterparty == "" {
		return ""
	}
	if strings.EqualFold(seller, counterparty) {
		return Intrastate
	}
	return Interstate
}
