// Package money implements the financial calculator and the single
// currency-formatting contract shared by every template variant.
package money

import (
	"github.com/shopspring/decimal"

	"invoicestudio/internal/domain"
)

// Totals holds the derived financial figures for one document. Values are
// unrounded decimals; rounding happens only in the formatter at display
// time.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// HasTax reports whether a tax line should be rendered.
func (t Totals) HasTax() bool {
	return t.TaxRate.IsPositive()
}

var hundred = decimal.NewFromInt(100)

// Calculate derives subtotal, tax amount, and grand total from the ordered
// line items and the tax rate percentage. The subtotal sums the stored
// per-item amounts in input order; it does not re-derive amounts from
// quantity and unit price. Keeping Amount synchronized is the editing
// path's contract, not the calculator's.
func Calculate(items []domain.InvoiceLineItem, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Amount))
	}
	rate := decimal.NewFromFloat(taxRate)
	taxAmount := rate.Div(hundred).Mul(subtotal)
	return Totals{
		Subtotal:  subtotal,
		TaxRate:   rate,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}

// LineAmount computes quantity times unit price for the sanctioned edit
// path. Multiplication is done in decimal so 0.1-style quantities do not
// accumulate binary float error before storage.
func LineAmount(quantity, unitPrice float64) float64 {
	amount, _ := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).Float64()
	return amount
}
