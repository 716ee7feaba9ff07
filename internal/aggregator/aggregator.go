// Package aggregator derives receipt totals from line items.
package aggregator

import "github.com/ginjaninja78/grocery-receipt/internal/types"

// TaxRate is the fixed sales tax applied to the subtotal.
const TaxRate = 0.16

// Aggregate sums line totals in input order and derives tax and grand total.
// No rounding is applied. An empty slice yields all zeros.
func Aggregate(items []types.LineItem) types.ReceiptTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total()
	}

	tax := subtotal * TaxRate

	return types.ReceiptTotals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}
