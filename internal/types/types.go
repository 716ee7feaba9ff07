// =============================================================================
// Grocery Receipt - Shared Types
// =============================================================================
//
// This package contains the domain types shared by every stage of the
// receipt pipeline. Keeping them here avoids import cycles between:
//   - loader
//   - aggregator
//   - receiptwriter
//   - converter
//
// =============================================================================

package types

// =============================================================================
// LINE ITEM
// =============================================================================

// LineItem represents one purchased product line.
// A LineItem is only ever built from a well-formed input record.
type LineItem struct {
	// ID is the opaque identifier from the input. It is neither validated
	// nor deduplicated.
	ID string

	// Name is the display name of the product.
	Name string

	// Quantity is the number of units purchased. Expected to be
	// non-negative, not enforced.
	Quantity int

	// UnitPrice is the price of a single unit.
	UnitPrice float64
}

// Total returns Quantity * UnitPrice. It is derived, never stored.
func (li LineItem) Total() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// =============================================================================
// RECEIPT TOTALS
// =============================================================================

// ReceiptTotals is the aggregate computed once from the final item list.
// Values are unrounded; rounding only happens at display time.
type ReceiptTotals struct {
	// Subtotal is the sum of every line total, in input order.
	Subtotal float64

	// Tax is Subtotal multiplied by the fixed tax rate.
	Tax float64

	// GrandTotal is Subtotal + Tax.
	GrandTotal float64
}
