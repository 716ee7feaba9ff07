// =============================================================================
// Grocery Receipt - Receipt Writer Module
// =============================================================================
//
// This module renders the fixed-layout receipt and delivers it to a sink.
// The same Render function feeds the console and the output file, so both
// receive identical bytes.
//
// LAYOUT:
//   ======= SHOPPING RECEIPT =======
//   ID	Name	Qty	Price	Total
//   <id>	<name>	<qty>	<price>	<total>
//   --------------------------------
//   Subtotal: <subtotal>
//   Tax (16%): <tax>
//   Grand Total: <grand total>
//   ================================
//
// All amounts are shown with exactly two decimal places. Lines end in "\n".
//
// =============================================================================

package receiptwriter

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/grocery-receipt/internal/types"
	"github.com/ginjaninja78/grocery-receipt/pkg/utils"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

const (
	// TitleBanner opens the receipt.
	TitleBanner = "======= SHOPPING RECEIPT ======="

	// HeaderRow names the tab-separated item columns.
	HeaderRow = "ID\tName\tQty\tPrice\tTotal"

	// SeparatorRule divides items from totals.
	SeparatorRule = "--------------------------------"

	// ClosingBanner ends the receipt.
	ClosingBanner = "================================"

	// amountPlaces is the number of decimals shown for every amount.
	amountPlaces = 2
)

// =============================================================================
// RENDERING
// =============================================================================

// Render writes the receipt for items and totals to w.
//
// RETURNS:
//   - The first write error. Nothing after a failed write is attempted.
func Render(w io.Writer, items []types.LineItem, totals types.ReceiptTotals) error {
	ew := &errWriter{w: w}

	ew.line(TitleBanner)
	ew.line(HeaderRow)
	for _, item := range items {
		ew.line(FormatItem(item))
	}
	ew.line(SeparatorRule)
	ew.line("Subtotal: " + FormatAmount(totals.Subtotal))
	ew.line("Tax (16%): " + FormatAmount(totals.Tax))
	ew.line("Grand Total: " + FormatAmount(totals.GrandTotal))
	ew.line(ClosingBanner)

	return ew.err
}

// Generate returns the rendered receipt as bytes.
func Generate(items []types.LineItem, totals types.ReceiptTotals) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = Render(&buf, items, totals)
	return buf.Bytes()
}

// WriteFile renders the receipt into the file at path, replacing any previous
// content. The file is always closed before WriteFile returns.
func WriteFile(path string, items []types.LineItem, totals types.ReceiptTotals) error {
	if err := utils.WriteFile(path, func(w io.Writer) error {
		return Render(w, items, totals)
	}); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

// FormatItem renders one tab-separated item row.
func FormatItem(item types.LineItem) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%s",
		item.ID,
		item.Name,
		item.Quantity,
		FormatAmount(item.UnitPrice),
		FormatAmount(item.Total()),
	)
}

// FormatAmount renders v with exactly two decimal places. Midpoints of the
// shortest decimal form of v round away from zero, so 0.125 reads "0.13".
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', amountPlaces, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(amountPlaces)
}

// =============================================================================
// WRITE HELPER
// =============================================================================

// errWriter stops writing after the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}
