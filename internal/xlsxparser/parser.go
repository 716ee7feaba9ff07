// =============================================================================
// Grocery Receipt - XLSX Input Module
// =============================================================================
//
// This module reads grocery records from an XLSX workbook so that a list kept
// in a spreadsheet can be used without exporting it first. Only the first
// sheet is read. Each non-empty row is one record and its cells are the
// record fields, in the same order as the text format:
//
//   | A  | B     | C   | D     |
//   |----|-------|-----|-------|
//   | 1  | Milk  | 2   | 3.50  |
//   | 2  | Bread | 1   | 2.00  |
//
// There is no header row. Cell values are taken as formatted by the workbook.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Extension is the file extension routed to this parser.
const Extension = ".xlsx"

// Row is one non-empty worksheet row.
type Row struct {
	// Number is the 1-based row number within the sheet.
	Number int

	// Cells holds the cell values. Trailing empty cells are dropped by
	// excelize.
	Cells []string
}

// Raw returns the cells joined by commas, the way the row would look in the
// text format. Used for diagnostics.
func (r Row) Raw() string {
	return strings.Join(r.Cells, ",")
}

// ReadRows returns every non-empty row of the first sheet in order.
//
// PARAMETERS:
//   - path: The path to the XLSX workbook.
//
// RETURNS:
//   - The rows, skipping blank ones.
//   - An error if the workbook cannot be opened or has no sheets.
func ReadRows(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	out := make([]Row, 0, len(rows))
	for i, cells := range rows {
		if isRowEmpty(cells) {
			continue
		}
		out = append(out, Row{Number: i + 1, Cells: cells})
	}

	return out, nil
}

// isRowEmpty reports whether every cell in the row is empty.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
