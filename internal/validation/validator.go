// =============================================================================
// Grocery Receipt - Record Validation Module
// =============================================================================
//
// This module decides whether a raw input record is a line item. It is the
// single place where the record rules live:
//   - Exactly four fields: id, name, quantity, price
//   - Quantity must parse as a base-10 integer
//   - Price must parse as a finite decimal number (no hex floats)
//
// Id and name are stored verbatim. Surrounding whitespace is ignored only
// while reading the two numbers, so " 2" is a quantity of 2 but " Milk"
// keeps its space.
//
// =============================================================================

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ginjaninja78/grocery-receipt/internal/types"
)

// =============================================================================
// RECORD LAYOUT
// =============================================================================

// FieldCount is the number of fields in a well-formed record.
const FieldCount = 4

// Field positions within a record.
const (
	FieldID = iota
	FieldName
	FieldQuantity
	FieldPrice
)

// Rule names reported on a ValidationError.
const (
	RuleFieldCount = "field_count"
	RuleInteger    = "integer"
	RuleDecimal    = "decimal"
)

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError describes why a record was rejected.
type ValidationError struct {
	// Field is the name of the offending field. Empty for arity failures.
	Field string

	// Value is the offending field value as read.
	Value string

	// Rule is the rule that was violated.
	Rule string

	// Message is a human-readable description.
	Message string

	// RowNumber is the 1-based line (or sheet row) number of the record.
	RowNumber int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.RowNumber, e.Message)
	}
	return fmt.Sprintf("row %d, field '%s': %s (value: '%s')", e.RowNumber, e.Field, e.Message, e.Value)
}

// =============================================================================
// RECORD VALIDATION
// =============================================================================

// ValidateRecord converts the fields of one record into a LineItem.
//
// PARAMETERS:
//   - fields: The record fields, already split.
//   - rowNumber: The 1-based row number, used for error reporting.
//
// RETURNS:
//   - The LineItem when the record is well-formed.
//   - A *ValidationError otherwise. The LineItem is then the zero value and
//     must not be used.
func ValidateRecord(fields []string, rowNumber int) (types.LineItem, *ValidationError) {
	if len(fields) != FieldCount {
		return types.LineItem{}, &ValidationError{
			Rule:      RuleFieldCount,
			Message:   fmt.Sprintf("expected %d fields, got %d", FieldCount, len(fields)),
			RowNumber: rowNumber,
		}
	}

	quantity, msg := validateInteger(fields[FieldQuantity])
	if msg != "" {
		return types.LineItem{}, &ValidationError{
			Field:     "quantity",
			Value:     fields[FieldQuantity],
			Rule:      RuleInteger,
			Message:   msg,
			RowNumber: rowNumber,
		}
	}

	price, msg := validateDecimal(fields[FieldPrice])
	if msg != "" {
		return types.LineItem{}, &ValidationError{
			Field:     "price",
			Value:     fields[FieldPrice],
			Rule:      RuleDecimal,
			Message:   msg,
			RowNumber: rowNumber,
		}
	}

	return types.LineItem{
		ID:        fields[FieldID],
		Name:      fields[FieldName],
		Quantity:  quantity,
		UnitPrice: price,
	}, nil
}

// validateInteger parses value as an int. An empty message means success.
func validateInteger(value string) (int, string) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Sprintf("value '%s' is not a valid integer", value)
	}
	return n, ""
}

// validateDecimal parses value as a finite float64. An empty message means
// success.
func validateDecimal(value string) (float64, string) {
	trimmed := strings.TrimSpace(value)
	if hasHexPrefix(trimmed) {
		return 0, fmt.Sprintf("value '%s' is not a valid decimal number", value)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Sprintf("value '%s' is not a valid decimal number", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Sprintf("value '%s' is not a finite number", value)
	}
	return f, ""
}

// hasHexPrefix reports whether value, after an optional sign, starts with
// "0x" or "0X". ParseFloat accepts hex floats such as "0x1p3"; prices don't.
func hasHexPrefix(value string) bool {
	unsigned := strings.TrimLeft(value, "+-")
	return len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}
