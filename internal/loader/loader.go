// =============================================================================
// Grocery Receipt - Loader Module
// =============================================================================
//
// This module turns an input file into a sequence of parse results, one per
// record, in file order. A result is either a LineItem or a rejection with
// the reason attached. The loader never decides how rejections are reported;
// that is left to the caller.
//
// INPUT FORMATS:
//   - Text (default): one record per line, "id,name,quantity,price".
//     Lines are split strictly on ',' with no quoting rules and no trimming.
//   - XLSX (*.xlsx): first sheet, one record per non-empty row.
//
// MISSING INPUT:
//   A path that does not exist (or names a directory) yields no results and
//   an error wrapping ErrFileNotFound.
//
// =============================================================================

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/grocery-receipt/internal/types"
	"github.com/ginjaninja78/grocery-receipt/internal/validation"
	"github.com/ginjaninja78/grocery-receipt/internal/xlsxparser"
)

// ErrFileNotFound is returned when the input path does not name a file.
var ErrFileNotFound = errors.New("file not found")

// Delimiter separates the fields of a text record.
const Delimiter = ","

const utf8BOM = "\uFEFF"

// =============================================================================
// PARSE RESULT
// =============================================================================

// ParseResult is the outcome of parsing one record.
type ParseResult struct {
	// LineNumber is the 1-based line (or sheet row) of the record.
	LineNumber int

	// Raw is the record exactly as read, without its line terminator.
	Raw string

	// Item is the parsed line item. Only meaningful when Err is nil.
	Item types.LineItem

	// Err explains why the record was rejected. Nil on success.
	Err *validation.ValidationError
}

// OK reports whether the record produced a LineItem.
func (r ParseResult) OK() bool {
	return r.Err == nil
}

// ParseLine parses one text record.
func ParseLine(lineNumber int, raw string) ParseResult {
	item, verr := validation.ValidateRecord(strings.Split(raw, Delimiter), lineNumber)
	return ParseResult{
		LineNumber: lineNumber,
		Raw:        raw,
		Item:       item,
		Err:        verr,
	}
}

// Items returns the line items of the successful results, in order.
func Items(results []ParseResult) []types.LineItem {
	items := make([]types.LineItem, 0, len(results))
	for _, r := range results {
		if r.OK() {
			items = append(items, r.Item)
		}
	}
	return items
}

// Failures returns the rejected results, in order.
func Failures(results []ParseResult) []ParseResult {
	var failed []ParseResult
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads every record from the file at path.
//
// PARAMETERS:
//   - path: The input file. Files ending in .xlsx are read as workbooks,
//     everything else as text.
//
// RETURNS:
//   - One ParseResult per record, in file order.
//   - An error wrapping ErrFileNotFound when the path is not a file, or any
//     I/O error hit while reading.
func Load(path string) ([]ParseResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	if strings.EqualFold(filepath.Ext(path), xlsxparser.Extension) {
		return loadWorkbook(path)
	}

	return loadText(path)
}

// loadText reads a text file line by line.
func loadText(path string) ([]ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	scanner := NewScanner(file)

	var results []ParseResult
	for scanner.Next() {
		results = append(results, scanner.Result())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// loadWorkbook reads the first sheet of an XLSX workbook.
func loadWorkbook(path string) ([]ParseResult, error) {
	rows, err := xlsxparser.ReadRows(path)
	if err != nil {
		return nil, err
	}

	results := make([]ParseResult, 0, len(rows))
	for _, row := range rows {
		item, verr := validation.ValidateRecord(row.Cells, row.Number)
		results = append(results, ParseResult{
			LineNumber: row.Number,
			Raw:        row.Raw(),
			Item:       item,
			Err:        verr,
		})
	}

	return results, nil
}

// =============================================================================
// STREAMING SCANNER
// =============================================================================

// Scanner parses text records one line at a time. Lines may be of any
// length; "\n" and "\r\n" terminators are both accepted.
//
// USAGE:
//
//	s := NewScanner(r)
//	for s.Next() {
//	    res := s.Result()
//	    // ...
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
type Scanner struct {
	lines   *bufio.Reader
	current ParseResult
	lineNo  int
	done    bool
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewReader(r)}
}

// Next advances to the next record. It returns false at end of input or on
// a read error.
func (s *Scanner) Next() bool {
	if s.done || s.err != nil {
		return false
	}

	raw, err := s.lines.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = fmt.Errorf("error reading line %d: %w", s.lineNo+1, err)
			return false
		}
		s.done = true
		if raw == "" {
			return false
		}
	}

	s.lineNo++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	if s.lineNo == 1 {
		raw = strings.TrimPrefix(raw, utf8BOM)
	}

	s.current = ParseLine(s.lineNo, raw)
	return true
}

// Result returns the record read by the last call to Next.
func (s *Scanner) Result() ParseResult {
	return s.current
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error {
	return s.err
}
