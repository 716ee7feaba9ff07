// =============================================================================
// Grocery Receipt - Converter Module
// =============================================================================
//
// This module runs the receipt pipeline for one pair of paths. It is the
// only place that decides how each condition is reported to the user.
//
// PIPELINE:
//   1. Check that both paths were given
//   2. Load the input file into parse results
//   3. Warn about every rejected record
//   4. Stop if no line item survived
//   5. Aggregate the totals
//   6. Render the receipt to the display
//   7. Write the same receipt to the output file
//
// The run is strictly sequential. Nothing is written to the output path
// unless at least one line item was parsed.
//
// =============================================================================

package converter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/grocery-receipt/internal/aggregator"
	"github.com/ginjaninja78/grocery-receipt/internal/loader"
	"github.com/ginjaninja78/grocery-receipt/internal/logger"
	"github.com/ginjaninja78/grocery-receipt/internal/receiptwriter"
	"github.com/ginjaninja78/grocery-receipt/internal/types"
	"github.com/ginjaninja78/grocery-receipt/pkg/utils"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrAborted marks a run that stopped on a condition already reported to
	// the user.
	ErrAborted = errors.New("receipt aborted")

	// ErrEmptyPath is returned when either path is empty.
	ErrEmptyPath = fmt.Errorf("%w: file paths cannot be empty", ErrAborted)

	// ErrNoValidItems is returned when no record could be parsed.
	ErrNoValidItems = fmt.Errorf("%w: no valid items found", ErrAborted)
)

// User-facing messages.
const (
	MsgEmptyPath    = "File paths cannot be empty. Exiting."
	MsgFileNotFound = "File not found."
	MsgSkipLine     = "Skipping invalid line: "
	MsgNoValidItems = "No valid items found. Exiting."
	MsgSaved        = "Receipt saved to file."
)

// =============================================================================
// REPORTER
// =============================================================================

// Reporter receives the user-facing messages of a run.
type Reporter interface {
	OK(msg string)
	Warn(msg string)
	Fail(msg string)
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result describes a finished run.
type Result struct {
	// RunID correlates the log lines of this run.
	RunID string

	// InputFile is the path that was read.
	InputFile string

	// OutputFile is the path the receipt was written to. Empty if nothing
	// was written.
	OutputFile string

	// Items holds the accepted line items in input order.
	Items []types.LineItem

	// Skipped holds the rejected records in input order.
	Skipped []loader.ParseResult

	// Totals is the receipt aggregate. Zero if the run stopped early.
	Totals types.ReceiptTotals
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs the pipeline for one input/output pair.
type Converter struct {
	inputPath  string
	outputPath string

	// display receives the rendered receipt before it is written to disk.
	display  io.Writer
	reporter Reporter
}

// New creates a Converter.
//
// PARAMETERS:
//   - inputPath: The grocery list to read.
//   - outputPath: Where the receipt is written. Existing content is replaced.
//   - display: Where the receipt is shown.
//   - reporter: Receives status messages.
func New(inputPath, outputPath string, display io.Writer, reporter Reporter) *Converter {
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		display:    display,
		reporter:   reporter,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline.
//
// RETURNS:
//   - The Result, filled as far as the run got.
//   - An error wrapping ErrAborted for conditions already reported to the
//     user, or a plain error for I/O failures on the display or output file.
func (c *Converter) Run(ctx context.Context) (Result, error) {
	result := Result{
		RunID:     uuid.NewString(),
		InputFile: c.inputPath,
	}
	ctx = logger.WithFields(ctx, zap.String("run_id", result.RunID))

	// =========================================================================
	// STEP 1: CHECK PATHS
	// =========================================================================

	if c.inputPath == "" || c.outputPath == "" {
		c.reporter.Fail(MsgEmptyPath)
		logger.Error(ctx, "missing path",
			zap.Bool("input_empty", c.inputPath == ""),
			zap.Bool("output_empty", c.outputPath == ""))
		return result, ErrEmptyPath
	}

	// =========================================================================
	// STEP 2: LOAD INPUT
	// =========================================================================

	results, err := loader.Load(c.inputPath)
	switch {
	case errors.Is(err, loader.ErrFileNotFound):
		c.reporter.Fail(MsgFileNotFound)
		logger.Error(ctx, "input not found", zap.String("input", c.inputPath))
	case err != nil:
		return result, fmt.Errorf("failed to load input: %w", err)
	}

	// =========================================================================
	// STEP 3: REPORT REJECTED RECORDS
	// =========================================================================

	result.Items = loader.Items(results)
	result.Skipped = loader.Failures(results)

	for _, failed := range result.Skipped {
		c.reporter.Warn(MsgSkipLine + failed.Raw)
		logger.Warn(ctx, "skipping invalid record",
			zap.Int("line", failed.LineNumber),
			zap.String("rule", failed.Err.Rule),
			zap.String("reason", failed.Err.Message))
	}

	logger.Info(ctx, "input loaded",
		zap.String("input", c.inputPath),
		zap.Int("accepted", len(result.Items)),
		zap.Int("rejected", len(result.Skipped)))

	// =========================================================================
	// STEP 4: REQUIRE AT LEAST ONE ITEM
	// =========================================================================

	if len(result.Items) == 0 {
		c.reporter.Fail(MsgNoValidItems)
		return result, ErrNoValidItems
	}

	// =========================================================================
	// STEP 5: AGGREGATE
	// =========================================================================

	result.Totals = aggregator.Aggregate(result.Items)

	logger.Debug(ctx, "totals computed",
		zap.Float64("subtotal", result.Totals.Subtotal),
		zap.Float64("tax", result.Totals.Tax),
		zap.Float64("grand_total", result.Totals.GrandTotal))

	// =========================================================================
	// STEP 6: DISPLAY
	// =========================================================================

	receipt := receiptwriter.Generate(result.Items, result.Totals)
	if _, err := c.display.Write(receipt); err != nil {
		return result, fmt.Errorf("failed to display receipt: %w", err)
	}

	// =========================================================================
	// STEP 7: WRITE OUTPUT FILE
	// =========================================================================

	if utils.FileExists(c.outputPath) {
		logger.Debug(ctx, "replacing existing output", zap.String("output", c.outputPath))
	}

	if err := receiptwriter.WriteFile(c.outputPath, result.Items, result.Totals); err != nil {
		return result, err
	}

	result.OutputFile = c.outputPath
	c.reporter.OK(MsgSaved)
	logger.Info(ctx, "receipt written", zap.String("output", c.outputPath))

	return result, nil
}
