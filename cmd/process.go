// =============================================================================
// Grocery Receipt - Receipt Session
// =============================================================================
//
// This file holds the interactive session run by the root command.
//
// SESSION:
//   1. Load configuration and set up logging
//   2. Ask for the input file path
//   3. Ask for the output file path
//   4. Run the converter pipeline
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ginjaninja78/grocery-receipt/internal/config"
	"github.com/ginjaninja78/grocery-receipt/internal/converter"
	"github.com/ginjaninja78/grocery-receipt/internal/logger"
	"github.com/ginjaninja78/grocery-receipt/internal/ui"
)

// Prompt texts and example answers.
const (
	inputPrompt   = "Enter input file path"
	inputExample  = "groceries.txt"
	outputPrompt  = "Enter output file path"
	outputExample = "receipt.txt"
)

// runProcess runs one receipt session.
//
// PARAMETERS:
//   - ctx: Carries the logger.
//   - in: Where answers are read from.
//   - out: Receives prompts, the receipt, and confirmations.
//   - errOut: Receives warnings and failures.
func runProcess(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// =========================================================================
	// STEP 1: CONFIGURATION AND LOGGING
	// =========================================================================

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if err := logger.Setup(level, cfg.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	logger.Debug(ctx, "configuration loaded",
		zap.String("config", cfgFile),
		zap.String("prompt_style", cfg.PromptStyle))

	// =========================================================================
	// STEP 2-3: ASK FOR PATHS
	// =========================================================================

	prompter := ui.NewPrompter(cfg.PromptStyle, in, out)

	inputPath, err := prompter.Prompt(inputPrompt, inputExample)
	if err != nil {
		return err
	}

	outputPath, err := prompter.Prompt(outputPrompt, outputExample)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 4: RUN THE PIPELINE
	// =========================================================================

	reporter := ui.NewReporter(out, errOut)
	_, err = converter.New(inputPath, outputPath, out, reporter).Run(ctx)

	return err
}
