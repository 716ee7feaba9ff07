// =============================================================================
// Grocery Receipt - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command without a subcommand starts the interactive receipt session.
//
// COBRA CLI STRUCTURE:
//   rootCmd (receipt)       - prompt for paths and produce the receipt
//   └── versionCmd (receipt version)
//
// The flags only select ambient behaviour (configuration file, verbosity).
// The input and output paths are always asked for interactively.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/grocery-receipt/internal/converter"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose forces debug-level structured logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "receipt",
	Short: "Grocery Receipt - Turn a grocery list into a printed receipt",
	Long: `Grocery Receipt reads a list of grocery line items and prints a receipt
with a subtotal, 16% tax and grand total. The receipt is shown on screen and
saved to a file.

Input format, one item per line (no header row):
  id,name,quantity,price

Example:
  1,Milk,2,3.50
  2,Bread,1,2.00

An .xlsx workbook with the same four columns on its first sheet is also
accepted. You will be asked for the input and output file paths.`,

	// Messages are printed by the session itself.
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Aborted runs have already told the user why.
		if !errors.Is(err, converter.ErrAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"receipt.yaml",
		"Path to the optional configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}
