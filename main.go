// =============================================================================
// Grocery Receipt - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Grocery Receipt CLI application.
// It delegates everything to the cmd package.
//
// USAGE:
//   receipt            - Prompt for input/output paths and print a receipt
//   receipt version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Pipeline stages (loader, aggregator, receiptwriter)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/grocery-receipt/cmd"
)

func main() {
	cmd.Execute()
}
