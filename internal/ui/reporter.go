package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	symCheck = "✔"
	symWarn  = "⚠"
	symCross = "✖"
)

// Reporter prints user-facing status lines. Confirmations go to out,
// warnings and failures to errOut. Colour is only emitted when the
// destination is a terminal.
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	okStyle   lipgloss.Style
	warnStyle lipgloss.Style
	failStyle lipgloss.Style
}

// NewReporter returns a Reporter writing to out and errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return &Reporter{
		out:    out,
		errOut: errOut,
		// raw input lines may carry tabs; keep them as they are
		okStyle:   outR.NewStyle().Foreground(lipgloss.Color("42")).TabWidth(lipgloss.NoTabConversion),
		warnStyle: errR.NewStyle().Foreground(lipgloss.Color("214")).TabWidth(lipgloss.NoTabConversion),
		failStyle: errR.NewStyle().Foreground(lipgloss.Color("9")).TabWidth(lipgloss.NoTabConversion),
	}
}

// OK prints a confirmation.
func (r *Reporter) OK(msg string) {
	fmt.Fprintln(r.out, r.okStyle.Render(symCheck+" "+msg))
}

// Warn prints a recoverable problem.
func (r *Reporter) Warn(msg string) {
	fmt.Fprintln(r.errOut, r.warnStyle.Render(symWarn+" "+msg))
}

// Fail prints a fatal problem.
func (r *Reporter) Fail(msg string) {
	fmt.Fprintln(r.errOut, r.failStyle.Render(symCross+" "+msg))
}
