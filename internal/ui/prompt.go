// Package ui holds the interactive surface: prompting for paths and printing
// status lines.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ginjaninja78/grocery-receipt/internal/config"
)

// Prompter asks the user a single question.
type Prompter interface {
	// Prompt shows label with an example answer and returns what the user
	// typed. A cancelled prompt returns an empty answer.
	Prompt(label, example string) (string, error)
}

// NewPrompter picks the prompt implementation for style (see config.Prompt*).
// With "auto" the terminal UI is used only when in is a terminal.
func NewPrompter(style string, in io.Reader, out io.Writer) Prompter {
	switch style {
	case config.PromptTUI:
		return &TeaPrompter{in: in, out: out}
	case config.PromptPlain:
		return NewLinePrompter(in, out)
	}

	if isTTY(in) {
		return &TeaPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}

func isTTY(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// -------------- line prompter --------------

// LinePrompter reads one line per answer. Answers are returned verbatim
// apart from the line terminator.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a LinePrompter. Use a single instance for all
// questions so buffered input is not lost between them.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter. End of input yields whatever was read so far.
func (p *LinePrompter) Prompt(label, example string) (string, error) {
	fmt.Fprintf(p.out, "%s (e.g., %s): ", label, example)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// -------------- terminal prompter --------------

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// TeaPrompter asks through a single-field Bubble Tea text input.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// Prompt implements Prompter. Esc or Ctrl+C cancels with an empty answer.
func (p *TeaPrompter) Prompt(label, example string) (string, error) {
	final, err := tea.NewProgram(
		newPromptModel(label, example),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	fm, ok := final.(promptModel)
	if !ok || fm.cancelled {
		return "", nil
	}
	return fm.input.Value(), nil
}

type promptModel struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newPromptModel(label, example string) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = example
	ti.Focus()

	return promptModel{label: label, input: ti}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.done = true
			m.input.Blur()
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	// leave the answer on screen once the program exits
	if m.done || m.cancelled {
		return fmt.Sprintf("%s: %s\n", m.label, m.input.Value())
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		labelStyle.Render(m.label),
		m.input.View(),
		hintStyle.Render("enter to confirm • esc to cancel"),
	)
}
