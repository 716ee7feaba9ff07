package converter_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ginjaninja78/grocery-receipt/internal/converter"
	"github.com/ginjaninja78/grocery-receipt/internal/logger"
	"github.com/ginjaninja78/grocery-receipt/internal/receiptwriter"
)

// recordingReporter keeps every message it is given, tagged by kind.
type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) OK(msg string)   { r.messages = append(r.messages, "ok: "+msg) }
func (r *recordingReporter) Warn(msg string) { r.messages = append(r.messages, "warn: "+msg) }
func (r *recordingReporter) Fail(msg string) { r.messages = append(r.messages, "fail: "+msg) }

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "groceries.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunWritesReceipt(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "1,Milk,2,3.50\n2,Bread,1,2.00")
	output := filepath.Join(dir, "receipt.txt")

	var display bytes.Buffer
	rep := &recordingReporter{}

	result, err := converter.New(input, output, &display, rep).Run(context.Background())
	require.NoError(t, err)

	_, perr := uuid.Parse(result.RunID)
	require.NoError(t, perr)
	assert.Equal(t, output, result.OutputFile)
	assert.Len(t, result.Items, 2)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 9.0, result.Totals.Subtotal)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, display.String(), string(written))
	assert.Contains(t, string(written), "Subtotal: 9.00\nTax (16%): 1.44\nGrand Total: 10.44\n")

	assert.Equal(t, []string{"ok: " + converter.MsgSaved}, rep.messages)
}

func TestRunSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "1,Milk,2,3.50\n3,Eggs,notanumber,2.00\n2,Bread,1,2.00\n")
	output := filepath.Join(dir, "receipt.txt")

	rep := &recordingReporter{}
	result, err := converter.New(input, output, &bytes.Buffer{}, rep).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, []string{
		"warn: Skipping invalid line: 3,Eggs,notanumber,2.00",
		"ok: " + converter.MsgSaved,
	}, rep.messages)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(written), "Eggs")
}

func TestRunEmptyPaths(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{name: "empty input", input: "", output: "receipt.txt"},
		{name: "empty output", input: "groceries.txt", output: ""},
		{name: "both empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &recordingReporter{}
			var display bytes.Buffer

			_, err := converter.New(tt.input, tt.output, &display, rep).Run(context.Background())
			require.ErrorIs(t, err, converter.ErrEmptyPath)
			require.ErrorIs(t, err, converter.ErrAborted)
			assert.Equal(t, []string{"fail: " + converter.MsgEmptyPath}, rep.messages)
			assert.Empty(t, display.String())
		})
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "receipt.txt")

	rep := &recordingReporter{}
	var display bytes.Buffer
	_, err := converter.New(filepath.Join(dir, "missing.txt"), output, &display, rep).Run(context.Background())
	require.ErrorIs(t, err, converter.ErrNoValidItems)

	assert.Equal(t, []string{
		"fail: " + converter.MsgFileNotFound,
		"fail: " + converter.MsgNoValidItems,
	}, rep.messages)
	assert.Empty(t, display.String())
	assert.NoFileExists(t, output)
}

func TestRunPaddedNumbersAndLongLine(t *testing.T) {
	dir := t.TempDir()
	long := "9,Caviar," + strings.Repeat("9", 2*1024*1024) + "x,1.00"
	input := writeInput(t, dir, "1, Milk, 2, 3.50\n"+long+"\n2,Bread,1 ,2.00\n")
	output := filepath.Join(dir, "receipt.txt")

	var display bytes.Buffer
	rep := &recordingReporter{}
	result, err := converter.New(input, output, &display, rep).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].LineNumber)
	assert.Equal(t, 9.0, result.Totals.Subtotal)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, display.String(), string(written))
	assert.Contains(t, string(written), "1\t Milk\t2\t3.50\t7.00\n")
	assert.Contains(t, string(written), "Grand Total: 10.44\n")

	require.Len(t, rep.messages, 2)
	assert.True(t, strings.HasPrefix(rep.messages[0], "warn: "+converter.MsgSkipLine+"9,Caviar,"))
	assert.Equal(t, "ok: "+converter.MsgSaved, rep.messages[1])
}

func TestRunEmptyInputLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "")
	output := filepath.Join(dir, "receipt.txt")
	require.NoError(t, os.WriteFile(output, []byte("previous receipt"), 0o644))

	rep := &recordingReporter{}
	_, err := converter.New(input, output, &bytes.Buffer{}, rep).Run(context.Background())
	require.ErrorIs(t, err, converter.ErrNoValidItems)
	assert.Equal(t, []string{"fail: " + converter.MsgNoValidItems}, rep.messages)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous receipt", string(got))
}

func TestRunOnlyMalformedLines(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "3,Eggs,notanumber,2.00\n")
	output := filepath.Join(dir, "receipt.txt")

	rep := &recordingReporter{}
	result, err := converter.New(input, output, &bytes.Buffer{}, rep).Run(context.Background())
	require.ErrorIs(t, err, converter.ErrNoValidItems)
	assert.Len(t, result.Skipped, 1)
	assert.Equal(t, []string{
		"warn: Skipping invalid line: 3,Eggs,notanumber,2.00",
		"fail: " + converter.MsgNoValidItems,
	}, rep.messages)
	assert.NoFileExists(t, output)
}

func TestRunUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "1,Milk,2,3.50\n")
	output := filepath.Join(dir, "missing-dir", "receipt.txt")

	rep := &recordingReporter{}
	var display bytes.Buffer
	_, err := converter.New(input, output, &display, rep).Run(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, converter.ErrAborted)

	// Display happens before the file write.
	assert.Contains(t, display.String(), receiptwriter.TitleBanner)
	assert.Empty(t, rep.messages)
}

func TestRunLogsRejectedRecords(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "1,Milk,2,3.50\n3,Eggs,notanumber,2.00\n")
	output := filepath.Join(dir, "receipt.txt")

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	result, err := converter.New(input, output, &bytes.Buffer{}, &recordingReporter{}).Run(ctx)
	require.NoError(t, err)

	skipped := logs.FilterMessage("skipping invalid record").All()
	require.Len(t, skipped, 1)
	fields := skipped[0].ContextMap()
	assert.Equal(t, int64(2), fields["line"])
	assert.Equal(t, "integer", fields["rule"])
	assert.Equal(t, result.RunID, fields["run_id"])
}
