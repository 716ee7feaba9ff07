// =============================================================================
// Grocery Receipt - File Utilities
// =============================================================================
//
// This module provides the file helpers shared by the pipeline:
//   - Existence checks
//   - Scoped, truncating writes with guaranteed release of the handle
//
// =============================================================================

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultFilePerm is the permission used for files created by WriteFile.
const DefaultFilePerm os.FileMode = 0o644

// =============================================================================
// FILE INFO HELPERS
// =============================================================================

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// =============================================================================
// SCOPED WRITES
// =============================================================================

// WriteFile creates path (or truncates it if it exists) and hands a buffered
// writer to fn. The buffer is flushed and the file closed before WriteFile
// returns, on every path, including when fn fails part way through.
//
// PARAMETERS:
//   - path: The destination file.
//   - fn: Writes the content. Its error is returned wrapped.
//
// RETURNS:
//   - The first error from fn, the flush, or the close. Flush and close
//     errors are joined with an fn error rather than hiding it.
func WriteFile(path string, fn func(w io.Writer) error) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close file: %w", cerr))
		}
	}()

	buf := bufio.NewWriter(file)

	if err := fn(buf); err != nil {
		// Keep what was written so far; the caller decides what to do with a
		// partial file.
		if ferr := buf.Flush(); ferr != nil {
			return errors.Join(fmt.Errorf("failed to write file: %w", err), ferr)
		}
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	return nil
}
