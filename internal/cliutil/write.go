// Package cliutil provides small output helpers for the optgen command.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it reports to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ReportError prints err as "Error: <message>" and returns the exit status
// for a failed run.
func ReportError(w io.Writer, err error) int {
	Writef(w, "Error: %v\n", err)
	return 1
}
