// Package issues provides the issue record shared by the validator and generator.
package issues

import (
	"fmt"

	"github.com/erraggy/optgen/internal/severity"
)

// Issue represents a single problem found while validating a schema or
// generating declarations from it.
type Issue struct {
	// Path locates the problem in the schema (e.g., "options[3]" or "sections[0]")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Field is the option field that has the issue (e.g., "short", "description")
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Value is the problematic value (optional)
	Value any `json:"value,omitempty" yaml:"value,omitempty"`
	// Context provides additional information, such as the conflicting option
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
	// File is the source file path
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	var result string
	if i.HasLocation() {
		result = fmt.Sprintf("%s %s (line %d, col %d): %s", symbol, i.Path, i.Line, i.Column, i.Message)
	} else {
		result = fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	}

	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Counts tallies issues by severity.
type Counts struct {
	Errors   int
	Warnings int
	Infos    int
	Critical int
}

// Count tallies the given issues by severity.
func Count(list []Issue) Counts {
	var c Counts
	for _, i := range list {
		switch i.Severity {
		case severity.SeverityError:
			c.Errors++
		case severity.SeverityWarning:
			c.Warnings++
		case severity.SeverityInfo:
			c.Infos++
		case severity.SeverityCritical:
			c.Critical++
		}
	}
	return c
}
