// Package opterrors provides structured error types for optgen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a malformed schema apart from a short
// option conflict or a broken internal contract.
//
// # Error Categories
//
//   - SchemaError: the schema document is not well-formed or breaks the grammar
//   - RedefinitionError: two options share the same short name
//   - MissingFieldError: a field the grammar should guarantee is absent
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("options.xml"))
//	if err != nil {
//	    var redef *opterrors.RedefinitionError
//	    if errors.As(err, &redef) {
//	        fmt.Printf("-%s is declared twice\n", redef.Short)
//	    }
//	}
package opterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSchema indicates the schema document failed parsing or grammar checks.
	ErrSchema = errors.New("schema error")

	// ErrRedefinition indicates a short option name is used more than once.
	ErrRedefinition = errors.New("option redefinition")

	// ErrMissingField indicates a required field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// SchemaError represents a failure to parse or grammar-validate a schema document.
type SchemaError struct {
	// Path is the file path or source identifier
	Path string
	// Element is the element path inside the document (e.g. "cmdline/program"), if known
	Element string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the violation
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Element != "" {
		msg += " (" + e.Element + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// RedefinitionError reports a short option name that is already taken by an
// earlier option in document order.
type RedefinitionError struct {
	// Short is the conflicting short option name
	Short string
	// Long is the long name of the option that redefines Short
	Long string
	// FirstLong is the long name of the earlier option that owns Short
	FirstLong string
}

// Error returns a human-readable error message.
func (e *RedefinitionError) Error() string {
	msg := "redefinition of option -" + e.Short
	if e.Long != "" && e.FirstLong != "" {
		msg += fmt.Sprintf(" (--%s conflicts with --%s)", e.Long, e.FirstLong)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *RedefinitionError) Is(target error) bool {
	return target == ErrRedefinition
}

// MissingFieldError reports a required field that is absent even though the
// grammar should have guaranteed it.
type MissingFieldError struct {
	// Owner identifies the entity missing the field (e.g. "option output-file")
	Owner string
	// Field is the name of the missing field
	Field string
}

// Error returns a human-readable error message.
func (e *MissingFieldError) Error() string {
	msg := "missing field"
	if e.Field != "" {
		msg += " " + e.Field
	}
	if e.Owner != "" {
		msg += " in " + e.Owner
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
