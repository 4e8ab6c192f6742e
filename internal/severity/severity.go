// Package severity provides the severity levels attached to issues reported
// by the validator and generator packages.
//
// From least to most severe the levels are Info, Warning, Error, and
// Critical. The numeric values do not follow that order; use
// [Severity.IsFault] to tell faults from advisory issues.
package severity

import "fmt"

// Severity indicates the severity level of a validation or generation issue.
type Severity int

const (
	// SeverityError indicates a fault that makes the schema unusable for generation.
	SeverityError Severity = iota

	// SeverityWarning indicates a problem that did not stop generation,
	// such as generated Go source that could not be formatted.
	SeverityWarning

	// SeverityInfo indicates informational messages about generation choices.
	SeverityInfo

	// SeverityCritical indicates a fault that aborted the pipeline.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// IsFault reports whether the severity marks a schema as invalid.
func (s Severity) IsFault() bool {
	return s == SeverityError || s == SeverityCritical
}

// Parse converts a severity name back to a Severity.
func Parse(name string) (Severity, error) {
	switch name {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalText encodes the severity by name, so JSON and YAML reports stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
