package validator

import (
	"fmt"
	"time"

	"github.com/erraggy/optgen/internal/issues"
	"github.com/erraggy/optgen/internal/severity"
	"github.com/erraggy/optgen/schema"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a fault that prevents generation
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a problem that does not prevent generation
	SeverityWarning = severity.SeverityWarning
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating an option schema
type ValidationResult struct {
	// Valid is true if no errors were found
	Valid bool `json:"valid" yaml:"valid"`
	// Errors contains all validation errors in document order
	Errors []ValidationError `json:"errors" yaml:"errors"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"errorCount" yaml:"errorCount"`
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration `json:"-" yaml:"-"`
	// SourceSize is the size of the source data in bytes
	SourceSize int64 `json:"sourceSize,omitempty" yaml:"sourceSize,omitempty"`
	// Stats contains statistical information about the document
	Stats schema.DocumentStats `json:"stats" yaml:"stats"`
	// Document is the validated document
	Document *schema.Document `json:"-" yaml:"-"`
	// SourceFormat is the format of the source document
	SourceFormat schema.SourceFormat `json:"format,omitempty" yaml:"format,omitempty"`
	// SourcePath is the source path from the parsed document
	SourcePath string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ToParseResult converts the ValidationResult back to a ParseResult so a
// validated document can be handed to the generator without re-parsing.
func (r *ValidationResult) ToParseResult() *schema.ParseResult {
	return &schema.ParseResult{
		Document:     r.Document,
		SourcePath:   r.SourcePath,
		SourceFormat: r.SourceFormat,
		LoadTime:     r.LoadTime,
		SourceSize:   r.SourceSize,
		Stats:        r.Stats,
	}
}

// Validator handles option schema validation
type Validator struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger schema.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{}
}

func (v *Validator) log() schema.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return schema.NopLogger{}
}

// Validate reports every fault in doc. A nil document yields a single error.
func Validate(doc *schema.Document) *ValidationResult {
	result := &ValidationResult{
		Errors:   make([]ValidationError, 0),
		Document: doc,
		Stats:    schema.GetDocumentStats(doc),
	}
	New().check(doc, result)
	return result
}

// ValidateWithOptions validates an option schema using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("options.xml"),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{Logger: cfg.logger}

	if cfg.parsed != nil {
		return v.ValidateParsed(*cfg.parsed)
	}
	return v.ValidateFile(*cfg.filePath)
}

// ValidateParsed validates an already parsed option schema
func (v *Validator) ValidateParsed(parseResult schema.ParseResult) (*ValidationResult, error) {
	if parseResult.Document == nil {
		return nil, fmt.Errorf("validator: parse result has no document")
	}

	result := &ValidationResult{
		Errors:       make([]ValidationError, 0),
		LoadTime:     parseResult.LoadTime,
		SourceSize:   parseResult.SourceSize,
		Stats:        parseResult.Stats,
		Document:     parseResult.Document,
		SourceFormat: parseResult.SourceFormat,
		SourcePath:   parseResult.SourcePath,
	}
	v.check(parseResult.Document, result)
	v.log().Debug("validated schema",
		"source", result.SourcePath,
		"valid", result.Valid,
		"errors", result.ErrorCount,
	)
	return result, nil
}

// ValidateFile parses and validates an option schema file. A schema that
// fails to parse is returned as an error, not as a report.
func (v *Validator) ValidateFile(path string) (*ValidationResult, error) {
	p := schema.New()
	p.Logger = v.Logger

	parseResult, err := p.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to parse schema: %w", err)
	}

	return v.ValidateParsed(*parseResult)
}

func (v *Validator) check(doc *schema.Document, result *ValidationResult) {
	if doc == nil {
		v.addError(result, "document", "no document to validate")
	} else {
		conflicts := redefinitions(doc.Options)
		for i, opt := range doc.Options {
			path := fmt.Sprintf("options[%d]", i)
			if conflict, ok := conflicts[i]; ok {
				v.addError(result, path, conflict.Error(),
					withField("short"),
					withValue(opt.Short),
					withContext(fmt.Sprintf("first declared by --%s", conflict.FirstLong)),
				)
			}
			if opt.Description == "" {
				v.addError(result, path, fmt.Sprintf("option --%s has no description", opt.Long),
					withField("description"),
				)
			}
		}
	}

	result.ErrorCount = 0
	for _, e := range result.Errors {
		if e.Severity.IsFault() {
			result.ErrorCount++
		}
	}
	result.Valid = result.ErrorCount == 0
}

// addError appends a validation error.
func (v *Validator) addError(result *ValidationResult, path, message string, opts ...func(*ValidationError)) {
	err := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
		File:     result.SourcePath,
	}
	for _, opt := range opts {
		opt(&err)
	}
	result.Errors = append(result.Errors, err)
}

// withField sets the Field on a ValidationError.
func withField(field string) func(*ValidationError) {
	return func(e *ValidationError) { e.Field = field }
}

// withValue sets the Value on a ValidationError.
func withValue(value any) func(*ValidationError) {
	return func(e *ValidationError) { e.Value = value }
}

// withContext sets the Context on a ValidationError.
func withContext(context string) func(*ValidationError) {
	return func(e *ValidationError) { e.Context = context }
}
