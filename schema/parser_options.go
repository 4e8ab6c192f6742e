package schema

import (
	"fmt"
	"io"

	"github.com/erraggy/optgen/internal/options"
)

// ParseOption is a function that configures a parse operation
type ParseOption func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	format     SourceFormat
	logger     Logger
	sourceName *string
}

// ParseWithOptions parses a schema document using functional options.
//
// Example:
//
//	result, err := schema.ParseWithOptions(
//	    schema.WithFilePath("options.xml"),
//	    schema.WithLogger(schema.NewSlogAdapter(slog.Default())),
//	)
func ParseWithOptions(opts ...ParseOption) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("schema: invalid options: %w", err)
	}

	p := &Parser{
		Format: cfg.format,
		Logger: cfg.logger,
	}

	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	default:
		return nil, fmt.Errorf("schema: no input source specified")
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...ParseOption) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"schema: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"schema: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a schema file as the input source
func WithFilePath(path string) ParseOption {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) ParseOption {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("schema: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) ParseOption {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("schema: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithFormat forces the source format instead of detecting it.
func WithFormat(format SourceFormat) ParseOption {
	return func(cfg *parseConfig) error {
		normalized, err := ParseSourceFormat(string(format))
		if err != nil {
			return fmt.Errorf("schema: %w", err)
		}
		cfg.format = normalized
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed.
func WithLogger(l Logger) ParseOption {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// It replaces the default "ParseBytes.xml"-style names in results.
func WithSourceName(name string) ParseOption {
	return func(cfg *parseConfig) error {
		if name == "" {
			return fmt.Errorf("schema: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
