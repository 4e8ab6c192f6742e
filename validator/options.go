package validator

import (
	"github.com/erraggy/optgen/internal/options"
	"github.com/erraggy/optgen/schema"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *schema.ParseResult

	logger schema.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithParsed)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a schema file as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		if err := options.NonEmpty("validator", "file path", path); err != nil {
			return err
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result schema.ParseResult) Option {
	return func(cfg *validateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(l schema.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
