package generator

import (
	"fmt"

	"github.com/erraggy/optgen/internal/options"
	"github.com/erraggy/optgen/schema"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *schema.ParseResult

	target        Target
	className     string
	packageName   string
	configHeader  string
	runtimeHeader string
	includeInfo   bool
	logger        schema.Logger
}

// GenerateWithOptions generates declarations from an option schema using
// functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("options.xml"),
//	    generator.WithTarget(generator.TargetCPP),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		Target:        cfg.target,
		ClassName:     cfg.className,
		PackageName:   cfg.packageName,
		ConfigHeader:  cfg.configHeader,
		RuntimeHeader: cfg.runtimeHeader,
		IncludeInfo:   cfg.includeInfo,
		Logger:        cfg.logger,
	}

	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath)
	}
	return g.GenerateParsed(*cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		target:        TargetCPP,
		configHeader:  DefaultConfigHeader,
		runtimeHeader: DefaultRuntimeHeader,
		includeInfo:   true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath or WithParsed)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a schema file as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result schema.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithTarget selects the output language
// Default: TargetCPP
func WithTarget(target Target) Option {
	return func(cfg *generateConfig) error {
		t, err := ParseTarget(string(target))
		if err != nil {
			return err
		}
		cfg.target = t
		return nil
	}
}

// WithClassName overrides the class name declared by the schema
func WithClassName(name string) Option {
	return func(cfg *generateConfig) error {
		if err := options.NonEmpty("generator", "class name", name); err != nil {
			return err
		}
		cfg.className = name
		return nil
	}
}

// WithPackageName specifies the Go package name for TargetGo
// Default: derived from the class name
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if err := options.NonEmpty("generator", "package name", name); err != nil {
			return err
		}
		cfg.packageName = name
		return nil
	}
}

// WithConfigHeader sets the configuration header included first by TargetCPP.
// An empty name omits the include.
// Default: "config.h"
func WithConfigHeader(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.configHeader = name
		return nil
	}
}

// WithRuntimeHeader sets the header declaring the CL::CommandLine runtime
// Default: "CLCommandLine.hpp"
func WithRuntimeHeader(name string) Option {
	return func(cfg *generateConfig) error {
		if err := options.NonEmpty("generator", "runtime header", name); err != nil {
			return err
		}
		cfg.runtimeHeader = name
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(l schema.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
