package commands

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/erraggy/optgen"
	"github.com/erraggy/optgen/internal/cliutil"
	"github.com/erraggy/optgen/schema"
	"github.com/erraggy/optgen/validator"
)

// ErrValidationFailed is returned when a schema parses but has errors.
var ErrValidationFailed = errors.New("validation failed")

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format      string
	InputFormat string
	Quiet       bool
	Verbose     bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.InputFormat, "input-format", "", "schema format: xml, yaml, json, or toml (default: detected)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only set the exit status")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only set the exit status")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log pipeline stages to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: optgen validate [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Check an option schema and report every problem found, without generating.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  optgen validate options.xml\n")
		cliutil.Writef(fs.Output(), "  optgen validate --format json options.yaml | jq '.valid'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Validation successful\n")
		cliutil.Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	return runValidate(args, osStreams())
}

func runValidate(args []string, s streams) error {
	fs, flags := SetupValidateFlags()
	fs.SetOutput(s.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one schema file path or '-' for stdin")
	}
	schemaPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	startTime := time.Now()
	logger := newLogger(flags.Verbose, s.err)
	parsed, err := loadSchema(schemaPath, flags.InputFormat, s, logger)
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}
	result, err := validator.ValidateWithOptions(
		validator.WithParsed(*parsed),
		validator.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("validating schema: %w", err)
	}
	totalTime := time.Since(startTime)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(s.out, result, flags.Format); err != nil {
			return err
		}
	} else if !flags.Quiet {
		writeValidationReport(s, schemaPath, result, totalTime)
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

func writeValidationReport(s streams, schemaPath string, result *validator.ValidationResult, totalTime time.Duration) {
	cliutil.Writef(s.err, "Option Schema Validator\n")
	cliutil.Writef(s.err, "=======================\n\n")
	cliutil.Writef(s.err, "optgen version: %s\n", optgen.Version())
	cliutil.Writef(s.err, "Schema: %s\n", FormatSchemaPath(schemaPath))
	cliutil.Writef(s.err, "Format: %s\n", result.SourceFormat)
	cliutil.Writef(s.err, "Source Size: %s\n", schema.FormatBytes(result.SourceSize))
	cliutil.Writef(s.err, "Sections: %d\n", result.Stats.SectionCount)
	cliutil.Writef(s.err, "Options: %d\n", result.Stats.OptionCount)
	cliutil.Writef(s.err, "Load Time: %v\n", result.LoadTime)
	cliutil.Writef(s.err, "Total Time: %v\n\n", totalTime)

	if len(result.Errors) > 0 {
		cliutil.Writef(s.err, "Errors (%d):\n", result.ErrorCount)
		for _, e := range result.Errors {
			cliutil.Writef(s.err, "  %s\n", e.String())
		}
		cliutil.Writef(s.err, "\n")
	}

	if result.Valid {
		cliutil.Writef(s.err, "✓ Validation passed\n")
	} else {
		cliutil.Writef(s.err, "✗ Validation failed: %d error(s)\n", result.ErrorCount)
	}
}
