package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/optgen/generator"
	"github.com/erraggy/optgen/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output        string
	Target        string
	PackageName   string
	ClassName     string
	ConfigHeader  string
	RuntimeHeader string
	InputFormat   string
	Quiet         bool
	Verbose       bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "write the declarations to this file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the declarations to this file instead of stdout")
	fs.StringVar(&flags.Target, "target", string(generator.TargetCPP), "output language: cpp or go")
	fs.StringVar(&flags.PackageName, "package", "", "Go package name for --target go (default: derived from the class name)")
	fs.StringVar(&flags.ClassName, "class", "", "override the class name declared by the schema")
	fs.StringVar(&flags.ConfigHeader, "config-header", generator.DefaultConfigHeader, "configuration header included first (empty to omit)")
	fs.StringVar(&flags.RuntimeHeader, "runtime-header", generator.DefaultRuntimeHeader, "header declaring the CL::CommandLine runtime")
	fs.StringVar(&flags.InputFormat, "input-format", "", "schema format: xml, yaml, json, or toml (default: detected)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: do not report generation notes")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: do not report generation notes")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log pipeline stages to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: optgen generate [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Generate option declarations from an option schema.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  optgen generate options.xml > CommandLine.hpp\n")
		cliutil.Writef(fs.Output(), "  optgen generate -o include/CommandLine.hpp --config-header= options.xml\n")
		cliutil.Writef(fs.Output(), "  optgen generate --target go --package cli -o cli/options.go options.yaml\n")
		cliutil.Writef(fs.Output(), "  cat options.xml | optgen generate -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Declarations generated\n")
		cliutil.Writef(fs.Output(), "  1    The schema is invalid or could not be read; nothing was written\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	return runGenerate(args, osStreams())
}

// HandleDefault generates the C++ header for DefaultSchemaFile to stdout.
// It is what optgen does when run without a command.
func HandleDefault() error {
	return runDefault(osStreams())
}

func runDefault(s streams) error {
	result, err := generator.GenerateWithOptions(generator.WithFilePath(DefaultSchemaFile))
	if err != nil {
		return err
	}
	_, err = s.out.Write(result.Output())
	return err
}

func runGenerate(args []string, s streams) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(s.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one schema file path or '-' for stdin")
	}
	schemaPath := fs.Arg(0)

	// Fail fast on bad flag values before reading the schema
	target, err := generator.ParseTarget(flags.Target)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(s.err, flags.Output, schemaPath); err != nil {
			return err
		}
	}

	logger := newLogger(flags.Verbose, s.err)
	parsed, err := loadSchema(schemaPath, flags.InputFormat, s, logger)
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	opts := []generator.Option{
		generator.WithParsed(*parsed),
		generator.WithTarget(target),
		generator.WithConfigHeader(flags.ConfigHeader),
		generator.WithRuntimeHeader(flags.RuntimeHeader),
		generator.WithIncludeInfo(!flags.Quiet),
		generator.WithLogger(logger),
	}
	if flags.ClassName != "" {
		opts = append(opts, generator.WithClassName(flags.ClassName))
	}
	if flags.PackageName != "" {
		opts = append(opts, generator.WithPackageName(flags.PackageName))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		for _, issue := range result.Issues {
			cliutil.Writef(s.err, "%s\n", issue.String())
		}
	}

	if flags.Output == "" {
		_, err = s.out.Write(result.Output())
		return err
	}

	if err := result.Files[0].WriteFile(flags.Output); err != nil {
		return err
	}
	if !flags.Quiet {
		cliutil.Writef(s.err, "Wrote %s (%d options, %d sections)\n", flags.Output, result.DeclarationCount, result.Stats.SectionCount)
	}
	return nil
}
