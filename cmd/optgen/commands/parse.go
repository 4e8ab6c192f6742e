package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/optgen/internal/cliutil"
	"github.com/erraggy/optgen/schema"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format      string
	InputFormat string
	Verbose     bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.InputFormat, "input-format", "", "schema format: xml, yaml, json, or toml (default: detected)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log pipeline stages to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: optgen parse [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Parse an option schema and print the model it describes.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  optgen parse options.xml\n")
		cliutil.Writef(fs.Output(), "  optgen parse --format yaml options.xml > options.yaml\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	return runParse(args, osStreams())
}

func runParse(args []string, s streams) error {
	fs, flags := SetupParseFlags()
	fs.SetOutput(s.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one schema file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	parsed, err := loadSchema(fs.Arg(0), flags.InputFormat, s, newLogger(flags.Verbose, s.err))
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(s.out, parsed.Document, flags.Format)
	}
	writeDocument(s, parsed)
	return nil
}

// writeDocument prints the schema model grouped by section.
func writeDocument(s streams, parsed *schema.ParseResult) {
	doc := parsed.Document

	cliutil.Writef(s.out, "Class: %s\n", doc.ClassName)
	cliutil.Writef(s.out, "Summary: %s\n", doc.Program.Description)
	for _, usage := range doc.Program.Usage {
		cliutil.Writef(s.out, "Usage: %s\n", usage)
	}
	cliutil.Writef(s.out, "Copyright: %s\n", doc.Program.Copyright)
	cliutil.Writef(s.out, "Sections: %d\n", parsed.Stats.SectionCount)
	cliutil.Writef(s.out, "Options: %d (%d flags, %d with values, %d conditional)\n",
		parsed.Stats.OptionCount, parsed.Stats.FlagCount, parsed.Stats.ValueCount, parsed.Stats.ConditionalCount)

	section := -1
	for _, opt := range doc.Options {
		if opt.SectionIndex != section {
			section = opt.SectionIndex
			title := "(no section)"
			if section < len(doc.Sections) {
				title = doc.Sections[section].Title
			}
			cliutil.Writef(s.out, "\n[%d] %s\n", section, title)
		}
		cliutil.Writef(s.out, "  %-28s %s\n", optionSynopsis(opt), opt.Description)
		if opt.If != "" {
			cliutil.Writef(s.out, "  %-28s (only if %s)\n", "", opt.If)
		}
	}
}

// optionSynopsis renders an option the way help output shows it,
// e.g. "-o, --output-file=file" or "    --bbox[=size]".
func optionSynopsis(opt schema.Option) string {
	text := "    "
	if opt.HasShort() {
		text = "-" + opt.Short + ", "
	}
	text += "--" + opt.Long
	if opt.Arg == nil {
		return text
	}
	if opt.Arg.Optional {
		return text + "[=" + opt.Arg.Name + "]"
	}
	return text + "=" + opt.Arg.Name
}
