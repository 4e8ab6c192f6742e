package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/optgen/generator"
	"github.com/erraggy/optgen/internal/cliutil"
)

// IdentFlags contains flags for the ident command
type IdentFlags struct {
	Target string
}

// SetupIdentFlags creates and configures a FlagSet for the ident command.
// Returns the FlagSet and an IdentFlags struct with bound flag variables.
func SetupIdentFlags() (*flag.FlagSet, *IdentFlags) {
	fs := flag.NewFlagSet("ident", flag.ContinueOnError)
	flags := &IdentFlags{}

	fs.StringVar(&flags.Target, "target", string(generator.TargetCPP), "output language: cpp or go")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: optgen ident [flags] <long-name>...\n\n")
		cliutil.Writef(fs.Output(), "Print the variable name generated for each long option name.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  optgen ident output-file        # outputFileOpt\n")
		cliutil.Writef(fs.Output(), "  optgen ident --target go no-fonts  # NoFontsOpt\n")
	}

	return fs, flags
}

// HandleIdent executes the ident command
func HandleIdent(args []string) error {
	return runIdent(args, osStreams())
}

func runIdent(args []string, s streams) error {
	fs, flags := SetupIdentFlags()
	fs.SetOutput(s.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("ident command requires at least one long option name")
	}

	target, err := generator.ParseTarget(flags.Target)
	if err != nil {
		return err
	}

	for _, long := range fs.Args() {
		cliutil.Writef(s.out, "%s\t%s\n", long, generator.Identifier(target, long))
	}
	return nil
}
