package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/optgen/internal/cliutil"
	"github.com/erraggy/optgen/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured with OPTGEN_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: optgen mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the generate, validate, parse, and identifier tools over MCP on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  OPTGEN_DEFAULT_TARGET      target used when a call names none (default: cpp)\n")
		cliutil.Writef(fs.Output(), "  OPTGEN_CONFIG_HEADER       configuration header for C++ output (default: config.h)\n")
		cliutil.Writef(fs.Output(), "  OPTGEN_RUNTIME_HEADER      runtime header for C++ output (default: CLCommandLine.hpp)\n")
		cliutil.Writef(fs.Output(), "  OPTGEN_MAX_CONTENT_SIZE    largest inline schema accepted, in bytes (default: 1048576)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
