package main

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/optgen"
	"github.com/erraggy/optgen/cmd/optgen/commands"
	"github.com/erraggy/optgen/internal/cliutil"
)

// handlers maps each command name to its handler.
var handlers = map[string]func([]string) error{
	"generate": commands.HandleGenerate,
	"validate": commands.HandleValidate,
	"parse":    commands.HandleParse,
	"ident":    commands.HandleIdent,
	"mcp":      commands.HandleMCP,
}

// commandNames lists every command for suggestions, in usage order.
var commandNames = []string{"generate", "validate", "parse", "ident", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		if err := commands.HandleDefault(); err != nil {
			os.Exit(cliutil.ReportError(os.Stderr, err))
		}
		return
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("optgen %s\n", optgen.Version())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		handler, ok := handlers[command]
		if !ok {
			cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
			if suggestion := suggestCommand(command); suggestion != "" {
				cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
			}
			cliutil.Writef(os.Stderr, "\n")
			printUsage(os.Stderr)
			os.Exit(1)
		}
		if err := handler(os.Args[2:]); err != nil {
			os.Exit(cliutil.ReportError(os.Stderr, err))
		}
	}
}

func printUsage(w io.Writer) {
	cliutil.Writef(w, `optgen - generate command-line option declarations from an option schema

Usage:
  optgen                 Generate the C++ header for ./options.xml to stdout
  optgen <command> [flags] [args]

Commands:
  generate   Generate option declarations (C++ header or Go source)
  validate   Check a schema and report every problem found
  parse      Print the model a schema describes
  ident      Print the variable name derived from a long option name
  mcp        Serve the tools over the Model Context Protocol on stdio
  version    Print the version
  help       Print this help

Run 'optgen <command> --help' for details on a command.
`)
}

// suggestCommand returns the command closest to input, or "" when none is
// within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
