// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes optgen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/optgen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `optgen MCP server - validates option schemas and generates command-line option declarations from them.

A schema is given either as a file path or as inline content. XML, YAML, JSON, and TOML schemas are accepted; the format is detected unless set explicitly.

Configuration: defaults are configurable via OPTGEN_* environment variables set in your MCP client config.

Key settings:
- OPTGEN_DEFAULT_TARGET (default: cpp) - output language when a generate call names none
- OPTGEN_CONFIG_HEADER (default: config.h) - configuration header included by C++ output; set to "none" to omit it
- OPTGEN_RUNTIME_HEADER (default: CLCommandLine.hpp) - header declaring the CL::CommandLine runtime
- OPTGEN_MAX_CONTENT_SIZE (default: 1048576) - largest inline schema accepted, in bytes
- OPTGEN_CACHE_ENABLED (default: true) - cache parsed schemas for the session
- OPTGEN_CACHE_MAX_SIZE (default: 16) - number of parsed schemas kept
- OPTGEN_CACHE_TTL (default: 10m) - lifetime of a cached schema

Generation is all or nothing: a short-name conflict or an option without a description fails the call and nothing is returned or written.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "optgen", Version: optgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate command-line option declarations from an option schema. The default target is a C++ header declaring a CL::CommandLine subclass; target=go renders the same model as a Go source file. Returns the generated text, or writes it when output is set. Fails without output on short-name conflicts or missing descriptions. Default target and headers are configurable via OPTGEN_DEFAULT_TARGET, OPTGEN_CONFIG_HEADER, and OPTGEN_RUNTIME_HEADER env vars.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an option schema without generating. Reports grammar errors with line and column, duplicate short names, and options without a description. Every problem is reported, not just the first.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an option schema. Returns a summary: class name, program help text, and each section with its options in document order. Use full=true to also return the complete typed model.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "identifier",
		Description: "Derive the variable names that long option names receive in generated code, e.g. output-file becomes outputFileOpt (C++) or OutputFileOpt (Go).",
	}, handleIdentifier)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths, which are stripped from
// error messages returned to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
