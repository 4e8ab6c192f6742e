package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/optgen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type identifierInput struct {
	LongNames []string `json:"long_names"       jsonschema:"Long option names, e.g. output-file"`
	Target    string   `json:"target,omitempty" jsonschema:"Naming convention: cpp or go (default: OPTGEN_DEFAULT_TARGET, else cpp)"`
}

type identifierEntry struct {
	Long       string `json:"long"`
	Identifier string `json:"identifier"`
}

type identifierOutput struct {
	Target      string            `json:"target"`
	Identifiers []identifierEntry `json:"identifiers"`
}

func handleIdentifier(_ context.Context, _ *mcp.CallToolRequest, input identifierInput) (*mcp.CallToolResult, identifierOutput, error) {
	if len(input.LongNames) == 0 {
		return errResult(fmt.Errorf("long_names must contain at least one name")), identifierOutput{}, nil
	}

	target := cfg.DefaultTarget
	if input.Target != "" {
		t, err := generator.ParseTarget(input.Target)
		if err != nil {
			return errResult(err), identifierOutput{}, nil
		}
		target = t
	}

	output := identifierOutput{
		Target:      string(target),
		Identifiers: make([]identifierEntry, 0, len(input.LongNames)),
	}
	for _, long := range input.LongNames {
		output.Identifiers = append(output.Identifiers, identifierEntry{
			Long:       long,
			Identifier: generator.Identifier(target, long),
		})
	}
	return nil, output, nil
}
