package mcpserver

import (
	"context"
	"errors"

	"github.com/erraggy/optgen/opterrors"
	"github.com/erraggy/optgen/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Schema schemaInput `json:"schema" jsonschema:"The option schema to validate"`
}

type validateOutput struct {
	Valid        bool        `json:"valid"`
	Format       string      `json:"format,omitempty"`
	SectionCount int         `json:"section_count"`
	OptionCount  int         `json:"option_count"`
	ErrorCount   int         `json:"error_count"`
	Errors       []toolIssue `json:"errors,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	parseResult, err := input.Schema.resolve()
	if err != nil {
		// A grammar violation is a validation finding, not a tool failure.
		var schemaErr *opterrors.SchemaError
		if errors.As(err, &schemaErr) {
			return nil, validateOutput{
				ErrorCount: 1,
				Errors: []toolIssue{{
					Path:     schemaErr.Element,
					Message:  schemaErr.Message,
					Severity: "error",
					Line:     schemaErr.Line,
					Column:   schemaErr.Column,
				}},
			}, nil
		}
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(validator.WithParsed(*parseResult))
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		Format:       string(result.SourceFormat),
		SectionCount: result.Stats.SectionCount,
		OptionCount:  result.Stats.OptionCount,
		ErrorCount:   result.ErrorCount,
	}
	output.Errors = makeSlice[toolIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, toolIssue{
			Path:     e.Path,
			Message:  e.Message,
			Severity: e.Severity.String(),
		})
	}
	return nil, output, nil
}
