package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/optgen/generator"
	"github.com/erraggy/optgen/internal/fileutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Schema        schemaInput `json:"schema"                   jsonschema:"The option schema to generate declarations from"`
	Target        string      `json:"target,omitempty"         jsonschema:"Output language: cpp or go (default: OPTGEN_DEFAULT_TARGET, else cpp)"`
	ClassName     string      `json:"class_name,omitempty"     jsonschema:"Override the class name declared by the schema"`
	PackageName   string      `json:"package_name,omitempty"   jsonschema:"Go package name for target go (default: derived from the class name)"`
	ConfigHeader  *string     `json:"config_header,omitempty"  jsonschema:"Configuration header included first by C++ output; empty string omits it"`
	RuntimeHeader string      `json:"runtime_header,omitempty" jsonschema:"Header declaring the CL::CommandLine runtime"`
	Output        string      `json:"output,omitempty"         jsonschema:"Write the generated file to this path instead of returning its content"`
}

type toolIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type generateOutput struct {
	Success          bool        `json:"success"`
	Target           string      `json:"target"`
	ClassName        string      `json:"class_name"`
	FileName         string      `json:"file_name"`
	Size             int         `json:"size"`
	DeclarationCount int         `json:"declaration_count"`
	SectionCount     int         `json:"section_count"`
	WrittenTo        string      `json:"written_to,omitempty"`
	Content          string      `json:"content,omitempty"`
	Issues           []toolIssue `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	target := cfg.DefaultTarget
	if input.Target != "" {
		t, err := generator.ParseTarget(input.Target)
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		target = t
	}
	configHeader := cfg.ConfigHeader
	if input.ConfigHeader != nil {
		configHeader = *input.ConfigHeader
	}
	runtimeHeader := cfg.RuntimeHeader
	if input.RuntimeHeader != "" {
		runtimeHeader = input.RuntimeHeader
	}

	if input.Output != "" {
		if _, err := fileutil.CheckOutputPath(input.Output, input.Schema.File); err != nil {
			return errResult(err), generateOutput{}, nil
		}
	}

	parseResult, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []generator.Option{
		generator.WithParsed(*parseResult),
		generator.WithTarget(target),
		generator.WithConfigHeader(configHeader),
		generator.WithRuntimeHeader(runtimeHeader),
	}
	if input.ClassName != "" {
		opts = append(opts, generator.WithClassName(input.ClassName))
	}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	file := result.Files[0]
	output := generateOutput{
		Success:          result.Success,
		Target:           string(result.Target),
		ClassName:        result.ClassName,
		FileName:         file.Name,
		Size:             len(file.Content),
		DeclarationCount: result.DeclarationCount,
		SectionCount:     result.Stats.SectionCount,
	}
	output.Issues = makeSlice[toolIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, toolIssue{
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
		})
	}

	if input.Output == "" {
		output.Content = string(file.Content)
		return nil, output, nil
	}
	if err := file.WriteFile(input.Output); err != nil {
		return errResult(fmt.Errorf("failed to write generated file: %w", err)), generateOutput{}, nil
	}
	output.WrittenTo = input.Output
	return nil, output, nil
}
