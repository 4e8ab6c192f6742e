package mcpserver

import (
	"context"

	"github.com/erraggy/optgen/generator"
	"github.com/erraggy/optgen/schema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Schema schemaInput `json:"schema"         jsonschema:"The option schema to parse"`
	Full   bool        `json:"full,omitempty" jsonschema:"Also return the complete typed model"`
}

type optionSummary struct {
	Long       string `json:"long"`
	Short      string `json:"short,omitempty"`
	Identifier string `json:"identifier"`
	ArgType    string `json:"arg_type,omitempty"`
	Condition  string `json:"condition,omitempty"`
}

type sectionSummary struct {
	Index   int             `json:"index"`
	Title   string          `json:"title"`
	Options []optionSummary `json:"options,omitempty"`
}

type parseOutput struct {
	ClassName    string           `json:"class_name"`
	Format       string           `json:"format"`
	Summary      string           `json:"summary"`
	Usage        []string         `json:"usage,omitempty"`
	Copyright    string           `json:"copyright"`
	SectionCount int              `json:"section_count"`
	OptionCount  int              `json:"option_count"`
	FlagCount    int              `json:"flag_count"`
	Sections     []sectionSummary `json:"sections,omitempty"`
	Unsectioned  []optionSummary  `json:"unsectioned,omitempty"`
	Document     *schema.Document `json:"document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	parseResult, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}
	doc := parseResult.Document

	output := parseOutput{
		ClassName:    doc.ClassName,
		Format:       string(parseResult.SourceFormat),
		Summary:      doc.Program.Description,
		Usage:        doc.Program.Usage,
		Copyright:    doc.Program.Copyright,
		SectionCount: parseResult.Stats.SectionCount,
		OptionCount:  parseResult.Stats.OptionCount,
		FlagCount:    parseResult.Stats.FlagCount,
	}

	output.Sections = makeSlice[sectionSummary](len(doc.Sections))
	for _, s := range doc.Sections {
		output.Sections = append(output.Sections, sectionSummary{Index: s.Index, Title: s.Title})
	}
	for _, opt := range doc.Options {
		summary := optionSummary{
			Long:       opt.Long,
			Short:      opt.Short,
			Identifier: generator.OptionIdentifier(opt.Long),
			Condition:  opt.If,
		}
		if opt.Arg != nil {
			summary.ArgType = opt.Arg.Type
		}
		if opt.SectionIndex >= len(output.Sections) {
			output.Unsectioned = append(output.Unsectioned, summary)
			continue
		}
		sec := &output.Sections[opt.SectionIndex]
		sec.Options = append(sec.Options, summary)
	}

	if input.Full {
		output.Document = doc
	}
	return nil, output, nil
}
