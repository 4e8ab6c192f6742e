package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/optgen/internal/testutil"
	"github.com/erraggy/optgen/opterrors"
	"github.com/erraggy/optgen/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, src string) schema.ParseResult {
	t.Helper()
	parsed, err := schema.ParseWithOptions(
		schema.WithBytes([]byte(src)),
		schema.WithSourceName("options.xml"),
	)
	require.NoError(t, err)
	return *parsed
}

func TestNew(t *testing.T) {
	g := New()

	require.NotNil(t, g)
	assert.Equal(t, TargetCPP, g.Target)
	assert.Equal(t, DefaultConfigHeader, g.ConfigHeader)
	assert.Equal(t, DefaultRuntimeHeader, g.RuntimeHeader)
	assert.True(t, g.IncludeInfo)
}

func TestGenerateGeneralHeader(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "CommandLine.hpp"))
	require.NoError(t, err)

	result, err := GenerateWithOptions(WithParsed(parseFixture(t, testutil.GeneralXML)))
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "CommandLine.hpp", result.Files[0].Name)
	assert.Equal(t, string(want), string(result.Output()))

	assert.True(t, result.Success)
	assert.Empty(t, result.Issues)
	assert.Equal(t, TargetCPP, result.Target)
	assert.Equal(t, "CommandLine", result.ClassName)
	assert.Equal(t, 2, result.DeclarationCount)
	assert.NotNil(t, result.GetFile("CommandLine.hpp"))
	assert.Nil(t, result.GetFile("missing.hpp"))
}

func TestGenerateGeneralScenario(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(parseFixture(t, testutil.GeneralXML)))
	require.NoError(t, err)
	out := string(result.Output())

	assert.Contains(t, out, "std::array<const char*, 1> _sections = {{\n\t\t\t\"General\",\n\t\t}};")

	outputDecl := strings.Index(out, "> outputFileOpt {")
	verboseDecl := strings.Index(out, "Option verboseOpt {")
	require.Positive(t, outputDecl)
	require.Positive(t, verboseDecl)
	assert.Less(t, outputDecl, verboseDecl, "declarations are sorted by long name")

	verboseEntry := strings.Index(out, "{&verboseOpt, 0},")
	outputEntry := strings.Index(out, "{&outputFileOpt, 0},")
	require.Positive(t, verboseEntry)
	require.Positive(t, outputEntry)
	assert.Less(t, verboseEntry, outputEntry, "index entries follow document order")
}

func TestGenerateMultiSectionHeader(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(parseFixture(t, testutil.MultiSectionXML)))
	require.NoError(t, err)
	out := string(result.Output())

	assert.Contains(t, out, "std::array<const char*, 3> _sections = {{\n"+
		"\t\t\t\"Input options\",\n"+
		"\t\t\t\"SVG output options\",\n"+
		"\t\t\t\"Processing options\",\n"+
		"\t\t}};\n")

	assert.Contains(t, out, "\t\tmutable std::vector<OptSectPair> _options = {\n"+
		"\t\t\t{&pageOpt, 0},\n"+
		"\t\t\t{&fontmapOpt, 0},\n"+
		"\t\t\t{&bboxOpt, 1},\n"+
		"\t\t\t{&zoomOpt, 1},\n"+
		"#if !defined(DISABLE_WOFF)\n"+
		"\t\t\t{&noFontsOpt, 1},\n"+
		"#endif\n"+
		"\t\t\t{&exactBboxOpt, 2},\n"+
		"\t\t\t{&keepOpt, 2},\n"+
		"\t\t};\n")

	assert.Contains(t, out, "\t\t// option variables\n"+
		"\t\tTypedOption<std::string, Option::ArgMode::OPTIONAL> bboxOpt {\"bbox\", 'b', \"size\", \"min\", \"set size of bounding box\"};\n"+
		"\t\tOption exactBboxOpt {\"exact-bbox\", 'e', \"compute exact glyph bounding boxes\"};\n"+
		"\t\tTypedOption<std::string, Option::ArgMode::REQUIRED> fontmapOpt {\"fontmap\", 'm', \"filenames\", \"evaluate (additional) font map files\"};\n"+
		"\t\tOption keepOpt {\"keep\", '\\0', \"disable removal of temporary files\"};\n"+
		"\t\tTypedOption<int, Option::ArgMode::OPTIONAL> noFontsOpt {\"no-fonts\", 'n', \"variant\", 0, \"draw glyphs by using path elements\"};\n"+
		"\t\tTypedOption<std::string, Option::ArgMode::REQUIRED> pageOpt {\"page\", 'p', \"ranges\", \"1\", \"choose pages to convert\"};\n"+
		"\t\tTypedOption<double, Option::ArgMode::REQUIRED> zoomOpt {\"zoom\", 'Z', \"factor\", 1.0, \"zoom page using given factor\"};\n"+
		"\n\tprotected:\n")
}

func TestGenerateConflictProducesNothing(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(parseFixture(t, testutil.ConflictXML)))
	require.Error(t, err)
	assert.Nil(t, result)

	var redef *opterrors.RedefinitionError
	require.ErrorAs(t, err, &redef)
	assert.Equal(t, "x", redef.Short)
	assert.Contains(t, err.Error(), "redefinition of option -x")
}

func TestGenerateMissingDescriptionProducesNothing(t *testing.T) {
	src := `<cmdline class="C">
  <program><description>d</description><copyright>c</copyright></program>
  <option long="mute"><description></description></option>
</cmdline>`

	result, err := GenerateWithOptions(WithParsed(parseFixture(t, src)))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, opterrors.ErrMissingField)
}

func TestGenerateFromFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "options.xml", testutil.GeneralXML)

	result, err := GenerateWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, schema.SourceFormatXML, result.SourceFormat)
	assert.Contains(t, string(result.Output()), "generated by optgen from options.xml.")
}

func TestGenerateFromYAMLMatchesXML(t *testing.T) {
	path := testutil.WriteTempFile(t, "options.yaml", testutil.GeneralYAML)
	fromYAML, err := GenerateWithOptions(WithFilePath(path))
	require.NoError(t, err)

	fromXML, err := GenerateWithOptions(WithParsed(parseFixture(t, testutil.GeneralXML)))
	require.NoError(t, err)

	yamlOut := strings.Replace(string(fromYAML.Output()), "options.yaml", "options.xml", 1)
	assert.Equal(t, string(fromXML.Output()), yamlOut)
}

func TestGenerateSchemaError(t *testing.T) {
	path := testutil.WriteTempFile(t, "options.xml", `<cmdline class="C"/>`)

	_, err := GenerateWithOptions(WithFilePath(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, opterrors.ErrSchema)
	assert.Contains(t, err.Error(), "generator: failed to parse schema")
}

func TestGenerateHeaderOptions(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(parseFixture(t, testutil.GeneralXML)),
		WithClassName("DvisvgmCommandLine"),
		WithConfigHeader(""),
		WithRuntimeHeader("cl/CommandLine.hpp"),
	)
	require.NoError(t, err)
	out := string(result.Output())

	assert.Equal(t, "DvisvgmCommandLine.hpp", result.Files[0].Name)
	assert.Contains(t, out, "#ifndef DVISVGMCOMMANDLINE_HPP\n#define DVISVGMCOMMANDLINE_HPP\n")
	assert.Contains(t, out, "class DvisvgmCommandLine : public CL::CommandLine\n")
	assert.Contains(t, out, "\t\tDvisvgmCommandLine (int argc, char **argv) : CommandLine() {\n")
	assert.Contains(t, out, "\n\n#include <array>\n")
	assert.Contains(t, out, `#include "cl/CommandLine.hpp"`)
	assert.NotContains(t, out, "config.h")
}

func TestGenerateEmptyDocument(t *testing.T) {
	src := `<cmdline class="Empty">
  <program><description>d</description><copyright>c</copyright></program>
</cmdline>`

	result, err := GenerateWithOptions(WithParsed(parseFixture(t, src)))
	require.NoError(t, err)
	out := string(result.Output())

	assert.Contains(t, out, "\t\t// option variables\n\n\tprotected:\n")
	assert.Contains(t, out, "std::array<const char*, 0> _sections = {{\n\t\t}};\n")
	assert.Contains(t, out, "_options = {\n\t\t};\n};\n\n#endif\n")
}

func TestGenerateGoTarget(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(parseFixture(t, testutil.MultiSectionXML)),
		WithTarget(TargetGo),
		WithPackageName("cli"),
	)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	file := result.Files[0]
	assert.Equal(t, "command_line.go", file.Name)
	assert.False(t, result.HasWarnings(), "output should format cleanly: %v", result.Issues)

	_, err = parser.ParseFile(token.NewFileSet(), file.Name, file.Content, parser.ParseComments)
	require.NoError(t, err, "generated Go must parse")

	out := string(file.Content)
	assert.Contains(t, out, "// Code generated by optgen from options.xml. DO NOT EDIT.")
	assert.Contains(t, out, "package cli\n")
	assert.Contains(t, out, `Usage     = "[options] file"`)
	assert.Contains(t, out, `Long: "bbox", Short: 'b', ArgName: "size", ArgType: "string", Mode: ArgOptional, Default: "min"`)
	assert.Contains(t, out, `Long: "zoom", Short: 'Z', ArgName: "factor", ArgType: "double", Mode: ArgRequired, Default: 1.0`)
	assert.Contains(t, out, `Long: "keep", Short: 0, ArgName: "", ArgType: "", Mode: ArgNone, Default: nil`)
	assert.Contains(t, out, "var Sections = [3]string{")
	assert.Contains(t, out, `{Option: &NoFontsOpt, Section: 1, Condition: "!defined(DISABLE_WOFF)"},`)

	bbox := strings.Index(out, "BboxOpt ")
	zoom := strings.Index(out, "ZoomOpt ")
	assert.Less(t, bbox, zoom, "option variables are sorted by long name")
	assert.Less(t, strings.Index(out, "{Option: &PageOpt"), strings.Index(out, "{Option: &BboxOpt"), "index follows document order")

	require.Equal(t, 1, result.InfoCount)
	assert.Equal(t, "options[4]", result.Issues[0].Path)
}

func TestGenerateGoTargetDerivesPackage(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(parseFixture(t, testutil.GeneralXML)),
		WithTarget("golang"),
		WithIncludeInfo(false),
	)
	require.NoError(t, err)
	out := string(result.Output())

	assert.Contains(t, out, "package commandline\n")
	assert.Contains(t, out, `Usage     = "[options] dvifile\n-E [options] epsfile"`)
	assert.Empty(t, result.Issues)
}

func TestGenerateGoTargetUnformattable(t *testing.T) {
	src := `<cmdline class="C">
  <program><description>d</description><copyright>c</copyright></program>
  <option long="depth"><arg type="int" name="n" default="}{"/><description>depth</description></option>
</cmdline>`

	result, err := GenerateWithOptions(WithParsed(parseFixture(t, src)), WithTarget(TargetGo))
	require.NoError(t, err)

	assert.True(t, result.HasWarnings())
	assert.True(t, result.Success)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, string(result.Output()), "Default: }{")
}

func TestGenerateWithOptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantMsg string
	}{
		{"no input", nil, "must specify an input source"},
		{"two inputs", []Option{WithFilePath("a.xml"), WithParsed(schema.ParseResult{})}, "exactly one input source"},
		{"bad target", []Option{WithFilePath("a.xml"), WithTarget("rust")}, "valid targets are cpp and go"},
		{"empty class", []Option{WithFilePath("a.xml"), WithClassName("")}, "class name cannot be empty"},
		{"empty package", []Option{WithFilePath("a.xml"), WithPackageName("")}, "package name cannot be empty"},
		{"empty runtime header", []Option{WithFilePath("a.xml"), WithRuntimeHeader("")}, "runtime header cannot be empty"},
		{"no document", []Option{WithParsed(schema.ParseResult{})}, "parse result has no document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseTarget(t *testing.T) {
	for name, want := range map[string]Target{"cpp": TargetCPP, "C++": TargetCPP, "go": TargetGo, "Go": TargetGo} {
		got, err := ParseTarget(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := ParseTarget("java")
	require.Error(t, err)
	assert.ErrorIs(t, err, opterrors.ErrConfig)
}

func TestWriteFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(parseFixture(t, testutil.GeneralXML)))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "include")
	require.NoError(t, result.WriteFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "CommandLine.hpp"))
	require.NoError(t, err)
	assert.Equal(t, result.Output(), data)

	bad := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.hpp"}}}
	require.Error(t, bad.WriteFiles(dir))
}

func TestGeneratedFileWriteFile(t *testing.T) {
	f := GeneratedFile{Name: "x.hpp", Content: []byte("#endif\n")}
	path := filepath.Join(t.TempDir(), "nested", "x.hpp")
	require.NoError(t, f.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#endif\n", string(data))
}
