package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/optgen/internal/issues"
	"github.com/erraggy/optgen/internal/naming"
	"github.com/erraggy/optgen/internal/severity"
	"github.com/erraggy/optgen/opterrors"
	"github.com/erraggy/optgen/schema"
	"github.com/erraggy/optgen/validator"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates output that was produced but may need attention
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates output that could not be produced
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue
type GenerateIssue = issues.Issue

const (
	// DefaultConfigHeader is the build configuration header included first.
	DefaultConfigHeader = "config.h"
	// DefaultRuntimeHeader declares the CL::CommandLine runtime classes.
	DefaultRuntimeHeader = "CLCommandLine.hpp"
)

// Target is the output language of the generated declarations.
type Target string

const (
	// TargetCPP renders a C++ header for the CL::CommandLine runtime
	TargetCPP Target = "cpp"
	// TargetGo renders a Go source file
	TargetGo Target = "go"
)

// ParseTarget converts a target name to a Target.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(name) {
	case "cpp", "c++", "hpp":
		return TargetCPP, nil
	case "go", "golang":
		return TargetGo, nil
	default:
		return "", &opterrors.ConfigError{Option: "target", Value: name, Message: "valid targets are cpp and go"}
	}
}

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "CommandLine.hpp", "command_line.go")
	Name string
	// Content is the generated declaration text
	Content []byte
}

// GenerateResult contains the results of generating declarations from a schema
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// Target is the output language
	Target Target
	// ClassName is the class the declarations belong to
	ClassName string
	// SourcePath is the schema the declarations were generated from
	SourcePath string
	// SourceFormat is the format of the schema
	SourceFormat schema.SourceFormat
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate the declarations
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the schema
	Stats schema.DocumentStats
	// DeclarationCount is the number of option declarations generated
	DeclarationCount int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Output returns the content of the generated file. Every target produces
// exactly one file.
func (r *GenerateResult) Output() []byte {
	if len(r.Files) == 0 {
		return nil
	}
	return r.Files[0].Content
}

// Generator handles declaration generation from option schemas
type Generator struct {
	// Target is the output language
	// Default: TargetCPP
	Target Target

	// ClassName overrides the class name declared by the schema
	ClassName string

	// PackageName is the Go package name for TargetGo
	// If empty, it is derived from the class name
	PackageName string

	// ConfigHeader is included before the runtime header by TargetCPP
	// If empty, no configuration header is included
	ConfigHeader string

	// RuntimeHeader declares the CL::CommandLine runtime for TargetCPP
	RuntimeHeader string

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger schema.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Target:        TargetCPP,
		ConfigHeader:  DefaultConfigHeader,
		RuntimeHeader: DefaultRuntimeHeader,
		IncludeInfo:   true,
	}
}

func (g *Generator) log() schema.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return schema.NopLogger{}
}

// Generate parses a schema file and generates declarations from it
func (g *Generator) Generate(path string) (*GenerateResult, error) {
	p := schema.New()
	p.Logger = g.Logger

	parsed, err := p.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse schema: %w", err)
	}
	return g.GenerateParsed(*parsed)
}

// GenerateParsed generates declarations from an already parsed schema.
//
// The run is all or nothing: a short-name conflict or an option that cannot
// be declared fails the whole run and no file is produced.
func (g *Generator) GenerateParsed(parsed schema.ParseResult) (*GenerateResult, error) {
	doc := parsed.Document
	if doc == nil {
		return nil, fmt.Errorf("generator: parse result has no document")
	}

	target := g.Target
	if target == "" {
		target = TargetCPP
	}
	class := g.ClassName
	if class == "" {
		class = doc.ClassName
	}
	if class == "" {
		return nil, fmt.Errorf("generator: %w", &opterrors.ConfigError{Option: "class", Message: "class name is empty"})
	}

	log := g.log().With("class", class, "target", string(target))
	start := time.Now()

	if err := validator.CheckRedefinitions(doc.Options); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result := &GenerateResult{
		Target:           target,
		ClassName:        class,
		SourcePath:       parsed.SourcePath,
		SourceFormat:     parsed.SourceFormat,
		LoadTime:         parsed.LoadTime,
		SourceSize:       parsed.SourceSize,
		Stats:            parsed.Stats,
		DeclarationCount: len(doc.Options),
	}
	source := bannerSource(parsed.SourcePath)

	var file GeneratedFile
	var err error
	switch target {
	case TargetCPP:
		file, err = g.generateCPP(doc, class, source)
	case TargetGo:
		file, err = g.generateGo(doc, class, source, result)
	default:
		err = &opterrors.ConfigError{Option: "target", Value: string(target), Message: "valid targets are cpp and go"}
	}
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result.Files = []GeneratedFile{file}
	result.GenerateTime = time.Since(start)
	g.updateCounts(result)

	log.Debug("generated declarations",
		"file", file.Name,
		"options", result.DeclarationCount,
		"sections", len(doc.Sections),
		"bytes", len(file.Content),
	)
	return result, nil
}

func (g *Generator) generateCPP(doc *schema.Document, class, source string) (GeneratedFile, error) {
	b := newHeaderBuilder(class, g.ConfigHeader, g.runtimeHeader(), source).
		program(doc.Program).
		sections(doc.Sections).
		index(doc.Options)
	if err := b.declarations(doc.Options); err != nil {
		return GeneratedFile{}, err
	}

	content, err := b.render()
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Name: class + ".hpp", Content: content}, nil
}

func (g *Generator) generateGo(doc *schema.Document, class, source string, result *GenerateResult) (GeneratedFile, error) {
	pkg := g.PackageName
	if pkg == "" {
		pkg = naming.ToPackageName(class)
	}
	if pkg == "" {
		return GeneratedFile{}, &opterrors.ConfigError{Option: "package", Value: class, Message: "cannot derive a Go package name from the class name"}
	}

	data, err := newGoFileData(doc, class, pkg, source)
	if err != nil {
		return GeneratedFile{}, err
	}
	raw, err := executeTemplate("go_options", data)
	if err != nil {
		return GeneratedFile{}, err
	}

	name := naming.ToSnakeCase(class) + ".go"
	content, err := formatAndFixImports(name, raw)
	if err != nil {
		// Unformatted output is still usable; report it and keep going.
		content = raw
		g.addIssue(result, name, "generated Go source could not be formatted", SeverityWarning, err.Error())
	}

	for _, opt := range doc.Options {
		if opt.If != "" {
			g.addIssue(result, fmt.Sprintf("options[%d]", opt.Index),
				fmt.Sprintf("build predicate of --%s is kept in OptSectPair.Condition", opt.Long),
				SeverityInfo, opt.If)
		}
	}

	return GeneratedFile{Name: name, Content: content}, nil
}

func (g *Generator) runtimeHeader() string {
	if g.RuntimeHeader == "" {
		return DefaultRuntimeHeader
	}
	return g.RuntimeHeader
}

func (g *Generator) addIssue(result *GenerateResult, path, message string, sev Severity, context string) {
	if sev == SeverityInfo && !g.IncludeInfo {
		return
	}
	result.Issues = append(result.Issues, GenerateIssue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Context:  context,
	})
}

func (g *Generator) updateCounts(result *GenerateResult) {
	counts := issues.Count(result.Issues)
	result.InfoCount = counts.Infos
	result.WarningCount = counts.Warnings
	result.CriticalCount = counts.Critical
	result.Success = result.CriticalCount == 0
}

// bannerSource is the schema name written into the generated-file banner.
func bannerSource(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
