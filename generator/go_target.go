// This file renders the Go declaration target: the same option model as the
// C++ header, expressed as Go variables for a Go command-line runtime.

package generator

import (
	"strconv"
	"strings"

	"github.com/erraggy/optgen/schema"
)

// goFileData is everything the go_options template needs.
type goFileData struct {
	Source  string
	Package string
	Class   string

	Summary   string
	Usage     string
	Copyright string

	// Options are sorted by long name
	Options []goOption
	// Sections are titles in document order
	Sections []string
	// Index is in document order
	Index []IndexEntry
}

// goOption holds the Go literal text of each Option field.
type goOption struct {
	Name        string
	Long        string
	Short       string
	ArgName     string
	ArgType     string
	Mode        string
	Default     string
	Description string
}

// goUsageSeparator joins usage lines in the Go target. The lines end up in a
// quoted Go string, so a real newline is used.
const goUsageSeparator = "\n"

func newGoFileData(doc *schema.Document, class, pkg, source string) (*goFileData, error) {
	data := &goFileData{
		Source:    source,
		Package:   pkg,
		Class:     class,
		Summary:   doc.Program.Description,
		Usage:     strings.Join(doc.Program.Usage, goUsageSeparator),
		Copyright: doc.Program.Copyright,
		Options:   make([]goOption, 0, len(doc.Options)),
		Sections:  make([]string, 0, len(doc.Sections)),
		Index:     make([]IndexEntry, 0, len(doc.Options)),
	}

	for _, opt := range sortedByLong(doc.Options) {
		o, err := newGoOption(opt)
		if err != nil {
			return nil, err
		}
		data.Options = append(data.Options, o)
	}
	for _, s := range doc.Sections {
		data.Sections = append(data.Sections, s.Title)
	}
	for _, opt := range doc.Options {
		entry := RenderIndexEntry(opt)
		entry.Identifier = goIdentifier(opt.Long)
		data.Index = append(data.Index, entry)
	}
	return data, nil
}

func newGoOption(opt schema.Option) (goOption, error) {
	// The C++ declaration enforces the same required fields.
	if _, err := RenderDeclaration(opt); err != nil {
		return goOption{}, err
	}

	o := goOption{
		Name:        goIdentifier(opt.Long),
		Long:        opt.Long,
		Short:       "0",
		Mode:        "ArgNone",
		Default:     "nil",
		Description: opt.Description,
	}
	if opt.HasShort() {
		o.Short = strconv.QuoteRune([]rune(opt.Short)[0])
	}
	if arg := opt.Arg; arg != nil {
		o.ArgName = arg.Name
		o.ArgType = arg.Type
		o.Mode = "ArgRequired"
		if arg.Optional {
			o.Mode = "ArgOptional"
		}
		if arg.HasDefault() {
			o.Default = goDefault(arg)
		}
	}
	return o, nil
}

// goDefault quotes string defaults and emits any other default as a bare literal.
func goDefault(arg *schema.Argument) string {
	if arg.IsString() {
		return strconv.Quote(*arg.Default)
	}
	if *arg.Default == "" {
		return "nil"
	}
	return *arg.Default
}
