// This file assembles the C++ declaration header. Each pipeline stage fills
// its part of a headerData record, and the record is rendered once.

package generator

import (
	"slices"
	"strings"

	"github.com/erraggy/optgen/schema"
)

// headerData is everything the cpp_header template needs.
type headerData struct {
	Source        string
	Guard         string
	Class         string
	ConfigHeader  string
	RuntimeHeader string

	Summary   string
	Usage     string
	Copyright string

	// Declarations are sorted by long name
	Declarations []string
	// Sections are titles in document order
	Sections []string
	// IndexEntries are in document order
	IndexEntries []string
}

// headerBuilder populates a headerData record stage by stage.
type headerBuilder struct {
	data headerData
}

func newHeaderBuilder(class, configHeader, runtimeHeader, source string) *headerBuilder {
	return &headerBuilder{data: headerData{
		Source:        source,
		Guard:         HeaderGuard(class),
		Class:         class,
		ConfigHeader:  configHeader,
		RuntimeHeader: runtimeHeader,
	}}
}

func (b *headerBuilder) program(p schema.Program) *headerBuilder {
	b.data.Summary = p.Description
	b.data.Usage = p.UsageText()
	b.data.Copyright = p.Copyright
	return b
}

// declarations renders one declaration per option in long-name order.
// Rendering stops at the first option that cannot be declared.
func (b *headerBuilder) declarations(options []schema.Option) error {
	sorted := sortedByLong(options)
	b.data.Declarations = make([]string, 0, len(sorted))
	for _, opt := range sorted {
		decl, err := RenderDeclaration(opt)
		if err != nil {
			return err
		}
		b.data.Declarations = append(b.data.Declarations, decl.Text)
	}
	return nil
}

func (b *headerBuilder) sections(sections []schema.Section) *headerBuilder {
	b.data.Sections = make([]string, 0, len(sections))
	for _, s := range sections {
		b.data.Sections = append(b.data.Sections, s.Title)
	}
	return b
}

func (b *headerBuilder) index(options []schema.Option) *headerBuilder {
	b.data.IndexEntries = make([]string, 0, len(options))
	for _, opt := range options {
		b.data.IndexEntries = append(b.data.IndexEntries, RenderIndexEntry(opt).String())
	}
	return b
}

func (b *headerBuilder) render() ([]byte, error) {
	return executeTemplate("cpp_header", &b.data)
}

// sortedByLong returns a copy of options ordered by long name. Long names are
// unique, so the order is total.
func sortedByLong(options []schema.Option) []schema.Option {
	sorted := slices.Clone(options)
	slices.SortStableFunc(sorted, func(a, b schema.Option) int {
		return strings.Compare(a.Long, b.Long)
	})
	return sorted
}
