package schema

import "fmt"

// documentBuilder assembles a Document during a single forward traversal.
// Every option gets a stable index as it is visited, and the owning section
// ordinal is the number of section boundaries crossed so far.
type documentBuilder struct {
	doc        Document
	closed     int
	inSection  bool
	longNames  map[string]int
	sawProgram bool
}

func newDocumentBuilder() *documentBuilder {
	return &documentBuilder{
		doc: Document{
			Sections: make([]Section, 0),
			Options:  make([]Option, 0),
		},
		longNames: make(map[string]int),
	}
}

func (b *documentBuilder) setClass(name string) {
	b.doc.ClassName = name
}

func (b *documentBuilder) setProgram(p Program) error {
	if b.sawProgram {
		return fmt.Errorf("program is declared more than once")
	}
	b.sawProgram = true
	b.doc.Program = p
	return nil
}

func (b *documentBuilder) openSection(title string) error {
	if b.inSection {
		return fmt.Errorf("section %q is nested in another section", title)
	}
	b.inSection = true
	b.doc.Sections = append(b.doc.Sections, Section{
		Title: title,
		Index: len(b.doc.Sections),
	})
	return nil
}

func (b *documentBuilder) closeSection() {
	b.inSection = false
	b.closed++
}

// addOption appends opt in document order and returns its index.
// Long names are IDs in the grammar, so a repeated long name is a schema fault.
func (b *documentBuilder) addOption(opt Option) (int, error) {
	if first, ok := b.longNames[opt.Long]; ok {
		return 0, fmt.Errorf("long name %q is already used by option #%d", opt.Long, first)
	}
	opt.Index = len(b.doc.Options)
	opt.SectionIndex = b.closed
	b.longNames[opt.Long] = opt.Index
	b.doc.Options = append(b.doc.Options, opt)
	return opt.Index, nil
}

// option returns a pointer to an already added option for late field updates
// (the XML description and arg children arrive after the start tag).
func (b *documentBuilder) option(idx int) *Option {
	return &b.doc.Options[idx]
}

func (b *documentBuilder) finish() (*Document, error) {
	if !b.sawProgram {
		return nil, fmt.Errorf("program is required")
	}
	doc := b.doc
	return &doc, nil
}
