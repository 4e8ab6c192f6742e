package schema

import "strings"

// StringType is the argument type tag that renders defaults as quoted literals.
const StringType = "string"

// usageSeparator joins usage lines. It is a C string escape, not a newline.
const usageSeparator = `\n`

// Document is the typed in-memory form of an option schema.
type Document struct {
	// ClassName is the identifier of the generated class (root "class" attribute)
	ClassName string `json:"class" yaml:"class"`
	// Program holds the program-level help metadata
	Program Program `json:"program" yaml:"program"`
	// Sections lists all sections in document order
	Sections []Section `json:"sections" yaml:"sections"`
	// Options lists all options in document order
	Options []Option `json:"options" yaml:"options"`
}

// Program holds the program summary, copyright, and usage lines.
type Program struct {
	Description string   `json:"description" yaml:"description"`
	Copyright   string   `json:"copyright" yaml:"copyright"`
	Usage       []string `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// UsageText joins the usage lines with an escaped line break.
// The separator is not appended after the last line.
func (p Program) UsageText() string {
	return strings.Join(p.Usage, usageSeparator)
}

// Section is a named group of options.
type Section struct {
	// Title is the section heading shown in help output
	Title string `json:"title" yaml:"title"`
	// Index is the section's position among all sections in document order
	Index int `json:"index" yaml:"index"`
}

// Option is a single command-line switch.
type Option struct {
	// Long is the kebab-case long name, unique across the document
	Long string `json:"long" yaml:"long"`
	// Short is the single-character short name, or empty
	Short string `json:"short,omitempty" yaml:"short,omitempty"`
	// Description is the help text
	Description string `json:"description" yaml:"description"`
	// If is a conditional-compilation predicate, or empty
	If string `json:"if,omitempty" yaml:"if,omitempty"`
	// Arg is the option's argument; nil for boolean flags
	Arg *Argument `json:"arg,omitempty" yaml:"arg,omitempty"`
	// Index is the option's position among all options in document order
	Index int `json:"index" yaml:"index"`
	// SectionIndex is the ordinal of the owning section
	SectionIndex int `json:"section" yaml:"section"`
}

// IsFlag reports whether the option takes no argument.
func (o Option) IsFlag() bool {
	return o.Arg == nil
}

// HasShort reports whether the option has a short name.
func (o Option) HasShort() bool {
	return o.Short != ""
}

// Argument is the value payload of a value-taking option.
type Argument struct {
	// Type is the type tag, e.g. "string", "int", "double"
	Type string `json:"type" yaml:"type"`
	// Name is the display name used in help output
	Name string `json:"name" yaml:"name"`
	// Default is the default value text; nil when there is none
	Default *string `json:"default,omitempty" yaml:"default,omitempty"`
	// Optional is true if the argument may be omitted on the command line
	Optional bool `json:"optional" yaml:"optional"`
}

// HasDefault reports whether a default value is present. An empty default
// still counts as present.
func (a *Argument) HasDefault() bool {
	return a != nil && a.Default != nil
}

// IsString reports whether the argument carries the string type tag.
func (a *Argument) IsString() bool {
	return a != nil && a.Type == StringType
}

// DocumentStats contains statistical information about a schema document.
type DocumentStats struct {
	SectionCount     int `json:"sections" yaml:"sections"`
	OptionCount      int `json:"options" yaml:"options"`
	FlagCount        int `json:"flags" yaml:"flags"`
	ValueCount       int `json:"values" yaml:"values"`
	ConditionalCount int `json:"conditional" yaml:"conditional"`
}

// GetDocumentStats counts the sections and options of a document.
func GetDocumentStats(doc *Document) DocumentStats {
	if doc == nil {
		return DocumentStats{}
	}
	stats := DocumentStats{
		SectionCount: len(doc.Sections),
		OptionCount:  len(doc.Options),
	}
	for _, opt := range doc.Options {
		if opt.IsFlag() {
			stats.FlagCount++
		} else {
			stats.ValueCount++
		}
		if opt.If != "" {
			stats.ConditionalCount++
		}
	}
	return stats
}
