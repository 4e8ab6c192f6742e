// This file renders the per-option fragments of a C++ declaration header:
// the typed variable declaration and the entry in the option/section index.

package generator

import (
	"fmt"

	"github.com/erraggy/optgen/opterrors"
	"github.com/erraggy/optgen/schema"
)

const (
	// noShortName stands in for an absent short name. It is written inside
	// character quotes, so it renders as the NUL character literal.
	noShortName = `\0`

	cppStringType = "std::string"

	modeRequired = "REQUIRED"
	modeOptional = "OPTIONAL"

	indexIndent = "\t\t\t"
)

// Declaration is the rendered C++ variable declaration of a single option.
type Declaration struct {
	// Identifier is the derived variable name
	Identifier string
	// Long is the option's long name
	Long string
	// Text is the complete declaration statement, including the trailing semicolon
	Text string
}

// IndexEntry pairs an option variable with the ordinal of its section.
type IndexEntry struct {
	// Identifier is the derived variable name
	Identifier string
	// Section is the owning section ordinal
	Section int
	// Condition is the preprocessor predicate guarding the entry, or empty
	Condition string
}

// String renders the entry as a line of the options vector initializer. An
// entry with a condition is wrapped in #if and #endif lines.
func (e IndexEntry) String() string {
	line := fmt.Sprintf("%s{&%s, %d},", indexIndent, e.Identifier, e.Section)
	if e.Condition == "" {
		return line
	}
	return fmt.Sprintf("#if %s\n%s\n#endif", e.Condition, line)
}

// RenderDeclaration renders the typed variable declaration of opt.
//
// A flag renders as
//
//	Option id {"long", 's', "description"};
//
// and an option with an argument as
//
//	TypedOption<T, Option::ArgMode::MODE> id {"long", 's', "argname", [default,] "description"};
//
// where T is std::string for the string type tag and the tag itself otherwise,
// and MODE is OPTIONAL only if the argument is optional. A string default is
// quoted, any other default is emitted as is. Text is not escaped.
func RenderDeclaration(opt schema.Option) (Declaration, error) {
	if opt.Description == "" {
		return Declaration{}, &opterrors.MissingFieldError{
			Owner: "option " + opt.Long,
			Field: "description",
		}
	}

	id := OptionIdentifier(opt.Long)
	short := opt.Short
	if short == "" {
		short = noShortName
	}

	var text string
	switch {
	case opt.Arg == nil:
		text = fmt.Sprintf(`Option %s {"%s", '%s', "%s"};`, id, opt.Long, short, opt.Description)
	case !opt.Arg.HasDefault():
		text = fmt.Sprintf(`%s %s {"%s", '%s', "%s", "%s"};`,
			cppTypeName(opt.Arg), id, opt.Long, short, opt.Arg.Name, opt.Description)
	default:
		text = fmt.Sprintf(`%s %s {"%s", '%s', "%s", %s, "%s"};`,
			cppTypeName(opt.Arg), id, opt.Long, short, opt.Arg.Name, cppDefault(opt.Arg), opt.Description)
	}

	return Declaration{Identifier: id, Long: opt.Long, Text: text}, nil
}

// RenderIndexEntry returns the index table entry of opt.
func RenderIndexEntry(opt schema.Option) IndexEntry {
	return IndexEntry{
		Identifier: OptionIdentifier(opt.Long),
		Section:    opt.SectionIndex,
		Condition:  opt.If,
	}
}

func cppTypeName(arg *schema.Argument) string {
	return fmt.Sprintf("TypedOption<%s, Option::ArgMode::%s>", cppType(arg), argMode(arg))
}

func cppType(arg *schema.Argument) string {
	if arg.IsString() {
		return cppStringType
	}
	return arg.Type
}

func argMode(arg *schema.Argument) string {
	if arg.Optional {
		return modeOptional
	}
	return modeRequired
}

func cppDefault(arg *schema.Argument) string {
	if arg.IsString() {
		return `"` + *arg.Default + `"`
	}
	return *arg.Default
}
