package generator

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/optgen/internal/naming"
)

// IdentifierSuffix is appended to every derived option identifier.
const IdentifierSuffix = "Opt"

// guardSuffix is appended to the upper-cased class name to form the include guard.
const guardSuffix = "_HPP"

// OptionIdentifier derives the variable name of an option from its long name:
// every hyphen is removed, the character after each removed hyphen is
// upper-cased, and IdentifierSuffix is appended.
//
//	OptionIdentifier("foo-bar-baz") == "fooBarBazOpt"
//
// The long name is not re-validated. Uniqueness of the result follows from
// uniqueness of long names, which the schema grammar guarantees.
func OptionIdentifier(long string) string {
	return naming.CapitalizeAfter(long, '-') + IdentifierSuffix
}

// HeaderGuard returns the include guard macro for a class name.
//
//	HeaderGuard("CommandLine") == "COMMANDLINE_HPP"
func HeaderGuard(class string) string {
	return cases.Upper(language.Und).String(class) + guardSuffix
}

// goIdentifier returns the exported Go name of an option variable.
func goIdentifier(long string) string {
	return naming.ToTitleCase(OptionIdentifier(long))
}

// Identifier returns the variable name an option receives in the given target.
func Identifier(target Target, long string) string {
	if target == TargetGo {
		return goIdentifier(long)
	}
	return OptionIdentifier(long)
}
