package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeAfter removes every occurrence of sep and upper-cases the rune
// that immediately follows each removed separator. Runs of separators and a
// trailing separator contribute nothing.
// Example: CapitalizeAfter("foo-bar-baz", '-') -> "fooBarBaz"
func CapitalizeAfter(s string, sep rune) string {
	if !strings.ContainsRune(s, sep) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := false

	for _, r := range s {
		if r == sep {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToTitleCase converts the first letter to uppercase.
// Example: "verboseOpt" -> "VerboseOpt"
func ToTitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ToSnakeCase converts a string to snake_case.
// Uppercase letters start a new word unless they continue an acronym.
// Hyphens, dots, and spaces become underscores.
// Example: "CommandLine" -> "command_line"
// Example: "SVGOptions" -> "svg_options"
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var result strings.Builder

	for i, r := range runes {
		switch {
		case r == '-' || r == '.' || r == ' ':
			result.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' && !isSeparator(runes[i-1]) {
				prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
					result.WriteRune('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToPackageName reduces s to a lower-case Go package name made of letters
// and digits. It returns "" if nothing usable remains.
// Example: "CommandLine" -> "commandline"
func ToPackageName(s string) string {
	var result strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			result.WriteRune(unicode.ToLower(r))
		}
	}
	name := strings.TrimLeftFunc(result.String(), unicode.IsDigit)
	return name
}

func isSeparator(r rune) bool {
	return r == '-' || r == '.' || r == ' '
}
