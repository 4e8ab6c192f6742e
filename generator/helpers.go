package generator

import (
	"golang.org/x/tools/imports"
)

// formatAndFixImports formats Go source and fixes its import block, the same
// processing goimports applies.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
