package validator

import (
	"github.com/erraggy/optgen/opterrors"
	"github.com/erraggy/optgen/schema"
)

// CheckRedefinitions fails on the first option, in document order, whose
// non-empty short name was already used by an earlier option. Long names are
// not checked here.
func CheckRedefinitions(options []schema.Option) error {
	seen := make(map[string]string, len(options))
	for _, opt := range options {
		if !opt.HasShort() {
			continue
		}
		if first, ok := seen[opt.Short]; ok {
			return &opterrors.RedefinitionError{
				Short:     opt.Short,
				Long:      opt.Long,
				FirstLong: first,
			}
		}
		seen[opt.Short] = opt.Long
	}
	return nil
}

// redefinitions returns every conflict, not just the first. The index is the
// position of the redefining option.
func redefinitions(options []schema.Option) map[int]*opterrors.RedefinitionError {
	found := make(map[int]*opterrors.RedefinitionError)
	seen := make(map[string]string, len(options))
	for i, opt := range options {
		if !opt.HasShort() {
			continue
		}
		if first, ok := seen[opt.Short]; ok {
			found[i] = &opterrors.RedefinitionError{Short: opt.Short, Long: opt.Long, FirstLong: first}
			continue
		}
		seen[opt.Short] = opt.Long
	}
	return found
}
