// Package options provides shared checks for functional option configuration.
package options

import "fmt"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg and multiSourceMsg are returned verbatim for the zero and
// many cases.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	set := 0
	for _, ok := range sources {
		if ok {
			set++
		}
	}

	switch {
	case set == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case set > 1:
		return fmt.Errorf("%s", multiSourceMsg)
	}
	return nil
}

// NonEmpty returns an error of the form "<pkg>: <what> cannot be empty"
// when value is empty.
func NonEmpty(pkg, what, value string) error {
	if value == "" {
		return fmt.Errorf("%s: %s cannot be empty", pkg, what)
	}
	return nil
}
