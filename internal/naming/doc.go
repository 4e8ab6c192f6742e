// Package naming provides the case conversion helpers used to turn option
// and class names into identifiers and file names.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
