// Package validator checks option schemas for faults the grammar cannot express.
//
// The only semantic rule is short-name uniqueness: two options may not share a
// non-empty short name. Long-name uniqueness is part of the grammar and is
// enforced by the schema package.
//
// Two entry points serve different callers:
//
//   - [CheckRedefinitions] is the fail-fast check used by the generator. It
//     returns the first conflict in document order as an
//     *opterrors.RedefinitionError.
//   - [Validate], [ValidateWithOptions], and the [Validator] methods build a
//     report of every fault as issue records. Besides redefinitions, the report
//     lists options with an empty description, which the generator cannot
//     render.
//
// [ValidateWithOptions] reads the schema from [WithFilePath] or takes an
// already parsed one through [WithParsed]. [WithLogger] enables debug logging.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(validator.WithFilePath("options.xml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//	    fmt.Println(e)
//	}
package validator
