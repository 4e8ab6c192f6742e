// Package generator renders option declarations from parsed option schemas.
//
// The default target is a C++ header declaring a class derived from
// CL::CommandLine. Every option becomes a member variable, the section
// titles become a fixed-size array, and each option is paired with the
// ordinal of its section. A second target renders the same model as a
// self-contained Go source file.
//
// # Quick Start
//
// Generate a header using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("options.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output())
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.Target = generator.TargetGo
//	g.PackageName = "cli"
//	result, _ := g.Generate("options.xml")
//	result.WriteFiles("./cli")
//
// # Options
//
// [GenerateWithOptions] takes its schema from [WithFilePath] or from a
// previous parse through [WithParsed]. The remaining options mirror the
// [Generator] fields:
//
//   - [WithTarget] selects the C++ header or the Go source output
//   - [WithClassName] overrides the class name declared by the schema
//   - [WithPackageName] sets the package clause of Go output
//   - [WithConfigHeader] and [WithRuntimeHeader] choose the C++ includes
//   - [WithIncludeInfo] keeps informational issues in the result
//   - [WithLogger] enables debug logging
//
// # Declaration Rules
//
// Option variables are named by dropping each hyphen of the long name,
// upper-casing the character after it, and appending "Opt", so
// "output-file" becomes outputFileOpt. Variables are declared sorted by long
// name; the section index keeps document order. An option without an argument
// is declared as a plain Option, otherwise as a TypedOption whose type and
// argument mode come from the schema. A missing short name is written as
// '\0', and string defaults are quoted.
//
// Options carrying a build predicate are wrapped in #if/#endif in the index
// only; their member variables are always declared.
//
// # Failure
//
// Generation is all or nothing. Two options sharing a short name fail with an
// [opterrors.RedefinitionError]; an option without a description fails with an
// [opterrors.MissingFieldError]. In both cases no file is produced.
package generator
