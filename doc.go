// Package optgen generates command-line option declarations from a
// declarative option schema.
//
// A schema names the class to generate, carries program-level help text
// (summary, usage lines, copyright), and lists options grouped into titled
// sections. From it optgen emits a C++ header declaring one typed member per
// option, the section titles, and an index pairing each option with its
// section. A Go rendition of the same model is also available.
//
// # Packages
//
//   - schema: load XML, YAML, JSON, or TOML schemas into a typed Document
//   - validator: report every problem in a schema without generating
//   - generator: render declarations for the C++ or Go target
//   - opterrors: structured error types shared by all packages
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("options.xml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output())
//
// The optgen command wraps the same pipeline. Run without arguments, it reads
// options.xml from the working directory and writes the header to stdout.
package optgen
