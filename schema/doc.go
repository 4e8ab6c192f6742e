// Package schema loads option schema documents.
//
// A schema describes the command-line surface of a program: program metadata
// (summary, usage lines, copyright), titled sections, and options with long
// and short names, help text, an optional conditional-compilation predicate,
// and an optional typed argument.
//
// The native format is XML:
//
//	<cmdline class="CommandLine">
//	  <program>
//	    <usage>[options] file</usage>
//	    <description>Converts things.</description>
//	    <copyright>Copyright (C) 2026 Example</copyright>
//	  </program>
//	  <options>
//	    <section title="General">
//	      <option long="verbose" short="v">
//	        <description>print more messages</description>
//	      </option>
//	      <option long="output-file" short="o">
//	        <arg type="string" name="file"/>
//	        <description>write output to file</description>
//	      </option>
//	    </section>
//	  </options>
//	</cmdline>
//
// The same model may be written in YAML, JSON, or TOML using the layout
// described by [GrammarJSON]. Every document is checked against its grammar
// before a [Document] is produced, and any violation is reported as an
// *opterrors.SchemaError. No partial documents are returned.
//
// Loading is a single forward pass: each option gets its document-order
// index and the ordinal of its owning section, which is the number of
// sections closed before it.
//
// # Options
//
// [ParseWithOptions] takes exactly one input source: [WithFilePath],
// [WithReader], or [WithBytes]. [WithFormat] forces the source format instead
// of detecting it from the file extension or the first byte of content.
// [WithSourceName] names in-memory input for error messages, and
// [WithLogger] enables debug logging.
//
// # Quick Start
//
//	result, err := schema.ParseWithOptions(schema.WithFilePath("options.xml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, opt := range result.Document.Options {
//	    fmt.Println(opt.Long, opt.SectionIndex)
//	}
package schema
