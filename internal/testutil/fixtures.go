// Package testutil provides test utilities and schema fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// GeneralXML is the smallest useful schema: one "General" section holding a
// flag and a required string argument, declared out of alphabetical order.
const GeneralXML = `<?xml version="1.0" encoding="UTF-8"?>
<cmdline class="CommandLine">
  <program>
    <usage>[options] dvifile</usage>
    <usage>-E [options] epsfile</usage>
    <description>This program converts DVI files to SVG.</description>
    <copyright>Copyright (C) 2005-2026 Example Authors</copyright>
  </program>
  <options>
    <section title="General">
      <option long="verbose" short="v">
        <description>set verbosity level</description>
      </option>
      <option long="output-file" short="o">
        <arg type="string" name="file" optional="no"/>
        <description>set name of output file</description>
      </option>
    </section>
  </options>
</cmdline>
`

// MultiSectionXML exercises section ordinals, defaults, optional arguments,
// and conditional-compilation predicates.
const MultiSectionXML = `<?xml version="1.0" encoding="UTF-8"?>
<cmdline class="CommandLine">
  <program>
    <usage>[options] file</usage>
    <description>Converts things.</description>
    <copyright>Copyright (C) 2026 Example</copyright>
  </program>
  <options>
    <section title="Input options">
      <option long="page" short="p">
        <arg type="string" name="ranges" default="1"/>
        <description>choose pages to convert</description>
      </option>
      <option long="fontmap" short="m">
        <arg type="string" name="filenames"/>
        <description>evaluate (additional) font map files</description>
      </option>
    </section>
    <section title="SVG output options">
      <option long="bbox" short="b">
        <arg type="string" name="size" default="min" optional="yes"/>
        <description>set size of bounding box</description>
      </option>
      <option long="zoom" short="Z">
        <arg type="double" name="factor" default="1.0"/>
        <description>zoom page using given factor</description>
      </option>
      <option long="no-fonts" short="n" if="!defined(DISABLE_WOFF)">
        <arg type="int" name="variant" default="0" optional="yes"/>
        <description>draw glyphs by using path elements</description>
      </option>
    </section>
    <section title="Processing options">
      <option long="exact-bbox" short="e">
        <description>compute exact glyph bounding boxes</description>
      </option>
      <option long="keep">
        <description>disable removal of temporary files</description>
      </option>
    </section>
  </options>
</cmdline>
`

// ConflictXML declares the short name "x" twice.
const ConflictXML = `<?xml version="1.0" encoding="UTF-8"?>
<cmdline class="CommandLine">
  <program>
    <description>Conflicting options.</description>
    <copyright>none</copyright>
  </program>
  <section title="General">
    <option long="extract" short="x">
      <description>extract things</description>
    </option>
    <option long="exclude" short="x">
      <description>exclude things</description>
    </option>
  </section>
</cmdline>
`

// GeneralYAML is GeneralXML in the structured layout.
const GeneralYAML = `class: CommandLine
program:
  description: This program converts DVI files to SVG.
  copyright: Copyright (C) 2005-2026 Example Authors
  usage:
    - "[options] dvifile"
    - "-E [options] epsfile"
sections:
  - title: General
    options:
      - long: verbose
        short: v
        description: set verbosity level
      - long: output-file
        short: o
        description: set name of output file
        arg:
          type: string
          name: file
          optional: no
`

// WriteTempFile writes data to name inside a test temp directory and returns the path.
func WriteTempFile(t *testing.T, name string, data string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML writes a document to a temporary YAML file and returns the file path.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	return WriteTempFile(t, "options.yaml", string(data))
}

// WriteTempJSON writes a document to a temporary JSON file and returns the file path.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	return WriteTempFile(t, "options.json", string(data))
}
