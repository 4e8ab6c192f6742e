package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/optgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStreams returns streams reading stdin and capturing stdout and stderr.
func testStreams(stdin string) (streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return streams{in: strings.NewReader(stdin), out: &out, err: &errOut}, &out, &errOut
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			assert.Equal(t, tt.wantErr, err != nil, "ValidateOutputFormat(%q) error = %v", tt.format, err)
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"class": "CommandLine"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.Equal(t, "{\n  \"class\": \"CommandLine\"\n}\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Contains(t, buf.String(), "class: CommandLine")
	})

	t.Run("invalid format", func(t *testing.T) {
		assert.Error(t, OutputStructured(&bytes.Buffer{}, data, "invalid"))
	})
}

func TestFormatSchemaPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSchemaPath(StdinFilePath))
	assert.Equal(t, "options.xml", FormatSchemaPath("options.xml"))
}

func TestValidateOutputPath(t *testing.T) {
	input := testutil.WriteTempFile(t, "options.xml", testutil.GeneralXML)

	var warn bytes.Buffer
	err := ValidateOutputPath(&warn, input, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")

	require.NoError(t, ValidateOutputPath(&warn, input+".hpp", input))
	assert.Empty(t, warn.String())

	existing := testutil.WriteTempFile(t, "CommandLine.hpp", "old")
	require.NoError(t, ValidateOutputPath(&warn, existing, StdinFilePath))
	assert.Contains(t, warn.String(), "already exists")
}
