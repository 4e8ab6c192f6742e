package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "include", "CommandLine.hpp")

	require.NoError(t, WriteFile(path, []byte("#endif\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#endif\n", string(data))
}

func TestWriteFileIntoFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(parent, nil, 0o600))

	err := WriteFile(filepath.Join(parent, "out.hpp"), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

func TestCheckOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "options.xml")
	require.NoError(t, os.WriteFile(input, []byte("<cmdline/>"), 0o600))
	existing := filepath.Join(dir, "CommandLine.hpp")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))
	link := filepath.Join(dir, "link.hpp")
	require.NoError(t, os.Symlink(existing, link))

	tests := []struct {
		name       string
		output     string
		input      string
		wantExists bool
		wantErr    string
	}{
		{"new file", filepath.Join(dir, "new.hpp"), input, false, ""},
		{"existing file", existing, input, true, ""},
		{"overwrites input", input, input, false, "would overwrite input file"},
		{"overwrites input via relative segments", filepath.Join(dir, "sub", "..", "options.xml"), input, false, "would overwrite input file"},
		{"no input to protect", existing, "", true, ""},
		{"symlink", link, input, false, "refusing to write to symlink"},
		{"directory", dir, input, false, "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := CheckOutputPath(tt.output, tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, exists)
		})
	}
}
