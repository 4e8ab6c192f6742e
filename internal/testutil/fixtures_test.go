package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "options.xml", GeneralXML)

	assert.Equal(t, "options.xml", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GeneralXML, string(data))
}

func TestWriteTempYAML(t *testing.T) {
	doc := map[string]any{"class": "CommandLine"}
	path := WriteTempYAML(t, doc)

	assert.Equal(t, ".yaml", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "CommandLine", got["class"])
}

func TestWriteTempJSON(t *testing.T) {
	doc := map[string]any{"class": "CommandLine"}
	path := WriteTempJSON(t, doc)

	assert.Equal(t, ".json", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "CommandLine", got["class"])
}

func TestFixturesAreWellFormedYAML(t *testing.T) {
	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(GeneralYAML), &got))
	assert.Equal(t, "CommandLine", got["class"])
}
