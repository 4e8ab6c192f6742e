package severity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},
		{"info level", SeverityInfo, "info"},
		{"critical level", SeverityCritical, "critical"},
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverityIsFault(t *testing.T) {
	assert.True(t, SeverityError.IsFault())
	assert.True(t, SeverityCritical.IsFault())
	assert.False(t, SeverityWarning.IsFault())
	assert.False(t, SeverityInfo.IsFault())
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityCritical} {
		got, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := Parse("fatal")
	assert.Error(t, err)
}

func TestSeverityTextEncoding(t *testing.T) {
	type report struct {
		Level Severity `json:"level" yaml:"level"`
	}

	data, err := json.Marshal(report{Level: SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"warning"}`, string(data))

	var fromJSON report
	require.NoError(t, json.Unmarshal([]byte(`{"level":"critical"}`), &fromJSON))
	assert.Equal(t, SeverityCritical, fromJSON.Level)

	out, err := yaml.Marshal(report{Level: SeverityError})
	require.NoError(t, err)
	assert.Equal(t, "level: error\n", string(out))

	var bad report
	assert.Error(t, json.Unmarshal([]byte(`{"level":"loud"}`), &bad))
}
