package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageText(t *testing.T) {
	tests := []struct {
		name  string
		usage []string
		want  string
	}{
		{"none", nil, ""},
		{"one", []string{"[options] file"}, "[options] file"},
		{"two", []string{"a", "b"}, `a\nb`},
		{"empty line kept", []string{"a", "", "b"}, `a\n\nb`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Program{Usage: tt.usage}.UsageText())
		})
	}
}

func TestArgumentPredicates(t *testing.T) {
	var nilArg *Argument
	assert.False(t, nilArg.HasDefault())
	assert.False(t, nilArg.IsString())

	empty := ""
	assert.True(t, (&Argument{Type: "int", Default: &empty}).HasDefault())
	assert.True(t, (&Argument{Type: StringType}).IsString())
	assert.False(t, (&Argument{Type: "double"}).IsString())
}

func TestGetDocumentStats(t *testing.T) {
	assert.Equal(t, DocumentStats{}, GetDocumentStats(nil))

	doc := &Document{
		Sections: []Section{{Title: "A"}},
		Options: []Option{
			{Long: "a"},
			{Long: "b", If: "X", Arg: &Argument{Type: "int", Name: "n"}},
		},
	}
	assert.Equal(t, DocumentStats{SectionCount: 1, OptionCount: 2, FlagCount: 1, ValueCount: 1, ConditionalCount: 1}, GetDocumentStats(doc))
}

func TestSlogAdapterNil(t *testing.T) {
	l := NewSlogAdapter(nil)
	assert.NotNil(t, l.With("k", "v"))
	l.Debug("hidden")
	NopLogger{}.With("k").Info("nothing")
}
