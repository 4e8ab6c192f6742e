package validator

import (
	"errors"
	"testing"

	"github.com/erraggy/optgen/opterrors"
	"github.com/erraggy/optgen/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRedefinitions(t *testing.T) {
	tests := []struct {
		name      string
		options   []schema.Option
		wantShort string
		wantLong  string
		wantFirst string
	}{
		{
			name:    "no options",
			options: nil,
		},
		{
			name: "distinct short names",
			options: []schema.Option{
				{Long: "verbose", Short: "v"},
				{Long: "output-file", Short: "o"},
			},
		},
		{
			name: "absent short names never conflict",
			options: []schema.Option{
				{Long: "keep"},
				{Long: "cache"},
				{Long: "trace-all"},
			},
		},
		{
			name: "case matters",
			options: []schema.Option{
				{Long: "zoom", Short: "Z"},
				{Long: "zip", Short: "z"},
			},
		},
		{
			name: "shared short name",
			options: []schema.Option{
				{Long: "extract", Short: "x"},
				{Long: "exclude", Short: "x"},
			},
			wantShort: "x",
			wantLong:  "exclude",
			wantFirst: "extract",
		},
		{
			name: "first conflict in document order wins",
			options: []schema.Option{
				{Long: "alpha", Short: "a"},
				{Long: "beta", Short: "b"},
				{Long: "bravo", Short: "b"},
				{Long: "again", Short: "a"},
			},
			wantShort: "b",
			wantLong:  "bravo",
			wantFirst: "beta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRedefinitions(tt.options)
			if tt.wantShort == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, opterrors.ErrRedefinition))

			var redef *opterrors.RedefinitionError
			require.ErrorAs(t, err, &redef)
			assert.Equal(t, tt.wantShort, redef.Short)
			assert.Equal(t, tt.wantLong, redef.Long)
			assert.Equal(t, tt.wantFirst, redef.FirstLong)
			assert.Contains(t, err.Error(), "redefinition of option -"+tt.wantShort)
		})
	}
}

func TestCheckRedefinitionsRegardlessOfLongNames(t *testing.T) {
	longs := [][2]string{
		{"a", "b"},
		{"output-file", "input-file"},
		{"zz", "aa"},
	}
	for _, pair := range longs {
		err := CheckRedefinitions([]schema.Option{
			{Long: pair[0], Short: "x"},
			{Long: pair[1], Short: "x"},
		})
		require.Error(t, err, "%v", pair)
		assert.ErrorIs(t, err, opterrors.ErrRedefinition)
	}
}

func TestRedefinitionsFindsAll(t *testing.T) {
	found := redefinitions([]schema.Option{
		{Long: "a", Short: "x"},
		{Long: "b", Short: "x"},
		{Long: "c", Short: "y"},
		{Long: "d", Short: "x"},
		{Long: "e", Short: "y"},
	})

	require.Len(t, found, 3)
	assert.Equal(t, "a", found[1].FirstLong)
	assert.Equal(t, "a", found[3].FirstLong)
	assert.Equal(t, "c", found[4].FirstLong)
}
