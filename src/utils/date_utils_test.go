package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024/01/15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15/01/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Jan 15, 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15 Jan 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"20240115", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{" 2024-01-15 ", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got, err := ParseFlexibleDate(tc.input)
		require.NoError(t, err, "input=%q", tc.input)
		assert.True(t, tc.want.Equal(got), "input=%q got=%v", tc.input, got)
	}
}

// Ambiguous numeric dates resolve month-first.
func TestParseFlexibleDateAmbiguous(t *testing.T) {
	got, err := ParseFlexibleDate("03/04/2024")
	require.NoError(t, err)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 4, got.Day())
}

func TestParseFlexibleDateErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2024-13-45"} {
		_, err := ParseFlexibleDate(input)
		assert.Error(t, err, "input=%q", input)
	}
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 1.25, RoundFloat(1.24999999999, 2))
	assert.Equal(t, 0.1235, RoundFloat(0.12345, 4))
	assert.Equal(t, 100.0, RoundFloat(99.999, 2))
	assert.Equal(t, 0.0, RoundFloat(0, 2))
}
