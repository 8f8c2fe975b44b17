package calltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextAsserter_Defaults(t *testing.T) {
	opts := NewTextAsserter(t).Options()

	assert.False(t, opts.TrimSpace)
	assert.True(t, opts.IgnoreTrailingWhitespace)
	assert.False(t, opts.IgnoreEmptyLines)
	assert.False(t, opts.EnableColors)
}

func TestTextAsserter_Diff(t *testing.T) {
	tests := []struct {
		name     string
		opts     []TextOption
		actual   string
		expected string
		match    bool
	}{
		{name: "identical", actual: "a\nb\n", expected: "a\nb\n", match: true},
		{name: "trailing whitespace ignored by default", actual: "a  \nb\t\n", expected: "a\nb\n", match: true},
		{name: "different line", actual: "a\nc\n", expected: "a\nb\n", match: false},
		{name: "surrounding space with trim", opts: []TextOption{WithTrimSpace()}, actual: "\n\na\n", expected: "a", match: true},
		{name: "surrounding space without trim", actual: "\n\na\n", expected: "a", match: false},
		{name: "empty lines ignored", opts: []TextOption{WithIgnoreEmptyLines()}, actual: "a\n\n\nb", expected: "a\nb", match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := NewTextAsserter(t, tt.opts...).Diff(tt.actual, tt.expected)
			if tt.match {
				assert.Empty(t, diff)
			} else {
				assert.NotEmpty(t, diff)
			}
		})
	}
}

func TestTextAsserter_AssertReportsUnifiedDiff(t *testing.T) {
	rt := &recordingT{}

	ok := NewTextAsserter(rt).Assert("FUNCTION  CALLS\nBTA_AvOpen  2\n", "FUNCTION  CALLS\nBTA_AvOpen  1\n")

	assert.False(t, ok)
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "--- expected")
	assert.Contains(t, rt.errors[0], "+++ actual")
	assert.Contains(t, rt.errors[0], "-BTA_AvOpen  1")
	assert.Contains(t, rt.errors[0], "+BTA_AvOpen  2")
}

func TestColorizeDiff(t *testing.T) {
	diff := UnifiedDiff("a", "b", "x\n", "y\n")

	assert.Equal(t, diff, ColorizeDiff(diff, false))

	colored := ColorizeDiff(diff, true)
	assert.NotEqual(t, diff, colored)
	assert.Contains(t, colored, "\x1b[")
}
