package calltest

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/mcuadros/go-defaults"
)

type TextAssertOptions struct {
	TrimSpace                bool `default:"false"`
	IgnoreTrailingWhitespace bool `default:"true"`
	IgnoreEmptyLines         bool `default:"false"`
	EnableColors             bool `default:"false"`
}

// TextOption is a functional option for configuring TextAsserter
type TextOption func(*TextAssertOptions)

// WithTrimSpace trims leading and trailing whitespace of the whole text
func WithTrimSpace() TextOption {
	return func(o *TextAssertOptions) { o.TrimSpace = true }
}

// WithIgnoreEmptyLines drops blank lines before comparing
func WithIgnoreEmptyLines() TextOption {
	return func(o *TextAssertOptions) { o.IgnoreEmptyLines = true }
}

// WithColors colorizes the unified diff in failure messages
func WithColors() TextOption {
	return func(o *TextAssertOptions) { o.EnableColors = true }
}

// TextAsserter compares rendered text (reports, generated code) and reports
// mismatches as a unified diff.
type TextAsserter struct {
	t       TestingT
	options TextAssertOptions
}

// NewTextAsserter creates a new TextAsserter with default options
func NewTextAsserter(t TestingT, opts ...TextOption) *TextAsserter {
	options := TextAssertOptions{}
	defaults.SetDefaults(&options)
	for _, opt := range opts {
		opt(&options)
	}
	return &TextAsserter{t: t, options: options}
}

// Options returns a copy of the current options
func (ta *TextAsserter) Options() TextAssertOptions {
	return ta.options
}

// Assert compares actual text against expected text
func (ta *TextAsserter) Assert(actual, expected string) bool {
	helper(ta.t)
	if diff := ta.Diff(actual, expected); diff != "" {
		ta.t.Errorf("Text assertion failed - unified diff:\n%s", diff)
		return false
	}
	return true
}

// Diff returns the unified diff between expected and actual after
// normalization, or "" when they match.
func (ta *TextAsserter) Diff(actual, expected string) string {
	a := ta.normalize(actual)
	e := ta.normalize(expected)
	if a == e {
		return ""
	}
	return ColorizeDiff(UnifiedDiff("expected", "actual", e, a), ta.options.EnableColors)
}

// UnifiedDiff renders the edits turning from into to as a unified diff.
func UnifiedDiff(fromName, toName, from, to string) string {
	edits := myers.ComputeEdits("", from, to)
	return fmt.Sprint(gotextdiff.ToUnified(fromName, toName, from, edits))
}

// ColorizeDiff applies terminal colors to unified diff output.
// With enabled false the diff is returned unchanged.
func ColorizeDiff(diff string, enabled bool) string {
	if !enabled {
		return diff
	}

	// Force colors on; test output is rarely a TTY
	red := color.New(color.FgRed)
	red.EnableColor()
	green := color.New(color.FgGreen)
	green.EnableColor()
	cyan := color.New(color.FgCyan)
	cyan.EnableColor()
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			lines[i] = yellow.Sprint(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = cyan.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = red.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = green.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (ta *TextAsserter) normalize(text string) string {
	if ta.options.TrimSpace {
		text = strings.TrimSpace(text)
	}

	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if ta.options.IgnoreTrailingWhitespace {
			line = strings.TrimRight(line, " \t\r")
		}
		if ta.options.IgnoreEmptyLines && strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
