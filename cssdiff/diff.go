// Package cssdiff computes line-oriented diffs between the canonical
// forms of two stylesheets. Both inputs are formatted with cssfmt
// before comparison, so differences in whitespace, value notation, or
// selector order within a group do not show up as changes.
package cssdiff

import (
	"strings"

	"github.com/css-format/cssfmt"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Result holds the line diffs between two canonicalized stylesheets.
type Result struct {
	Equal bool
	Diffs []diffpatch.Diff
}

// Diff canonicalizes a and b with the given formatting options and
// computes a line diff of the results. An error from either parse
// aborts the diff.
func Diff(a, b string, opts ...cssfmt.Option) (*Result, error) {
	fa, err := cssfmt.Format(a, opts...)
	if err != nil {
		return nil, err
	}
	fb, err := cssfmt.Format(b, opts...)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(fa, fb)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)
	return &Result{Equal: fa == fb, Diffs: diffs}, nil
}

// Text renders the diff in unified style, one line per stylesheet line,
// prefixed with "+", "-", or a space.
func (r *Result) Text() string {
	return r.render(func(s string, _ ...any) string { return s },
		func(s string, _ ...any) string { return s })
}

// Colored renders like Text with insertions in green and deletions in
// red. Color output respects the fatih/color global NoColor setting.
func (r *Result) Colored() string {
	return r.render(color.GreenString, color.RedString)
}

func (r *Result) render(ins, del func(string, ...any) string) string {
	var sb strings.Builder
	for _, d := range r.Diffs {
		var prefix string
		paint := func(s string, _ ...any) string { return s }
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+", ins
		case diffpatch.DiffDelete:
			prefix, paint = "-", del
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(paint(prefix + line))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
