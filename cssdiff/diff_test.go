package cssdiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/css-format/cssfmt"
	"github.com/css-format/cssfmt/parse"
)

// Inputs that canonicalize to the same text diff as equal.
func TestDiffEqual(t *testing.T) {
	eqs := [][2]string{
		{"a{color:red}", "a {\n    color: red;\n}\n"},
		{"b, a { color: #aabbcc; }", "a,b { color: #abc; }"},
		{"a { margin: .5em; }", "a { margin: 0.5em; }"},
	}
	for _, eq := range eqs {
		res, err := Diff(eq[0], eq[1])
		if err != nil {
			t.Fatal(err)
		}
		if !res.Equal {
			t.Errorf("Diff(%q, %q) not equal:\n%s", eq[0], eq[1], res.Text())
		}
	}
}

func TestDiffChanged(t *testing.T) {
	res, err := Diff("a{color:red}", "a{color:blue}")
	if err != nil {
		t.Fatal(err)
	}
	if res.Equal {
		t.Fatal("expected a difference")
	}
	text := res.Text()
	if !strings.Contains(text, "-    color: red;\n") {
		t.Errorf("missing deletion in:\n%s", text)
	}
	if !strings.Contains(text, "+    color: blue;\n") {
		t.Errorf("missing insertion in:\n%s", text)
	}
	if !strings.Contains(text, " a {\n") {
		t.Errorf("missing context in:\n%s", text)
	}
}

// Formatting options apply to both sides before comparing.
func TestDiffOptions(t *testing.T) {
	res, err := Diff("/*x*/a{color:red}", "a{color:red}", cssfmt.IgnoreComments(true))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Equal {
		t.Errorf("expected equal after dropping comments:\n%s", res.Text())
	}
}

func TestDiffParseError(t *testing.T) {
	_, err := Diff("body {", "a{}")
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}
