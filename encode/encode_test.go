package encode

import (
	"strings"
	"testing"

	"github.com/css-format/cssfmt/ir"
)

type encodeTest struct {
	name string
	n    ir.Node
	opts []Option
	want string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "rule",
			n: ir.Rule{
				Selectors:  "a, b",
				Properties: []ir.Property{{Name: "color", Value: "red"}},
			},
			want: "a, b {\n    color: red;\n}\n",
		},
		{
			name: "empty rule",
			n:    ir.Rule{Selectors: "a"},
			want: "a {\n}\n",
		},
		{
			name: "empty rule suppressed",
			n:    ir.Rule{Selectors: "a"},
			opts: []Option{IgnoreEmptyRules(true)},
			want: "",
		},
		{
			name: "comment",
			n:    ir.Comment{Comment: "hi"},
			want: "/*hi*/\n",
		},
		{
			name: "comment suppressed",
			n:    ir.Comment{Comment: "hi"},
			opts: []Option{IgnoreComments(true)},
			want: "",
		},
		{
			name: "charset",
			n:    ir.Charset{Charset: `"utf-8"`},
			want: "@charset \"utf-8\";\n",
		},
		{
			name: "charset suppressed",
			n:    ir.Charset{Charset: `"utf-8"`},
			opts: []Option{IgnoreCharset(true)},
			want: "",
		},
		{
			name: "import",
			n:    ir.Import{Value: "url('a.css')"},
			want: "@import url('a.css');\n",
		},
		{
			name: "media",
			n: ir.MediaQuery{
				Media: "screen",
				Rules: []ir.Node{
					ir.Rule{
						Selectors:  "a",
						Properties: []ir.Property{{Name: "color", Value: "red"}},
					},
				},
			},
			want: "@media screen {\n    a {\n        color: red;\n    }\n}\n",
		},
		{
			name: "empty media body",
			n:    ir.MediaQuery{Media: "screen"},
			want: "@media screen {\n\n}\n",
		},
		{
			name: "keyframes",
			n: ir.KeyFrames{
				Name: "fade",
				KeyFrames: []ir.KeyFrame{
					{Values: "0%", Properties: []ir.Property{{Name: "opacity", Value: "0"}}},
					{Values: "100%", Properties: []ir.Property{{Name: "opacity", Value: "1"}}},
				},
			},
			want: "@keyframes fade {\n" +
				"    0% {\n        opacity: 0;\n    }\n" +
				"    100% {\n        opacity: 1;\n    }\n" +
				"}\n",
		},
		{
			name: "vendor keyframes",
			n:    ir.KeyFrames{Vendor: "-webkit-", Name: "fade"},
			want: "@-webkit-keyframes fade {\n\n}\n",
		},
		{
			name: "document",
			n: ir.Document{
				Vendor: "-moz-",
				Name:   "url-prefix()",
				Rules: []ir.Node{
					ir.Rule{Selectors: "a", Properties: []ir.Property{{Name: "color", Value: "red"}}},
				},
			},
			want: "@-moz-document url-prefix() {\n    a {\n        color: red;\n    }\n}\n",
		},
		{
			name: "supports",
			n: ir.Supports{
				Supports: "(display: flex)",
				Rules: []ir.Node{
					ir.Rule{Selectors: "a", Properties: []ir.Property{{Name: "display", Value: "flex"}}},
				},
			},
			want: "@supports (display: flex) {\n    a {\n        display: flex;\n    }\n}\n",
		},
	}
	for _, et := range ets {
		var sb strings.Builder
		if err := Encode([]ir.Node{et.n}, &sb, et.opts...); err != nil {
			t.Errorf("%s: %v", et.name, err)
			continue
		}
		if got := sb.String(); got != et.want {
			t.Errorf("%s: got %q, want %q", et.name, got, et.want)
		}
	}
}

// Container indentation composes: a rule two levels deep renders its
// declarations at twelve spaces.
func TestEncodeNested(t *testing.T) {
	n := ir.Supports{
		Supports: "(display: flex)",
		Rules: []ir.Node{
			ir.MediaQuery{
				Media: "screen",
				Rules: []ir.Node{
					ir.Rule{
						Selectors:  "a",
						Properties: []ir.Property{{Name: "color", Value: "red"}},
					},
				},
			},
		},
	}
	want := "@supports (display: flex) {\n" +
		"    @media screen {\n" +
		"        a {\n" +
		"            color: red;\n" +
		"        }\n" +
		"    }\n" +
		"}\n"
	var sb strings.Builder
	if err := Encode([]ir.Node{n}, &sb); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Suppression options apply inside containers too.
func TestEncodeSuppressedInContainer(t *testing.T) {
	n := ir.MediaQuery{
		Media: "screen",
		Rules: []ir.Node{ir.Rule{Selectors: "a"}},
	}
	var sb strings.Builder
	if err := Encode([]ir.Node{n}, &sb, IgnoreEmptyRules(true)); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "@media screen {\n\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	its := []struct {
		in, want string
	}{
		{"", "\n"},
		{"a\n", "    a\n"},
		{"a\nb\n", "    a\n    b\n"},
	}
	for _, it := range its {
		if got := indent(it.in); got != it.want {
			t.Errorf("indent(%q) = %q, want %q", it.in, got, it.want)
		}
	}
}
