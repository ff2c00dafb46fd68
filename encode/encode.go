// Package encode renders typed stylesheet nodes to canonical text.
//
// Every node renders to newline-terminated text. Containers indent their
// already-rendered body by prefixing each line with four spaces, so nesting
// depth composes recursively instead of threading a depth counter.
package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/css-format/cssfmt/ir"
)

// ErrEncoding reports a node the renderer cannot handle.
var ErrEncoding = errors.New("encoding error")

type encState struct {
	ignoreCharset    bool
	ignoreComments   bool
	ignoreEmptyRules bool
}

// Encode renders the given top-level nodes to w in document order. No
// reordering happens here; the one reordering anywhere (selector sort)
// already happened at construction.
func Encode(nodes []ir.Node, w io.Writer, opts ...Option) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	for _, n := range nodes {
		text, err := nodeText(n, es)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

func nodeText(n ir.Node, es *encState) (string, error) {
	switch t := n.(type) {
	case ir.Property:
		return propertyText(t), nil
	case ir.Comment:
		if es.ignoreComments {
			return "", nil
		}
		return "/*" + t.Comment + "*/\n", nil
	case ir.Charset:
		if es.ignoreCharset {
			return "", nil
		}
		return "@charset " + t.Charset + ";\n", nil
	case ir.Import:
		return "@import " + t.Value + ";\n", nil
	case ir.Rule:
		if es.ignoreEmptyRules && len(t.Properties) == 0 {
			return "", nil
		}
		return t.Selectors + " {\n" + propertiesText(t.Properties) + "}\n", nil
	case ir.KeyFrame:
		return t.Values + " {\n" + propertiesText(t.Properties) + "}\n", nil
	case ir.KeyFrames:
		var b strings.Builder
		for _, f := range t.KeyFrames {
			b.WriteString(f.Values + " {\n" + propertiesText(f.Properties) + "}\n")
		}
		return "@" + t.Vendor + "keyframes " + t.Name + " {\n" + indent(b.String()) + "}\n", nil
	case ir.MediaQuery:
		body, err := rulesText(t.Rules, es)
		if err != nil {
			return "", err
		}
		return "@media " + t.Media + " {\n" + indent(body) + "}\n", nil
	case ir.Document:
		body, err := rulesText(t.Rules, es)
		if err != nil {
			return "", err
		}
		return "@" + t.Vendor + "document " + t.Name + " {\n" + indent(body) + "}\n", nil
	case ir.Supports:
		body, err := rulesText(t.Rules, es)
		if err != nil {
			return "", err
		}
		return "@supports " + t.Supports + " {\n" + indent(body) + "}\n", nil
	default:
		return "", fmt.Errorf("%w: cannot encode %T", ErrEncoding, n)
	}
}

func rulesText(rules []ir.Node, es *encState) (string, error) {
	var b strings.Builder
	for _, r := range rules {
		text, err := nodeText(r, es)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// propertyText renders one declaration. Properties are always nested one
// level inside their owning block, hence the fixed four spaces.
func propertyText(p ir.Property) string {
	return "    " + p.Name + ": " + p.Value + ";\n"
}

func propertiesText(props []ir.Property) string {
	var b strings.Builder
	for _, p := range props {
		b.WriteString(propertyText(p))
	}
	return b.String()
}

// indent prefixes every line of already-rendered block text with four
// spaces. An empty body still yields one line so a block renders as an
// opening line, an empty line, and the closing brace.
func indent(text string) string {
	if text == "" {
		return "\n"
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
