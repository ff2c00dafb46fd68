package ir

import (
	"fmt"
	"strings"

	"github.com/css-format/cssfmt/normalize"
)

// Node is one typed node of a stylesheet tree. The set of kinds is closed;
// rendering lives in the encode package.
type Node interface {
	node()
}

// Property is a single declaration. It is owned by a Rule or KeyFrame and
// never appears in a container's rule list.
type Property struct {
	Name  string
	Value string
}

// Charset is an @charset at-rule. The charset text keeps its quotes.
type Charset struct {
	Charset string
}

// Comment holds raw comment text without the surrounding markers.
type Comment struct {
	Comment string
}

// Import is an @import at-rule; Value is the raw text after "@import".
type Import struct {
	Value string
}

// Rule is a selector group with its declarations. Selectors holds the
// normalized, sorted, comma-joined group.
type Rule struct {
	Selectors  string
	Properties []Property
}

// KeyFrame is one frame of a KeyFrames block; Values is the comma-joined
// frame selector list, e.g. "0%, 100%".
type KeyFrame struct {
	Values     string
	Properties []Property
}

// KeyFrames is an @keyframes at-rule. Vendor is empty for the unprefixed
// form.
type KeyFrames struct {
	Vendor    string
	Name      string
	KeyFrames []KeyFrame
}

// MediaQuery is an @media at-rule with nested rules of any kind.
type MediaQuery struct {
	Media string
	Rules []Node
}

// Document is an @document at-rule. Vendor is empty for the unprefixed
// form.
type Document struct {
	Vendor string
	Name   string
	Rules  []Node
}

// Supports is an @supports at-rule; the condition text is kept verbatim.
type Supports struct {
	Supports string
	Rules    []Node
}

func (Property) node()   {}
func (Charset) node()    {}
func (Comment) node()    {}
func (Import) node()     {}
func (Rule) node()       {}
func (KeyFrame) node()   {}
func (KeyFrames) node()  {}
func (MediaQuery) node() {}
func (Document) node()   {}
func (Supports) node()   {}

// constructors is the fixed dispatch table from generic type tags to typed
// node constructors. Declarations are handled inline by their owning rule
// or keyframe, not here. Populated in init: the container constructors
// recurse through FromRaw, so a composite literal would be an
// initialization cycle.
var constructors map[string]func(Raw) (Node, error)

func init() {
	constructors = map[string]func(Raw) (Node, error){
		"charset":   fromCharset,
		"comment":   fromComment,
		"document":  fromDocument,
		"import":    fromImport,
		"keyframes": fromKeyFrames,
		"media":     fromMedia,
		"rule":      fromRule,
		"supports":  fromSupports,
	}
}

// FromRaw converts one generic node into its typed form, recursively
// converting nested rule lists through the same dispatch.
func FromRaw(r Raw) (Node, error) {
	ctor, ok := constructors[r.Type()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedNode, r.Type())
	}
	return ctor(r)
}

func fromCharset(r Raw) (Node, error) {
	if err := r.checkFields("charset"); err != nil {
		return nil, err
	}
	c, err := r.str("charset")
	if err != nil {
		return nil, err
	}
	return Charset{Charset: c}, nil
}

func fromComment(r Raw) (Node, error) {
	if err := r.checkFields("comment"); err != nil {
		return nil, err
	}
	c, err := r.str("comment")
	if err != nil {
		return nil, err
	}
	return Comment{Comment: c}, nil
}

func fromImport(r Raw) (Node, error) {
	if err := r.checkFields("import"); err != nil {
		return nil, err
	}
	v, err := r.str("import")
	if err != nil {
		return nil, err
	}
	return Import{Value: v}, nil
}

func fromRule(r Raw) (Node, error) {
	if err := r.checkFields("selectors", "declarations"); err != nil {
		return nil, err
	}
	sels, err := r.strs("selectors")
	if err != nil {
		return nil, err
	}
	props, err := properties(r)
	if err != nil {
		return nil, err
	}
	return Rule{Selectors: normalize.Selectors(sels), Properties: props}, nil
}

func fromKeyFrames(r Raw) (Node, error) {
	if err := r.checkFields("vendor", "name", "keyframes"); err != nil {
		return nil, err
	}
	vendor, err := r.optStr("vendor")
	if err != nil {
		return nil, err
	}
	name, err := r.str("name")
	if err != nil {
		return nil, err
	}
	rawFrames, err := r.list("keyframes")
	if err != nil {
		return nil, err
	}
	frames := make([]KeyFrame, 0, len(rawFrames))
	for _, rf := range rawFrames {
		f, err := fromKeyFrame(rf)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return KeyFrames{Vendor: vendor, Name: name, KeyFrames: frames}, nil
}

func fromKeyFrame(r Raw) (KeyFrame, error) {
	if err := r.checkFields("values", "declarations"); err != nil {
		return KeyFrame{}, err
	}
	values, err := r.strs("values")
	if err != nil {
		return KeyFrame{}, err
	}
	props, err := properties(r)
	if err != nil {
		return KeyFrame{}, err
	}
	return KeyFrame{Values: strings.Join(values, ", "), Properties: props}, nil
}

func fromMedia(r Raw) (Node, error) {
	if err := r.checkFields("media", "rules"); err != nil {
		return nil, err
	}
	media, err := r.str("media")
	if err != nil {
		return nil, err
	}
	rules, err := childRules(r)
	if err != nil {
		return nil, err
	}
	return MediaQuery{Media: normalize.Media(media), Rules: rules}, nil
}

func fromDocument(r Raw) (Node, error) {
	if err := r.checkFields("vendor", "document", "rules"); err != nil {
		return nil, err
	}
	vendor, err := r.optStr("vendor")
	if err != nil {
		return nil, err
	}
	name, err := r.str("document")
	if err != nil {
		return nil, err
	}
	rules, err := childRules(r)
	if err != nil {
		return nil, err
	}
	return Document{Vendor: vendor, Name: name, Rules: rules}, nil
}

func fromSupports(r Raw) (Node, error) {
	if err := r.checkFields("supports", "rules"); err != nil {
		return nil, err
	}
	cond, err := r.str("supports")
	if err != nil {
		return nil, err
	}
	rules, err := childRules(r)
	if err != nil {
		return nil, err
	}
	return Supports{Supports: cond, Rules: rules}, nil
}

func childRules(r Raw) ([]Node, error) {
	raws, err := r.list("rules")
	if err != nil {
		return nil, err
	}
	rules := make([]Node, 0, len(raws))
	for _, rr := range raws {
		n, err := FromRaw(rr)
		if err != nil {
			return nil, err
		}
		rules = append(rules, n)
	}
	return rules, nil
}

// properties maps a node's declaration list. A non-declaration entry is a
// contract violation, never silently dropped.
func properties(r Raw) ([]Property, error) {
	decls, err := r.list("declarations")
	if err != nil {
		return nil, err
	}
	props := make([]Property, 0, len(decls))
	for _, d := range decls {
		p, err := fromDeclaration(d)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

func fromDeclaration(r Raw) (Property, error) {
	if t := r.Type(); t != "declaration" {
		return Property{}, fmt.Errorf("%w: %q in declaration list", ErrUnsupportedNode, t)
	}
	if err := r.checkFields("property", "value"); err != nil {
		return Property{}, err
	}
	name, err := r.str("property")
	if err != nil {
		return Property{}, err
	}
	value, err := r.str("value")
	if err != nil {
		return Property{}, err
	}
	return Property{Name: name, Value: normalize.Value(name, value)}, nil
}
