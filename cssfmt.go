package cssfmt

import (
	"bytes"

	"github.com/css-format/cssfmt/encode"
	"github.com/css-format/cssfmt/ir"
	"github.com/css-format/cssfmt/parse"
)

// Option configures Format.
type Option func(*options)

type options struct {
	parser           parse.Parser
	ignoreCharset    bool
	ignoreComments   bool
	ignoreEmptyRules bool
}

// IgnoreCharset suppresses @charset nodes in the output.
func IgnoreCharset(v bool) Option {
	return func(o *options) { o.ignoreCharset = v }
}

// IgnoreComments suppresses comments in the output.
func IgnoreComments(v bool) Option {
	return func(o *options) { o.ignoreComments = v }
}

// IgnoreEmptyRules suppresses rules with zero declarations.
func IgnoreEmptyRules(v bool) Option {
	return func(o *options) { o.ignoreEmptyRules = v }
}

// WithParser swaps in a different parser collaborator, such as a
// nodeparse.Parser or a test stub.
func WithParser(p parse.Parser) Option {
	return func(o *options) { o.parser = p }
}

// Format renders CSS source in canonical form: parse, build the typed
// tree, render. All-or-nothing; the output always ends with a newline
// after the final top-level node, so callers wanting a trimmed result
// strip a single trailing newline themselves.
func Format(src string, opts ...Option) (string, error) {
	o := &options{parser: parse.New(nil)}
	for _, opt := range opts {
		opt(o)
	}
	raws, err := o.parser.Parse([]byte(src))
	if err != nil {
		return "", err
	}
	nodes := make([]ir.Node, 0, len(raws))
	for _, r := range raws {
		n, err := ir.FromRaw(r)
		if err != nil {
			return "", err
		}
		nodes = append(nodes, n)
	}
	var buf bytes.Buffer
	if err := encode.Encode(nodes, &buf, o.encodeOpts()...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (o *options) encodeOpts() []encode.Option {
	return []encode.Option{
		encode.IgnoreCharset(o.ignoreCharset),
		encode.IgnoreComments(o.ignoreComments),
		encode.IgnoreEmptyRules(o.ignoreEmptyRules),
	}
}
