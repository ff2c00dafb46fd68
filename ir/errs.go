package ir

import "errors"

var (
	// ErrUnsupportedNode reports a generic node type the model has no
	// constructor for. A coverage gap, not a recoverable condition.
	ErrUnsupportedNode = errors.New("unsupported node kind")

	// ErrNodeFields reports a generic node carrying fields outside its
	// expected schema: a parser contract violation, not bad CSS.
	ErrNodeFields = errors.New("unexpected node fields")

	errInternal = errors.New("internal error")
)
