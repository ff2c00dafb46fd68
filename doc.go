// Package cssfmt normalizes CSS stylesheets into a canonical textual form:
// a stable, deterministic pretty-printed representation useful for diffing,
// deduplication, and stylistic comparison of stylesheets that are
// semantically equivalent but textually different.
//
// Format is the entry point:
//
//	out, err := cssfmt.Format("b, a { color: #aabbcc; }")
//	// "a, b {\n    color: #abc;\n}\n"
//
// Values are canonicalized (color notation, comma and slash spacing,
// quoting, leading and trailing zeros, unicode escapes), selector groups
// are sorted, and the tree is re-rendered with four-space indentation.
// Sibling order is otherwise preserved.
//
// Options suppress parts of the output:
//
//	out, err := cssfmt.Format(src,
//	    cssfmt.IgnoreCharset(true),
//	    cssfmt.IgnoreComments(true),
//	    cssfmt.IgnoreEmptyRules(true))
//
// Parsing is pluggable. The default is the native in-process parser; the
// nodeparse package provides a subprocess collaborator running the npm css
// parser with the same contract:
//
//	out, err := cssfmt.Format(src, cssfmt.WithParser(nodeparse.New(nil, "")))
//
// Formatting is all-or-nothing: malformed CSS fails with an error wrapping
// parse.ErrParse and no partial output is returned.
package cssfmt
