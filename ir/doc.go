// Package ir provides the typed in-memory representation of a stylesheet.
//
// A parser collaborator produces generic Raw nodes: records with a "type"
// tag and type-specific fields. FromRaw maps each onto one of a closed set
// of typed node kinds, validating that only expected fields are present and
// recursing into nested rule lists.
//
// Construction also performs the value-level normalization: declaration
// values, selector groups, and media query text pass through the normalize
// package, and rule selector groups are sorted. Nodes are immutable once
// built; a tree is constructed once per format invocation and discarded
// after rendering.
//
// # Related packages
//
//   - github.com/css-format/cssfmt/parse - produces Raw nodes from CSS text
//   - github.com/css-format/cssfmt/encode - renders typed nodes to text
//   - github.com/css-format/cssfmt/normalize - value canonicalization
package ir
