// Package normalize canonicalizes CSS value, selector, and media query text.
//
// Declaration values pass through an ordered sequence of pure text
// transforms. The order is part of the contract: comma spacing must run
// before space collapsing, and unicode escape resolution runs last so it
// sees the final spacing.
package normalize

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// A Transform is a pure rewrite of value text.
type Transform func(string) string

// Permissive numeric group: integer or decimal, possibly empty. Kept loose
// on purpose so values the tooling historically accepted keep matching.
const num = `(\d*(?:\.\d*)?)`

var (
	hexColorRE   = regexp.MustCompile(`#[0-9a-fA-F]{6}`)
	commaRE      = regexp.MustCompile(`,\s*`)
	floatRE      = regexp.MustCompile(`(^|\D)(\.\d+)`)
	pointZeroRE  = regexp.MustCompile(`(\d)\.0+px`)
	quoteRE      = regexp.MustCompile(`"([^'"]*)"`)
	relationRE   = regexp.MustCompile(`\s*([+>])\s*`)
	rgbaRE       = regexp.MustCompile(`rgba\(` + num + `,\s*` + num + `,\s*` + num + `,\s*` + num + `\)`)
	slashRE      = regexp.MustCompile(`\s*/\s*`)
	spacesRE     = regexp.MustCompile(` +`)
	unicodeEscRE = regexp.MustCompile(`\\[A-Fa-f0-9]{4}\s*`)
	blackRE      = regexp.MustCompile(`\bblack\b`)
	whiteRE      = regexp.MustCompile(`\bwhite\b`)
)

// valueTransforms run in order on every declaration value. Slash spacing is
// not here: it applies only to the font shorthand and is keyed on the
// property name in Value.
var valueTransforms = []Transform{
	shortenHexColors,
	spaceCommas,
	addLeadingZeros,
	trimPointZeroPx,
	singleQuote,
	spaceRGBA,
	shortenNamedColors,
}

// Value canonicalizes a declaration value. The property name rides along
// because the slash transform fires only for "font".
func Value(property, value string) string {
	for _, t := range valueTransforms {
		value = t(value)
	}
	if property == "font" {
		value = spaceSlashes(value)
	}
	value = collapseSpaces(value)
	return resolveUnicodeEscapes(value)
}

// Selector re-spaces child and adjacent sibling combinators to exactly one
// space on each side.
func Selector(sel string) string {
	return relationRE.ReplaceAllString(sel, " ${1} ")
}

// Selectors normalizes each selector of a group, sorts them, and joins with
// ", ". Sorting makes output independent of input selector order; it is the
// only reordering the formatter performs.
func Selectors(sels []string) string {
	out := make([]string, len(sels))
	for i, s := range sels {
		out[i] = Selector(s)
	}
	slices.Sort(out)
	return strings.Join(out, ", ")
}

// Media normalizes media query text: comma spacing only, no sorting.
func Media(media string) string {
	return spaceCommas(media)
}

// shortenHexColors collapses six-digit colors whose channels are doubled
// digits (#aabbcc) to the three-digit form (#abc). Anything else is left
// alone, including #aabbcd.
func shortenHexColors(v string) string {
	return hexColorRE.ReplaceAllStringFunc(v, func(m string) string {
		if m[1] == m[2] && m[3] == m[4] && m[5] == m[6] {
			return "#" + string(m[1]) + string(m[3]) + string(m[5])
		}
		return m
	})
}

func spaceCommas(v string) string {
	return commaRE.ReplaceAllString(v, ", ")
}

// addLeadingZeros turns .35 into 0.35 when the fraction is not preceded by
// a digit, so 1.35 stays untouched.
func addLeadingZeros(v string) string {
	return floatRE.ReplaceAllString(v, "${1}0${2}")
}

// trimPointZeroPx collapses an all-zero fraction on a px length (3.0px ->
// 3px). Deliberately narrower than general float cleanup.
func trimPointZeroPx(v string) string {
	return pointZeroRE.ReplaceAllString(v, "${1}px")
}

// singleQuote rewrites double-quoted strings to single-quoted form. Strings
// embedding a quote of either kind are skipped: rewriting them would need
// escaping logic, which this pass does not attempt.
func singleQuote(v string) string {
	return quoteRE.ReplaceAllString(v, "'${1}'")
}

func spaceRGBA(v string) string {
	return rgbaRE.ReplaceAllString(v, "rgba(${1}, ${2}, ${3}, ${4})")
}

func shortenNamedColors(v string) string {
	v = blackRE.ReplaceAllString(v, "#000")
	return whiteRE.ReplaceAllString(v, "#fff")
}

func spaceSlashes(v string) string {
	return slashRE.ReplaceAllString(v, " / ")
}

// collapseSpaces collapses runs of ASCII spaces. Tabs and newlines inside a
// value are the parser's problem, not ours.
func collapseSpaces(v string) string {
	return spacesRE.ReplaceAllString(v, " ")
}

// resolveUnicodeEscapes replaces each \XXXX escape (plus trailing
// whitespace) with the literal rune. Resolving an already-resolved value is
// a no-op.
func resolveUnicodeEscapes(v string) string {
	return unicodeEscRE.ReplaceAllStringFunc(v, func(m string) string {
		code, err := strconv.ParseUint(strings.TrimSpace(m[1:]), 16, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})
}
