// Package parse turns raw CSS source into the generic node tree consumed
// by the ir package.
//
// The Parser interface decouples the normalization and rendering core from
// any particular CSS grammar implementation: the default is the native
// in-process parser below, and the nodeparse package provides a
// subprocess-based collaborator with the same contract.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	tdparse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/css-format/cssfmt/ir"
)

// Parser produces the top-level generic nodes of a stylesheet, or fails
// with an ErrParse-wrapped error on invalid CSS.
type Parser interface {
	Parse(src []byte) ([]ir.Raw, error)
}

// CSS is the native in-process parser, driving tdewolff's CSS grammar
// events into generic nodes.
type CSS struct {
	log *zap.Logger
}

// New creates a native parser. A nil logger disables logging.
func New(log *zap.Logger) *CSS {
	if log == nil {
		log = zap.NewNop()
	}
	return &CSS{log: log.Named("css-parser")}
}

// Parse parses a whole stylesheet. All-or-nothing: any grammar error,
// including an unclosed block at end of input, fails the call.
func (c *CSS) Parse(src []byte) ([]ir.Raw, error) {
	c.log.Debug("parsing stylesheet", zap.Int("bytes", len(src)))
	if err := checkBraces(src); err != nil {
		return nil, err
	}
	p := css.NewParser(tdparse.NewInput(bytes.NewReader(src)), false)
	return c.rules(p, true)
}

// checkBraces verifies brace balance with a plain token scan before the
// grammar pass. The grammar parser silently closes open blocks at end of
// input, so without this an unterminated block would format successfully
// instead of failing.
func checkBraces(src []byte) error {
	l := css.NewLexer(tdparse.NewInput(bytes.NewReader(src)))
	depth := 0
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: %v", ErrParse, err)
			}
			if depth != 0 {
				return fmt.Errorf("%w: unexpected end of input inside block", ErrParse)
			}
			return nil
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			if depth == 0 {
				return fmt.Errorf("%w: unexpected %q", ErrParse, string(data))
			}
			depth--
		}
	}
}

// rules parses a rule list: the whole stylesheet when top is set, the body
// of an @media/@supports/@document block otherwise.
func (c *CSS) rules(p *css.Parser, top bool) ([]ir.Raw, error) {
	rules := []ir.Raw{}
	var selectors []string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) {
				if top {
					return rules, nil
				}
				return nil, fmt.Errorf("%w: unexpected end of input inside block", ErrParse)
			}
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		case css.EndAtRuleGrammar:
			if top {
				return nil, fmt.Errorf("%w: unexpected %q", ErrParse, string(data))
			}
			return rules, nil
		case css.CommentGrammar:
			rules = append(rules, ir.Raw{"type": "comment", "comment": commentText(data)})
		case css.AtRuleGrammar:
			rules = append(rules, atRule(string(data), p.Values()))
		case css.BeginAtRuleGrammar:
			raw, err := c.beginAtRule(p, string(data), p.Values())
			if err != nil {
				return nil, err
			}
			rules = append(rules, raw)
		case css.QualifiedRuleGrammar:
			selectors = append(selectors, splitGroup(text(data, p.Values()))...)
		case css.BeginRulesetGrammar:
			selectors = append(selectors, splitGroup(text(data, p.Values()))...)
			decls, err := c.declarations(p)
			if err != nil {
				return nil, err
			}
			rules = append(rules, ir.Raw{
				"type":         "rule",
				"selectors":    selectors,
				"declarations": decls,
			})
			selectors = nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q in rule list", ErrParse, string(data))
		}
	}
}

// declarations parses a declaration block up to its closing brace. The node
// model admits only declarations inside a block, so comments here are
// dropped rather than surfaced.
func (c *CSS) declarations(p *css.Parser) ([]ir.Raw, error) {
	decls := []ir.Raw{}
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: unexpected end of input in declaration block", ErrParse)
			}
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		case css.EndRulesetGrammar:
			return decls, nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decls = append(decls, ir.Raw{
				"type":     "declaration",
				"property": string(data),
				"value":    text(nil, p.Values()),
			})
		case css.CommentGrammar:
			c.log.Debug("dropping comment in declaration block", zap.ByteString("comment", data))
		case css.TokenGrammar:
			// stray semicolons
		default:
			return nil, fmt.Errorf("%w: unexpected %q in declaration block", ErrParse, string(data))
		}
	}
}

func (c *CSS) beginAtRule(p *css.Parser, name string, prelude []css.Token) (ir.Raw, error) {
	preludeText := text(nil, prelude)
	kind := strings.ToLower(strings.TrimPrefix(name, "@"))
	switch {
	case kind == "media":
		rules, err := c.rules(p, false)
		if err != nil {
			return nil, err
		}
		return ir.Raw{"type": "media", "media": condition(preludeText), "rules": rules}, nil
	case kind == "supports":
		rules, err := c.rules(p, false)
		if err != nil {
			return nil, err
		}
		return ir.Raw{"type": "supports", "supports": condition(preludeText), "rules": rules}, nil
	case strings.HasSuffix(kind, "document"):
		rules, err := c.rules(p, false)
		if err != nil {
			return nil, err
		}
		return ir.Raw{
			"type":     "document",
			"vendor":   strings.TrimSuffix(kind, "document"),
			"document": preludeText,
			"rules":    rules,
		}, nil
	case strings.HasSuffix(kind, "keyframes"):
		frames, err := c.keyframes(p)
		if err != nil {
			return nil, err
		}
		return ir.Raw{
			"type":      "keyframes",
			"vendor":    strings.TrimSuffix(kind, "keyframes"),
			"name":      preludeText,
			"keyframes": frames,
		}, nil
	default:
		// consume the block; the node model rejects the kind itself
		c.log.Debug("unrecognized at-rule", zap.String("rule", name))
		if err := c.skipBlock(p); err != nil {
			return nil, err
		}
		return ir.Raw{"type": kind}, nil
	}
}

// keyframes parses the body of an @keyframes block, whose rulesets are
// frames rather than selector rules.
func (c *CSS) keyframes(p *css.Parser) ([]ir.Raw, error) {
	frames := []ir.Raw{}
	var values []string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: unexpected end of input in keyframes block", ErrParse)
			}
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		case css.EndAtRuleGrammar:
			return frames, nil
		case css.CommentGrammar:
			c.log.Debug("dropping comment in keyframes block", zap.ByteString("comment", data))
		case css.QualifiedRuleGrammar:
			values = append(values, splitGroup(text(data, p.Values()))...)
		case css.BeginRulesetGrammar:
			values = append(values, splitGroup(text(data, p.Values()))...)
			decls, err := c.declarations(p)
			if err != nil {
				return nil, err
			}
			frames = append(frames, ir.Raw{
				"type":         "keyframe",
				"values":       values,
				"declarations": decls,
			})
			values = nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q in keyframes block", ErrParse, string(data))
		}
	}
}

func (c *CSS) skipBlock(p *css.Parser) error {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: unexpected end of input inside block", ErrParse)
			}
			return fmt.Errorf("%w: %v", ErrParse, err)
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
	return nil
}

// atRule maps a blockless at-rule. Unrecognized kinds become bare nodes the
// model will reject as unsupported.
func atRule(name string, prelude []css.Token) ir.Raw {
	preludeText := text(nil, prelude)
	kind := strings.ToLower(strings.TrimPrefix(name, "@"))
	switch kind {
	case "charset":
		return ir.Raw{"type": "charset", "charset": preludeText}
	case "import":
		return ir.Raw{"type": "import", "import": preludeText}
	default:
		return ir.Raw{"type": kind}
	}
}

// text reconstructs source text from a grammar event. Whitespace tokens
// collapse to a single space; everything else, string contents included,
// stays verbatim so the normalizer sees the original value text.
func text(data []byte, tokens []css.Token) string {
	var b strings.Builder
	b.Write(data)
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

var colonRE = regexp.MustCompile(`:\s*`)

// condition re-spaces colons in a media or supports prelude. The grammar
// parser drops the whitespace tokens inside parenthesized conditions, so
// (display: flex) arrives as (display:flex).
func condition(s string) string {
	return colonRE.ReplaceAllString(s, ": ")
}

// splitGroup splits a selector or keyframe prelude on commas. The grammar
// already splits grouped preludes at commas; this catches any leftovers.
func splitGroup(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func commentText(data []byte) string {
	s := strings.TrimPrefix(string(data), "/*")
	return strings.TrimSuffix(s, "*/")
}
