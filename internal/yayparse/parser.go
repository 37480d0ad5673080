// Package yayparse implements phase 3 of the strict parsing pipeline: a
// recursive-descent parser over the outline lexer's token stream that
// builds a value.Value tree and enforces YAY's exact whitespace rules.
//
// Grounded on original_source/rust/libyay/src/parser.rs (the root
// dispatch) and spec.md §4.3 (every other production, which the
// original's filtered retrieval did not carry in full).
package yayparse

import (
	"strings"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
	"github.com/kriskowal/yay/internal/yaylex"
)

type parser struct {
	tokens   []yaylex.Token
	filename string
}

// ParseRoot parses a complete token stream into a Value.
func ParseRoot(tokens []yaylex.Token, filename string, hadComments bool) (value.Value, error) {
	p := &parser{tokens: tokens, filename: filename}
	i := p.skipBreaksAndStops(0)

	if i >= len(p.tokens) {
		if hadComments {
			return value.Value{}, yayerr.New(yayerr.KindNoValueFound, "No value found in document").
				WithFilename(filename)
		}
		return value.Null, nil
	}

	t := p.tokens[i]

	if t.Type == yaylex.Text && t.Indent > 0 {
		return value.Value{}, p.errAt(yayerr.KindUnexpectedIndent, "Unexpected indent", t.LineNum, 0)
	}

	if t.Type == yaylex.Text && strings.Contains(t.Text, ":") && t.Indent == 0 && !strings.HasPrefix(t.Text, "{") {
		v, next, err := p.parseObjectBlock(i, -1)
		if err != nil {
			return value.Value{}, err
		}
		return p.ensureAtEnd(v, next)
	}

	v, next, err := p.parseValueAt(i)
	if err != nil {
		return value.Value{}, err
	}
	return p.ensureAtEnd(v, next)
}

func (p *parser) ensureAtEnd(v value.Value, i int) (value.Value, error) {
	j := p.skipBreaksAndStops(i)
	if j < len(p.tokens) {
		t := p.tokens[j]
		return value.Value{}, p.errAt(yayerr.KindExtraContent, "Unexpected extra content", t.LineNum, t.Col)
	}
	return v, nil
}

func (p *parser) errAt(kind yayerr.Kind, msg string, line, col int) error {
	return yayerr.New(kind, msg).WithLocation(p.filename, line, col)
}

func (p *parser) skipBreaksAndStops(i int) int {
	for i < len(p.tokens) && (p.tokens[i].Type == yaylex.Stop || p.tokens[i].Type == yaylex.Break) {
		i++
	}
	return i
}

func (p *parser) skipBreaks(i int) int {
	for i < len(p.tokens) && p.tokens[i].Type == yaylex.Break {
		i++
	}
	return i
}

// parseValueAt parses a single value starting at token i, which must be
// either a Start (a block array) or a Text token (everything else).
func (p *parser) parseValueAt(i int) (value.Value, int, error) {
	if i >= len(p.tokens) {
		return value.Value{}, i, yayerr.New(yayerr.KindNoValueFound, "No value found in document")
	}
	t := p.tokens[i]
	switch t.Type {
	case yaylex.Start:
		return p.parseArrayBlock(i, t.Indent)
	case yaylex.Text:
		return p.parseTextValue(i)
	default:
		return value.Value{}, i, p.errAt(yayerr.KindNoValueFound, "No value found in document", t.LineNum, t.Col)
	}
}

// parseArrayBlock parses a run of sibling Start/...Stop item groups at
// the given indent into an Array.
func (p *parser) parseArrayBlock(i, indent int) (value.Value, int, error) {
	var items []value.Value
	for i < len(p.tokens) && p.tokens[i].Type == yaylex.Start && p.tokens[i].Indent == indent {
		i++ // consume Start
		item, next, err := p.parseArrayItem(i)
		if err != nil {
			return value.Value{}, i, err
		}
		items = append(items, item)
		// Consume the Stop that closes this item, plus any breaks
		// before it.
		next = p.skipBreaks(next)
		if next < len(p.tokens) && p.tokens[next].Type == yaylex.Stop {
			next++
		}
		i = p.skipBreaks(next)
	}
	return value.Array(items), i, nil
}

// parseArrayItem parses the content of a single list item: the Text
// token immediately following its Start, plus any deeper-indented
// continuation (nested object properties, block string/bytes body, or
// concatenated quoted strings).
func (p *parser) parseArrayItem(i int) (value.Value, int, error) {
	if i >= len(p.tokens) || p.tokens[i].Type != yaylex.Text {
		t := yaylex.Token{}
		if i < len(p.tokens) {
			t = p.tokens[i]
		}
		return value.Value{}, i, p.errAt(yayerr.KindExpectedValueAfterProp, "Expected value after property", t.LineNum, t.Col)
	}
	t := p.tokens[i]
	itemIndent := t.Indent

	// Nested inline list: content itself begins with "- ".
	if after, ok := strings.CutPrefix(t.Text, "- "); ok {
		sub := p.withText(t, after)
		v, _, err := p.scalarOrInlineFromText(sub)
		if err != nil {
			return value.Value{}, i, err
		}
		return value.Array([]value.Value{v}), i + 1, nil
	}

	// key:value property starting an object, possibly continuing at
	// deeper indent (aligned with the text after the "- " leader).
	if key, rest, ok := splitProperty(t.Text); ok {
		obj := map[string]value.Value{}
		next, err := p.parsePropertyInto(obj, key, rest, t, i, itemIndent)
		if err != nil {
			return value.Value{}, i, err
		}
		next, err = p.parseMoreProperties(obj, next, itemIndent+len("- "))
		if err != nil {
			return value.Value{}, i, err
		}
		return value.Object(obj), next, nil
	}

	v, next, err := p.scalarOrInlineFromText(t)
	if err != nil {
		return value.Value{}, i, err
	}

	// Concatenated quoted strings on deeper-indented sibling lines.
	if s, isStr := v.AsString(); isStr && isQuotedText(t.Text) {
		j := next
		var b strings.Builder
		b.WriteString(s)
		for j < len(p.tokens) && p.tokens[j].Type == yaylex.Text && p.tokens[j].Indent > itemIndent && isQuotedText(p.tokens[j].Text) {
			piece, _, err := p.parseQuoted(p.tokens[j])
			if err != nil {
				return value.Value{}, i, err
			}
			b.WriteString(piece)
			j++
		}
		if j != next {
			return value.String(b.String()), j, nil
		}
	}

	return v, next, nil
}

func (p *parser) withText(t yaylex.Token, text string) yaylex.Token {
	t.Text = text
	return t
}
