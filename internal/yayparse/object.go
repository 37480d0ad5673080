package yayparse

import (
	"strings"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
	"github.com/kriskowal/yay/internal/yaylex"
)

// parseObjectBlock parses a run of sibling key:value properties at a
// single indent level into an Object. i must point at the first
// property's Text token; parentIndent is the indent of the enclosing
// construct (the property, or -1 for the root), used only to decide
// when the block ends on dedent.
func (p *parser) parseObjectBlock(i, parentIndent int) (value.Value, int, error) {
	obj := map[string]value.Value{}

	blockIndent := -1
	for {
		j := p.skipBreaks(i)
		if j >= len(p.tokens) {
			i = j
			break
		}
		t := p.tokens[j]
		if t.Type != yaylex.Text || t.Indent <= parentIndent {
			i = j
			break
		}
		if blockIndent == -1 {
			blockIndent = t.Indent
		} else if t.Indent != blockIndent {
			if t.Indent < blockIndent {
				i = j
				break
			}
			return value.Value{}, j, p.errAt(yayerr.KindUnexpectedIndent, "Unexpected indent", t.LineNum, 0)
		}

		key, rest, ok := splitProperty(t.Text)
		if !ok {
			return value.Value{}, j, p.errAt(yayerr.KindExpectedColon, "Expected colon after key", t.LineNum, t.Col)
		}
		next, err := p.parsePropertyInto(obj, key, rest, t, j, blockIndent)
		if err != nil {
			return value.Value{}, j, err
		}
		i = next
	}

	return value.Object(obj), i, nil
}

// parseMoreProperties continues collecting sibling properties after the
// first one has already been parsed by the caller (used for array-item
// objects, where the first property shares the list-item's Text token).
func (p *parser) parseMoreProperties(obj map[string]value.Value, i, blockIndent int) (int, error) {
	for {
		j := p.skipBreaks(i)
		if j >= len(p.tokens) {
			return j, nil
		}
		t := p.tokens[j]
		if t.Type != yaylex.Text || t.Indent != blockIndent {
			return j, nil
		}
		key, rest, ok := splitProperty(t.Text)
		if !ok {
			return j, nil
		}
		next, err := p.parsePropertyInto(obj, key, rest, t, j, blockIndent)
		if err != nil {
			return j, err
		}
		i = next
	}
}

// parsePropertyInto parses one key:value property (key and rest already
// split out of t.Text) and inserts it into obj, returning the index
// just past its value (and any deeper continuation it consumed).
func (p *parser) parsePropertyInto(obj map[string]value.Value, key, rest string, t yaylex.Token, ti, propIndent int) (int, error) {
	pk, err := p.parseKey(key, t)
	if err != nil {
		return 0, err
	}

	if rest == "" {
		v, next, err := p.parseNestedPropertyValue(t, ti, propIndent)
		if err != nil {
			return 0, err
		}
		obj[pk] = v // duplicate keys: last wins, per spec.md §4.3.
		return next, nil
	}

	sub := p.withText(t, rest)
	v, next, err := p.scalarOrInlineFromText(sub)
	if err != nil {
		return 0, err
	}

	// ">" alone on a property's inline value must stand alone; anything
	// else trailing it was already rejected by scalarOrInlineFromText.
	if rest == ">" {
		obj[pk] = v
		return next, nil
	}

	// Concatenated quoted strings continuing on deeper-indented lines.
	if s, isStr := v.AsString(); isStr && isQuotedText(rest) {
		j := next
		var b strings.Builder
		b.WriteString(s)
		for j < len(p.tokens) && p.tokens[j].Type == yaylex.Text && p.tokens[j].Indent > propIndent && isQuotedText(p.tokens[j].Text) {
			piece, _, err := p.parseQuoted(p.tokens[j])
			if err != nil {
				return 0, err
			}
			b.WriteString(piece)
			j++
		}
		if j != next {
			obj[pk] = value.String(b.String())
			return j, nil
		}
	}

	obj[pk] = v
	return next, nil
}

// parseNestedPropertyValue parses a property whose inline value was
// empty: it must have nested content at a deeper indent (a named
// array, block string, block bytes, nested object, or concatenated
// strings), per spec.md §4.3.
func (p *parser) parseNestedPropertyValue(t yaylex.Token, ti, propIndent int) (value.Value, int, error) {
	j := p.skipBreaks(ti + 1)
	if j >= len(p.tokens) {
		return value.Value{}, 0, p.errAt(yayerr.KindExpectedValueAfterProp, "Expected value after property", t.LineNum, t.Col)
	}
	nt := p.tokens[j]
	if nt.Type == yaylex.Start && nt.Indent > propIndent {
		return p.parseArrayBlock(j, nt.Indent)
	}
	if nt.Type == yaylex.Text && nt.Indent > propIndent {
		if isQuotedText(nt.Text) {
			var b strings.Builder
			k := j
			for k < len(p.tokens) && p.tokens[k].Type == yaylex.Text && p.tokens[k].Indent == nt.Indent && isQuotedText(p.tokens[k].Text) {
				piece, _, err := p.parseQuoted(p.tokens[k])
				if err != nil {
					return value.Value{}, 0, err
				}
				b.WriteString(piece)
				k++
			}
			return value.String(b.String()), k, nil
		}
		if key, _, ok := splitProperty(nt.Text); ok && key != "" {
			return p.parseObjectBlock(j, propIndent)
		}
		return value.Value{}, 0, p.errAt(yayerr.KindUnexpectedIndent, "Unexpected indent", nt.LineNum, 0)
	}
	return value.Value{}, 0, p.errAt(yayerr.KindExpectedValueAfterProp, "Expected value after property", t.LineNum, t.Col)
}

// splitProperty finds the first ':' outside quotes and reports whether
// t looks like a key:value property. Returns the key text exactly as
// written before the colon (not trimmed) and the remainder with one
// leading space stripped.
func splitProperty(text string) (key, rest string, ok bool) {
	idx := findUnquotedColon(text)
	if idx < 0 {
		return "", "", false
	}
	rest = text[idx+1:]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return text[:idx], rest, true
}

func findUnquotedColon(s string) int {
	inSingle, inDouble := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == ':' && !inSingle && !inDouble:
			return i
		}
	}
	return -1
}

// parseKey parses a bare, single-, or double-quoted key.
func (p *parser) parseKey(key string, t yaylex.Token) (string, error) {
	if key == "" {
		return "", p.errAt(yayerr.KindInvalidKey, "Invalid key", t.LineNum, t.Col)
	}
	switch key[0] {
	case '\'':
		if len(key) < 2 || key[len(key)-1] != '\'' {
			return "", p.errAt(yayerr.KindInvalidKey, "Invalid key", t.LineNum, t.Col)
		}
		return unescapeSingle(key[1 : len(key)-1]), nil
	case '"':
		if len(key) < 2 || key[len(key)-1] != '"' {
			return "", p.errAt(yayerr.KindInvalidKey, "Invalid key", t.LineNum, t.Col)
		}
		s, err := p.unescapeDouble(key[1:len(key)-1], t)
		if err != nil {
			return "", err
		}
		return s, nil
	default:
		for _, c := range key {
			if !isBareKeyChar(c) {
				return "", p.errAt(yayerr.KindInvalidKeyChar, "Invalid key character", t.LineNum, t.Col)
			}
		}
		return key, nil
	}
}

func isBareKeyChar(c rune) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
