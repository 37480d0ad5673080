package yayparse

import (
	"strings"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

// inlineCursor parses one line of inline YAY syntax (arrays, objects,
// and the scalars nested inside them) directly over a string, since
// everything here lives on a single source line.
type inlineCursor struct {
	p       *parser
	s       string
	pos     int
	line    int
	baseCol int
}

func (c *inlineCursor) col() int { return c.baseCol + c.pos }

func (c *inlineCursor) errAt(kind yayerr.Kind, msg string) error {
	return c.p.errAt(kind, msg, c.line, c.col())
}

func (c *inlineCursor) peek() byte {
	if c.pos >= len(c.s) {
		return 0
	}
	return c.s[c.pos]
}

// parseInlineArray parses text beginning with "[" at the given source
// position, returning the Array value and the outer token index to
// resume at.
func (p *parser) parseInlineArray(text string, line, col, next int) (value.Value, int, error) {
	c := &inlineCursor{p: p, s: text, pos: 0, line: line, baseCol: col}
	v, err := c.array()
	if err != nil {
		return value.Value{}, next, err
	}
	if c.pos != len(c.s) {
		return value.Value{}, next, c.errAt(yayerr.KindExtraContent, "Unexpected extra content")
	}
	return v, next, nil
}

func (p *parser) parseInlineObject(text string, line, col, next int) (value.Value, int, error) {
	c := &inlineCursor{p: p, s: text, pos: 0, line: line, baseCol: col}
	v, err := c.object()
	if err != nil {
		return value.Value{}, next, err
	}
	if c.pos != len(c.s) {
		return value.Value{}, next, c.errAt(yayerr.KindExtraContent, "Unexpected extra content")
	}
	return v, next, nil
}

func (c *inlineCursor) array() (value.Value, error) {
	if c.peek() != '[' {
		return value.Value{}, c.errAt(yayerr.KindUnmatchedBracket, "Unmatched bracket")
	}
	c.pos++
	var items []value.Value
	if c.peek() == ']' {
		c.pos++
		return value.Array(items), nil
	}
	for {
		v, err := c.value()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
		if c.peek() == ',' {
			c.pos++
			if c.peek() == ']' {
				// trailing comma of a sub-array may precede ']' w/o space
				c.pos++
				return value.Array(items), nil
			}
			if c.peek() != ' ' {
				return value.Value{}, c.errAt(yayerr.KindExpectedSpaceAfter, "Expected space after \",\"")
			}
			c.pos++
			continue
		}
		if c.peek() == ']' {
			c.pos++
			return value.Array(items), nil
		}
		return value.Value{}, c.errAt(yayerr.KindUnmatchedBracket, "Unmatched bracket")
	}
}

func (c *inlineCursor) object() (value.Value, error) {
	if c.peek() != '{' {
		return value.Value{}, c.errAt(yayerr.KindUnmatchedBrace, "Unmatched brace")
	}
	c.pos++
	obj := map[string]value.Value{}
	if c.peek() == '}' {
		c.pos++
		return value.Object(obj), nil
	}
	for {
		key, err := c.key()
		if err != nil {
			return value.Value{}, err
		}
		if c.peek() != ':' {
			return value.Value{}, c.errAt(yayerr.KindExpectedColon, "Expected colon after key")
		}
		c.pos++
		if c.peek() != ' ' {
			return value.Value{}, c.errAt(yayerr.KindExpectedSpaceAfter, "Expected space after \":\"")
		}
		c.pos++
		v, err := c.value()
		if err != nil {
			return value.Value{}, err
		}
		obj[key] = v
		if c.peek() == ',' {
			c.pos++
			if c.peek() != ' ' {
				return value.Value{}, c.errAt(yayerr.KindExpectedSpaceAfter, "Expected space after \",\"")
			}
			c.pos++
			continue
		}
		if c.peek() == '}' {
			c.pos++
			return value.Object(obj), nil
		}
		return value.Value{}, c.errAt(yayerr.KindUnmatchedBrace, "Unmatched brace")
	}
}

func (c *inlineCursor) key() (string, error) {
	start := c.pos
	switch c.peek() {
	case '\'', '"':
		q := c.peek()
		c.pos++
		for c.pos < len(c.s) && c.s[c.pos] != q {
			if c.s[c.pos] == '\\' {
				c.pos++
			}
			c.pos++
		}
		if c.pos >= len(c.s) {
			return "", c.errAt(yayerr.KindUnterminatedString, "Unterminated string")
		}
		raw := c.s[start : c.pos+1]
		c.pos++
		v, _, err := c.p.parseQuotedAt(-1, raw, c.line, c.baseCol+start)
		if err != nil {
			return "", err
		}
		s, _ := v.AsString()
		return s, nil
	default:
		for c.pos < len(c.s) && isBareKeyChar(rune(c.s[c.pos])) {
			c.pos++
		}
		if c.pos == start {
			return "", c.errAt(yayerr.KindInvalidKey, "Invalid key")
		}
		return c.s[start:c.pos], nil
	}
}

func (c *inlineCursor) value() (value.Value, error) {
	switch c.peek() {
	case '[':
		return c.array()
	case '{':
		return c.object()
	case '\'', '"':
		return c.quoted()
	case '<':
		return c.bytes()
	default:
		return c.scalar()
	}
}

func (c *inlineCursor) quoted() (value.Value, error) {
	start := c.pos
	q := c.s[c.pos]
	c.pos++
	for c.pos < len(c.s) && c.s[c.pos] != q {
		if c.s[c.pos] == '\\' {
			c.pos++
		}
		c.pos++
	}
	if c.pos >= len(c.s) {
		return value.Value{}, c.errAt(yayerr.KindUnterminatedString, "Unterminated string")
	}
	raw := c.s[start : c.pos+1]
	c.pos++
	v, _, err := c.p.parseQuotedAt(-1, raw, c.line, c.baseCol+start)
	return v, err
}

func (c *inlineCursor) bytes() (value.Value, error) {
	start := c.pos
	for c.pos < len(c.s) && c.s[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.s) {
		return value.Value{}, c.errAt(yayerr.KindUnmatchedAngle, "Unmatched angle bracket")
	}
	raw := c.s[start : c.pos+1]
	c.pos++
	return c.p.parseInlineBytes(raw, c.line, c.baseCol+start)
}

func (c *inlineCursor) scalar() (value.Value, error) {
	start := c.pos
	for c.pos < len(c.s) && strings.IndexByte(",]} ", c.s[c.pos]) < 0 {
		c.pos++
	}
	text := c.s[start:c.pos]
	if text == "" {
		return value.Value{}, c.errAt(yayerr.KindUnexpectedChar, unexpectedCharMsg(string(c.peek())))
	}
	v, _, err := c.p.parseScalarAt(-1, text, c.baseCol+start)
	return v, err
}
