package yaycst

import (
	"strings"

	"github.com/kriskowal/yay/internal/yayerr"
)

// looseCursor walks one line's worth of inline YAY syntax (arrays,
// objects, and the scalars nested inside them), mirroring
// internal/yayparse/inline.go's inlineCursor but building CstValue/Item
// trees instead of value.Value, so the formatter can either print the
// container inline or, once Transform marks it ForceBlock, as block
// siblings.
type looseCursor struct {
	s   string
	pos int
}

func (c *looseCursor) peek() byte {
	if c.pos >= len(c.s) {
		return 0
	}
	return c.s[c.pos]
}

// parseInlineContainer parses text beginning with "[" or "{" into a
// CstValue, requiring the whole of text to be consumed.
func parseInlineContainer(text string) (*CstValue, error) {
	c := &looseCursor{s: text}
	v, err := c.value()
	if err != nil {
		return nil, err
	}
	if c.pos != len(c.s) {
		return nil, yayerr.New(yayerr.KindExtraContent, "Unexpected extra content")
	}
	return v, nil
}

func (c *looseCursor) value() (*CstValue, error) {
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

func (c *looseCursor) array() (*CstValue, error) {
	c.pos++ // '['
	v := &CstValue{IsArray: true}
	if c.peek() == ']' {
		c.pos++
		return v, nil
	}
	for {
		el, err := c.value()
		if err != nil {
			return nil, err
		}
		v.Items = append(v.Items, &Item{Kind: ItemArrayItem, ArrVal: el})
		if c.peek() == ',' {
			c.pos++
			if c.peek() == ']' {
				// trailing comma of a sub-array may precede ']' w/o space
				c.pos++
				return v, nil
			}
			if c.peek() != ' ' {
				return nil, yayerr.New(yayerr.KindExpectedSpaceAfter, "Expected space after \",\"")
			}
			c.pos++
			continue
		}
		if c.peek() == ']' {
			c.pos++
			return v, nil
		}
		return nil, yayerr.New(yayerr.KindUnmatchedBracket, "Unmatched bracket")
	}
}

func (c *looseCursor) object() (*CstValue, error) {
	c.pos++ // '{'
	v := &CstValue{IsObject: true}
	if c.peek() == '}' {
		c.pos++
		return v, nil
	}
	for {
		key, err := c.key()
		if err != nil {
			return nil, err
		}
		if c.peek() != ':' {
			return nil, yayerr.New(yayerr.KindExpectedColon, "Expected colon after key")
		}
		c.pos++
		if c.peek() != ' ' {
			return nil, yayerr.New(yayerr.KindExpectedSpaceAfter, "Expected space after \":\"")
		}
		c.pos++
		el, err := c.value()
		if err != nil {
			return nil, err
		}
		v.Items = append(v.Items, &Item{Kind: ItemProperty, Key: key, PropVal: el})
		if c.peek() == ',' {
			c.pos++
			if c.peek() != ' ' {
				return nil, yayerr.New(yayerr.KindExpectedSpaceAfter, "Expected space after \",\"")
			}
			c.pos++
			continue
		}
		if c.peek() == '}' {
			c.pos++
			return v, nil
		}
		return nil, yayerr.New(yayerr.KindUnmatchedBrace, "Unmatched brace")
	}
}

func (c *looseCursor) key() (Key, error) {
	switch c.peek() {
	case '\'', '"':
		v, err := c.quoted()
		if err != nil {
			return Key{}, err
		}
		return Key{Text: v.Text, Form: v.Form}, nil
	default:
		start := c.pos
		for c.pos < len(c.s) && isLooseKeyChar(c.s[c.pos]) {
			c.pos++
		}
		if c.pos == start {
			return Key{}, yayerr.New(yayerr.KindInvalidKey, "Invalid key")
		}
		return Key{Text: c.s[start:c.pos], Form: FormRaw}, nil
	}
}

func isLooseKeyChar(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (c *looseCursor) quoted() (*CstValue, error) {
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
		return nil, yayerr.New(yayerr.KindUnterminatedString, "Unterminated string")
	}
	text := c.s[start+1 : c.pos]
	c.pos++
	form := FormDouble
	if q == '\'' {
		form = FormSingle
	}
	return &CstValue{Form: form, Text: text}, nil
}

func (c *looseCursor) bytes() (*CstValue, error) {
	start := c.pos
	for c.pos < len(c.s) && c.s[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.s) {
		return nil, yayerr.New(yayerr.KindUnmatchedAngle, "Unmatched angle bracket")
	}
	hex := strings.ReplaceAll(c.s[start+1:c.pos], " ", "")
	c.pos++
	return &CstValue{Form: FormBytesRaw, IsInlineBytes: true, Text: hex}, nil
}

func (c *looseCursor) scalar() (*CstValue, error) {
	start := c.pos
	for c.pos < len(c.s) && strings.IndexByte(",]} ", c.s[c.pos]) < 0 {
		c.pos++
	}
	text := c.s[start:c.pos]
	if text == "" {
		return nil, yayerr.New(yayerr.KindUnexpectedChar, "Unexpected character")
	}
	return &CstValue{Form: FormRaw, Text: text}, nil
}
