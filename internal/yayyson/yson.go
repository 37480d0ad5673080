// Package yayyson implements a single-pass recursive-descent parser
// for YSON, the typed-string JSON superset described in spec.md §4.6.
//
// Grounded on spec.md §4.6 (the original's filtered retrieval did not
// carry a YSON-specific source file). String escapes are JSON's,
// including the four-digit \uHHHH form; strict YAY's \u{...} escape is
// not accepted.
package yayyson

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

type parser struct {
	s   string
	pos int
}

// Parse parses a complete YSON document.
func Parse(source string) (value.Value, error) {
	p := &parser{s: strings.TrimSpace(source)}
	if p.s == "" {
		return value.Value{}, yayerr.New(yayerr.KindNoValueFound, "No value found in document")
	}
	v, err := p.value()
	if err != nil {
		return value.Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return value.Value{}, yayerr.New(yayerr.KindExtraContent, "Unexpected extra content")
	}
	return v, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) value() (value.Value, error) {
	p.skipSpace()
	switch {
	case p.peek() == '{':
		return p.object()
	case p.peek() == '[':
		return p.array()
	case p.peek() == '"':
		return p.stringValue()
	case strings.HasPrefix(p.s[p.pos:], "true"):
		p.pos += 4
		return value.Bool(true), nil
	case strings.HasPrefix(p.s[p.pos:], "false"):
		p.pos += 5
		return value.Bool(false), nil
	case strings.HasPrefix(p.s[p.pos:], "null"):
		p.pos += 4
		return value.Null, nil
	case p.peek() == '-' || isDigit(p.peek()):
		return p.number()
	default:
		return value.Value{}, yayerr.New(yayerr.KindUnexpectedChar, "Unexpected character")
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (p *parser) object() (value.Value, error) {
	p.pos++ // '{'
	obj := map[string]value.Value{}
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return value.Object(obj), nil
	}
	for {
		p.skipSpace()
		if p.peek() != '"' {
			return value.Value{}, yayerr.New(yayerr.KindInvalidKey, "Invalid key")
		}
		key, err := p.rawString()
		if err != nil {
			return value.Value{}, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			return value.Value{}, yayerr.New(yayerr.KindExpectedColon, "Expected colon after key")
		}
		p.pos++
		v, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		obj[key] = v
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if p.peek() == '}' {
			p.pos++
			return value.Object(obj), nil
		}
		return value.Value{}, yayerr.New(yayerr.KindUnmatchedBrace, "Unmatched brace")
	}
}

func (p *parser) array() (value.Value, error) {
	p.pos++ // '['
	var items []value.Value
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return value.Array(items), nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if p.peek() == ']' {
			p.pos++
			return value.Array(items), nil
		}
		return value.Value{}, yayerr.New(yayerr.KindUnmatchedBracket, "Unmatched bracket")
	}
}

// rawString parses a JSON-escaped string literal and returns its
// decoded text with no typed-prefix interpretation.
func (p *parser) rawString() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.pos >= len(p.s) {
			return "", yayerr.New(yayerr.KindUnterminatedString, "Unterminated string")
		}
		c := p.s[p.pos]
		if c == '"' {
			p.pos++
			_ = start
			return b.String(), nil
		}
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.s) {
				return "", yayerr.New(yayerr.KindUnterminatedString, "Unterminated string")
			}
			esc := p.s[p.pos]
			switch esc {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if p.pos+4 >= len(p.s) {
					return "", yayerr.New(yayerr.KindBadUnicodeEscape, "Truncated unicode escape")
				}
				hex := p.s[p.pos+1 : p.pos+5]
				n, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					return "", yayerr.New(yayerr.KindBadUnicodeEscape, "Bad unicode escape")
				}
				b.WriteRune(rune(n))
				p.pos += 4
			default:
				return "", yayerr.New(yayerr.KindBadEscapedChar, "Bad escaped character")
			}
			p.pos++
			continue
		}
		b.WriteByte(c)
		p.pos++
	}
}

func (p *parser) stringValue() (value.Value, error) {
	s, err := p.rawString()
	if err != nil {
		return value.Value{}, err
	}
	return decodeTypedString(s)
}

// decodeTypedString interprets YSON's typed-string prefixes: "#..."
// for Integer/NaN/Infinity, "*..." for Bytes, "!..." to escape a
// literal leading reserved character.
func decodeTypedString(s string) (value.Value, error) {
	if s == "" {
		return value.String(s), nil
	}
	switch s[0] {
	case '!':
		return value.String(s[1:]), nil
	case '#':
		switch s[1:] {
		case "NaN":
			return value.Float(nanFloat()), nil
		case "Infinity":
			return value.Float(posInfFloat()), nil
		case "-Infinity":
			return value.Float(negInfFloat()), nil
		default:
			n, ok := new(big.Int).SetString(s[1:], 10)
			if !ok {
				return value.Value{}, yayerr.New(yayerr.KindInvalidNumber, "Invalid typed integer")
			}
			return value.Integer(n), nil
		}
	case '*':
		by, err := decodeHex(s[1:])
		if err != nil {
			return value.Value{}, err
		}
		return value.Bytes(by), nil
	default:
		return value.String(s), nil
	}
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, yayerr.New(yayerr.KindOddHexDigits, "Odd number of hex digits")
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok1 := hexDigit(s[i])
		lo, ok2 := hexDigit(s[i+1])
		if !ok1 || !ok2 {
			return nil, yayerr.New(yayerr.KindInvalidHexDigit, "Invalid hex digit")
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func (p *parser) number() (value.Value, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	isFloat := false
	if p.peek() == '.' {
		isFloat = true
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		isFloat = true
		p.pos++
		if p.peek() == '+' || p.peek() == '-' {
			p.pos++
		}
		for isDigit(p.peek()) {
			p.pos++
		}
	}
	text := p.s[start:p.pos]
	if text == "" || text == "-" {
		return value.Value{}, yayerr.New(yayerr.KindInvalidNumber, "Invalid number")
	}
	_ = isFloat
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Value{}, yayerr.New(yayerr.KindInvalidNumber, "Invalid number")
	}
	return value.Float(f), nil
}
