package yayparse

import (
	"encoding/hex"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
	"github.com/kriskowal/yay/internal/yaylex"
)

var (
	intRE       = regexp.MustCompile(`^-?[0-9]+$`)
	floatRE     = regexp.MustCompile(`^-?[0-9]*\.[0-9]*(e[+-]?[0-9]+)?$`)
	expOnlyRE   = regexp.MustCompile(`^-?[0-9]+e[+-]?[0-9]+$`)
	numShapeRE  = regexp.MustCompile(`^-?[0-9. ]*(?:[eE][+-]?[0-9]+)?$`)
	numLeadChar = "-0123456789."
)

// parseTextValue dispatches the top-level Text token at ti: a property
// was already ruled out by the caller (root/object/array-item code
// paths check splitProperty before falling here).
func (p *parser) parseTextValue(ti int) (value.Value, int, error) {
	t := p.tokens[ti]
	return p.parseScalarAt(ti, t.Text, t.Indent)
}

// scalarOrInlineFromText is used by callers (array items, property
// inline values) that have a token whose Text has already been sliced
// to the relevant suffix. It looks the token's index back up by line
// number, so a block string or block bytes value can still consume the
// deeper-indented continuation lines that follow it.
func (p *parser) scalarOrInlineFromText(t yaylex.Token) (value.Value, int, error) {
	// Find t's real index so block continuations (block string/bytes)
	// can see deeper-indented lines that follow it.
	for idx, tok := range p.tokens {
		if tok.LineNum == t.LineNum && tok.Type == yaylex.Text {
			return p.parseScalarAt(idx, t.Text, t.Indent)
		}
	}
	return p.parseScalarAt(-1, t.Text, t.Indent)
}

func (p *parser) parseScalarAt(ti int, text string, indent int) (value.Value, int, error) {
	line := 0
	col := indent
	if ti >= 0 && ti < len(p.tokens) {
		line = p.tokens[ti].LineNum
	}
	next := ti + 1

	switch text {
	case "null":
		return value.Null, next, nil
	case "true":
		return value.Bool(true), next, nil
	case "false":
		return value.Bool(false), next, nil
	case "nan":
		return value.Float(math.NaN()), next, nil
	case "infinity":
		return value.Float(math.Inf(1)), next, nil
	case "-infinity":
		return value.Float(math.Inf(-1)), next, nil
	}

	if len(text) > 0 && strings.ContainsRune(numLeadChar, rune(text[0])) && looksNumeric(text) {
		v, err := p.parseNumber(text, line, col)
		if err != nil {
			return value.Value{}, ti, err
		}
		return v, next, nil
	}

	if text == "`" || strings.HasPrefix(text, "` ") {
		return p.parseBlockString(ti, text, indent)
	}

	if strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "'") {
		s, n, err := p.parseQuotedAt(ti, text, line, col)
		return s, n, err
	}

	if strings.HasPrefix(text, "[") {
		return p.parseInlineArray(text, line, col, next)
	}

	if strings.HasPrefix(text, "{") {
		return p.parseInlineObject(text, line, col, next)
	}

	if strings.HasPrefix(text, "<") {
		b, err := p.parseInlineBytes(text, line, col)
		if err != nil {
			return value.Value{}, ti, err
		}
		return b, next, nil
	}

	if text == ">" {
		return p.parseBlockBytes(ti, indent)
	}

	return value.Value{}, ti, p.errAt(yayerr.KindUnexpectedChar, unexpectedCharMsg(text), line, col)
}

func unexpectedCharMsg(text string) string {
	if text == "" {
		return "Unexpected character"
	}
	return "Unexpected character \"" + string(text[0]) + "\""
}

func looksNumeric(s string) bool {
	return intRE.MatchString(s) || floatRE.MatchString(s) || expOnlyRE.MatchString(s) || numShapeRE.MatchString(s)
}

// parseNumber implements spec.md §4.3's numeric grammar: integers allow
// ASCII-space digit grouping; floats may have a fractional part and/or
// a lowercase-e exponent; a space anywhere except between two digits,
// or an uppercase exponent letter, are distinct errors.
func (p *parser) parseNumber(raw string, line, col int) (value.Value, error) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' {
			prevDigit := i > 0 && raw[i-1] >= '0' && raw[i-1] <= '9'
			nextDigit := i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '9'
			if !prevDigit || !nextDigit {
				return value.Value{}, p.errAt(yayerr.KindUnexpectedSpaceInNumber, "Unexpected space in number", line, col)
			}
		}
		if raw[i] == 'E' {
			return value.Value{}, p.errAt(yayerr.KindUppercaseExponent, "Uppercase exponent (use lowercase 'e')", line, col)
		}
	}

	clean := strings.ReplaceAll(raw, " ", "")

	if intRE.MatchString(clean) {
		n := new(big.Int)
		if _, ok := n.SetString(clean, 10); !ok {
			return value.Value{}, p.errAt(yayerr.KindInvalidNumber, "Invalid number", line, col)
		}
		return value.Integer(n), nil
	}

	if floatRE.MatchString(clean) || expOnlyRE.MatchString(clean) {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return value.Value{}, p.errAt(yayerr.KindInvalidNumber, "Invalid number", line, col)
		}
		return value.Float(f), nil
	}

	return value.Value{}, p.errAt(yayerr.KindInvalidNumber, "Invalid number", line, col)
}

// --- strings ---

func isQuotedText(text string) bool {
	return strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "'")
}

// parseQuoted parses a complete quoted-string token's text, returning
// the decoded string. Its int result is always 0; the concatenation
// loops that call it advance past the token themselves.
func (p *parser) parseQuoted(t yaylex.Token) (string, int, error) {
	v, _, err := p.parseQuotedAt(-1, t.Text, t.LineNum, t.Indent)
	if err != nil {
		return "", 0, err
	}
	s, _ := v.AsString()
	return s, 0, nil
}

func (p *parser) parseQuotedAt(ti int, text string, line, col int) (value.Value, int, error) {
	if len(text) < 2 || text[len(text)-1] != text[0] {
		return value.Value{}, ti, p.errAt(yayerr.KindUnterminatedString, "Unterminated string", line, col)
	}
	body := text[1 : len(text)-1]
	if text[0] == '\'' {
		return value.String(unescapeSingle(body)), ti + 1, nil
	}
	s, err := p.unescapeDoubleAt(body, line, col)
	if err != nil {
		return value.Value{}, ti, err
	}
	return value.String(s), ti + 1, nil
}

func (p *parser) unescapeDouble(body string, t yaylex.Token) (string, error) {
	s, err := p.unescapeDoubleAt(body, t.LineNum, t.Indent)
	return s, err
}

// unescapeSingle: single-quoted strings are literal except \\ and \'.
func unescapeSingle(body string) string {
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) && (body[i+1] == '\\' || body[i+1] == '\'') {
			b.WriteByte(body[i+1])
			i++
			continue
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

// unescapeDoubleAt handles JSON escapes plus \u{HHHHHH}; legacy \uHHHH
// is rejected.
func (p *parser) unescapeDoubleAt(body string, line, col int) (string, error) {
	var b strings.Builder
	r := []rune(body)
	for i := 0; i < len(r); i++ {
		c := r[i]
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		if i+1 >= len(r) {
			return "", p.errAt(yayerr.KindBadEscapedChar, "Bad escaped character", line, col)
		}
		i++
		switch r[i] {
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
			if i+1 < len(r) && r[i+1] == '{' {
				j := i + 2
				start := j
				for j < len(r) && r[j] != '}' {
					j++
				}
				if j >= len(r) || j-start < 1 || j-start > 6 {
					return "", p.errAt(yayerr.KindBadUnicodeEscape, "Bad Unicode escape", line, col)
				}
				hexDigits := string(r[start:j])
				n, err := strconv.ParseUint(hexDigits, 16, 32)
				if err != nil {
					return "", p.errAt(yayerr.KindBadUnicodeEscape, "Bad Unicode escape", line, col)
				}
				if n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
					return "", p.errAt(yayerr.KindUnicodeOutOfRange, "Unicode code point out of range", line, col)
				}
				b.WriteRune(rune(n))
				i = j
			} else {
				// Legacy \uHHHH is rejected.
				return "", p.errAt(yayerr.KindBadEscapedChar, "Bad escaped character", line, col)
			}
		default:
			return "", p.errAt(yayerr.KindBadEscapedChar, "Bad escaped character", line, col)
		}
	}
	if !utf8.ValidString(b.String()) {
		return "", p.errAt(yayerr.KindBadCharInString, "Bad character in string", line, col)
	}
	return b.String(), nil
}

// --- bytes ---

func (p *parser) parseInlineBytes(text string, line, col int) (value.Value, error) {
	if !strings.HasSuffix(text, ">") {
		return value.Value{}, p.errAt(yayerr.KindUnmatchedAngle, "Unmatched angle bracket", line, col)
	}
	body := strings.ReplaceAll(text[1:len(text)-1], " ", "")
	for _, c := range body {
		if c >= 'A' && c <= 'F' {
			return value.Value{}, p.errAt(yayerr.KindUppercaseHex, "Uppercase hex digit (use lowercase)", line, col)
		}
		if !isLowerHex(c) {
			return value.Value{}, p.errAt(yayerr.KindInvalidHexDigit, "Invalid hex digit", line, col)
		}
	}
	if len(body)%2 != 0 {
		return value.Value{}, p.errAt(yayerr.KindOddHexDigits, "Odd number of hex digits in byte literal", line, col)
	}
	b, err := hex.DecodeString(body)
	if err != nil {
		return value.Value{}, p.errAt(yayerr.KindInvalidHexDigit, "Invalid hex digit", line, col)
	}
	return value.Bytes(b), nil
}

func isLowerHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// parseBlockBytes parses a ">" block-bytes leader at ti: continuation
// lines at deeper indent supply hex; "#" starts a stripped comment.
func (p *parser) parseBlockBytes(ti, indent int) (value.Value, int, error) {
	line := 0
	if ti >= 0 && ti < len(p.tokens) {
		line = p.tokens[ti].LineNum
	}
	j := p.skipBreaks(ti + 1)
	var hexBuf strings.Builder
	for j < len(p.tokens) && p.tokens[j].Type == yaylex.Text && p.tokens[j].Indent > indent {
		content := p.tokens[j].Text
		if idx := strings.IndexByte(content, '#'); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimRight(content, " ")
		for _, c := range content {
			if c == ' ' {
				continue
			}
			if c >= 'A' && c <= 'F' {
				return value.Value{}, ti, p.errAt(yayerr.KindUppercaseHex, "Uppercase hex digit (use lowercase)", p.tokens[j].LineNum, p.tokens[j].Indent)
			}
			if !isLowerHex(c) {
				return value.Value{}, ti, p.errAt(yayerr.KindExpectedHexInBlock, "Expected hex or comment in hex block", p.tokens[j].LineNum, p.tokens[j].Indent)
			}
			hexBuf.WriteRune(c)
		}
		j++
	}
	hs := hexBuf.String()
	if len(hs)%2 != 0 {
		return value.Value{}, ti, p.errAt(yayerr.KindOddHexDigits, "Odd number of hex digits in byte literal", line, indent)
	}
	b, err := hex.DecodeString(hs)
	if err != nil {
		return value.Value{}, ti, p.errAt(yayerr.KindInvalidHexDigit, "Invalid hex digit", line, indent)
	}
	return value.Bytes(b), j, nil
}

// --- block strings ---

func (p *parser) parseBlockString(ti int, text string, indent int) (value.Value, int, error) {
	line := 0
	if ti >= 0 && ti < len(p.tokens) {
		line = p.tokens[ti].LineNum
	}
	var lines []string
	if text != "`" {
		lines = append(lines, strings.TrimPrefix(text, "` "))
	}
	firstContinuation := len(lines)

	j := p.skipBreaks(ti + 1)
	minIndent := -1
	for j < len(p.tokens) && p.tokens[j].Indent > indent && p.tokens[j].Type != yaylex.Stop {
		if p.tokens[j].Type == yaylex.Break {
			lines = append(lines, "")
			j++
			continue
		}
		content := p.tokens[j].Text
		relIndent := p.tokens[j].Indent - indent - 1
		if relIndent < 0 {
			relIndent = 0
		}
		if minIndent == -1 || relIndent < minIndent {
			minIndent = relIndent
		}
		lines = append(lines, strings.Repeat(" ", relIndent)+content)
		j++
	}

	// minIndent is derived only from continuation lines; the leader
	// line on the `` ` `` itself carries no synthetic indent padding
	// and must never be trimmed by it.
	if minIndent > 0 {
		for i := firstContinuation; i < len(lines); i++ {
			l := lines[i]
			if l == "" {
				continue
			}
			if len(l) >= minIndent {
				lines[i] = l[minIndent:]
			}
		}
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return value.Value{}, ti, p.errAt(yayerr.KindEmptyBlockString, "Empty block string", line, indent)
	}

	s := strings.Join(lines, "\n") + "\n"
	return value.String(s), j, nil
}
