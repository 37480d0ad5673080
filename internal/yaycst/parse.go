package yaycst

import (
	"strings"

	"github.com/kriskowal/yay/internal/yayerr"
)

type rawLine struct {
	indent      int
	content     string // empty if blank or standalone comment
	comment     string // "" if none
	hasComment  bool
	standalone  bool // true: the entire (trimmed) line is a comment
	blank       bool
	lineNum     int
	leader      bool // starts with "-" list marker
	leaderSkip  int  // bytes consumed by the leader incl. trailing spaces
}

// Parse parses loose YAY source into a Document. Unlike the strict
// scanner, it tolerates extra whitespace around separators and
// indentation, and it captures comments and blank lines as first-class
// items instead of discarding them.
func Parse(source string) (*Document, error) {
	lines, err := splitLines(source)
	if err != nil {
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1].blank {
		lines = lines[:len(lines)-1]
	}
	items, _, err := parseBlock(lines, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Document{Root: &Block{Indent: 0, Items: items}}, nil
}

func splitLines(source string) ([]rawLine, error) {
	var out []rawLine
	for n, raw := range strings.Split(source, "\n") {
		trimmedRight := strings.TrimRight(raw, " \t")
		indent := 0
		for indent < len(trimmedRight) && trimmedRight[indent] == ' ' {
			indent++
		}
		rest := trimmedRight[indent:]
		if rest == "" {
			out = append(out, rawLine{blank: true, lineNum: n})
			continue
		}

		content, comment, hasComment := splitComment(rest)
		content = strings.TrimRight(content, " \t")

		if content == "" && hasComment {
			out = append(out, rawLine{
				indent: indent, comment: comment, hasComment: true,
				standalone: true, lineNum: n,
			})
			continue
		}

		leader := false
		leaderSkip := 0
		if strings.HasPrefix(content, "-") && (len(content) == 1 || content[1] == ' ') {
			leader = true
			i := 1
			for i < len(content) && content[i] == ' ' {
				i++
			}
			leaderSkip = i
		}

		out = append(out, rawLine{
			indent: indent, content: content, comment: comment, hasComment: hasComment,
			lineNum: n, leader: leader, leaderSkip: leaderSkip,
		})
	}
	return out, nil
}

// splitComment finds the first unquoted, unescaped '#' in s and splits
// on it. Hex digits never contain '#', so this is safe for block-bytes
// content lines as well.
func splitComment(s string) (content, comment string, has bool) {
	inSingle, inDouble := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && inDouble:
			i++
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '#' && !inSingle && !inDouble:
			return s[:i], strings.TrimSpace(s[i+1:]), true
		}
	}
	return s, "", false
}

// parseBlock consumes sibling lines at indent `indent` starting at
// lines[i], stopping when a line dedents below `indent` or input ends.
func parseBlock(lines []rawLine, i, indent int) ([]*Item, int, error) {
	var items []*Item
	for i < len(lines) {
		l := lines[i]
		if l.blank {
			items = append(items, &Item{Kind: ItemBlank, Line: l.lineNum})
			i++
			continue
		}
		if l.standalone {
			if l.indent < indent {
				break
			}
			items = append(items, &Item{
				Kind: ItemComment, Line: l.lineNum, Indent: l.indent,
				Comment: &Comment{Text: l.comment, Standalone: true},
			})
			i++
			continue
		}
		if l.indent < indent {
			break
		}
		if l.indent > indent {
			return nil, i, yayerr.New(yayerr.KindUnexpectedIndent, "Unexpected indent")
		}

		if l.leader {
			item, ni, err := parseArrayItem(lines, i, indent)
			if err != nil {
				return nil, i, err
			}
			items = append(items, item)
			i = ni
			continue
		}

		if key, rest, ok := splitPropertyLoose(l.content); ok {
			item, ni, err := parseProperty(lines, i, indent, key, rest)
			if err != nil {
				return nil, i, err
			}
			items = append(items, item)
			i = ni
			continue
		}

		v, ni, err := parseScalarOrInline(lines, i, indent, l.content)
		if err != nil {
			return nil, i, err
		}
		items = append(items, &Item{
			Kind: ItemValue, Value: v, Indent: indent, Line: l.lineNum,
			Comment: inlineComment(l),
		})
		i = ni
	}
	return items, i, nil
}

func inlineComment(l rawLine) *Comment {
	if !l.hasComment {
		return nil
	}
	return &Comment{Text: l.comment}
}

func splitPropertyLoose(s string) (key, rest string, ok bool) {
	inSingle, inDouble := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == ':' && !inSingle && !inDouble:
			key = strings.TrimRight(s[:i], " ")
			rest = strings.TrimLeft(s[i+1:], " ")
			return key, rest, true
		}
	}
	return "", "", false
}

func parseKeyLoose(key string) Key {
	if len(key) >= 2 && key[0] == '\'' && key[len(key)-1] == '\'' {
		return Key{Text: key[1 : len(key)-1], Form: FormSingle}
	}
	if len(key) >= 2 && key[0] == '"' && key[len(key)-1] == '"' {
		return Key{Text: key[1 : len(key)-1], Form: FormDouble}
	}
	return Key{Text: key, Form: FormRaw}
}

func parseProperty(lines []rawLine, i, indent int, key, rest string) (*Item, int, error) {
	l := lines[i]
	item := &Item{Kind: ItemProperty, Key: parseKeyLoose(key), Indent: indent, Line: l.lineNum}

	if rest == "" {
		if l.hasComment {
			item.Comment = &Comment{Text: l.comment}
		}
		body, ni, err := parseNestedBlock(lines, i+1, indent)
		if err != nil {
			return nil, i, err
		}
		item.PropBody = body
		return item, ni, nil
	}

	v, ni, err := parseScalarOrInline(lines, i, indent, rest)
	if err != nil {
		return nil, i, err
	}
	item.PropVal = v
	item.Comment = inlineComment(l)
	return item, ni, nil
}

func parseArrayItem(lines []rawLine, i, indent int) (*Item, int, error) {
	l := lines[i]
	rest := l.content[l.leaderSkip:]
	item := &Item{Kind: ItemArrayItem, Indent: indent, Line: l.lineNum}

	if key, kv, ok := splitPropertyLoose(rest); ok {
		propItem, ni, err := parseProperty(lines, i, indent, key, kv)
		if err != nil {
			return nil, i, err
		}
		// propItem's deeper body must start at indent+leaderSkip; treat
		// the array item itself as an inline object with one property,
		// merging siblings that follow at the same deeper indent.
		bodyIndent := indent + l.leaderSkip
		more, ni2, err := parseBlock(lines, ni, bodyIndent)
		if err != nil {
			return nil, i, err
		}
		body := &Block{Indent: bodyIndent, Items: append([]*Item{propItem}, more...)}
		item.ArrBody = body
		return item, ni2, nil
	}

	v, ni, err := parseScalarOrInline(lines, i, indent, rest)
	if err != nil {
		return nil, i, err
	}
	item.ArrVal = v
	item.Comment = inlineComment(l)
	return item, ni, nil
}

// parseNestedBlock parses the deeper-indented continuation of a
// property whose inline value was empty.
func parseNestedBlock(lines []rawLine, i, parentIndent int) (*Block, int, error) {
	for i < len(lines) && lines[i].blank {
		i++
	}
	if i >= len(lines) {
		return nil, i, yayerr.New(yayerr.KindExpectedValueAfterProp, "Expected value after property")
	}
	childIndent := lines[i].indent
	if !lines[i].standalone && childIndent <= parentIndent {
		return nil, i, yayerr.New(yayerr.KindExpectedValueAfterProp, "Expected value after property")
	}
	items, ni, err := parseBlock(lines, i, childIndent)
	if err != nil {
		return nil, i, err
	}
	return &Block{Indent: childIndent, Items: items}, ni, nil
}

// parseScalarOrInline classifies a line's inline text into a CstValue,
// capturing block-string/block-bytes continuations that follow at a
// deeper indent.
func parseScalarOrInline(lines []rawLine, i, indent int, text string) (*CstValue, int, error) {
	switch {
	case text == "`" || strings.HasPrefix(text, "` "):
		return parseBlockStringLoose(lines, i, indent, text)
	case text == ">":
		return parseBlockBytesLoose(lines, i, indent)
	case strings.HasPrefix(text, "\""):
		return &CstValue{Form: FormDouble, Text: text[1 : len(text)-1]}, i + 1, nil
	case strings.HasPrefix(text, "'"):
		return &CstValue{Form: FormSingle, Text: text[1 : len(text)-1]}, i + 1, nil
	case strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{"):
		v, err := parseInlineContainer(text)
		if err != nil {
			return nil, i, err
		}
		return v, i + 1, nil
	case strings.HasPrefix(text, "<"):
		v, err := parseInlineBytesLoose(text)
		if err != nil {
			return nil, i, err
		}
		return v, i + 1, nil
	default:
		return &CstValue{Form: FormRaw, Text: text}, i + 1, nil
	}
}

func parseInlineBytesLoose(text string) (*CstValue, error) {
	end := strings.IndexByte(text, '>')
	if end < 0 || end != len(text)-1 {
		return nil, yayerr.New(yayerr.KindUnmatchedAngle, "Unmatched angle bracket")
	}
	hex := strings.ReplaceAll(text[1:end], " ", "")
	return &CstValue{Form: FormBytesRaw, IsInlineBytes: true, Text: hex}, nil
}

func parseBlockStringLoose(lines []rawLine, i, indent int, text string) (*CstValue, int, error) {
	var body []string
	if text != "`" {
		body = append(body, strings.TrimPrefix(text, "` "))
	}
	j := i + 1
	for j < len(lines) && (lines[j].blank || lines[j].indent > indent) {
		if lines[j].blank {
			body = append(body, "")
			j++
			continue
		}
		rel := lines[j].indent - indent - 1
		if rel < 0 {
			rel = 0
		}
		body = append(body, strings.Repeat(" ", rel)+lines[j].content)
		j++
	}
	for len(body) > 0 && body[0] == "" {
		body = body[1:]
	}
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	return &CstValue{Form: FormBlock, Lines: body}, j, nil
}

func parseBlockBytesLoose(lines []rawLine, i, indent int) (*CstValue, int, error) {
	var body []string
	j := i + 1
	for j < len(lines) && (lines[j].blank || lines[j].indent > indent) {
		if lines[j].blank {
			j++
			continue
		}
		line := lines[j].content
		if lines[j].hasComment {
			line += "\x00" + lines[j].comment
		}
		body = append(body, line)
		j++
	}
	return &CstValue{Form: FormBytesRaw, IsBlockBytes: true, Lines: body}, j, nil
}
