package yaycst

import "strings"

// abbreviations that must not be mistaken for sentence-ending periods
// when re-flowing block-string prose during word-wrap.
var abbreviations = map[string]bool{
	"e.g.": true, "i.e.": true, "etc.": true, "vs.": true,
	"Mr.": true, "Mrs.": true, "Ms.": true, "Dr.": true,
	"Inc.": true, "Ltd.": true, "Jr.": true, "Sr.": true,
	"a.m.": true, "p.m.": true,
}

// Transform canonicalizes a parsed Document in place: it computes
// comment alignment columns for contiguous runs of commented siblings,
// re-flows block-string prose to the given wrap width, and converts
// over-width inline arrays, objects, and byte strings to block form.
func Transform(doc *Document, wrap int) {
	if wrap <= 0 {
		wrap = DefaultWrap
	}
	transformBlock(doc.Root, wrap, 0)
}

func transformBlock(b *Block, wrap, depth int) {
	if b == nil {
		return
	}
	// Decide block-vs-inline for every item's value before aligning
	// comments, so alignment reflects the form each value actually
	// renders in rather than a stale inline width.
	for _, it := range b.Items {
		decideForceBlock(it, depth, wrap)
	}
	alignCommentRuns(b.Items, depth)
	for _, it := range b.Items {
		finishItem(it, wrap, depth)
	}
}

// decideForceBlock marks an item's value(s) ForceBlock when their
// inline rendering at depth would exceed wrap. prefixWidth accounts
// for the "key: " or "- " that precedes the value on its line.
func decideForceBlock(it *Item, depth, wrap int) {
	decideValue(it.Value, depth, 0, wrap)
	decideValue(it.PropVal, depth, len(formatKey(it.Key))+2, wrap) // "key: "
	decideValue(it.ArrVal, depth, 2, wrap)                         // "- "
}

func decideValue(v *CstValue, depth, prefixWidth, wrap int) {
	if v == nil || v.ForceBlock || v.Form == FormBlock {
		return
	}
	if !v.IsArray && !v.IsObject && !v.IsInlineBytes {
		return
	}
	lineWidth := depth*2 + prefixWidth + len(formatScalarLine(v))
	if lineWidth <= wrap {
		return
	}
	v.ForceBlock = true
	if v.IsInlineBytes {
		v.Lines = groupBytesHex(v.Text)
	}
}

// finishItem re-flows block-string prose and recurses into whatever
// childDepth format.go will actually render each value's children at:
// a root ItemValue's forced-block Items sit at the same depth as the
// value itself (there is no "key:"/"-" prefix line consuming a level),
// while a property or array item's forced-block Items nest one level
// deeper, under the retained "key:"/"-" prefix line.
func finishItem(it *Item, wrap, depth int) {
	finishValue(it.Value, wrap, depth)
	finishValue(it.PropVal, wrap, depth+1)
	finishValue(it.ArrVal, wrap, depth+1)
	transformBlock(it.PropBody, wrap, depth+1)
	transformBlock(it.ArrBody, wrap, depth+1)
}

func finishValue(v *CstValue, wrap, childDepth int) {
	if v == nil {
		return
	}
	if v.Form == FormBlock && len(v.Lines) > 0 {
		v.Lines = rewrapBlockString(v.Lines, wrap)
		return
	}
	if v.ForceBlock && (v.IsArray || v.IsObject) {
		transformBlock(&Block{Items: v.Items}, wrap, childDepth)
	}
}

// groupBytesHex regroups a flat lowercase hex string into block-bytes
// lines: 16 bytes (32 hex digits) per line, word-grouped into 4-byte
// groups separated by a double space, with a single space between bytes
// within a group.
func groupBytesHex(hex string) []string {
	var pairs []string
	for i := 0; i+1 < len(hex); i += 2 {
		pairs = append(pairs, hex[i:i+2])
	}
	const bytesPerLine = 16
	const bytesPerGroup = 4
	var lines []string
	for i := 0; i < len(pairs); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(pairs) {
			end = len(pairs)
		}
		chunk := pairs[i:end]
		var groups []string
		for j := 0; j < len(chunk); j += bytesPerGroup {
			ge := j + bytesPerGroup
			if ge > len(chunk) {
				ge = len(chunk)
			}
			groups = append(groups, strings.Join(chunk[j:ge], " "))
		}
		lines = append(lines, strings.Join(groups, "  "))
	}
	return lines
}

// alignCommentRuns groups consecutive non-blank, non-standalone-comment
// items that carry an inline comment and pads every comment in the run
// to the same column: the run's indentation (two columns per depth)
// plus the widest item's natural width, plus one space.
func alignCommentRuns(items []*Item, depth int) {
	var run []*Item
	flush := func() {
		if len(run) < 1 {
			run = nil
			return
		}
		maxW := 0
		for _, it := range run {
			if w := itemNaturalWidth(it); w > maxW {
				maxW = w
			}
		}
		for _, it := range run {
			it.Comment.HasAlign = true
			it.Comment.Align = depth*2 + maxW + 1
		}
		run = nil
	}
	for _, it := range items {
		if it.Kind == ItemBlank || it.Kind == ItemComment {
			flush()
			continue
		}
		if it.Comment != nil && !it.Comment.Standalone {
			run = append(run, it)
			continue
		}
		flush()
	}
	flush()
}

// itemNaturalWidth estimates the printed column width of an item's
// value portion, not counting indentation (alignCommentRuns adds the
// run's indentation when it sets the alignment column).
func itemNaturalWidth(it *Item) int {
	switch it.Kind {
	case ItemProperty:
		return len(formatKey(it.Key)) + 2 + valueWidth(it.PropVal)
	case ItemArrayItem:
		return 2 + valueWidth(it.ArrVal)
	default:
		return valueWidth(it.Value)
	}
}

func valueWidth(v *CstValue) int {
	if v == nil || v.ForceBlock {
		return 0
	}
	if v.IsArray || v.IsObject || v.IsInlineBytes {
		return len(formatScalarLine(v))
	}
	switch v.Form {
	case FormSingle, FormDouble:
		return len(v.Text) + 2
	default:
		return len(v.Text)
	}
}

// rewrapBlockString treats lines as paragraphs separated by blank
// lines and re-flows each paragraph's words to fit within wrap
// columns, honoring abbreviation periods as non-breaking.
func rewrapBlockString(lines []string, wrap int) []string {
	var out []string
	var para []string
	flush := func() {
		if len(para) == 0 {
			return
		}
		out = append(out, wrapParagraph(strings.Join(para, " "), wrap)...)
		para = nil
	}
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			flush()
			out = append(out, "")
			continue
		}
		para = append(para, strings.TrimSpace(l))
	}
	flush()
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func wrapParagraph(text string, wrap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var cur []string
	curLen := 0
	for _, w := range words {
		add := len(w)
		if curLen > 0 {
			add++ // joining space
		}
		if curLen+add > wrap && curLen > 0 && !endsWithAbbreviation(cur) {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
			curLen = 0
			add = len(w)
		}
		cur = append(cur, w)
		curLen += add
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return lines
}

// endsWithAbbreviation reports whether the line built so far ends on a
// known abbreviation, in which case the wrapper keeps the next word
// glued to it rather than treating the period as a sentence break.
func endsWithAbbreviation(cur []string) bool {
	if len(cur) == 0 {
		return false
	}
	return abbreviations[cur[len(cur)-1]]
}
