package yaycst

import "strings"

// Format serializes a transformed Document back into strict YAY text,
// with a trailing newline.
func Format(doc *Document) string {
	var b strings.Builder
	formatBlock(&b, doc.Root, 0)
	return b.String()
}

func formatBlock(b *strings.Builder, blk *Block, depth int) {
	if blk == nil {
		return
	}
	for _, it := range blk.Items {
		formatItem(b, it, depth)
	}
}

func pad(depth int) string { return strings.Repeat("  ", depth) }

func formatItem(b *strings.Builder, it *Item, depth int) {
	switch it.Kind {
	case ItemBlank:
		b.WriteString("\n")
	case ItemComment:
		b.WriteString(pad(depth))
		b.WriteString("# ")
		b.WriteString(it.Comment.Text)
		b.WriteString("\n")
	case ItemValue:
		if forcedBlock(it.Value) {
			if it.Comment != nil {
				b.WriteString(pad(depth))
				b.WriteString("# ")
				b.WriteString(it.Comment.Text)
				b.WriteString("\n")
			}
			formatBlock(b, &Block{Items: it.Value.Items}, depth)
			return
		}
		line := pad(depth) + formatScalarLine(it.Value)
		writeWithComment(b, line, it.Comment)
		formatContainerBody(b, it.Value, depth)
	case ItemProperty:
		formatProperty(b, it, depth)
	case ItemArrayItem:
		formatArrayItem(b, it, depth)
	}
}

func writeWithComment(b *strings.Builder, line string, c *Comment) {
	if c == nil {
		b.WriteString(line)
		b.WriteString("\n")
		return
	}
	if c.HasAlign {
		for len(line) < c.Align {
			line += " "
		}
	} else {
		line += " "
	}
	b.WriteString(line)
	b.WriteString("# ")
	b.WriteString(c.Text)
	b.WriteString("\n")
}

func formatProperty(b *strings.Builder, it *Item, depth int) {
	prefix := pad(depth) + formatKey(it.Key) + ":"
	if it.PropVal != nil {
		if forcedBlock(it.PropVal) {
			writeWithComment(b, prefix, it.Comment)
			formatBlock(b, &Block{Items: it.PropVal.Items}, depth+1)
			return
		}
		line := prefix + " " + formatScalarLine(it.PropVal)
		writeWithComment(b, line, it.Comment)
		formatContainerBody(b, it.PropVal, depth)
		return
	}
	writeWithComment(b, prefix, it.Comment)
	formatBlock(b, it.PropBody, depth+1)
}

func formatArrayItem(b *strings.Builder, it *Item, depth int) {
	prefix := pad(depth) + "-"
	if it.ArrVal != nil {
		if forcedBlock(it.ArrVal) {
			writeWithComment(b, prefix, it.Comment)
			formatBlock(b, &Block{Items: it.ArrVal.Items}, depth+1)
			return
		}
		line := prefix + " " + formatScalarLine(it.ArrVal)
		writeWithComment(b, line, it.Comment)
		formatContainerBody(b, it.ArrVal, depth)
		return
	}
	if it.ArrBody != nil && len(it.ArrBody.Items) > 0 {
		first := it.ArrBody.Items[0]
		if first.Kind == ItemProperty {
			line := prefix + " " + formatKey(first.Key) + ":"
			if first.PropVal != nil {
				line += " " + formatScalarLine(first.PropVal)
				writeWithComment(b, line, first.Comment)
				formatContainerBody(b, first.PropVal, depth+1)
			} else {
				writeWithComment(b, line, first.Comment)
				formatBlock(b, first.PropBody, depth+2)
			}
			for _, rest := range it.ArrBody.Items[1:] {
				formatItem(b, rest, depth+1)
			}
			return
		}
	}
	writeWithComment(b, prefix, it.Comment)
	formatBlock(b, it.ArrBody, depth+1)
}

func formatContainerBody(b *strings.Builder, v *CstValue, depth int) {
	if v == nil {
		return
	}
	switch v.Form {
	case FormBlock:
		for _, l := range v.Lines {
			if l == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString(pad(depth + 1))
			b.WriteString(l)
			b.WriteString("\n")
		}
	case FormBytesRaw:
		for _, l := range v.Lines {
			text := l
			var comment string
			if idx := strings.IndexByte(l, 0); idx >= 0 {
				text = l[:idx]
				comment = l[idx+1:]
			}
			b.WriteString(pad(depth + 1))
			b.WriteString(text)
			if comment != "" {
				b.WriteString(" # ")
				b.WriteString(comment)
			}
			b.WriteString("\n")
		}
	}
}

// forcedBlock reports whether v is an inline array or object that
// Transform decided must render as block-form sibling items instead of
// inline text. Forced-block inline bytes stay on the formatScalarLine +
// formatContainerBody path, since ">" already behaves like a real
// block-bytes leader.
func forcedBlock(v *CstValue) bool {
	return v != nil && (v.IsArray || v.IsObject) && v.ForceBlock
}

func formatInlineArray(v *CstValue) string {
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = formatScalarLine(it.ArrVal)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatInlineObject(v *CstValue) string {
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = formatKey(it.Key) + ": " + formatScalarLine(it.PropVal)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatKey(k Key) string {
	switch k.Form {
	case FormSingle:
		return "'" + k.Text + "'"
	case FormDouble:
		return "\"" + k.Text + "\""
	default:
		return k.Text
	}
}

func formatScalarLine(v *CstValue) string {
	if v == nil {
		return ""
	}
	switch {
	case v.IsArray:
		return formatInlineArray(v)
	case v.IsObject:
		return formatInlineObject(v)
	case v.IsInlineBytes && !v.ForceBlock:
		return "<" + v.Text + ">"
	}
	switch v.Form {
	case FormSingle:
		return "'" + v.Text + "'"
	case FormDouble:
		return "\"" + v.Text + "\""
	case FormBlock:
		return "`"
	case FormBytesRaw:
		return ">"
	default:
		return v.Text
	}
}
