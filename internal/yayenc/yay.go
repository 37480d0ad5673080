package yayenc

import (
	"fmt"
	"strings"

	"github.com/kriskowal/yay/internal/value"
)

// EncodeYAY renders v as canonical strict YAY text with a trailing
// newline. Object keys are sorted (see value.Value.Keys); there are no
// comments, since Value carries none.
func EncodeYAY(v value.Value) string {
	var b strings.Builder
	writeYAYRoot(&b, v)
	s := b.String()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

func writeYAYRoot(b *strings.Builder, v value.Value) {
	switch v.Kind() {
	case value.KindArray:
		writeYAYArrayBlock(b, v, 0)
	case value.KindObject:
		writeYAYObjectBlock(b, v, 0)
	default:
		b.WriteString(encodeYAYScalar(v))
		b.WriteString("\n")
	}
}

func pad(depth int) string { return strings.Repeat("  ", depth) }

func writeYAYArrayBlock(b *strings.Builder, v value.Value, depth int) {
	items, _ := v.AsArray()
	if len(items) == 0 {
		b.WriteString(pad(depth))
		b.WriteString("[]\n")
		return
	}
	for _, item := range items {
		writeYAYArrayItem(b, item, depth)
	}
}

func writeYAYArrayItem(b *strings.Builder, item value.Value, depth int) {
	switch item.Kind() {
	case value.KindArray:
		if fitsInline(item) {
			b.WriteString(pad(depth))
			b.WriteString("- ")
			b.WriteString(encodeInlineArray(item))
			b.WriteString("\n")
			return
		}
		b.WriteString(pad(depth))
		b.WriteString("-\n")
		writeYAYArrayBlock(b, item, depth+1)
	case value.KindObject:
		keys := item.Keys()
		if fitsInline(item) || len(keys) == 0 {
			b.WriteString(pad(depth))
			b.WriteString("- ")
			b.WriteString(encodeInlineObject(item))
			b.WriteString("\n")
			return
		}
		obj, _ := item.AsObject()
		first := keys[0]
		b.WriteString(pad(depth))
		b.WriteString("- ")
		writeYAYPropertyInline(b, first, obj[first], depth+1, true)
		for _, k := range keys[1:] {
			writeYAYProperty(b, k, obj[k], depth+1)
		}
	default:
		b.WriteString(pad(depth))
		b.WriteString("- ")
		b.WriteString(encodeYAYScalar(item))
		b.WriteString("\n")
	}
}

func writeYAYObjectBlock(b *strings.Builder, v value.Value, depth int) {
	obj, _ := v.AsObject()
	keys := v.Keys()
	for _, k := range keys {
		writeYAYProperty(b, k, obj[k], depth)
	}
}

func writeYAYProperty(b *strings.Builder, key string, v value.Value, depth int) {
	b.WriteString(pad(depth))
	writeYAYPropertyInline(b, key, v, depth, false)
}

// writeYAYPropertyInline writes "key: value" (continuing the current
// line when continuing is true, used for the first property of an
// array item that shares the "- " prefix's line).
func writeYAYPropertyInline(b *strings.Builder, key string, v value.Value, depth int, continuing bool) {
	b.WriteString(encodeKey(key))
	b.WriteString(":")
	switch v.Kind() {
	case value.KindArray:
		if fitsInline(v) {
			b.WriteString(" ")
			b.WriteString(encodeInlineArray(v))
			b.WriteString("\n")
			return
		}
		b.WriteString("\n")
		writeYAYArrayBlock(b, v, depth+1)
	case value.KindObject:
		keys := v.Keys()
		if fitsInline(v) || len(keys) == 0 {
			b.WriteString(" ")
			b.WriteString(encodeInlineObject(v))
			b.WriteString("\n")
			return
		}
		b.WriteString("\n")
		writeYAYObjectBlock(b, v, depth+1)
	case value.KindString:
		s, _ := v.AsString()
		if strings.Contains(s, "\n") {
			b.WriteString(" `\n")
			writeBlockStringBody(b, s, depth+1)
			return
		}
		b.WriteString(" ")
		b.WriteString(encodeYAYScalar(v))
		b.WriteString("\n")
	default:
		b.WriteString(" ")
		b.WriteString(encodeYAYScalar(v))
		b.WriteString("\n")
	}
}

func writeBlockStringBody(b *strings.Builder, s string, depth int) {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, l := range lines {
		if l == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(pad(depth))
		b.WriteString(l)
		b.WriteString("\n")
	}
}

// fitsInline applies the YAY encoder's size heuristic: arrays of up to
// 5 simple scalars, or objects of up to 3 simple scalar entries, with
// every element itself simple (not array/object).
func fitsInline(v value.Value) bool {
	switch v.Kind() {
	case value.KindArray:
		items, _ := v.AsArray()
		if len(items) > 5 {
			return false
		}
		for _, it := range items {
			if !isSimple(it) {
				return false
			}
		}
		return true
	case value.KindObject:
		obj, _ := v.AsObject()
		if len(obj) > 3 {
			return false
		}
		for _, it := range obj {
			if !isSimple(it) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func isSimple(v value.Value) bool {
	switch v.Kind() {
	case value.KindArray, value.KindObject:
		return false
	case value.KindString:
		s, _ := v.AsString()
		return !strings.Contains(s, "\n")
	default:
		return true
	}
}

func encodeInlineArray(v value.Value) string {
	items, _ := v.AsArray()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = encodeInlineValue(it)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func encodeInlineObject(v value.Value) string {
	obj, _ := v.AsObject()
	keys := v.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = encodeKey(k) + ": " + encodeInlineValue(obj[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func encodeInlineValue(v value.Value) string {
	switch v.Kind() {
	case value.KindArray:
		return encodeInlineArray(v)
	case value.KindObject:
		return encodeInlineObject(v)
	default:
		return encodeYAYScalar(v)
	}
}

func encodeKey(k string) string {
	if isBareKey(k) {
		return k
	}
	return encodeYAYString(k)
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

func encodeYAYScalar(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return "true"
		}
		return "false"
	case value.KindInteger:
		n, _ := v.AsInteger()
		return n.String()
	case value.KindFloat:
		f, _ := v.AsFloat()
		return formatFloatYAY(f)
	case value.KindString:
		s, _ := v.AsString()
		return encodeYAYString(s)
	case value.KindBytes:
		by, _ := v.AsBytes()
		return fmt.Sprintf("<%x>", by)
	default:
		return ""
	}
}

func encodeYAYString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20:
			fmt.Fprintf(&b, `\u{%x}`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
