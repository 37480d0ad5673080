package yayenc

import (
	"fmt"
	"strings"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

// EncodeJSON renders v as 2-space-indented JSON. Integer, Bytes, and
// non-finite Float values have no JSON representation; the returned
// error names the offending kind via value.Value.JSONIncompatibility
// and suggests YSON as an alternative.
func EncodeJSON(v value.Value) (string, error) {
	if reason := v.JSONIncompatibility(); reason != "" {
		return "", yayerr.Newf(yayerr.KindJSONIncompatible,
			"cannot encode to JSON: document contains %s; try YSON", reason)
	}
	var b strings.Builder
	writeJSONValue(&b, v, 0)
	b.WriteString("\n")
	return b.String(), nil
}

func writeJSONValue(b *strings.Builder, v value.Value, depth int) {
	switch v.Kind() {
	case value.KindNull:
		b.WriteString("null")
	case value.KindBool:
		bl, _ := v.AsBool()
		if bl {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindFloat:
		f, _ := v.AsFloat()
		b.WriteString(formatFloatJSON(f))
	case value.KindString:
		s, _ := v.AsString()
		b.WriteString(jsonString(s))
	case value.KindArray:
		items, _ := v.AsArray()
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, it := range items {
			b.WriteString(pad(depth + 1))
			writeJSONValue(b, it, depth+1)
			if i < len(items)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad(depth))
		b.WriteString("]")
	case value.KindObject:
		keys := v.Keys()
		obj, _ := v.AsObject()
		if len(keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, k := range keys {
			b.WriteString(pad(depth + 1))
			b.WriteString(jsonString(k))
			b.WriteString(": ")
			writeJSONValue(b, obj[k], depth+1)
			if i < len(keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad(depth))
		b.WriteString("}")
	}
}

func jsonString(s string) string {
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
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
