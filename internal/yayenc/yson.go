package yayenc

import (
	"fmt"
	"math"
	"strings"

	"github.com/kriskowal/yay/internal/value"
)

// EncodeYSON renders v as YSON: JSON extended with typed-string
// prefixes for Integer, Bytes, and non-finite Float, per spec.md §4.5.
func EncodeYSON(v value.Value) string {
	var b strings.Builder
	writeYSONValue(&b, v, 0)
	b.WriteString("\n")
	return b.String()
}

func writeYSONValue(b *strings.Builder, v value.Value, depth int) {
	switch v.Kind() {
	case value.KindInteger:
		n, _ := v.AsInteger()
		b.WriteString(jsonString("#" + n.String()))
	case value.KindBytes:
		by, _ := v.AsBytes()
		b.WriteString(jsonString(fmt.Sprintf("*%x", by)))
	case value.KindFloat:
		f, _ := v.AsFloat()
		switch {
		case math.IsNaN(f):
			b.WriteString(jsonString("#NaN"))
		case math.IsInf(f, 1):
			b.WriteString(jsonString("#Infinity"))
		case math.IsInf(f, -1):
			b.WriteString(jsonString("#-Infinity"))
		default:
			b.WriteString(formatFloatJSON(f))
		}
	case value.KindString:
		s, _ := v.AsString()
		b.WriteString(jsonString(ysonEscapeString(s)))
	case value.KindArray:
		items, _ := v.AsArray()
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, it := range items {
			b.WriteString(pad(depth + 1))
			writeYSONValue(b, it, depth+1)
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
			b.WriteString(jsonString(ysonEscapeString(k)))
			b.WriteString(": ")
			writeYSONValue(b, obj[k], depth+1)
			if i < len(keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad(depth))
		b.WriteString("}")
	default:
		writeJSONValue(b, v, depth)
	}
}

// ysonEscapeString prefixes a '!' escape when s's first character
// falls in the reserved ASCII range '!'-'/', which would otherwise be
// mistaken for a typed-string prefix on decode.
func ysonEscapeString(s string) string {
	if len(s) > 0 && s[0] >= '!' && s[0] <= '/' {
		return "!" + s
	}
	return s
}
