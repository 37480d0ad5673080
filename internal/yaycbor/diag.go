package yaycbor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kriskowal/yay/internal/value"
)

// compactSimpleArrayLimit bounds how long an array of only simple
// values (anything but arrays and objects) may be before the
// diagnostic renderer breaks it onto multiple lines.
const compactSimpleArrayLimit = 8

// Diagnose decodes CBOR bytes and renders them in RFC 8949 §8
// diagnostic notation.
func Diagnose(data []byte) (string, error) {
	v, err := Decode(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeDiag(&b, v, 0)
	return b.String(), nil
}

func writeDiag(b *strings.Builder, v value.Value, depth int) {
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
	case value.KindInteger:
		n, _ := v.AsInteger()
		b.WriteString(n.String())
	case value.KindFloat:
		f, _ := v.AsFloat()
		switch {
		case math.IsNaN(f):
			b.WriteString("NaN")
		case math.IsInf(f, 1):
			b.WriteString("Infinity")
		case math.IsInf(f, -1):
			b.WriteString("-Infinity")
		default:
			s := strconv.FormatFloat(f, 'g', -1, 64)
			if !strings.ContainsAny(s, ".e") {
				s += ".0"
			}
			b.WriteString(s)
		}
	case value.KindString:
		s, _ := v.AsString()
		fmt.Fprintf(b, "%q", s)
	case value.KindBytes:
		by, _ := v.AsBytes()
		fmt.Fprintf(b, "h'%x'", by)
	case value.KindArray:
		items, _ := v.AsArray()
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		if isCompactArray(items) {
			parts := make([]string, len(items))
			for i, it := range items {
				var sb strings.Builder
				writeDiag(&sb, it, 0)
				parts[i] = sb.String()
			}
			b.WriteString("[" + strings.Join(parts, ", ") + "]")
			return
		}
		b.WriteString("[\n")
		for i, it := range items {
			b.WriteString(indent(depth + 1))
			writeDiag(b, it, depth+1)
			if i < len(items)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(indent(depth))
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
			b.WriteString(indent(depth + 1))
			fmt.Fprintf(b, "%q: ", k)
			writeDiag(b, obj[k], depth+1)
			if i < len(keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(indent(depth))
		b.WriteString("}")
	}
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

// isCompactArray reports whether items is short enough and contains
// only simple (non-container) values, so it renders on one line.
func isCompactArray(items []value.Value) bool {
	if len(items) > compactSimpleArrayLimit {
		return false
	}
	for _, it := range items {
		if it.Kind() == value.KindArray || it.Kind() == value.KindObject {
			return false
		}
	}
	return true
}
