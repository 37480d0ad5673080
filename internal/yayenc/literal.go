package yayenc

import (
	"fmt"
	"math"
	"strings"

	"github.com/kriskowal/yay/internal/value"
)

// dialect captures the syntactic differences between the seven
// language-literal encoders; the tree walk itself is shared.
type dialect struct {
	null, trueLit, falseLit string
	arrOpen, arrClose       string
	objOpen, objClose       string
	mapEntrySep             string // between key and value, e.g. ": " or " => "
	bytesFunc               string // "%s" format for a byte-array literal, args: hex
	nan, posInf, negInf     string
	noTrailingComma         bool
	keyQuoted               bool // false for e.g. Scheme's symbol-keyed alists
}

func dialectFor(f Format) dialect {
	switch f {
	case FormatJavaScript:
		return dialect{null: "null", trueLit: "true", falseLit: "false",
			arrOpen: "[", arrClose: "]", objOpen: "{", objClose: "}",
			mapEntrySep: ": ", bytesFunc: "new Uint8Array([%s])",
			nan: "NaN", posInf: "Infinity", negInf: "-Infinity", keyQuoted: true}
	case FormatGo:
		return dialect{null: "nil", trueLit: "true", falseLit: "false",
			arrOpen: "[]any{", arrClose: "}", objOpen: "map[string]any{", objClose: "}",
			mapEntrySep: ": ", bytesFunc: "[]byte{%s}",
			nan: "math.NaN()", posInf: "math.Inf(1)", negInf: "math.Inf(-1)",
			noTrailingComma: false, keyQuoted: true}
	case FormatPython:
		return dialect{null: "None", trueLit: "True", falseLit: "False",
			arrOpen: "[", arrClose: "]", objOpen: "{", objClose: "}",
			mapEntrySep: ": ", bytesFunc: "bytes([%s])",
			nan: "float('nan')", posInf: "float('inf')", negInf: "float('-inf')",
			noTrailingComma: true, keyQuoted: true}
	case FormatRust:
		return dialect{null: "None", trueLit: "true", falseLit: "false",
			arrOpen: "vec![", arrClose: "]", objOpen: "BTreeMap::from([", objClose: "])",
			mapEntrySep: ", ", bytesFunc: "vec![%s]",
			nan: "f64::NAN", posInf: "f64::INFINITY", negInf: "f64::NEG_INFINITY",
			noTrailingComma: true, keyQuoted: true}
	case FormatC:
		return dialect{null: "NULL", trueLit: "true", falseLit: "false",
			arrOpen: "{", arrClose: "}", objOpen: "{", objClose: "}",
			mapEntrySep: ": ", bytesFunc: "{%s}",
			nan: "NAN", posInf: "INFINITY", negInf: "-INFINITY",
			noTrailingComma: true, keyQuoted: true}
	case FormatJava:
		return dialect{null: "null", trueLit: "true", falseLit: "false",
			arrOpen: "List.of(", arrClose: ")", objOpen: "Map.ofEntries(", objClose: ")",
			mapEntrySep: ", ", bytesFunc: "new byte[]{%s}",
			nan: "Double.NaN", posInf: "Double.POSITIVE_INFINITY", negInf: "Double.NEGATIVE_INFINITY",
			noTrailingComma: true, keyQuoted: true}
	case FormatScheme:
		return dialect{null: "'()", trueLit: "#t", falseLit: "#f",
			arrOpen: "(vector ", arrClose: ")", objOpen: "(list ", objClose: ")",
			mapEntrySep: " . ", bytesFunc: "(bytevector %s)",
			nan: "+nan.0", posInf: "+inf.0", negInf: "-inf.0",
			noTrailingComma: true, keyQuoted: false}
	default:
		return dialect{}
	}
}

// EncodeLiteral renders v as a source-code literal in the target
// language, falling back to a multi-line form when the single-line
// rendering would exceed DefaultWidth columns.
func EncodeLiteral(v value.Value, format Format) string {
	d := dialectFor(format)
	oneLine := encodeLiteralValue(v, d, -1)
	if len(oneLine) <= DefaultWidth && !strings.Contains(oneLine, "\n") {
		return oneLine + "\n"
	}
	return encodeLiteralValue(v, d, 0) + "\n"
}

// encodeLiteralValue renders v. depth < 0 means "single line, no
// indentation"; depth >= 0 means "multi-line, indented by depth".
func encodeLiteralValue(v value.Value, d dialect, depth int) string {
	switch v.Kind() {
	case value.KindNull:
		return d.null
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return d.trueLit
		}
		return d.falseLit
	case value.KindInteger:
		n, _ := v.AsInteger()
		return n.String()
	case value.KindFloat:
		f, _ := v.AsFloat()
		return literalFloat(f, d)
	case value.KindString:
		s, _ := v.AsString()
		return literalString(s)
	case value.KindBytes:
		by, _ := v.AsBytes()
		hexParts := make([]string, len(by))
		for i, c := range by {
			hexParts[i] = fmt.Sprintf("0x%02x", c)
		}
		return fmt.Sprintf(d.bytesFunc, strings.Join(hexParts, ", "))
	case value.KindArray:
		items, _ := v.AsArray()
		return literalContainer(d.arrOpen, d.arrClose, len(items), d, depth, func(i int, childDepth int) string {
			return encodeLiteralValue(items[i], d, childDepth)
		})
	case value.KindObject:
		keys := v.Keys()
		obj, _ := v.AsObject()
		return literalContainer(d.objOpen, d.objClose, len(keys), d, depth, func(i int, childDepth int) string {
			k := keys[i]
			keyText := k
			if d.keyQuoted {
				keyText = literalString(k)
			} else {
				keyText = "'" + k
			}
			return keyText + d.mapEntrySep + encodeLiteralValue(obj[k], d, childDepth)
		})
	default:
		return d.null
	}
}

func literalContainer(open, close string, n int, d dialect, depth int, elem func(i, childDepth int) string) string {
	if n == 0 {
		return open + close
	}
	if depth < 0 {
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = elem(i, -1)
		}
		return open + strings.Join(parts, ", ") + close
	}
	var b strings.Builder
	b.WriteString(open)
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		b.WriteString(pad(depth + 1))
		b.WriteString(elem(i, depth+1))
		if i < n-1 || !d.noTrailingComma {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(pad(depth))
	b.WriteString(close)
	return b.String()
}

func literalFloat(f float64, d dialect) string {
	switch {
	case math.IsNaN(f):
		return d.nan
	case math.IsInf(f, 1):
		return d.posInf
	case math.IsInf(f, -1):
		return d.negInf
	default:
		return formatFloatJSON(f)
	}
}

func literalString(s string) string {
	return jsonString(s)
}
