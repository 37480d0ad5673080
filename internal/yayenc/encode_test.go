package yayenc_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayenc"
)

func TestEncodeJSONRejectsInteger(t *testing.T) {
	_, err := yayenc.Encode(value.Integer(big.NewInt(1)), yayenc.FormatJSON)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestEncodeJSONRejectsNonFiniteFloat(t *testing.T) {
	_, err := yayenc.Encode(value.Float(math.Inf(1)), yayenc.FormatJSON)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestEncodeJSONObjectSortsKeys(t *testing.T) {
	v := value.Object(map[string]value.Value{"z": value.Bool(true), "a": value.Bool(false)})
	text, err := yayenc.Encode(v, yayenc.FormatJSON)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Index(text, `"a"`) < strings.Index(text, `"z"`), true))
}

func TestEncodeYSONIntegerPrefix(t *testing.T) {
	text, err := yayenc.Encode(value.IntegerFromInt64(42), yayenc.FormatYSON)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), `"#42"`))
}

func TestEncodeYSONBytesPrefix(t *testing.T) {
	text, err := yayenc.Encode(value.Bytes([]byte{0xca, 0xfe}), yayenc.FormatYSON)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), `"*cafe"`))
}

func TestEncodeYSONNaN(t *testing.T) {
	text, err := yayenc.Encode(value.Float(math.NaN()), yayenc.FormatYSON)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), `"#NaN"`))
}

func TestEncodeYSONEscapesReservedPrefix(t *testing.T) {
	text, err := yayenc.Encode(value.String("#notanumber"), yayenc.FormatYSON)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), `"!#notanumber"`))
}

func TestEncodeGoLiteralMap(t *testing.T) {
	v := value.Object(map[string]value.Value{"a": value.IntegerFromInt64(1)})
	text, err := yayenc.Encode(v, yayenc.FormatGo)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Contains(text, "map[string]any{"), true))
}

func TestEncodePythonLiteralNone(t *testing.T) {
	text, err := yayenc.Encode(value.Null, yayenc.FormatPython)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), "None"))
}

func TestEncodeSchemeLiteralBooleans(t *testing.T) {
	text, err := yayenc.Encode(value.Bool(true), yayenc.FormatScheme)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), "#t"))
}

func TestEncodeRustLiteralFloatInfinity(t *testing.T) {
	text, err := yayenc.Encode(value.Float(math.Inf(1)), yayenc.FormatRust)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.TrimSpace(text), "f64::INFINITY"))
}

func TestEncodeYAYRootArrayIsAlwaysBlock(t *testing.T) {
	v := value.Array([]value.Value{value.IntegerFromInt64(1), value.IntegerFromInt64(2)})
	text, err := yayenc.Encode(v, yayenc.FormatYAY)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(text, "- 1\n- 2\n"))
}

func TestEncodeYAYNestedArrayInlinesWhenSmall(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"xs": value.Array([]value.Value{value.IntegerFromInt64(1), value.IntegerFromInt64(2)}),
	})
	text, err := yayenc.Encode(v, yayenc.FormatYAY)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(text, "xs: [1, 2]\n"))
}

func TestEncodeYAYBlockObject(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"a": value.IntegerFromInt64(1), "b": value.IntegerFromInt64(2),
		"c": value.IntegerFromInt64(3), "d": value.IntegerFromInt64(4),
	})
	text, err := yayenc.Encode(v, yayenc.FormatYAY)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Contains(text, "a: 1\n"), true))
}
