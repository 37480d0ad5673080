package yay_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay"
	"github.com/kriskowal/yay/internal/value"
)

func TestParseScalarKeywords(t *testing.T) {
	cases := map[string]value.Value{
		"null":  value.Null,
		"true":  value.Bool(true),
		"false": value.Bool(false),
	}
	for src, want := range cases {
		got, err := yay.Parse(src)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(value.Equal(got, want), true))
	}
}

func TestParseIntegerArbitraryPrecision(t *testing.T) {
	src := "123456789012345678901234567890"
	got, err := yay.Parse(src)
	qt.Assert(t, qt.IsNil(err))
	n, ok := got.AsInteger()
	qt.Assert(t, qt.Equals(ok, true))
	want, _ := new(big.Int).SetString(src, 10)
	qt.Assert(t, qt.Equals(n.Cmp(want), 0))
}

func TestParseRootObject(t *testing.T) {
	src := "name: \"Alice\"\nage: 30\n"
	got, err := yay.Parse(src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got.Kind(), value.KindObject))
	qt.Assert(t, qt.DeepEquals(got.Keys(), []string{"age", "name"}))
}

func TestParseArrayBlock(t *testing.T) {
	src := "- 1\n- 2\n- 3\n"
	got, err := yay.Parse(src)
	qt.Assert(t, qt.IsNil(err))
	items, ok := got.AsArray()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.HasLen(items, 3))
}

func TestParseNestedObjectUnderProperty(t *testing.T) {
	src := "outer:\n  inner: 1\n"
	got, err := yay.Parse(src)
	qt.Assert(t, qt.IsNil(err))
	obj, _ := got.AsObject()
	outer := obj["outer"]
	qt.Assert(t, qt.Equals(outer.Kind(), value.KindObject))
}

func TestParseInlineArray(t *testing.T) {
	got, err := yay.Parse("[1, 2, 3]")
	qt.Assert(t, qt.IsNil(err))
	items, _ := got.AsArray()
	qt.Assert(t, qt.HasLen(items, 3))
}

func TestParseInlineObject(t *testing.T) {
	got, err := yay.Parse("{a: 1, b: 2}")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got.Keys(), []string{"a", "b"}))
}

func TestParseBytesInline(t *testing.T) {
	got, err := yay.Parse("<cafe>")
	qt.Assert(t, qt.IsNil(err))
	b, ok := got.AsBytes()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.DeepEquals(b, []byte{0xca, 0xfe}))
}

func TestParseTrailingSpaceError(t *testing.T) {
	_, err := yay.Parse("a: 1 \n")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestParseTabError(t *testing.T) {
	_, err := yay.Parse("a:\t1\n")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestRoundTripThroughYAYEncoder(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"name": value.String("Alice"),
		"age":  value.IntegerFromInt64(30),
	})
	text, err := yay.Encode(v, yay.FormatYAY)
	qt.Assert(t, qt.IsNil(err))
	got, err := yay.Parse(text)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(value.Equal(got, v), true))
}

func TestEncodeJSONRejectsBytes(t *testing.T) {
	v := value.Object(map[string]value.Value{"k": value.Bytes([]byte{0xca, 0xfe})})
	_, err := yay.Encode(v, yay.FormatJSON)
	qt.Assert(t, qt.Not(qt.IsNil(err)))

	ysonText, err := yay.Encode(v, yay.FormatYSON)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Contains(ysonText, `"*cafe"`), true))
}
