package yayparse_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
	"github.com/kriskowal/yay/internal/yaylex"
	"github.com/kriskowal/yay/internal/yayparse"
	"github.com/kriskowal/yay/internal/yayscan"
)

func parse(t *testing.T, source string) (value.Value, error) {
	t.Helper()
	res, err := yayscan.Scan(source, "")
	if err != nil {
		return value.Value{}, err
	}
	toks := yaylex.Lex(res.Lines)
	return yayparse.ParseRoot(toks, "", res.HadComments)
}

func TestParseEmptyDocumentIsNull(t *testing.T) {
	v, err := parse(t, "")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.Kind(), value.KindNull))
}

func TestParseOnlyCommentsErrors(t *testing.T) {
	_, err := parse(t, "# just a comment\n")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestParseKeywords(t *testing.T) {
	cases := map[string]value.Value{
		"null":     value.Null,
		"true":     value.Bool(true),
		"false":    value.Bool(false),
		"infinity": value.Float(math.Inf(1)),
	}
	for src, want := range cases {
		v, err := parse(t, src)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(value.Equal(v, want), true))
	}
}

func TestParseNaNKeyword(t *testing.T) {
	v, err := parse(t, "nan")
	qt.Assert(t, qt.IsNil(err))
	f, _ := v.AsFloat()
	qt.Assert(t, qt.Equals(math.IsNaN(f), true))
}

func TestParseIntegerGrouping(t *testing.T) {
	v, err := parse(t, "1 000 000")
	qt.Assert(t, qt.IsNil(err))
	n, ok := v.AsInteger()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(n.Cmp(big.NewInt(1000000)), 0))
}

func TestParseUppercaseExponentRejected(t *testing.T) {
	_, err := parse(t, "1E10")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestParseFlatObject(t *testing.T) {
	v, err := parse(t, "a: 1\nb: 2\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(v.Keys(), []string{"a", "b"}))
}

func TestParseNestedObject(t *testing.T) {
	v, err := parse(t, "outer:\n  inner: 1\n")
	qt.Assert(t, qt.IsNil(err))
	obj, _ := v.AsObject()
	inner := obj["outer"]
	qt.Assert(t, qt.Equals(inner.Kind(), value.KindObject))
}

func TestParseArrayOfScalars(t *testing.T) {
	v, err := parse(t, "- 1\n- 2\n- 3\n")
	qt.Assert(t, qt.IsNil(err))
	items, ok := v.AsArray()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.HasLen(items, 3))
}

func TestParseArrayOfObjects(t *testing.T) {
	v, err := parse(t, "- name: \"a\"\n  value: 1\n- name: \"b\"\n  value: 2\n")
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	qt.Assert(t, qt.HasLen(items, 2))
	obj0, _ := items[0].AsObject()
	s, _ := obj0["name"].AsString()
	qt.Assert(t, qt.Equals(s, "a"))
}

func TestParseDoubleQuotedEscapes(t *testing.T) {
	v, err := parse(t, `"a\nb"`)
	qt.Assert(t, qt.IsNil(err))
	s, _ := v.AsString()
	qt.Assert(t, qt.Equals(s, "a\nb"))
}

func TestParseUnicodeEscape(t *testing.T) {
	v, err := parse(t, `"\u{48}\u{65}llo"`)
	qt.Assert(t, qt.IsNil(err))
	s, _ := v.AsString()
	qt.Assert(t, qt.Equals(s, "Hello"))
}

func TestParseLegacyUnicodeEscapeRejected(t *testing.T) {
	_, err := parse(t, "\"\\u0048\"")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestParseSingleQuotedLiteral(t *testing.T) {
	v, err := parse(t, `'a\nb'`)
	qt.Assert(t, qt.IsNil(err))
	s, _ := v.AsString()
	qt.Assert(t, qt.Equals(s, `a\nb`))
}

func TestParseInlineBytes(t *testing.T) {
	v, err := parse(t, "<cafe01>")
	qt.Assert(t, qt.IsNil(err))
	b, ok := v.AsBytes()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.DeepEquals(b, []byte{0xca, 0xfe, 0x01}))
}

func TestParseInlineBytesUppercaseRejected(t *testing.T) {
	_, err := parse(t, "<CAFE>")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestParseInlineBytesOddDigitsRejected(t *testing.T) {
	_, err := parse(t, "<abc>")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestParseBlockString(t *testing.T) {
	v, err := parse(t, "` first line\n second line\n")
	qt.Assert(t, qt.IsNil(err))
	s, _ := v.AsString()
	qt.Assert(t, qt.Equals(s, "first line\nsecond line\n"))
}

func TestParseBlockStringLeaderUnaffectedByDeeperContinuationIndent(t *testing.T) {
	// The continuation is indented 2 spaces past the leader, so
	// minIndent is 1; the leader line itself must not be trimmed by it.
	v, err := parse(t, "` first line\n  second line\n")
	qt.Assert(t, qt.IsNil(err))
	s, _ := v.AsString()
	qt.Assert(t, qt.Equals(s, "first line\nsecond line\n"))
}

func TestParseBlockBytes(t *testing.T) {
	v, err := parse(t, ">\n  cafe\n  0102\n")
	qt.Assert(t, qt.IsNil(err))
	b, ok := v.AsBytes()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.DeepEquals(b, []byte{0xca, 0xfe, 0x01, 0x02}))
}

func TestParseInlineArray(t *testing.T) {
	v, err := parse(t, "[1, 2, 3]")
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	qt.Assert(t, qt.HasLen(items, 3))
}

func TestParseInlineObject(t *testing.T) {
	v, err := parse(t, "{a: 1, b: 2}")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(v.Keys(), []string{"a", "b"}))
}

func TestParseUnexpectedIndentErrors(t *testing.T) {
	_, err := parse(t, "  a: 1\n")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var kerr *yayerr.Error
	ok := false
	if e, isErr := err.(*yayerr.Error); isErr {
		kerr = e
		ok = true
	}
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(kerr.Kind, yayerr.KindUnexpectedIndent))
}

func TestParseExtraContentErrors(t *testing.T) {
	_, err := parse(t, "1\n2\n")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}
