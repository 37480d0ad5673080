package yayyson_test

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayyson"
)

func TestParseTypedInteger(t *testing.T) {
	v, err := yayyson.Parse(`"#42"`)
	qt.Assert(t, qt.IsNil(err))
	n, ok := v.AsInteger()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(n.Int64(), int64(42)))
}

func TestParseTypedBytes(t *testing.T) {
	v, err := yayyson.Parse(`"*cafe"`)
	qt.Assert(t, qt.IsNil(err))
	b, ok := v.AsBytes()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.DeepEquals(b, []byte{0xca, 0xfe}))
}

func TestParseNaN(t *testing.T) {
	v, err := yayyson.Parse(`"#NaN"`)
	qt.Assert(t, qt.IsNil(err))
	f, _ := v.AsFloat()
	qt.Assert(t, qt.Equals(math.IsNaN(f), true))
}

func TestParseEscapedReservedPrefix(t *testing.T) {
	v, err := yayyson.Parse(`"!#not-a-number"`)
	qt.Assert(t, qt.IsNil(err))
	s, _ := v.AsString()
	qt.Assert(t, qt.Equals(s, "#not-a-number"))
}

func TestParseNumbersAreFloat(t *testing.T) {
	v, err := yayyson.Parse(`42`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.Kind(), value.KindFloat))
}

func TestParseObjectKeysSorted(t *testing.T) {
	v, err := yayyson.Parse(`{"z": 1, "a": 2}`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(v.Keys(), []string{"a", "z"}))
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := yayyson.Parse(`"abc`)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}
