package yayshon_test

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayshon"
)

func TestParseBracketEmptyArray(t *testing.T) {
	v, n, err := yayshon.ParseBracket([]string{"[]"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 1))
	items, ok := v.AsArray()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.HasLen(items, 0))
}

func TestParseBracketEmptyObject(t *testing.T) {
	v, n, err := yayshon.ParseBracket([]string{"[--]"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 1))
	qt.Assert(t, qt.Equals(v.Kind(), value.KindObject))
}

func TestParseBracketArrayOfAtoms(t *testing.T) {
	v, n, err := yayshon.ParseBracket([]string{"[", "1", "2.5", "hello", "]"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 5))
	items, _ := v.AsArray()
	qt.Assert(t, qt.HasLen(items, 3))
	n0, ok := items[0].AsInteger()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(n0.Int64(), int64(1)))
}

func TestParseBracketObjectFromDashDashKeys(t *testing.T) {
	v, n, err := yayshon.ParseBracket([]string{"[", "--name", "alice", "--age", "30", "]"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 6))
	qt.Assert(t, qt.DeepEquals(v.Keys(), []string{"age", "name"}))
}

func TestParseBracketNullTrueFalse(t *testing.T) {
	v, _, err := yayshon.ParseBracket([]string{"[", "-n", "-t", "-f", "]"})
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	qt.Assert(t, qt.Equals(items[0].Kind(), value.KindNull))
	b1, _ := items[1].AsBool()
	qt.Assert(t, qt.Equals(b1, true))
	b2, _ := items[2].AsBool()
	qt.Assert(t, qt.Equals(b2, false))
}

func TestParseBracketInfinityAndNaN(t *testing.T) {
	v, _, err := yayshon.ParseBracket([]string{"[", "-I", "-i", "-N", "]"})
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	f0, _ := items[0].AsFloat()
	qt.Assert(t, qt.Equals(math.IsInf(f0, 1), true))
	f1, _ := items[1].AsFloat()
	qt.Assert(t, qt.Equals(math.IsInf(f1, -1), true))
	f2, _ := items[2].AsFloat()
	qt.Assert(t, qt.Equals(math.IsNaN(f2), true))
}

func TestParseBracketHexBytes(t *testing.T) {
	v, _, err := yayshon.ParseBracket([]string{"[", "-x", "cafe", "]"})
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	b, ok := items[0].AsBytes()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.DeepEquals(b, []byte{0xca, 0xfe}))
}

func TestParseBracketEscapedDashString(t *testing.T) {
	v, _, err := yayshon.ParseBracket([]string{"[", "--", "-n", "]"})
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	s, ok := items[0].AsString()
	qt.Assert(t, qt.Equals(ok, true))
	qt.Assert(t, qt.Equals(s, "-n"))
}

func TestParseBracketNestedGroup(t *testing.T) {
	v, _, err := yayshon.ParseBracket([]string{"[", "[", "1", "]", "2", "]"})
	qt.Assert(t, qt.IsNil(err))
	items, _ := v.AsArray()
	qt.Assert(t, qt.HasLen(items, 2))
	qt.Assert(t, qt.Equals(items[0].Kind(), value.KindArray))
}

func TestParseBracketUnclosedErrors(t *testing.T) {
	_, _, err := yayshon.ParseBracket([]string{"[", "1"})
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}
