package value_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
)

func TestEqualNaN(t *testing.T) {
	a := value.Float(math.NaN())
	b := value.Float(math.NaN())
	qt.Assert(t, qt.Equals(value.Equal(a, b), true))
}

func TestEqualSignedZero(t *testing.T) {
	pos := value.Float(0)
	neg := value.Float(math.Copysign(0, -1))
	qt.Assert(t, qt.Equals(value.Equal(pos, neg), false))
}

func TestEqualIgnoresObjectOrder(t *testing.T) {
	a := value.ObjectOrdered(map[string]value.Value{
		"a": value.IntegerFromInt64(1),
		"b": value.IntegerFromInt64(2),
	}, []string{"a", "b"})
	b := value.ObjectOrdered(map[string]value.Value{
		"b": value.IntegerFromInt64(2),
		"a": value.IntegerFromInt64(1),
	}, []string{"b", "a"})
	qt.Assert(t, qt.Equals(value.Equal(a, b), true))
}

func TestKeysSortedByDefault(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"z": value.Null,
		"a": value.Null,
		"m": value.Null,
	})
	qt.Assert(t, qt.DeepEquals(v.Keys(), []string{"a", "m", "z"}))
}

func TestKeysPreservesOrder(t *testing.T) {
	v := value.ObjectOrdered(map[string]value.Value{
		"z": value.Null, "a": value.Null,
	}, []string{"z", "a"})
	qt.Assert(t, qt.DeepEquals(v.Keys(), []string{"z", "a"}))
}

func TestJSONIncompatibilityBytes(t *testing.T) {
	v := value.Bytes([]byte{0xca, 0xfe})
	qt.Assert(t, qt.Equals(v.JSONIncompatibility(), "byte arrays"))
}

func TestJSONIncompatibilityInteger(t *testing.T) {
	v := value.Integer(big.NewInt(42))
	qt.Assert(t, qt.Not(qt.Equals(v.JSONIncompatibility(), "")))
}

func TestJSONIncompatibilityNestedInArray(t *testing.T) {
	v := value.Array([]value.Value{value.IntegerFromInt64(1), value.Bytes(nil)})
	qt.Assert(t, qt.Equals(v.JSONIncompatibility(), "byte arrays"))
}

func TestJSONIncompatibilityFiniteFloatOK(t *testing.T) {
	v := value.Float(1.5)
	qt.Assert(t, qt.Equals(v.JSONIncompatibility(), ""))
}

func TestJSONIncompatibilityNonFiniteFloat(t *testing.T) {
	v := value.Float(math.Inf(1))
	qt.Assert(t, qt.Equals(v.JSONIncompatibility(), "non-finite floats"))
}
