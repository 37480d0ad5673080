package yaycbor_test

import (
	"math/big"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yaycbor"
)

func TestEncodeFloatIsAlwaysMajor7Info27(t *testing.T) {
	data, err := yaycbor.Encode(value.Float(1.0))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(data, []byte{0xfb, 0x3f, 0xf0, 0, 0, 0, 0, 0, 0}))
}

func TestEncodeMaxUint64(t *testing.T) {
	n := new(big.Int).SetUint64(1<<64 - 1)
	data, err := yaycbor.Encode(value.Integer(n))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(data, []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
}

func TestEncodeNegativeTwoToThe64(t *testing.T) {
	n := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 64))
	data, err := yaycbor.Encode(value.Integer(n))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(data[0], byte(0x3b)))
}

func TestEncodeIntegerOverflow(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err := yaycbor.Encode(value.Integer(n))
	qt.Assert(t, qt.Not(qt.IsNil(err)))

	m := new(big.Int).Neg(new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1)))
	_, err = yaycbor.Encode(value.Integer(m))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestEncodeDeterministic(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"b": value.IntegerFromInt64(2),
		"a": value.IntegerFromInt64(1),
	})
	d1, err := yaycbor.Encode(v)
	qt.Assert(t, qt.IsNil(err))
	d2, err := yaycbor.Encode(v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(d1, d2))
}

func TestEncodeNullAndBool(t *testing.T) {
	data, err := yaycbor.Encode(value.Null)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(data, []byte{0xf6}))

	data, err = yaycbor.Encode(value.Bool(true))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(data, []byte{0xf5}))
}

func TestRoundTripDecode(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"n":   value.IntegerFromInt64(42),
		"s":   value.String("hi"),
		"arr": value.Array([]value.Value{value.Bool(true), value.Null}),
	})
	data, err := yaycbor.Encode(v)
	qt.Assert(t, qt.IsNil(err))
	got, err := yaycbor.Decode(data)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(value.Equal(got, v), true))
}
