package yayadapt_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayadapt"
)

func TestDecodeYAMLScalarTypes(t *testing.T) {
	v, err := yayadapt.DecodeYAML("a: 1\nb: true\nc: hello\n")
	qt.Assert(t, qt.IsNil(err))
	obj, _ := v.AsObject()
	n, _ := obj["a"].AsInteger()
	qt.Assert(t, qt.Equals(n.Int64(), int64(1)))
	bb, _ := obj["b"].AsBool()
	qt.Assert(t, qt.Equals(bb, true))
}

func TestDecodeYAMLRejectsNonStringKeys(t *testing.T) {
	_, err := yayadapt.DecodeYAML("? 1\n: a\n")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestEncodeYAMLPreservesKeyOrder(t *testing.T) {
	v := value.ObjectOrdered(map[string]value.Value{
		"z": value.IntegerFromInt64(1), "a": value.IntegerFromInt64(2),
	}, []string{"z", "a"})
	text, err := yayadapt.EncodeYAML(v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Index(text, "z:") < strings.Index(text, "a:"), true))
}

func TestEncodeYAMLBytesAsHexString(t *testing.T) {
	v := value.Bytes([]byte{0xca, 0xfe})
	text, err := yayadapt.EncodeYAML(v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Contains(text, "cafe"), true))
}

func TestYAMLRoundTripArray(t *testing.T) {
	v := value.Array([]value.Value{value.IntegerFromInt64(1), value.String("x")})
	text, err := yayadapt.EncodeYAML(v)
	qt.Assert(t, qt.IsNil(err))
	got, err := yayadapt.DecodeYAML(text)
	qt.Assert(t, qt.IsNil(err))
	items, _ := got.AsArray()
	qt.Assert(t, qt.HasLen(items, 2))
}
