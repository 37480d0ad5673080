// Package value implements the YAY value model: a closed, seven-variant
// tagged sum (eight counting Null) that every parser produces and every
// encoder consumes.
//
// Grounded on original_source/rust/libyay/src/value.rs. Integer uses
// math/big.Int for arbitrary precision rather than a third-party bignum
// library: the pack's only arbitrary-precision numeric type,
// github.com/cockroachdb/apd/v3, models decimal floating-point (for CUE's
// unified int/float numeric kind), which would silently round or lose
// the int/float distinction this value model needs to keep exact. See
// DESIGN.md.
package value

import (
	"math"
	"math/big"
	"sort"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindBytes
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a YAY value: exactly one of the eight variants above.
//
// The zero Value is Null. Values are immutable by convention: mutating
// array/object fields in place after construction is a programming
// error shared with every encoder and accessor in this package.
type Value struct {
	kind Kind
	b    bool
	i    *big.Int
	f    float64
	s    string
	by   []byte
	arr  []Value
	obj  map[string]Value
	// keys holds the explicit key order given to ObjectOrdered; nil
	// means "use sorted order", which is what Object and every parser
	// and decoder in this module produce.
	keys []string
}

// Null is the null Value.
var Null = Value{kind: KindNull}

// Bool constructs a Bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Integer constructs an Integer Value from a *big.Int. The BigInt is not
// copied; callers must not mutate it afterward.
func Integer(n *big.Int) Value { return Value{kind: KindInteger, i: n} }

// IntegerFromInt64 constructs an Integer Value from an int64.
func IntegerFromInt64(n int64) Value { return Value{kind: KindInteger, i: big.NewInt(n)} }

// Float constructs a Float Value. NaN and signed zero are preserved
// exactly, per spec.md §3.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String constructs a String Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes constructs a Bytes Value. The slice is not copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, by: b} }

// Array constructs an Array Value. The slice is not copied.
func Array(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// Object constructs an Object Value with sorted-key iteration order.
func Object(m map[string]Value) Value { return Value{kind: KindObject, obj: m} }

// ObjectOrdered constructs an Object Value that preserves the given key
// order for Keys/Pairs instead of sorting. No parser or decoder in this
// module builds objects this way; they all use Object.
func ObjectOrdered(m map[string]Value, order []string) Value {
	return Value{kind: KindObject, obj: m, keys: order}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the bool and true if v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInteger returns the *big.Int and true if v is an Integer.
func (v Value) AsInteger() (*big.Int, bool) { return v.i, v.kind == KindInteger }

// AsFloat returns the float64 and true if v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string and true if v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBytes returns the byte slice and true if v is Bytes.
func (v Value) AsBytes() ([]byte, bool) { return v.by, v.kind == KindBytes }

// AsArray returns the element slice and true if v is an Array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the backing map and true if v is an Object. Use Keys
// to iterate in the value's canonical order.
func (v Value) AsObject() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// Keys returns the object's keys in canonical iteration order: the
// order given to ObjectOrdered if that built this value, otherwise
// sorted lexicographically, per spec.md §3.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	if v.keys != nil {
		return v.keys
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports structural equality, treating NaN as equal to NaN and
// ignoring object key order, per spec.md §8's round-trip property.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInteger:
		return a.i.Cmp(b.i) == 0
	case KindFloat:
		if math.IsNaN(a.f) && math.IsNaN(b.f) {
			return true
		}
		return a.f == b.f && math.Signbit(a.f) == math.Signbit(b.f)
	case KindString:
		return a.s == b.s
	case KindBytes:
		if len(a.by) != len(b.by) {
			return false
		}
		for i := range a.by {
			if a.by[i] != b.by[i] {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// JSONIncompatibility returns a description of why v cannot be
// represented in JSON, or "" if it can. JSON cannot represent byte
// arrays, arbitrary-precision integers, or non-finite floats.
func (v Value) JSONIncompatibility() string {
	switch v.kind {
	case KindBytes:
		return "byte arrays"
	case KindInteger:
		return "integers (YAY integers are arbitrary precision)"
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return "non-finite floats"
		}
		return ""
	case KindArray:
		for _, e := range v.arr {
			if r := e.JSONIncompatibility(); r != "" {
				return r
			}
		}
		return ""
	case KindObject:
		for _, k := range v.Keys() {
			if r := v.obj[k].JSONIncompatibility(); r != "" {
				return r
			}
		}
		return ""
	default:
		return ""
	}
}
