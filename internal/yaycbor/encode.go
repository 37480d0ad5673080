// Package yaycbor implements wire-exact CBOR encoding and a diagnostic
// renderer for YAY values, plus decoding back into the value model via
// github.com/fxamacker/cbor/v2.
//
// Grounded on spec.md §4.5's CBOR emission rules and RFC 8949. The
// encoder is hand-rolled rather than built on fxamacker/cbor/v2's
// Marshal because that library chooses the shortest float width
// (float16/32/64) and can emit indefinite-length strings; spec.md
// requires float64 always and definite-length always, neither of
// which fxamacker's default encode options produce without per-call
// configuration this package does not want to depend on staying
// stable. Decoding has no such conflicting requirement, so it goes
// through the library. See DESIGN.md.
package yaycbor

import (
	"math"
	"math/big"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// Encode renders v as CBOR bytes per spec.md §4.5: simple values for
// null/bool, smallest-width native integers (major 0/1, no bignum
// tags), float64-always for Float, definite-length strings/arrays/maps
// with map keys sorted and text-only.
func Encode(v value.Value) ([]byte, error) {
	var out []byte
	out, err := appendValue(out, v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func appendValue(out []byte, v value.Value) ([]byte, error) {
	switch v.Kind() {
	case value.KindNull:
		return append(out, 0xf6), nil
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return append(out, 0xf5), nil
		}
		return append(out, 0xf4), nil
	case value.KindInteger:
		n, _ := v.AsInteger()
		return appendInteger(out, n)
	case value.KindFloat:
		f, _ := v.AsFloat()
		return appendFloat(out, f), nil
	case value.KindString:
		s, _ := v.AsString()
		out = appendHead(out, 3, uint64(len(s)))
		return append(out, s...), nil
	case value.KindBytes:
		by, _ := v.AsBytes()
		out = appendHead(out, 2, uint64(len(by)))
		return append(out, by...), nil
	case value.KindArray:
		items, _ := v.AsArray()
		out = appendHead(out, 4, uint64(len(items)))
		for _, it := range items {
			var err error
			out, err = appendValue(out, it)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case value.KindObject:
		keys := v.Keys()
		obj, _ := v.AsObject()
		out = appendHead(out, 5, uint64(len(keys)))
		for _, k := range keys {
			out = appendHead(out, 3, uint64(len(k)))
			out = append(out, k...)
			var err error
			out, err = appendValue(out, obj[k])
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, yayerr.New(yayerr.KindCBORUnsupported, "unsupported value kind")
	}
}

func appendInteger(out []byte, n *big.Int) ([]byte, error) {
	if n.Sign() >= 0 {
		if n.Cmp(maxUint64) > 0 {
			return nil, yayerr.New(yayerr.KindCBOROverflow, "integer exceeds native integer range")
		}
		return appendHead(out, 0, n.Uint64()), nil
	}
	mag := new(big.Int).Neg(n)
	mag.Sub(mag, big.NewInt(1))
	if mag.Cmp(maxUint64) > 0 {
		return nil, yayerr.New(yayerr.KindCBOROverflow, "integer exceeds native integer range")
	}
	return appendHead(out, 1, mag.Uint64()), nil
}

func appendFloat(out []byte, f float64) []byte {
	out = append(out, 0xfb)
	bits := math.Float64bits(f)
	for shift := 56; shift >= 0; shift -= 8 {
		out = append(out, byte(bits>>uint(shift)))
	}
	return out
}

// appendHead appends a CBOR major-type/argument head using the
// smallest encoding for n (direct 0-23, or 1/2/4/8-byte length
// prefix), matching RFC 8949 §3's canonical rules.
func appendHead(out []byte, major byte, n uint64) []byte {
	mt := major << 5
	switch {
	case n < 24:
		return append(out, mt|byte(n))
	case n <= 0xff:
		return append(out, mt|24, byte(n))
	case n <= 0xffff:
		return append(out, mt|25, byte(n>>8), byte(n))
	case n <= 0xffffffff:
		return append(out, mt|26, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	default:
		out = append(out, mt|27)
		for shift := 56; shift >= 0; shift -= 8 {
			out = append(out, byte(n>>uint(shift)))
		}
		return out
	}
}
