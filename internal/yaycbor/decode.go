package yaycbor

import (
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

// Decode parses CBOR bytes into a Value. Tags and non-text-string map
// keys are errors. The undefined simple value is not rejected: the
// library decodes it to nil, so it becomes Null.
func Decode(data []byte) (value.Value, error) {
	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return value.Value{}, yayerr.Newf(yayerr.KindCBORUnsupported, "invalid CBOR: %v", err)
	}
	return fromRaw(raw)
}

func fromRaw(raw any) (value.Value, error) {
	switch x := raw.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(x), nil
	case uint64:
		return value.Integer(new(big.Int).SetUint64(x)), nil
	case int64:
		return value.IntegerFromInt64(x), nil
	case float32:
		return value.Float(float64(x)), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case []byte:
		return value.Bytes(x), nil
	case []any:
		items := make([]value.Value, len(x))
		for i, el := range x {
			v, err := fromRaw(el)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.Array(items), nil
	case map[any]any:
		obj := map[string]value.Value{}
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return value.Value{}, yayerr.New(yayerr.KindCBORUnsupported, "non-text map key")
			}
			v, err := fromRaw(el)
			if err != nil {
				return value.Value{}, err
			}
			obj[ks] = v
		}
		return value.Object(obj), nil
	case cbor.Tag:
		return value.Value{}, yayerr.New(yayerr.KindCBORUnsupported, "CBOR tags are not supported")
	case cbor.RawTag:
		return value.Value{}, yayerr.New(yayerr.KindCBORUnsupported, "CBOR tags are not supported")
	default:
		return value.Value{}, yayerr.Newf(yayerr.KindCBORUnsupported, "unsupported CBOR value %T", x)
	}
}
