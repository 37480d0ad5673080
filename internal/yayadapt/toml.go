package yayadapt

import (
	"math"
	"math/big"

	"github.com/pelletier/go-toml/v2"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

// DecodeTOML parses a TOML document into a Value. TOML has no null,
// so every value it produces is non-null.
func DecodeTOML(source string) (value.Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(source), &raw); err != nil {
		return value.Value{}, yayerr.Newf(yayerr.KindTOMLUnsupported, "invalid TOML: %v", err)
	}
	return tomlToValue(raw)
}

func tomlToValue(raw any) (value.Value, error) {
	switch x := raw.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(x), nil
	case int64:
		return value.IntegerFromInt64(x), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case []any:
		items := make([]value.Value, len(x))
		for i, el := range x {
			v, err := tomlToValue(el)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.Array(items), nil
	case map[string]any:
		obj := map[string]value.Value{}
		for k, el := range x {
			v, err := tomlToValue(el)
			if err != nil {
				return value.Value{}, err
			}
			obj[k] = v
		}
		return value.Object(obj), nil
	default:
		return value.Value{}, yayerr.Newf(yayerr.KindTOMLUnsupported, "unsupported TOML value %T", x)
	}
}

// EncodeTOML renders v as TOML. TOML cannot represent Null, Bytes, or
// arbitrary-precision Integer (values outside int64 range), and its
// top level must be an Object; each is reported as a distinct
// json_incompatibility-style refusal, per spec.md §4's transcoding
// error list.
func EncodeTOML(v value.Value) (string, error) {
	if v.Kind() != value.KindObject {
		return "", yayerr.New(yayerr.KindTOMLUnsupported, "TOML documents must have an object at the top level")
	}
	data, err := valueToTOML(v)
	if err != nil {
		return "", err
	}
	out, err := toml.Marshal(data)
	if err != nil {
		return "", yayerr.Newf(yayerr.KindTOMLUnsupported, "cannot encode to TOML: %v", err)
	}
	return string(out), nil
}

var maxInt64Big = big.NewInt(math.MaxInt64)
var minInt64Big = big.NewInt(math.MinInt64)

func valueToTOML(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, yayerr.New(yayerr.KindTOMLUnsupported, "TOML cannot represent null")
	case value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case value.KindInteger:
		n, _ := v.AsInteger()
		if n.Cmp(maxInt64Big) > 0 || n.Cmp(minInt64Big) < 0 {
			return nil, yayerr.New(yayerr.KindTOMLUnsupported, "TOML cannot represent integers outside int64 range")
		}
		return n.Int64(), nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f, nil
	case value.KindString:
		s, _ := v.AsString()
		return s, nil
	case value.KindBytes:
		return nil, yayerr.New(yayerr.KindTOMLUnsupported, "TOML cannot represent byte arrays")
	case value.KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i, it := range items {
			x, err := valueToTOML(it)
			if err != nil {
				return nil, err
			}
			out[i] = x
		}
		return out, nil
	case value.KindObject:
		keys := v.Keys()
		obj, _ := v.AsObject()
		m := map[string]any{}
		for _, k := range keys {
			x, err := valueToTOML(obj[k])
			if err != nil {
				return nil, err
			}
			m[k] = x
		}
		return m, nil
	default:
		return nil, yayerr.New(yayerr.KindTOMLUnsupported, "unsupported value kind")
	}
}
