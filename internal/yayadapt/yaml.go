// Package yayadapt bridges Value to and from two foreign formats that
// the core encoder family does not own outright: YAML (via
// go.yaml.in/yaml/v3, the teacher's YAML stack) and TOML (via
// github.com/pelletier/go-toml/v2, carried from the rest of the
// example pack). Decoding, and TOML encoding, go through each
// library's generic any-typed API rather than struct tags, since
// Value's shape is dynamic; YAML encoding builds a *yaml.Node tree so
// that mapping keys follow Value.Keys order.
package yayadapt

import (
	"math"
	"math/big"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// DecodeYAML parses a YAML document into a Value.
func DecodeYAML(source string) (value.Value, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(source), &raw); err != nil {
		return value.Value{}, yayerr.Newf(yayerr.KindYAMLUnsupported, "invalid YAML: %v", err)
	}
	return yamlToValue(raw)
}

func yamlToValue(raw any) (value.Value, error) {
	switch x := raw.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.IntegerFromInt64(int64(x)), nil
	case int64:
		return value.IntegerFromInt64(x), nil
	case uint64:
		return value.Integer(new(big.Int).SetUint64(x)), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case []any:
		items := make([]value.Value, len(x))
		for i, el := range x {
			v, err := yamlToValue(el)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.Array(items), nil
	case map[string]any:
		obj := map[string]value.Value{}
		for k, el := range x {
			v, err := yamlToValue(el)
			if err != nil {
				return value.Value{}, err
			}
			obj[k] = v
		}
		return value.Object(obj), nil
	case map[any]any:
		obj := map[string]value.Value{}
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return value.Value{}, yayerr.New(yayerr.KindYAMLUnsupported, "non-string YAML key")
			}
			v, err := yamlToValue(el)
			if err != nil {
				return value.Value{}, err
			}
			obj[ks] = v
		}
		return value.Object(obj), nil
	default:
		return value.Value{}, yayerr.Newf(yayerr.KindYAMLUnsupported, "unsupported YAML value %T", x)
	}
}

// EncodeYAML renders v as YAML. Integer and Bytes have no native YAML
// tag distinct from scalars here: integers round-trip as decimal
// scalars and bytes round-trip as a plain hex string, matching the
// teacher's practice of leaning on go.yaml.in/yaml/v3's default scalar
// styling rather than hand-rolling tag annotations. Object key order
// is preserved by building a *yaml.Node mapping node directly, since
// v3's generic Marshal(map[string]any) would otherwise sort keys.
func EncodeYAML(v value.Value) (string, error) {
	node, err := valueToYAMLNode(v)
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", yayerr.Newf(yayerr.KindYAMLUnsupported, "cannot encode to YAML: %v", err)
	}
	return string(out), nil
}

func valueToYAMLNode(v value.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case value.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case value.KindBool:
		b, _ := v.AsBool()
		s := "false"
		if b {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: s}, nil
	case value.KindInteger:
		n, _ := v.AsInteger()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: n.String()}, nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatYAMLFloat(f)}, nil
	case value.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case value.KindBytes:
		by, _ := v.AsBytes()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: hexString(by)}, nil
	case value.KindArray:
		items, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, it := range items {
			child, err := valueToYAMLNode(it)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case value.KindObject:
		keys := v.Keys()
		obj, _ := v.AsObject()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			valNode, err := valueToYAMLNode(obj[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil
	default:
		return nil, yayerr.New(yayerr.KindYAMLUnsupported, "unsupported value kind")
	}
}

func hexString(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexdigits[c>>4]
		out[i*2+1] = hexdigits[c&0xf]
	}
	return string(out)
}
