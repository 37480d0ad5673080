package yayenc

import (
	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

// Encode serializes v as text in the given format.
func Encode(v value.Value, format Format) (string, error) {
	switch format {
	case FormatYAY:
		return EncodeYAY(v), nil
	case FormatJSON:
		return EncodeJSON(v)
	case FormatYSON:
		return EncodeYSON(v), nil
	case FormatJavaScript, FormatGo, FormatPython, FormatRust, FormatC, FormatJava, FormatScheme:
		return EncodeLiteral(v, format), nil
	default:
		return "", yayerr.Newf(yayerr.KindGeneric, "unknown format %v", format)
	}
}
