// Package yay is the public entry point for the YAY toolchain: strict
// parsing, the lenient MEH reformatter, and the encoder family. It
// wires together the internal pipeline packages without exposing their
// intermediate representations.
package yay

import (
	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yaycst"
	"github.com/kriskowal/yay/internal/yayenc"
	"github.com/kriskowal/yay/internal/yaylex"
	"github.com/kriskowal/yay/internal/yayparse"
	"github.com/kriskowal/yay/internal/yayscan"
	"github.com/kriskowal/yay/internal/yayshon"
	"github.com/kriskowal/yay/internal/yayyson"
)

// Value is a parsed YAY value tree.
type Value = value.Value

// Format names an output format for Encode.
type Format = yayenc.Format

const (
	FormatYAY        = yayenc.FormatYAY
	FormatJSON       = yayenc.FormatJSON
	FormatYSON       = yayenc.FormatYSON
	FormatJavaScript = yayenc.FormatJavaScript
	FormatGo         = yayenc.FormatGo
	FormatPython     = yayenc.FormatPython
	FormatRust       = yayenc.FormatRust
	FormatC          = yayenc.FormatC
	FormatJava       = yayenc.FormatJava
	FormatScheme     = yayenc.FormatScheme
)

// Parse parses source as strict YAY with no filename attached to
// errors.
func Parse(source string) (Value, error) {
	return ParseWithFilename(source, "")
}

// ParseWithFilename parses source as strict YAY, attaching filename to
// any error location.
func ParseWithFilename(source, filename string) (Value, error) {
	scanned, err := yayscan.Scan(source, filename)
	if err != nil {
		return Value{}, err
	}
	tokens := yaylex.Lex(scanned.Lines)
	return yayparse.ParseRoot(tokens, filename, scanned.HadComments)
}

// FormatYAYText runs the lenient MEH pipeline over loosely-formatted
// YAY source, producing canonical strict YAY text. wrap is the
// line-wrap budget in columns; 0 selects yaycst.DefaultWrap.
func FormatYAYText(source string, wrap int) (string, error) {
	return yaycst.Reformat(source, wrap)
}

// Encode serializes v as text in the given format.
func Encode(v Value, format Format) (string, error) {
	return yayenc.Encode(v, format)
}

// ParseYSON parses a YSON (typed-string JSON superset) document.
func ParseYSON(source string) (Value, error) {
	return yayyson.Parse(source)
}

// ParseSHONBracket parses a SHON argument vector starting at args[0],
// which must be a bracket-opening token or one of the "-x", "-b", "-s"
// helpers, returning the parsed value and the number of argv elements
// consumed.
func ParseSHONBracket(args []string) (Value, int, error) {
	return yayshon.ParseBracket(args)
}
