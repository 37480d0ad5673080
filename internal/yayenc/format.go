// Package yayenc implements the deterministic value-to-text encoder
// family: strict YAY, JSON, the YSON JSON superset, and source-literal
// encoders for seven programming languages.
//
// Grounded on spec.md §4.5 for every format's rules; the YAY encoder
// uses the same two-space indent as internal/yaycst's formatter but
// drives from a value.Value with no comments, and it chooses inline vs
// block form by element count and simplicity (see fitsInline) rather
// than by the formatter's wrap-width budget.
package yayenc

import "fmt"

// Format names an output format.
type Format int

const (
	FormatYAY Format = iota
	FormatJSON
	FormatYSON
	FormatJavaScript
	FormatGo
	FormatPython
	FormatRust
	FormatC
	FormatJava
	FormatScheme
)

func (f Format) String() string {
	switch f {
	case FormatYAY:
		return "yay"
	case FormatJSON:
		return "json"
	case FormatYSON:
		return "yson"
	case FormatJavaScript:
		return "javascript"
	case FormatGo:
		return "go"
	case FormatPython:
		return "python"
	case FormatRust:
		return "rust"
	case FormatC:
		return "c"
	case FormatJava:
		return "java"
	case FormatScheme:
		return "scheme"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// DefaultWidth is the column budget language-literal encoders use to
// decide between a single-line and a multi-line literal.
const DefaultWidth = 80
