// Package yayshon implements the SHON argument-vector parser: it
// builds a value.Value tree directly from a shell argv, sharing the
// value model with the rest of the toolchain. Grounded on spec.md
// §4.7.
package yayshon

import (
	"math/big"
	"os"
	"regexp"
	"strconv"

	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yayerr"
)

var (
	intRE      = regexp.MustCompile(`^-?[0-9]+$`)
	floatRE    = regexp.MustCompile(`^-?[0-9]*\.[0-9]+([eE][+-]?[0-9]+)?$`)
	expFloatRE = regexp.MustCompile(`^-?[0-9]+[eE][+-]?[0-9]+$`)
)

// ParseBracket parses a SHON argument vector starting at args[0], which
// must be "[", "[]", or "[--]", or one of the top-level helpers "-x",
// "-b", or "-s" followed by its argument. It returns the parsed value
// and how many elements of args were consumed.
func ParseBracket(args []string) (value.Value, int, error) {
	if len(args) == 0 {
		return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "expected a bracket token")
	}
	switch args[0] {
	case "-x", "-b", "-s":
		return parseElement(args)
	case "[]":
		return value.Array(nil), 1, nil
	case "[--]":
		return value.Object(map[string]value.Value{}), 1, nil
	case "[":
		return parseGroup(args)
	default:
		return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "expected \"[\", \"[]\", or \"[--]\"")
	}
}

// parseGroup parses the contents of an open bracket group: it peeks at
// the first element to decide object-vs-array, then dispatches
// per-element tokens until the matching "]".
func parseGroup(args []string) (value.Value, int, error) {
	i := 1 // past "["
	if i >= len(args) {
		return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "unclosed \"[\"")
	}
	if args[i] == "]" {
		return value.Array(nil), i + 1, nil
	}

	isObject := isKeyToken(args[i])
	if isObject {
		obj := map[string]value.Value{}
		for {
			if i >= len(args) {
				return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "unclosed \"[\"")
			}
			if args[i] == "]" {
				return value.Object(obj), i + 1, nil
			}
			if !isKeyToken(args[i]) {
				return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "expected \"--key\"")
			}
			key := args[i][2:]
			i++
			if i >= len(args) {
				return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "\"--"+key+"\" requires a value")
			}
			v, consumed, err := parseElement(args[i:])
			if err != nil {
				return value.Value{}, 0, err
			}
			obj[key] = v
			i += consumed
		}
	}

	var items []value.Value
	for {
		if i >= len(args) {
			return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "unclosed \"[\"")
		}
		if args[i] == "]" {
			return value.Array(items), i + 1, nil
		}
		v, consumed, err := parseElement(args[i:])
		if err != nil {
			return value.Value{}, 0, err
		}
		items = append(items, v)
		i += consumed
	}
}

func isKeyToken(s string) bool {
	return len(s) > 2 && s[0] == '-' && s[1] == '-'
}

// parseElement parses one element of a bracket group (args[0] is the
// element's first token) and reports how many args it consumed.
func parseElement(args []string) (value.Value, int, error) {
	if len(args) == 0 {
		return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "expected a value")
	}
	switch args[0] {
	case "[", "[]", "[--]":
		return ParseBracket(args)
	case "]":
		return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "\"]\" before \"[\"")
	case "--":
		if len(args) < 2 {
			return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "\"--\" requires a following token")
		}
		return value.String(args[1]), 2, nil
	case "-n":
		return value.Null, 1, nil
	case "-t":
		return value.Bool(true), 1, nil
	case "-f":
		return value.Bool(false), 1, nil
	case "-I":
		return value.Float(posInf()), 1, nil
	case "-i":
		return value.Float(negInf()), 1, nil
	case "-N":
		return value.Float(nan()), 1, nil
	case "-x":
		if len(args) < 2 {
			return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "\"-x\" requires a hex argument")
		}
		b, err := decodeHex(args[1])
		if err != nil {
			return value.Value{}, 0, err
		}
		return value.Bytes(b), 2, nil
	case "-b":
		if len(args) < 2 {
			return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "\"-b\" requires a file path")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return value.Value{}, 0, yayerr.Newf(yayerr.KindSHON, "cannot read %q: %v", args[1], err)
		}
		return value.Bytes(data), 2, nil
	case "-s":
		if len(args) < 2 {
			return value.Value{}, 0, yayerr.New(yayerr.KindSHON, "\"-s\" requires a file path")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return value.Value{}, 0, yayerr.Newf(yayerr.KindSHON, "cannot read %q: %v", args[1], err)
		}
		return value.String(string(data)), 2, nil
	default:
		return parseAtom(args[0]), 1, nil
	}
}

func parseAtom(s string) value.Value {
	switch {
	case intRE.MatchString(s):
		n, ok := new(big.Int).SetString(s, 10)
		if ok {
			return value.Integer(n)
		}
	case floatRE.MatchString(s), expFloatRE.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return value.Float(f)
		}
	}
	return value.String(s)
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, yayerr.New(yayerr.KindOddHexDigits, "Odd number of hex digits")
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok1 := hexDigit(s[i])
		lo, ok2 := hexDigit(s[i+1])
		if !ok1 || !ok2 {
			return nil, yayerr.New(yayerr.KindInvalidHexDigit, "Invalid hex digit")
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
