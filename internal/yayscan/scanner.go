// Package yayscan implements phase 1 of the strict parsing pipeline: raw
// text validation and per-line structural tokenization into ScanLines.
//
// Grounded on original_source/rust/libyay/src/scanner.rs; the validation
// order, error kinds, and leader-extraction rules follow that file and
// spec.md §4.1 exactly.
package yayscan

import (
	"strings"
	"unicode/utf8"

	"github.com/kriskowal/yay/internal/yayerr"
)

// Line holds one line of source after indent and list-leader extraction.
type Line struct {
	// Content after indent and leader.
	Content string
	// Number of leading spaces.
	Indent int
	// "- " for list items, "" otherwise.
	Leader string
	// Zero-based source line number, for error reporting.
	LineNum int
}

// Result is the scanner's output: the scanned lines plus whether any
// top-level comment was seen (needed by the parser to distinguish an
// empty document from one that was "only comments").
type Result struct {
	Lines       []Line
	HadComments bool
}

// Scan validates and tokenizes source into scan lines. filename is used
// only to annotate errors.
func Scan(source, filename string) (Result, error) {
	if err := validateNoBOM(source, filename); err != nil {
		return Result{}, err
	}
	if err := validateCodePoints(source, filename); err != nil {
		return Result{}, err
	}
	return scanLines(source, filename)
}

func validateNoBOM(source, filename string) error {
	if strings.HasPrefix(source, "\xef\xbb\xbf") {
		return yayerr.New(yayerr.KindIllegalBOM, "Illegal BOM").WithLocation(filename, 0, 0)
	}
	return nil
}

// isAllowedCodePoint mirrors scanner.rs's is_allowed_code_point: only
// U+000A and printable/private-use/supplementary code points outside
// the noncharacter ranges are permitted.
func isAllowedCodePoint(cp rune) bool {
	switch {
	case cp == 0x000A:
		return true
	case cp >= 0x0020 && cp <= 0x007E:
		return true
	case cp >= 0x00A0 && cp <= 0xD7FF:
		return true
	case cp >= 0xE000 && cp <= 0xFFFD:
		return !(cp >= 0xFDD0 && cp <= 0xFDEF)
	case cp >= 0x10000 && cp <= 0x10FFFF:
		return (cp & 0xFFFF) < 0xFFFE
	default:
		return false
	}
}

func validateCodePoints(source, filename string) error {
	line, col := 0, 0
	for i, r := range source {
		if r == utf8.RuneError && !strings.HasPrefix(source[i:], "\xef\xbf\xbd") {
			// A lone surrogate or invalid byte decodes to RuneError;
			// treat it as an illegal surrogate per spec.md §4.1.2. A
			// literal U+FFFD in the source is an allowed code point.
			return yayerr.New(yayerr.KindIllegalSurrogate, "Illegal surrogate").
				WithLocation(filename, line, col)
		}
		if !isAllowedCodePoint(r) {
			switch {
			case r == 0x0009:
				return yayerr.New(yayerr.KindTabNotAllowed, "Tab not allowed (use spaces)").
					WithLocation(filename, line, col)
			case r >= 0xD800 && r <= 0xDFFF:
				return yayerr.New(yayerr.KindIllegalSurrogate, "Illegal surrogate").
					WithLocation(filename, line, col)
			default:
				return yayerr.Newf(yayerr.KindForbiddenCodePoint, "Forbidden code point U+%04X", r).
					WithLocation(filename, line, col)
			}
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return nil
}

func scanLines(source, filename string) (Result, error) {
	var res Result
	rawLines := strings.Split(source, "\n")
	// A final newline ends the last line; it does not begin another.
	if len(rawLines) > 1 && rawLines[len(rawLines)-1] == "" {
		rawLines = rawLines[:len(rawLines)-1]
	}
	for lineNum, raw := range rawLines {
		if raw != "" && strings.HasSuffix(raw, " ") {
			return Result{}, yayerr.New(yayerr.KindTrailingSpace, "Unexpected trailing space").
				WithLocation(filename, lineNum, len(raw)-1)
		}

		indent := countIndent(raw)
		rest := raw[indent:]

		if indent == 0 && strings.HasPrefix(rest, "#") {
			res.HadComments = true
			continue
		}

		leader, content, err := extractLeader(rest, lineNum, indent, filename)
		if err != nil {
			return Result{}, err
		}

		res.Lines = append(res.Lines, Line{
			Content: content,
			Indent:  indent,
			Leader:  leader,
			LineNum: lineNum,
		})
	}
	return res, nil
}

func countIndent(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

func extractLeader(rest string, lineNum, indent int, filename string) (leader, content string, err error) {
	if after, ok := strings.CutPrefix(rest, "- "); ok {
		return "- ", after, nil
	}

	if strings.HasPrefix(rest, "-") && len(rest) >= 2 {
		second := rest[1]
		isDigit := second >= '0' && second <= '9'
		if second != ' ' && second != '.' && !isDigit && rest != "-infinity" {
			return "", "", yayerr.Newf(yayerr.KindExpectedSpaceAfter, "Expected space after \"-\"").
				WithLocation(filename, lineNum, indent+1)
		}
	}

	if rest == "*" || strings.HasPrefix(rest, "* ") {
		return "", "", yayerr.New(yayerr.KindUnexpectedChar, "Unexpected character \"*\"").
			WithLocation(filename, lineNum, indent)
	}

	return "", rest, nil
}
