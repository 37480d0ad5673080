package yaylex_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/yayscan"
	"github.com/kriskowal/yay/internal/yaylex"
)

func scan(t *testing.T, source string) []yayscan.Line {
	t.Helper()
	res, err := yayscan.Scan(source, "")
	qt.Assert(t, qt.IsNil(err))
	return res.Lines
}

func TestLexFlatProperties(t *testing.T) {
	toks := yaylex.Lex(scan(t, "a: 1\nb: 2\n"))
	qt.Assert(t, qt.HasLen(toks, 2))
	qt.Assert(t, qt.Equals(toks[0].Type, yaylex.Text))
	qt.Assert(t, qt.Equals(toks[0].Text, "a: 1"))
}

func TestLexListStartStop(t *testing.T) {
	toks := yaylex.Lex(scan(t, "- 1\n- 2\n"))
	// Each top-level sibling item is preceded by a Stop/Start pair; the
	// leading Stop (nothing open yet) is swallowed by the parser's
	// initial skipBreaksAndStops.
	qt.Assert(t, qt.Equals(toks[0].Type, yaylex.Stop))
	qt.Assert(t, qt.Equals(toks[1].Type, yaylex.Start))
	qt.Assert(t, qt.Equals(toks[2].Type, yaylex.Text))
	qt.Assert(t, qt.Equals(toks[2].Text, "1"))
	qt.Assert(t, qt.Equals(toks[3].Type, yaylex.Stop))
	qt.Assert(t, qt.Equals(toks[4].Type, yaylex.Start))
	qt.Assert(t, qt.Equals(toks[5].Type, yaylex.Text))
	qt.Assert(t, qt.Equals(toks[5].Text, "2"))
}

func TestLexNestedPropertyIsIndentedText(t *testing.T) {
	toks := yaylex.Lex(scan(t, "outer:\n  inner: 1\n"))
	qt.Assert(t, qt.Equals(toks[0].Type, yaylex.Text))
	qt.Assert(t, qt.Equals(toks[1].Type, yaylex.Text))
	qt.Assert(t, qt.Equals(toks[1].Indent, 2))
}

func TestLexTrailingStopsCloseOpenBlocks(t *testing.T) {
	toks := yaylex.Lex(scan(t, "- a\n  - b\n"))
	last := toks[len(toks)-1]
	// The innermost list's Start must be balanced by a trailing Stop.
	opens, closes := 0, 0
	for _, tok := range toks {
		if tok.Type == yaylex.Start {
			opens++
		}
		if tok.Type == yaylex.Stop {
			closes++
		}
	}
	qt.Assert(t, qt.Equals(opens, closes))
	_ = last
}

func TestLexBlankLineEmitsBreak(t *testing.T) {
	toks := yaylex.Lex(scan(t, "a: 1\n\nb: 2\n"))
	var hasBreak bool
	for _, tok := range toks {
		if tok.Type == yaylex.Break {
			hasBreak = true
		}
	}
	qt.Assert(t, qt.Equals(hasBreak, true))
}
