package tnp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type tok struct {
	tokval int
	lexeme string
}

func scanAll(t *testing.T, input string) []tok {
	sc := NewScanner(strings.NewReader(input))
	var toks []tok
	for {
		tokval, lexeme, pos, length := sc.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		t.Logf("%s '%v' @%d+%d", TokenName(tokval), lexeme, pos, length)
		toks = append(toks, tok{tokval, lexeme.(string)})
		if len(toks) > 100 {
			t.Fatalf("scanner does not terminate")
		}
	}
	return toks
}

func compareTokens(t *testing.T, toks []tok, expected []tok) {
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(toks), toks)
	}
	for i, x := range expected {
		if toks[i] != x {
			t.Errorf("token #%d: expected %s '%s', is %s '%s'", i,
				TokenName(x.tokval), x.lexeme, TokenName(toks[i].tokval), toks[i].lexeme)
		}
	}
}

func TestScannerTokens(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := "BASE==2000ALT # a comment\nTOPS=FL 65\nCLOCKWISE RADIUS=2.5 CENTRE=N512345 W0012345\nTYPE=CTA/CTR ANTI-CLOCKWISE 3."
	compareTokens(t, scanAll(t, input), []tok{
		{Word, "BASE"}, {Equals, "=="}, {Number, "2000"}, {Word, "ALT"},
		{Word, "TOPS"}, {Equals, "="}, {Word, "FL"}, {Number, "65"},
		{Word, "CLOCKWISE"}, {Word, "RADIUS"}, {Equals, "="}, {Number, "2.5"},
		{Word, "CENTRE"}, {Equals, "="}, {Word, "N"}, {Number, "512345"},
		{Word, "W"}, {Number, "0012345"},
		{Word, "TYPE"}, {Equals, "="}, {Word, "CTA/CTR"}, {Word, "ANTI-CLOCKWISE"},
		{Number, "3"}, {Illegal, "."},
	})
}

func TestScannerTitle(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := "TITLE=  LONDON CTR #1 (A)\nTITLE=ONE  TWO\nTITLE=A B\tC\nTITLE=\n# comment\nEND "
	compareTokens(t, scanAll(t, input), []tok{
		{Word, "TITLE"}, {Equals, "="}, {Text, "LONDON CTR #1 (A)"},
		{Word, "TITLE"}, {Equals, "="}, {Text, "ONE"}, {Word, "TWO"},
		{Word, "TITLE"}, {Equals, "="}, {Text, "A B"}, {Word, "C"},
		{Word, "TITLE"}, {Equals, "="}, {Text, "END"},
	})
}

func TestScannerErrorHandler(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sc := NewScanner(strings.NewReader("BASE=SFC;"))
	var errs []error
	sc.SetErrorHandler(func(err error) {
		errs = append(errs, err)
	})
	for tokval, _, _, _ := sc.NextToken(scanner.AnyToken); tokval != scanner.EOF; {
		tokval, _, _, _ = sc.NextToken(scanner.AnyToken)
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 error for illegal character, have %d", len(errs))
	}
}

func TestLatin1(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := []byte("TITLE=M\xdcNCHEN\n")
	sc := NewScanner(Latin1(bytes.NewReader(input)))
	sc.NextToken(scanner.AnyToken)
	sc.NextToken(scanner.AnyToken)
	tokval, lexeme, _, _ := sc.NextToken(scanner.AnyToken)
	if tokval != Text || lexeme.(string) != "MÜNCHEN" {
		t.Errorf("expected title 'MÜNCHEN', is %s '%v'", TokenName(tokval), lexeme)
	}
}

func TestTitleNormalization(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	toks := scanAll(t, "TITLE=MU\u0308NCHEN")
	if len(toks) != 3 || toks[2].lexeme != "MÜNCHEN" {
		t.Errorf("expected title to be NFC normalized, is %v", toks)
	}
}
