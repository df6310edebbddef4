package tnp

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yaixm"
	"github.com/npillmayer/yaixm/internal/testdata"
)

func ExampleParseError_PrintContext() {
	gtrace.SyntaxTracer = gologadapter.New()
	_, err := ParseString("TITLE=X\nBASE=SFC\nPOINT=N512345 W0012345\nEND\n")
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.PrintContext(os.Stdout, 1)
	}
	// Output:
	//     2 | BASE=SFC
	//     3 | POINT=N512345 W0012345
	//       | ^
	//     4 | END
}

func TestParseLondon(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r, err := testdata.Reader(testdata.London)
	if err != nil {
		t.Fatal(err)
	}
	blocks, err := Parse(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, have %d", len(blocks))
	}
	if inc, ok := blocks[0].(IncludeDecl); !ok || !inc.Include {
		t.Errorf("expected first block to be INCLUDE=YES, is %v", blocks[0])
	}
	b, ok := blocks[1].(*AirspaceBlock)
	if !ok {
		t.Fatalf("expected second block to be an airspace, is %v", blocks[1])
	}
	if b.Title != "LONDON CTR" {
		t.Errorf("expected title 'LONDON CTR', is '%s'", b.Title)
	}
	h := b.Header
	if h.Base != yaixm.SFC || h.Tops != yaixm.FL(195) {
		t.Errorf("expected levels SFC..FL195, are %s..%s", h.Base, h.Tops)
	}
	if h.Type != yaixm.CTACTR || !h.HasClass || h.Class != yaixm.ClassA {
		t.Errorf("expected CTA/CTR class A, is %s class %s (%v)", h.Type, h.Class, h.HasClass)
	}
	if len(b.Body) != 2 {
		t.Fatalf("expected 2 points, have %d", len(b.Body))
	}
	if p, ok := b.Body[1].(PointElem); !ok || p.At.String() != "512400N 0012400W" {
		t.Errorf("expected second point 512400N 0012400W, is %v", b.Body[1])
	}
}

func TestParseHeaderInAnyOrder(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	//
	blocks, err := ParseString(`
		TITLE=SOMEWHERE
		CLASS=
		TOPS = FL065
		TYPE=0
		BASE=1500 AGL
		ANTI-CLOCKWISE RADIUS=1 CENTRE=N512345 W0012345 TO=N512345 W0012345
		END`)
	if err == nil {
		t.Fatalf("expected body starting with an arc to be rejected")
	}
	blocks, err = ParseString(`
		TITLE=SOMEWHERE
		CLASS=
		TOPS = FL065
		TYPE=0
		BASE=1500 AGL
		CIRCLE RADIUS=2.5 CENTRE=S000000 E1800000
		END`)
	if err != nil {
		t.Fatal(err)
	}
	b := blocks[0].(*AirspaceBlock)
	if b.Header.Base != yaixm.AGL(1500) || b.Header.Tops != yaixm.FLDigits(65, 3) {
		t.Errorf("expected levels 1500 ft AGL..FL065, are %v..%v", b.Header.Base, b.Header.Tops)
	}
	if b.Header.Type != yaixm.Other {
		t.Errorf("expected type code 0 to be OTHER, is %s", b.Header.Type)
	}
	if b.Header.HasClass {
		t.Errorf("expected empty CLASS= to carry no class")
	}
	c, ok := b.Body[0].(CircleElem)
	if !ok || c.Radius != 2.5 || c.Centre.String() != "000000S 1800000E" {
		t.Errorf("expected circle of 2.5 nm, is %v", b.Body[0])
	}
}

func TestParseDeclarations(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	blocks, err := ParseString("CLASS=X\nTYPE=D\nINCLUDE=NO\nCLASS=\nTYPE=RMZ\nCLASS=G\nEND")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Block{
		ClassDecl{yaixm.Unclassified},
		TypeDecl{yaixm.Danger},
		IncludeDecl{false},
		ClassDecl{yaixm.Unclassified},
		TypeDecl{yaixm.RMZ},
		ClassDecl{yaixm.ClassG},
	}
	if len(blocks) != len(expected) {
		t.Fatalf("expected %d blocks, have %d", len(expected), len(blocks))
	}
	for i, b := range blocks {
		if b != expected[i] {
			t.Errorf("block #%d: expected %v, is %v", i, expected[i], b)
		}
	}
}

func TestParseFailures(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	const circle = "CIRCLE RADIUS=5 CENTRE=N512345 W0012345\n"
	for i, x := range []struct {
		input    string
		line     int
		found    string
		expected string
	}{
		{"TITLE=X\nBASE=SFC\n" + circle + "END", 3, "CIRCLE", "TOPS"},
		{"TITLE=X\nBASE=SFC\nTOPS=FL10\n" + circle, 5, "<end of input>", "END"},
		{"TITLE=X\nBASE=SFC\nTOPS=FL10\n" + strings.TrimSpace(circle), 4, "<end of input>", "END"},
		{"TITLE=X\nBASE=SFC\nBASE=SFC\nTOPS=FL10\n" + circle + "END", 3, "BASE", "TOPS"},
		{"TITLE=X\nBASE=SFC\nTOPS=20ALT\n" + circle + "END", 3, "ALT", "AGL"},
		{"TITLE=X\nBASE=SFC\nTOPS=FL10\n" + circle + "POINT=N512345 W0012345\nEND", 5, "POINT", "END"},
		{"TITLE=X\nBASE=SFC\nTOPS=FL10\nPOINT=N516000 W0012345\nPOINT=N512345 W0012345\nEND", 4, "N", "<latitude>"},
		{"TITLE=X\nBASE=SFC\nTOPS=FL10\nPOINT=N512345 W0012345\nEND", 5, "END", "POINT"},
		{"TYPE=Q\nEND", 1, "Q", "<airspace type>"},
		{"", 1, "<end of input>", "TITLE"},
	} {
		blocks, err := ParseString(x.input)
		if blocks != nil {
			t.Errorf("%d: expected no blocks on error, have %d", i, len(blocks))
		}
		if !errors.Is(err, ErrGrammarMismatch) {
			t.Errorf("%d: expected grammar mismatch, is %v", i, err)
			continue
		}
		perr := err.(*ParseError)
		t.Logf("%d: %v", i, perr)
		if perr.Pos.Line != x.line || perr.Found != x.found {
			t.Errorf("%d: expected '%s' at line %d, is '%s' at %s", i, x.found, x.line,
				perr.Found, perr.Pos)
		}
		if !contains(perr.Expected, x.expected) {
			t.Errorf("%d: expected %s to be expected, is %v", i, x.expected, perr.Expected)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r, err := testdata.Reader(testdata.MissingTops)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(r)
	if err == nil {
		t.Fatalf("expected BASE without TOPS to fail")
	}
	msg := "TNP syntax error at 3:1: found 'POINT', expected CLASS | TOPS | TYPE"
	if err.Error() != msg {
		t.Errorf("expected error message\n%s\nis\n%s", msg, err.Error())
	}
}

func TestParseIgnoresInputAfterEnd(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	blocks, err := ParseString("TYPE=MATZ\nEND ??? ;;; TITLE=\n")
	if err != nil || len(blocks) != 1 {
		t.Errorf("expected 1 block and no error, have %d blocks, error = %v", len(blocks), err)
	}
}

func TestParseLatin1(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r, err := testdata.Reader(testdata.Latin1)
	if err != nil {
		t.Fatal(err)
	}
	blocks, err := Parse(Latin1(r))
	if err != nil {
		t.Fatal(err)
	}
	if title := blocks[0].(*AirspaceBlock).Title; title != "MÜNCHEN" {
		t.Errorf("expected title 'MÜNCHEN', is '%s'", title)
	}
}

func TestParseRepeatedly(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for i := 0; i < 5; i++ {
		input := strings.Repeat("CLASS=C\n", i+1) + "END"
		blocks, err := ParseString(input)
		if err != nil || len(blocks) != i+1 {
			t.Errorf("%d: expected %d blocks, have %d (%v)", i, i+1, len(blocks), err)
		}
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
