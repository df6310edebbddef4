package tnp

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/gorgo/lr/scanner"
)

// ErrGrammarMismatch is the error wrapped by every *ParseError.
var ErrGrammarMismatch = errors.New("input does not match TNP grammar")

// Parse reads a complete TNP document from r.
//
// On success Parse returns the blocks of the document in input order. Input
// following the END keyword is ignored. If the input does not match the TNP
// grammar, Parse returns a *ParseError, which wraps ErrGrammarMismatch, and
// no blocks at all.
func Parse(r io.Reader) ([]Block, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading TNP input: %w", err)
	}
	return ParseString(string(src))
}

// ParseString parses a TNP document held in a string. See Parse.
func ParseString(src string) ([]Block, error) {
	sc := newPooledScanner(strings.NewReader(src))
	defer sc.release()
	sc.SetErrorHandler(func(err error) {
		T().Infof("TNP scanner: %v", err)
	})
	p := &parser{sc: sc, expected: treeset.NewWithStringComparator()}
	_, v, ok := document(p, 0)
	if !ok {
		err := p.error(src)
		T().Errorf("%v", err)
		return nil, err
	}
	blocks := v.([]Block)
	T().Infof("parsed %d TNP blocks from %d tokens", len(blocks), len(p.tokens))
	return blocks, nil
}

type token struct {
	tokval int
	lexeme string
	pos    int
}

// parser holds the tokens read so far. Tokens are read on demand, so input
// after the last token a rule looks at is never scanned.
//
// Rules report failures to the parser, which tracks the failure furthest
// into the input together with the set of tokens expected there.
type parser struct {
	sc       scanner.Tokenizer
	tokens   []token
	eof      bool
	farthest int
	expected *treeset.Set
}

func (p *parser) at(i int) token {
	for !p.eof && len(p.tokens) <= i {
		tokval, lexeme, pos, _ := p.sc.NextToken(scanner.AnyToken)
		s, _ := lexeme.(string)
		p.tokens = append(p.tokens, token{tokval: tokval, lexeme: s, pos: int(pos)})
		p.eof = tokval == scanner.EOF
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) fail(i int, expected string) {
	if i > p.farthest {
		p.farthest = i
		p.expected.Clear()
	}
	if i == p.farthest {
		p.expected.Add(expected)
	}
}

func (p *parser) error(src string) *ParseError {
	t := p.at(p.farthest)
	err := &ParseError{
		Pos:    positionOf(src, t.pos),
		source: src,
	}
	if t.tokval == scanner.EOF {
		err.Found = TokenName(scanner.EOF)
	} else {
		err.Found = t.lexeme
	}
	for _, e := range p.expected.Values() {
		err.Expected = append(err.Expected, e.(string))
	}
	return err
}

// --- Errors ----------------------------------------------------------------

// Position is a location in the input. Line and Column start at 1, Column
// counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

func positionOf(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	return Position{
		Offset: offset,
		Line:   strings.Count(src[:offset], "\n") + 1,
		Column: utf8.RuneCountInString(src[lineStart:offset]) + 1,
	}
}

// ParseError is returned by Parse for input not matching the TNP grammar.
// Pos is the position furthest into the input reached by any rule, Found is
// the token found there and Expected the sorted list of tokens acceptable
// at this position.
type ParseError struct {
	Pos      Position
	Found    string
	Expected []string
	source   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("TNP syntax error at %s: found '%s', expected %s",
		e.Pos, e.Found, strings.Join(e.Expected, " | "))
}

// Unwrap returns ErrGrammarMismatch.
func (e *ParseError) Unwrap() error {
	return ErrGrammarMismatch
}

// PrintContext prints up to n lines of source before and after the error
// position to w, marking the erroneous column.
func (e *ParseError) PrintContext(w io.Writer, n int) {
	lines := strings.Split(e.source, "\n")
	from, to := e.Pos.Line-n, e.Pos.Line+n
	if from < 1 {
		from = 1
	}
	if to > len(lines) {
		to = len(lines)
	}
	for l := from; l <= to; l++ {
		fmt.Fprintf(w, "%5d | %s\n", l, lines[l-1])
		if l == e.Pos.Line {
			fmt.Fprintf(w, "      | %s^\n", indentOf(lines[l-1], e.Pos.Column-1))
		}
	}
}

// indentOf blanks out the first n runes of line, keeping tabs.
func indentOf(line string, n int) string {
	var b strings.Builder
	for _, r := range line {
		if n == 0 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		n--
	}
	return b.String()
}
