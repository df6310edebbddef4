package tnp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr/scanner"
	"golang.org/x/text/unicode/norm"
)

// Token values returned by Scanner.NextToken. At end of input the scanner
// returns scanner.EOF.
const (
	Word    = iota + 1 // letters, '-' and '/', starting with a letter
	Number             // digits with an optional fraction
	Equals             // one or more '='
	Text               // the value of a TITLE
	Illegal            // any other character
)

// TokenName returns a readable name for a token value.
func TokenName(tokval int) string {
	switch tokval {
	case Word:
		return "<word>"
	case Number:
		return "<number>"
	case Equals:
		return "'='"
	case Text:
		return "<title>"
	case Illegal:
		return "<illegal>"
	case scanner.EOF:
		return "<end of input>"
	}
	return fmt.Sprintf("<token %d>", tokval)
}

type scanMode uint8

const (
	tokenMode scanMode = iota
	// just read TITLE
	afterTitle
	// just read TITLE =
	titleMode
)

// Scanner implements the scanner.Tokenizer interface.
// It splits TNP input by character class. Whitespace and comments between
// tokens are skipped, thus "FL195" and "FL 195" will produce identical
// token sequences. After a TITLE keyword and its '=' the scanner switches
// to reading the title text.
type Scanner struct {
	input  *bufio.Reader
	offset uint64 // byte position of the next unread rune
	mode   scanMode
	errh   func(error)
	buffer strings.Builder
}

// NewScanner creates a scanner reading TNP from input.
func NewScanner(input io.Reader) *Scanner {
	sc := &Scanner{}
	sc.reset(input)
	return sc
}

func (sc *Scanner) reset(input io.Reader) {
	if sc.input == nil {
		sc.input = bufio.NewReader(input)
	} else {
		sc.input.Reset(input)
	}
	sc.offset = 0
	sc.mode = tokenMode
	sc.errh = nil
	sc.buffer.Reset()
}

// SetErrorHandler sets an error handler function, which receives an error
// for every illegal character in the input. Without a handler, errors are
// traced only.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}

// NextToken returns the next token, its lexeme (a string), its byte position
// and its length in bytes. Parameter expected is ignored; the scanner does not
// need hints from the parser.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.mode == titleMode {
		sc.mode = tokenMode
		sc.skipBlanks()
		start := sc.offset
		if title := sc.scanTitle(); title != "" {
			T().Debugf("scanned title '%s'", title)
			return Text, title, start, sc.offset - start
		}
	}
	sc.skipBlanks()
	start := sc.offset
	r, sz := sc.peekRune()
	var tokval int
	var lexeme string
	switch {
	case sz == 0:
		return scanner.EOF, "", start, 0
	case unicode.IsLetter(r):
		tokval, lexeme = Word, sc.scanWord()
	case isDigit(r):
		tokval, lexeme = Number, sc.scanNumber()
	case r == '=':
		tokval, lexeme = Equals, sc.scanEquals()
	default:
		sc.advance(sz)
		tokval, lexeme = Illegal, string(r)
		sc.error(fmt.Errorf("illegal character %q at offset %d", r, start))
	}
	sc.switchMode(tokval, lexeme)
	T().Debugf("scanned token %s '%s'", TokenName(tokval), lexeme)
	return tokval, lexeme, start, sc.offset - start
}

func (sc *Scanner) switchMode(tokval int, lexeme string) {
	switch {
	case tokval == Word && lexeme == "TITLE":
		sc.mode = afterTitle
	case tokval == Equals && sc.mode == afterTitle:
		sc.mode = titleMode
	default:
		sc.mode = tokenMode
	}
}

func (sc *Scanner) error(err error) {
	T().Errorf("%v", err)
	if sc.errh != nil {
		sc.errh(err)
	}
}

// --- Reading runes ---------------------------------------------------------

func (sc *Scanner) peekRune() (rune, int) {
	b, _ := sc.input.Peek(utf8.UTFMax)
	if len(b) == 0 {
		return 0, 0
	}
	return utf8.DecodeRune(b)
}

// peekSecond returns the rune following a rune of size sz.
func (sc *Scanner) peekSecond(sz int) (rune, int) {
	b, _ := sc.input.Peek(sz + utf8.UTFMax)
	if len(b) <= sz {
		return 0, 0
	}
	return utf8.DecodeRune(b[sz:])
}

func (sc *Scanner) advance(sz int) {
	n, _ := sc.input.Discard(sz)
	sc.offset += uint64(n)
}

// skipBlanks skips whitespace and comments.
func (sc *Scanner) skipBlanks() {
	for {
		r, sz := sc.peekRune()
		switch {
		case sz == 0:
			return
		case unicode.IsSpace(r):
			sc.advance(sz)
		case r == '#':
			for sz > 0 && r != '\n' {
				sc.advance(sz)
				r, sz = sc.peekRune()
			}
		default:
			return
		}
	}
}

// --- Token classes ---------------------------------------------------------

func (sc *Scanner) scanWord() string {
	sc.buffer.Reset()
	for {
		r, sz := sc.peekRune()
		if sz == 0 || !(unicode.IsLetter(r) || r == '-' || r == '/') {
			break
		}
		sc.buffer.WriteRune(r)
		sc.advance(sz)
	}
	return sc.buffer.String()
}

func (sc *Scanner) scanDigits() {
	for {
		r, sz := sc.peekRune()
		if sz == 0 || !isDigit(r) {
			return
		}
		sc.buffer.WriteRune(r)
		sc.advance(sz)
	}
}

func (sc *Scanner) scanNumber() string {
	sc.buffer.Reset()
	sc.scanDigits()
	if r, sz := sc.peekRune(); r == '.' {
		if next, _ := sc.peekSecond(sz); isDigit(next) {
			sc.buffer.WriteRune(r)
			sc.advance(sz)
			sc.scanDigits()
		}
	}
	return sc.buffer.String()
}

func (sc *Scanner) scanEquals() string {
	sc.buffer.Reset()
	for {
		r, sz := sc.peekRune()
		if r != '=' || sz == 0 {
			break
		}
		sc.buffer.WriteRune(r)
		sc.advance(sz)
	}
	return sc.buffer.String()
}

// scanTitle collects printable characters and single spaces. A space not
// followed by a printable character ends the title, as do line ends and tabs.
func (sc *Scanner) scanTitle() string {
	sc.buffer.Reset()
	for {
		r, sz := sc.peekRune()
		if sz == 0 {
			break
		}
		if r == ' ' {
			if next, nsz := sc.peekSecond(sz); nsz == 0 || !isPrintable(next) {
				break
			}
		} else if !isPrintable(r) {
			break
		}
		sc.buffer.WriteRune(r)
		sc.advance(sz)
	}
	return norm.NFC.String(sc.buffer.String())
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isPrintable(r rune) bool {
	return r != utf8.RuneError && unicode.IsGraphic(r) && !unicode.IsSpace(r)
}
