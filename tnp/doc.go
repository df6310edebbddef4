/*
Package tnp reads airspace descriptions in TNP format.

TNP is a line oriented keyword=value format. A document is a sequence of
airspace blocks, interspersed with CLASS= and TYPE= declarations (which
carry over to subsequent blocks) and INCLUDE= switches, and is terminated
by END:

   # comments run to end of line
   CLASS=D
   TYPE=CTA/CTR
   INCLUDE=YES
   TITLE=LONDON CTR
   BASE=SFC
   TOPS=FL195
   POINT=N512345 W0012345
   ANTI-CLOCKWISE RADIUS=2.5 CENTRE=N513000 W0013000 TO=N512400 W0012400
   POINT=N512500 W0012500
   END

The header of a block (BASE, TOPS, TYPE, CLASS) may be given in any order;
BASE and TOPS are mandatory. The body of a block is either a single
CIRCLE, or a POINT followed by one or more points or arcs.

Scanner

Type Scanner splits the input into words, numbers, '='-separators and
titles. It implements interface scanner.Tokenizer of package
github.com/npillmayer/gorgo/lr/scanner. A title is the text after TITLE=,
up to the end of the line. It may contain single spaces, but a double
space or a tab will end it.

Parser

Parse runs a grammar over the token stream of a Scanner. The grammar is
built from a small set of parser combinators: sequences, choices of
alternatives (the longest alternative wins), unordered sets of clauses
and repetitions. The result of a successful parse is a slice of Block
values. Parse will either return a complete result or an error of type
*ParseError, never a partial result.

Legacy TNP files are often Latin-1 encoded. Wrap the input reader with
Latin1 for these.
*/
package tnp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
