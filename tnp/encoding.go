package tnp

import (
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Latin1 wraps a reader of ISO-8859-1 encoded input, converting it to
// UTF-8 on the fly.
func Latin1(r io.Reader) io.Reader {
	return charmap.ISO8859_1.NewDecoder().Reader(r)
}
