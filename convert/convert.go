package convert

import (
	"io"

	"github.com/npillmayer/yaixm"
	"github.com/npillmayer/yaixm/tnp"
)

type options struct {
	keepDuplicates bool
	latin1         bool
}

// Option configures Convert.
type Option func(*options)

// KeepDuplicatePoints switches off RemoveDuplicatePoints.
func KeepDuplicatePoints() Option {
	return func(o *options) {
		o.keepDuplicates = true
	}
}

// Latin1Input tells Convert to read ISO-8859-1 encoded input.
func Latin1Input() Option {
	return func(o *options) {
		o.latin1 = true
	}
}

// Convert reads a TNP document and converts it to airspaces. If the input
// is not valid TNP, Convert returns no airspaces and the *tnp.ParseError.
func Convert(r io.Reader, opts ...Option) ([]yaixm.Airspace, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.latin1 {
		r = tnp.Latin1(r)
	}
	blocks, err := tnp.Parse(r)
	if err != nil {
		T().Errorf("TNP conversion failed: %v", err)
		return nil, err
	}
	airspaces := Normalize(blocks)
	if !o.keepDuplicates {
		airspaces = RemoveDuplicatePoints(airspaces)
	}
	return airspaces, nil
}
