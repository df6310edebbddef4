/*
Package convert turns parsed TNP documents into YAIXM airspaces.

Normalize folds the blocks of a TNP document into a list of airspaces,
carrying CLASS and TYPE declarations over to subsequent blocks and
assembling boundaries from points, circles and arcs. RemoveDuplicatePoints
drops a closing boundary point which repeats the opening one. Convert
combines parsing, normalization and clean-up.
*/
package convert

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/yaixm"
	"github.com/npillmayer/yaixm/tnp"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// CarryState is the classification carried from block to block: the type
// and class of the last declaration seen.
type CarryState struct {
	Type  yaixm.AirspaceType
	Class yaixm.AirspaceClass
}

// Normalize converts TNP blocks into airspaces, one airspace for each
// airspace block.
//
// Stand-alone CLASS= and TYPE= declarations set the class and type of all
// subsequent airspace blocks. A TYPE or CLASS clause in a block header takes
// precedence over the declarations, and is carried forward to subsequent
// blocks as well. An empty CLASS clause in a header is ignored.
//
// Normalize expects blocks as produced by tnp.Parse. It panics for blocks
// lacking a vertical limit, as these cannot result from parsing.
func Normalize(blocks []tnp.Block) []yaixm.Airspace {
	airspaces := make([]yaixm.Airspace, 0, len(blocks))
	state := CarryState{}
	for _, b := range blocks {
		var a *yaixm.Airspace
		state, a = state.fold(b)
		if a != nil {
			T().Debugf("airspace %s: type=%s class=%s", a.Name, a.Type, a.Class)
			airspaces = append(airspaces, *a)
		}
	}
	T().Infof("normalized %d blocks into %d airspaces", len(blocks), len(airspaces))
	return airspaces
}

// fold processes one block, returning the new carry state and, for airspace
// blocks, the airspace.
func (state CarryState) fold(b tnp.Block) (CarryState, *yaixm.Airspace) {
	switch b := b.(type) {
	case tnp.ClassDecl:
		state.Class = b.Class
	case tnp.TypeDecl:
		state.Type = b.Type
	case tnp.IncludeDecl:
	case *tnp.AirspaceBlock:
		if b.Header.Type != yaixm.NoType {
			state.Type = b.Header.Type
		}
		if b.Header.HasClass {
			state.Class = b.Header.Class
		}
		return state, &yaixm.Airspace{
			Name:     b.Title,
			Type:     state.Type,
			Class:    state.Class,
			Geometry: []yaixm.Geometry{geometry(b)},
		}
	default:
		panic(fmt.Sprintf("unknown TNP block type %T", b))
	}
	return state, nil
}

func geometry(b *tnp.AirspaceBlock) yaixm.Geometry {
	if !b.Header.Base.IsValid() || !b.Header.Tops.IsValid() {
		panic(fmt.Sprintf("airspace block %q lacks BASE or TOPS", b.Title))
	}
	return yaixm.Geometry{
		Lower:    b.Header.Base,
		Upper:    b.Header.Tops,
		Boundary: boundary(b.Body),
	}
}

// boundary assembles boundary segments from body elements. Consecutive points
// form a single line.
func boundary(body []tnp.BodyElement) []yaixm.BoundarySegment {
	var segments []yaixm.BoundarySegment
	var line []yaixm.Coordinate
	flush := func() {
		if len(line) > 0 {
			segments = append(segments, yaixm.Line{Points: line})
			line = nil
		}
	}
	for _, e := range body {
		switch e := e.(type) {
		case tnp.PointElem:
			line = append(line, e.At)
		case tnp.CircleElem:
			flush()
			segments = append(segments, yaixm.Circle{Radius: e.Radius, Centre: e.Centre})
		case tnp.ArcElem:
			flush()
			segments = append(segments, yaixm.Arc{
				Radius: e.Radius,
				Centre: e.Centre,
				To:     e.To,
				Dir:    e.Dir,
			})
		default:
			panic(fmt.Sprintf("unknown TNP body element %T", e))
		}
	}
	flush()
	return segments
}
