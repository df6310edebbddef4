package convert

import (
	"github.com/npillmayer/yaixm"
)

// RemoveDuplicatePoints removes the last point of a boundary if it repeats
// the first point. This applies to boundaries starting and ending with a
// line only. A line left empty is removed as well. Repeated closing points
// are all removed.
//
// The input is not modified. Applying RemoveDuplicatePoints twice has the
// same result as applying it once.
func RemoveDuplicatePoints(airspaces []yaixm.Airspace) []yaixm.Airspace {
	result := make([]yaixm.Airspace, len(airspaces))
	for i, a := range airspaces {
		geometries := make([]yaixm.Geometry, len(a.Geometry))
		for j, g := range a.Geometry {
			if bdry, ok := closeBoundary(g.Boundary); ok {
				T().Debugf("removed duplicate point of %s", a.Name)
				g.Boundary = bdry
			}
			geometries[j] = g
		}
		a.Geometry = geometries
		result[i] = a
	}
	return result
}

// closeBoundary returns a copy of bdry without closing points repeating the
// opening point. If there are no such points, it returns false.
func closeBoundary(bdry []yaixm.BoundarySegment) ([]yaixm.BoundarySegment, bool) {
	changed := false
	for {
		next, ok := dropClosingPoint(bdry)
		if !ok {
			return bdry, changed
		}
		bdry, changed = next, true
	}
}

func dropClosingPoint(bdry []yaixm.BoundarySegment) ([]yaixm.BoundarySegment, bool) {
	if len(bdry) == 0 {
		return bdry, false
	}
	first, ok1 := bdry[0].(yaixm.Line)
	last, ok2 := bdry[len(bdry)-1].(yaixm.Line)
	if !ok1 || !ok2 || len(first.Points) == 0 || len(last.Points) == 0 {
		return bdry, false
	}
	n := len(last.Points)
	if len(bdry) == 1 && n == 1 {
		return bdry, false // the opening point itself
	}
	if first.Points[0].String() != last.Points[n-1].String() {
		return bdry, false
	}
	closed := make([]yaixm.BoundarySegment, len(bdry))
	copy(closed, bdry)
	if n == 1 {
		return closed[:len(closed)-1], true
	}
	points := make([]yaixm.Coordinate, n-1)
	copy(points, last.Points[:n-1])
	closed[len(closed)-1] = yaixm.Line{Points: points}
	return closed, true
}
