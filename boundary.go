package yaixm

import (
	"strconv"
	"strings"
)

// BoundarySegment is one of Line, Circle or Arc.
type BoundarySegment interface {
	segment()
}

// Line is an open sequence of boundary points. A line has at least one point.
type Line struct {
	Points []Coordinate
}

// Circle is a boundary which is a complete circle.
type Circle struct {
	Radius float64 // nautical miles
	Centre Coordinate
}

// Direction is the sense of rotation of an arc.
type Direction int8

// Arc directions.
const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Arc continues a boundary from the previous point along a circle around
// Centre, ending at To.
type Arc struct {
	Radius float64 // nautical miles
	Centre Coordinate
	To     Coordinate
	Dir    Direction
}

func (Line) segment()   {}
func (Circle) segment() {}
func (Arc) segment()    {}

// FormatRadius renders a radius with as few decimals as possible, e.g.
// "5 nm" or "2.5 nm".
func FormatRadius(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64) + " nm"
}

func (l Line) String() string {
	pts := make([]string, len(l.Points))
	for i, p := range l.Points {
		pts[i] = p.String()
	}
	return "line[" + strings.Join(pts, ", ") + "]"
}

func (c Circle) String() string {
	return "circle[" + FormatRadius(c.Radius) + " @ " + c.Centre.String() + "]"
}

func (a Arc) String() string {
	return "arc[" + a.Dir.String() + " " + FormatRadius(a.Radius) + " @ " +
		a.Centre.String() + " to " + a.To.String() + "]"
}

// --- YAML ------------------------------------------------------------------

type circleYAML struct {
	Radius string     `yaml:"radius"`
	Centre Coordinate `yaml:"centre"`
}

type arcYAML struct {
	Radius string     `yaml:"radius"`
	Centre Coordinate `yaml:"centre"`
	To     Coordinate `yaml:"to"`
	Dir    string     `yaml:"dir"`
}

// MarshalYAML is part of interface yaml.Marshaler.
func (l Line) MarshalYAML() (interface{}, error) {
	return struct {
		Line []Coordinate `yaml:"line"`
	}{l.Points}, nil
}

// MarshalYAML is part of interface yaml.Marshaler.
func (c Circle) MarshalYAML() (interface{}, error) {
	return struct {
		Circle circleYAML `yaml:"circle"`
	}{circleYAML{FormatRadius(c.Radius), c.Centre}}, nil
}

// MarshalYAML is part of interface yaml.Marshaler.
func (a Arc) MarshalYAML() (interface{}, error) {
	return struct {
		Arc arcYAML `yaml:"arc"`
	}{arcYAML{FormatRadius(a.Radius), a.Centre, a.To, a.Dir.String()}}, nil
}
