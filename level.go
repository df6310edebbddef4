package yaixm

import (
	"fmt"
	"strconv"
)

// LevelKind tells how a vertical limit is measured.
type LevelKind int8

// Kinds of vertical limits. The zero value denotes a missing level.
const (
	NoLevel LevelKind = iota
	// Surface is the ground.
	Surface
	// FlightLevel is a pressure altitude in hundreds of feet.
	FlightLevel
	// Altitude is in feet above mean sea level.
	Altitude
	// Height is in feet above ground level.
	Height
)

// Level is the lower or upper vertical limit of an airspace volume.
// Value is unused for Surface, holds the flight level number for FlightLevel
// and feet for Altitude and Height. Digits is the zero-padded width of a
// flight level number, if the source wrote it with leading zeros.
type Level struct {
	Kind   LevelKind
	Value  int
	Digits int
}

// SFC is the surface level.
var SFC = Level{Kind: Surface}

// FL returns flight level n.
func FL(n int) Level {
	return Level{Kind: FlightLevel, Value: n}
}

// FLDigits returns flight level n, written with at least digits digits, as
// in "FL065". Without leading zeros the result equals FL(n).
func FLDigits(n, digits int) Level {
	l := FL(n)
	if digits > len(strconv.Itoa(n)) {
		l.Digits = digits
	}
	return l
}

// Feet returns an altitude of ft feet above mean sea level.
func Feet(ft int) Level {
	return Level{Kind: Altitude, Value: ft}
}

// AGL returns a height of ft feet above ground level.
func AGL(ft int) Level {
	return Level{Kind: Height, Value: ft}
}

// IsValid is false for the zero Level.
func (l Level) IsValid() bool {
	return l.Kind != NoLevel
}

// String renders a level as "SFC", "FL<n>" or "<n> ft". Altitudes and heights
// both render in feet, YAIXM does not distinguish between them.
func (l Level) String() string {
	switch l.Kind {
	case Surface:
		return "SFC"
	case FlightLevel:
		return fmt.Sprintf("FL%0*d", l.Digits, l.Value)
	case Altitude, Height:
		return strconv.Itoa(l.Value) + " ft"
	}
	return fmt.Sprintf("level(%d)", l.Kind)
}

// MarshalYAML is part of interface yaml.Marshaler.
func (l Level) MarshalYAML() (interface{}, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("cannot encode missing level")
	}
	return l.String(), nil
}
