package yaixm

import (
	"errors"
	"fmt"
	"strings"
)

// AirspaceType is the kind of an airspace volume. The zero value NoType
// denotes an airspace without a type.
type AirspaceType int8

// Airspace types known to YAIXM.
const (
	NoType AirspaceType = iota
	Airways
	CTACTR
	Danger
	GSEC
	MATZ
	Other
	Prohibited
	Restricted
	TMZ
	RMZ
)

var typeNames = [...]string{
	NoType:     "",
	Airways:    "AIRWAYS",
	CTACTR:     "CTA/CTR",
	Danger:     "DANGER",
	GSEC:       "GSEC",
	MATZ:       "MATZ",
	Other:      "OTHER",
	Prohibited: "PROHIBITED",
	Restricted: "RESTRICTED",
	TMZ:        "TMZ",
	RMZ:        "RMZ",
}

// single letter codes of TNP; RMZ has none
var typeCodes = map[string]AirspaceType{
	"A": Airways,
	"C": CTACTR,
	"D": Danger,
	"G": GSEC,
	"M": MATZ,
	"0": Other,
	"P": Prohibited,
	"R": Restricted,
	"T": TMZ,
}

// ErrUnknownType is returned for names which are neither an airspace type
// nor one of its codes.
var ErrUnknownType = errors.New("unknown airspace type")

// ParseAirspaceType canonicalizes either a type name ("DANGER") or its
// single letter code ("D").
func ParseAirspaceType(s string) (AirspaceType, error) {
	s = strings.TrimSpace(s)
	if t, ok := typeCodes[s]; ok {
		return t, nil
	}
	for t := Airways; t <= RMZ; t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	return NoType, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t AirspaceType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("AirspaceType(%d)", t)
	}
	return typeNames[t]
}

// MarshalYAML is part of interface yaml.Marshaler.
func (t AirspaceType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// AirspaceClass is the ICAO airspace class. The zero value Unclassified is
// what TNP writes as "X" or leaves empty.
type AirspaceClass int8

// ICAO classes.
const (
	Unclassified AirspaceClass = iota
	ClassA
	ClassB
	ClassC
	ClassD
	ClassE
	ClassF
	ClassG
)

// ErrUnknownClass is returned for class letters outside of A–G and X.
var ErrUnknownClass = errors.New("unknown airspace class")

// ParseAirspaceClass reads a class letter. "X" and the empty string are
// Unclassified.
func ParseAirspaceClass(s string) (AirspaceClass, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "X":
		return Unclassified, nil
	case len(s) == 1 && s[0] >= 'A' && s[0] <= 'G':
		return ClassA + AirspaceClass(s[0]-'A'), nil
	}
	return Unclassified, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

func (c AirspaceClass) String() string {
	switch {
	case c == Unclassified:
		return "X"
	case c >= ClassA && c <= ClassG:
		return string(rune('A' + c - ClassA))
	}
	return fmt.Sprintf("AirspaceClass(%d)", c)
}

// MarshalYAML is part of interface yaml.Marshaler.
func (c AirspaceClass) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Geometry is one volume of an airspace: vertical limits and lateral boundary.
type Geometry struct {
	Lower    Level             `yaml:"lower"`
	Upper    Level             `yaml:"upper"`
	Boundary []BoundarySegment `yaml:"boundary"`
}

// Airspace is a named airspace. Type and class are omitted from the YAIXM
// output if they are NoType resp. Unclassified.
type Airspace struct {
	Name     string        `yaml:"name"`
	Type     AirspaceType  `yaml:"type,omitempty"`
	Class    AirspaceClass `yaml:"class,omitempty"`
	Geometry []Geometry    `yaml:"geometry"`
}
