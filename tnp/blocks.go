package tnp

import (
	"fmt"

	"github.com/npillmayer/yaixm"
)

// Block is a top-level item of a TNP document. It is one of ClassDecl,
// TypeDecl, IncludeDecl or *AirspaceBlock.
type Block interface {
	block()
}

// ClassDecl is a stand-alone CLASS= declaration. An empty value is
// Unclassified.
type ClassDecl struct {
	Class yaixm.AirspaceClass
}

// TypeDecl is a stand-alone TYPE= declaration.
type TypeDecl struct {
	Type yaixm.AirspaceType
}

// IncludeDecl is an INCLUDE=YES or INCLUDE=NO switch.
type IncludeDecl struct {
	Include bool
}

// AirspaceBlock describes a single airspace volume.
type AirspaceBlock struct {
	Title  string
	Header Header
	Body   []BodyElement
}

// Header holds the vertical limits and the classification clauses of an
// airspace block.
//
// Type is NoType if the header has no TYPE clause. HasClass is false if the
// header has no CLASS clause or an empty one ("CLASS=").
type Header struct {
	Base     yaixm.Level
	Tops     yaixm.Level
	Type     yaixm.AirspaceType
	Class    yaixm.AirspaceClass
	HasClass bool
}

func (ClassDecl) block()      {}
func (TypeDecl) block()       {}
func (IncludeDecl) block()    {}
func (*AirspaceBlock) block() {}

// BodyElement is one of PointElem, CircleElem or ArcElem.
type BodyElement interface {
	bodyElement()
}

// PointElem is a POINT= clause.
type PointElem struct {
	At yaixm.Coordinate
}

// CircleElem is a CIRCLE clause.
type CircleElem struct {
	Radius float64
	Centre yaixm.Coordinate
}

// ArcElem is a CLOCKWISE or ANTI-CLOCKWISE clause.
type ArcElem struct {
	Radius float64
	Centre yaixm.Coordinate
	To     yaixm.Coordinate
	Dir    yaixm.Direction
}

func (PointElem) bodyElement()  {}
func (CircleElem) bodyElement() {}
func (ArcElem) bodyElement()    {}

func (d ClassDecl) String() string   { return "CLASS=" + d.Class.String() }
func (d TypeDecl) String() string    { return "TYPE=" + d.Type.String() }
func (d IncludeDecl) String() string { return fmt.Sprintf("INCLUDE=%v", d.Include) }

func (b *AirspaceBlock) String() string {
	return fmt.Sprintf("[%s %s..%s, %d body elements]", b.Title, b.Header.Base,
		b.Header.Tops, len(b.Body))
}
