package tnp

import (
	"strconv"
	"strings"

	"github.com/npillmayer/yaixm"
)

// document is the start rule of the TNP grammar.
var document = buildGrammar()

func buildGrammar() rule {
	eq := match(Equals, "'='", func(lexeme string) (interface{}, bool) {
		return lexeme, true
	})
	clause := func(keyword string, value rule) rule {
		return seq(word(keyword), eq, value).as(nth(2))
	}

	// Levels
	flightLevel := seq(word("FL"), match(Number, "<digits>", func(lexeme string) (interface{}, bool) {
		n, ok := digitsValue(lexeme, 2, 3)
		return yaixm.FLDigits(n, len(lexeme)), ok
	})).as(nth(1))
	altitude := seq(digits(3, 0), word("ALT")).as(func(v interface{}) interface{} {
		return yaixm.Feet(v.([]interface{})[0].(int))
	})
	height := seq(digits(1, 0), word("AGL")).as(func(v interface{}) interface{} {
		return yaixm.AGL(v.([]interface{})[0].(int))
	})
	surface := word("SFC").as(func(interface{}) interface{} {
		return yaixm.SFC
	})
	level := either(flightLevel, altitude, height, surface)

	// Classification
	typeValue := either(
		match(Word, "<airspace type>", parseType),
		match(Number, "<airspace type>", parseType),
	)
	classValue := match(Word, "<airspace class>", func(lexeme string) (interface{}, bool) {
		if len(lexeme) != 1 {
			return nil, false
		}
		c, err := yaixm.ParseAirspaceClass(lexeme)
		return c, err == nil
	})

	// Coordinates
	lat := seq(hemisphere("N", "S"), digits(6, 6)).check("<latitude>", func(v interface{}) (interface{}, bool) {
		return angle(v, yaixm.Latitude)
	})
	lon := seq(hemisphere("E", "W"), digits(7, 7)).check("<longitude>", func(v interface{}) (interface{}, bool) {
		return angle(v, yaixm.Longitude)
	})
	pair := seq(lat, lon).as(func(v interface{}) interface{} {
		vals := v.([]interface{})
		return yaixm.Coordinate{Lat: vals[0].(yaixm.DMS), Lon: vals[1].(yaixm.DMS)}
	})
	radius := clause("RADIUS", match(Number, "<radius>", func(lexeme string) (interface{}, bool) {
		r, err := strconv.ParseFloat(lexeme, 64)
		return r, err == nil
	}))
	centre := clause("CENTRE", pair)
	to := clause("TO", pair)

	// Body
	point := clause("POINT", pair).as(func(v interface{}) interface{} {
		return PointElem{At: v.(yaixm.Coordinate)}
	})
	circle := seq(word("CIRCLE"), radius, centre).as(func(v interface{}) interface{} {
		vals := v.([]interface{})
		return CircleElem{Radius: vals[1].(float64), Centre: vals[2].(yaixm.Coordinate)}
	})
	arc := func(keyword string, dir yaixm.Direction) rule {
		return seq(word(keyword), radius, centre, to).as(func(v interface{}) interface{} {
			vals := v.([]interface{})
			return ArcElem{
				Radius: vals[1].(float64),
				Centre: vals[2].(yaixm.Coordinate),
				To:     vals[3].(yaixm.Coordinate),
				Dir:    dir,
			}
		})
	}
	cwArc := arc("CLOCKWISE", yaixm.Clockwise)
	ccwArc := arc("ANTI-CLOCKWISE", yaixm.CounterClockwise)
	body := either(
		circle.as(func(v interface{}) interface{} {
			return []BodyElement{v.(BodyElement)}
		}),
		seq(point, many1(either(point, cwArc, ccwArc))).as(func(v interface{}) interface{} {
			vals := v.([]interface{})
			elems := []BodyElement{vals[0].(BodyElement)}
			for _, e := range vals[1].([]interface{}) {
				elems = append(elems, e.(BodyElement))
			}
			return elems
		}),
	)

	// Header
	header := allOf(
		required(clause("BASE", level)),
		required(clause("TOPS", level)),
		optional(clause("TYPE", typeValue)),
		optional(clause("CLASS", opt(classValue))),
	).as(func(v interface{}) interface{} {
		vals := v.([]interface{})
		h := Header{Base: vals[0].(yaixm.Level), Tops: vals[1].(yaixm.Level)}
		if vals[2] != nil {
			h.Type = vals[2].(yaixm.AirspaceType)
		}
		if vals[3] != nil {
			h.Class, h.HasClass = vals[3].(yaixm.AirspaceClass), true
		}
		return h
	})

	// Blocks
	title := clause("TITLE", match(Text, "<title>", func(lexeme string) (interface{}, bool) {
		return lexeme, true
	}))
	airspace := seq(title, header, body).as(func(v interface{}) interface{} {
		vals := v.([]interface{})
		return &AirspaceBlock{
			Title:  vals[0].(string),
			Header: vals[1].(Header),
			Body:   vals[2].([]BodyElement),
		}
	})
	includeYes := clause("INCLUDE", word("YES")).as(func(interface{}) interface{} {
		return IncludeDecl{Include: true}
	})
	includeNo := clause("INCLUDE", word("NO")).as(func(interface{}) interface{} {
		return IncludeDecl{Include: false}
	})
	classDecl := clause("CLASS", opt(classValue)).as(func(v interface{}) interface{} {
		if v == nil {
			return ClassDecl{Class: yaixm.Unclassified}
		}
		return ClassDecl{Class: v.(yaixm.AirspaceClass)}
	})
	typeDecl := clause("TYPE", typeValue).as(func(v interface{}) interface{} {
		return TypeDecl{Type: v.(yaixm.AirspaceType)}
	})

	return seq(
		many1(either(airspace, includeYes, includeNo, classDecl, typeDecl)),
		word("END"),
	).as(func(v interface{}) interface{} {
		items := v.([]interface{})[0].([]interface{})
		blocks := make([]Block, len(items))
		for i, item := range items {
			blocks[i] = item.(Block)
		}
		return blocks
	})
}

// digits matches an unsigned integer of min to max digits. max=0 means
// no upper limit. Its value is an int.
func digits(min, max int) rule {
	return match(Number, "<digits>", func(lexeme string) (interface{}, bool) {
		return digitsValue(lexeme, min, max)
	})
}

func digitsValue(lexeme string, min, max int) (int, bool) {
	if strings.IndexByte(lexeme, '.') >= 0 || len(lexeme) < min || (max > 0 && len(lexeme) > max) {
		return 0, false
	}
	n, err := strconv.Atoi(lexeme)
	return n, err == nil
}

// hemisphere matches one of the given hemisphere letters.
func hemisphere(letters ...string) rule {
	alts := make([]rule, len(letters))
	for i, l := range letters {
		alts[i] = word(l)
	}
	return either(alts...)
}

// angle converts a hemisphere and a DDMMSS or DDDMMSS number to an angle,
// rejecting it if it is out of range.
func angle(v interface{}, create func(byte, int, int, int) (yaixm.DMS, error)) (interface{}, bool) {
	vals := v.([]interface{})
	hemi, n := vals[0].(string), vals[1].(int)
	deg, min, sec := n/10000, n/100%100, n%100
	a, err := create(hemi[0], deg, min, sec)
	if err != nil {
		T().Debugf("coordinate rejected: %v", err)
		return nil, false
	}
	return a, true
}

func parseType(lexeme string) (interface{}, bool) {
	t, err := yaixm.ParseAirspaceType(lexeme)
	return t, err == nil
}
