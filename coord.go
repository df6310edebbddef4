package yaixm

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DMS is an angle of latitude or longitude in degrees, minutes and
// seconds, together with its hemisphere letter (one of 'N', 'S', 'E', 'W').
type DMS struct {
	Hemisphere byte
	Deg        int
	Min        int
	Sec        int
}

// Coordinate is a geographic position.
type Coordinate struct {
	Lat DMS
	Lon DMS
}

// ErrCoordinate flags a malformed or out-of-range coordinate.
var ErrCoordinate = errors.New("invalid coordinate")

// Latitude creates a latitude angle. hemi has to be 'N' or 'S'.
func Latitude(hemi byte, deg, min, sec int) (DMS, error) {
	a := DMS{Hemisphere: hemi, Deg: deg, Min: min, Sec: sec}
	if hemi != 'N' && hemi != 'S' {
		return a, fmt.Errorf("%w: latitude hemisphere %q", ErrCoordinate, hemi)
	}
	return a, a.check(90)
}

// Longitude creates a longitude angle. hemi has to be 'E' or 'W'.
func Longitude(hemi byte, deg, min, sec int) (DMS, error) {
	a := DMS{Hemisphere: hemi, Deg: deg, Min: min, Sec: sec}
	if hemi != 'E' && hemi != 'W' {
		return a, fmt.Errorf("%w: longitude hemisphere %q", ErrCoordinate, hemi)
	}
	return a, a.check(180)
}

func (a DMS) check(maxDeg int) error {
	if a.Deg < 0 || a.Deg > maxDeg || a.Min < 0 || a.Min > 59 || a.Sec < 0 || a.Sec > 59 {
		return fmt.Errorf("%w: %d°%d'%d\" out of range", ErrCoordinate, a.Deg, a.Min, a.Sec)
	}
	if a.Deg == maxDeg && (a.Min > 0 || a.Sec > 0) {
		return fmt.Errorf("%w: %d°%d'%d\" beyond %d°", ErrCoordinate, a.Deg, a.Min, a.Sec, maxDeg)
	}
	return nil
}

func (a DMS) format(degWidth int) string {
	return fmt.Sprintf("%0*d%02d%02d%c", degWidth, a.Deg, a.Min, a.Sec, a.Hemisphere)
}

// String renders a coordinate as "DDMMSSH DDDMMSSH", e.g. "512345N 0012345W".
func (c Coordinate) String() string {
	return c.Lat.format(2) + " " + c.Lon.format(3)
}

// MarshalYAML is part of interface yaml.Marshaler.
func (c Coordinate) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// ParseCoordinate reads a coordinate in YAIXM notation, i.e. latitude and
// longitude separated by whitespace. Seconds may carry a fractional part
// ("512345.6N 0012345.49W"); they are rounded to whole seconds. A rounding
// result of 60 seconds carries into the minutes, 60 minutes carry into the
// degrees.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q: expected latitude and longitude", ErrCoordinate, s)
	}
	lat, err := parseAngle(parts[0], 2)
	if err != nil {
		return Coordinate{}, err
	}
	if lat, err = Latitude(lat.Hemisphere, lat.Deg, lat.Min, lat.Sec); err != nil {
		return Coordinate{}, err
	}
	lon, err := parseAngle(parts[1], 3)
	if err != nil {
		return Coordinate{}, err
	}
	if lon, err = Longitude(lon.Hemisphere, lon.Deg, lon.Min, lon.Sec); err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// parseAngle reads "D…DMMSS[.f]H", where the degrees have degWidth digits.
func parseAngle(s string, degWidth int) (DMS, error) {
	if len(s) < degWidth+5 {
		return DMS{}, fmt.Errorf("%w: %q too short", ErrCoordinate, s)
	}
	hemi := strings.ToUpper(s[len(s)-1:])[0]
	num := s[:len(s)-1]
	whole, frac := num, ""
	if i := strings.IndexByte(num, '.'); i >= 0 {
		whole, frac = num[:i], num[i:]
	}
	if len(whole) != degWidth+4 || !allDigits(whole) || (frac != "" && !allDigits(frac[1:])) {
		return DMS{}, fmt.Errorf("%w: %q", ErrCoordinate, s)
	}
	d, _ := strconv.Atoi(whole[:degWidth])
	m, _ := strconv.Atoi(whole[degWidth : degWidth+2])
	if s0, _ := strconv.Atoi(whole[degWidth+2:]); m > 59 || s0 > 59 {
		return DMS{}, fmt.Errorf("%w: %q: minutes or seconds out of range", ErrCoordinate, s)
	}
	secs, err := strconv.ParseFloat(whole[degWidth+2:]+frac, 64)
	if err != nil {
		return DMS{}, fmt.Errorf("%w: %q: %v", ErrCoordinate, s, err)
	}
	sec := int(math.Round(secs))
	if sec == 60 {
		sec = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}
	return DMS{Hemisphere: hemi, Deg: d, Min: m, Sec: sec}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
