/*
Package yaixm is about airspace descriptions and their conversion into YAIXM,
a YAML representation of aeronautical airspace data.

Description

Airspace volumes are described by a name, an optional airspace type, an
optional ICAO class and a geometry. A geometry has a lower and an upper
vertical limit (the "base" and the "tops") and a lateral boundary. The
boundary is either a single circle, or a closed polygon made up from lines
(sequences of points) and arcs around a centre point.

Legacy tools describe airspace in TNP, a plain-text keyword=value format:

   CLASS=D
   TITLE=LONDON CTR
   BASE=SFC
   TOPS=FL195
   POINT=N512345 W0012345
   CLOCKWISE RADIUS=5 CENTRE=N513000 W0013000 TO=N512400 W0012400
   POINT=N512345 W0012345
   END

Sub-package tnp implements a scanner and a grammar driven parser for TNP.
Sub-package convert normalizes parsed TNP blocks into airspace values of this
package and cleans up redundant boundary points.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package yaixm holds the value types shared by all the sub-packages:
vertical limits (type Level), geographic positions (type Coordinate),
boundary segments (types Line, Circle and Arc) and type Airspace itself.
All of these render to the canonical strings of the YAIXM format, e.g.

   Level:       "SFC", "FL195", "2000 ft"
   Coordinate:  "512345N 0012345W"
   Radius:      "2.5 nm"

Encode writes a list of airspaces as a YAIXM document. Keys are written in a
fixed order (name, type, class, geometry), as downstream validators and
human readers expect them.
*/
package yaixm

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
