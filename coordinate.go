// seehuhn.de/go/motorgeom - 2D geometry for electric motor cross-sections
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package motorgeom

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Coordinate is a point (or a vector) in the plane.
//
// Coordinates are values: all methods return new coordinates and never
// modify the receiver.
type Coordinate vec.Vec2

// C is a shorthand for constructing a Coordinate.
func C(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromPolar returns the point at distance r from the origin, in direction
// theta (in degrees, anticlockwise from the positive x-axis).
func FromPolar(r, theta float64) Coordinate {
	x, y := RTToXY(r, theta)
	return Coordinate{X: x, Y: y}
}

// Vec converts c to a [vec.Vec2].
func (c Coordinate) Vec() vec.Vec2 {
	return vec.Vec2(c)
}

// Add returns c+d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate(c.Vec().Add(d.Vec()))
}

// Sub returns c-d.
func (c Coordinate) Sub(d Coordinate) Coordinate {
	return Coordinate(c.Vec().Sub(d.Vec()))
}

// Mul returns the scalar multiple s*c.
func (c Coordinate) Mul(s float64) Coordinate {
	return Coordinate(c.Vec().Mul(s))
}

// Div returns c/s.
func (c Coordinate) Div(s float64) Coordinate {
	return Coordinate(c.Vec().Mul(1 / s))
}

// Abs returns the distance of c from the origin.
func (c Coordinate) Abs() float64 {
	return c.Vec().Length()
}

// Dot returns the scalar product of c and d.
func (c Coordinate) Dot(d Coordinate) float64 {
	return c.Vec().Dot(d.Vec())
}

// Polar returns the polar coordinates of c.  The angle is in degrees,
// in the range (-180, 180].
func (c Coordinate) Polar() (r, theta float64) {
	return XYToRT(c.X, c.Y)
}

// Equal reports whether c and d agree within [Tolerance].
func (c Coordinate) Equal(d Coordinate) bool {
	return isClose(c.X, d.X) && isClose(c.Y, d.Y)
}

// Rotate rotates c anticlockwise about centre by angle degrees.
func (c Coordinate) Rotate(centre Coordinate, angle float64) Coordinate {
	return apply(matrix.RotateDeg(angle), c.Sub(centre)).Add(centre)
}

// Translate shifts c by (dx, dy).
func (c Coordinate) Translate(dx, dy float64) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Mirror reflects c about the infinite line through l.
func (c Coordinate) Mirror(l Line) Coordinate {
	if l.IsVertical() {
		return Coordinate{X: 2*l.Start.X - c.X, Y: c.Y}
	}
	phi := 2 * math.Atan2(l.End.Y-l.Start.Y, l.End.X-l.Start.X)
	cos, sin := math.Cos(phi), math.Sin(phi)
	m := matrix.Matrix{cos, sin, sin, -cos, 0, 0}
	return apply(m, c.Sub(l.Start)).Add(l.Start)
}

// String formats c as "[x, y]".
func (c Coordinate) String() string {
	return "[" + formatFloat(c.X) + ", " + formatFloat(c.Y) + "]"
}

// XYToRT converts cartesian coordinates to polar coordinates,
// with the angle in degrees.
func XYToRT(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), rad2deg(math.Atan2(y, x))
}

// RTToXY converts polar coordinates, with the angle in degrees, to
// cartesian coordinates.
func RTToXY(r, theta float64) (x, y float64) {
	sin, cos := math.Sincos(deg2rad(theta))
	return r * cos, r * sin
}

// apply maps c through the affine transformation m.
func apply(m matrix.Matrix, c Coordinate) Coordinate {
	return Coordinate{
		X: m[0]*c.X + m[2]*c.Y + m[4],
		Y: m[1]*c.X + m[3]*c.Y + m[5],
	}
}

// cross returns the z-component of the cross product of a and b.
func cross(a, b Coordinate) float64 {
	return a.X*b.Y - a.Y*b.X
}

func formatFloat(x float64) string {
	if x == 0 {
		x = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
