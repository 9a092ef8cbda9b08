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
	"fmt"
	"math"
)

// parallelThreshold is the limit for |sin(angle)| between two lines below
// which the lines are treated as parallel.
const parallelThreshold = 1e-12

// LineIntersection returns the intersection of the infinite lines through l
// and o.  If the lines are parallel or coincident, ok is false.
func (l Line) LineIntersection(o Line) (p Coordinate, ok bool) {
	// implicit form A*x + B*y = C
	a1 := l.End.Y - l.Start.Y
	b1 := l.Start.X - l.End.X
	c1 := a1*l.Start.X + b1*l.Start.Y
	a2 := o.End.Y - o.Start.Y
	b2 := o.Start.X - o.End.X
	c2 := a2*o.Start.X + b2*o.Start.Y

	det := a1*b2 - a2*b1
	scale := l.Length() * o.Length()
	if scale == 0 || math.Abs(det) <= parallelThreshold*scale {
		return Coordinate{}, false
	}
	return Coordinate{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// ArcIntersection returns the intersections of the infinite line through l
// with the full circle of a.  The result has zero, one (tangent) or two
// elements.
func (l Line) ArcIntersection(a Arc) []Coordinate {
	return circleLine(a.Centre, math.Abs(a.Radius), l)
}

// LineIntersection returns the intersections of the full circle of a with
// the infinite line through l.
func (a Arc) LineIntersection(l Line) []Coordinate {
	return circleLine(a.Centre, math.Abs(a.Radius), l)
}

// ArcIntersection returns the intersections of the full circles of a and o.
// Concentric circles, nested circles and separated circles have no
// intersections; touching circles have one.
func (a Arc) ArcIntersection(o Arc) []Coordinate {
	r1 := math.Abs(a.Radius)
	r2 := math.Abs(o.Radius)
	delta := o.Centre.Sub(a.Centre)
	d := delta.Abs()

	switch {
	case d < Tolerance:
		return nil
	case d > r1+r2+Tolerance:
		return nil
	case d < math.Abs(r1-r2)-Tolerance:
		return nil
	}

	// distance from a.Centre to the radical line
	x := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(max(0, r1*r1-x*x))
	u := delta.Div(d)
	foot := a.Centre.Add(u.Mul(x))
	if h < Tolerance {
		return []Coordinate{foot}
	}
	n := Coordinate{X: -u.Y, Y: u.X}
	return []Coordinate{foot.Add(n.Mul(h)), foot.Sub(n.Mul(h))}
}

// circleLine intersects a circle with the infinite line through l.
func circleLine(centre Coordinate, r float64, l Line) []Coordinate {
	d := l.End.Sub(l.Start)
	length := d.Abs()
	if length == 0 {
		return nil
	}
	u := d.Div(length)
	foot := l.Start.Add(u.Mul(centre.Sub(l.Start).Dot(u)))
	h := foot.Sub(centre).Abs()

	switch {
	case h > r+Tolerance:
		return nil
	case math.Abs(h-r) < Tolerance:
		return []Coordinate{foot}
	}
	s := math.Sqrt(r*r - h*h)
	return []Coordinate{foot.Sub(u.Mul(s)), foot.Add(u.Mul(s))}
}

// Intersection returns the points where the entities a and b cross.
// Only points which lie on both entities are returned.
func Intersection(a, b Entity) []Coordinate {
	var candidates []Coordinate
	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			if p, ok := a.LineIntersection(b); ok {
				candidates = []Coordinate{p}
			}
		case Arc:
			candidates = a.ArcIntersection(b)
		default:
			panic(fmt.Sprintf("unexpected entity type %T", b))
		}
	case Arc:
		switch b := b.(type) {
		case Line:
			candidates = a.LineIntersection(b)
		case Arc:
			candidates = a.ArcIntersection(b)
		default:
			panic(fmt.Sprintf("unexpected entity type %T", b))
		}
	default:
		panic(fmt.Sprintf("unexpected entity type %T", a))
	}

	var res []Coordinate
	for _, p := range candidates {
		if a.CoordinateOnEntity(p) && b.CoordinateOnEntity(p) {
			res = append(res, p)
		}
	}
	return res
}
