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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxBezierSweep is the largest arc sweep, in degrees, approximated by a
// single cubic Bézier curve.
const maxBezierSweep = 90

// Path returns the entity chain as a path.  Lines become line segments,
// arcs are approximated by cubic Bézier curves.  Closed chains end with a
// close command.
func (l EntityList) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(l) == 0 {
			return
		}
		var buf [3]vec.Vec2

		start, _ := l[0].Endpoints()
		buf[0] = start.Vec()
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, e := range l {
			switch e := e.(type) {
			case Line:
				buf[0] = e.End.Vec()
				if !yield(path.CmdLineTo, buf[:1]) {
					return
				}
			case Arc:
				for _, seg := range arcToCubics(e) {
					buf = seg
					if !yield(path.CmdCubeTo, buf[:3]) {
						return
					}
				}
			}
		}
		if l.IsClosed() {
			yield(path.CmdClose, nil)
		}
	}
}

// Path returns the boundary of the region as a path.
func (r *Region) Path() path.Path {
	return r.Entities.Path()
}

// arcToCubics returns the control points of cubic Bézier curves
// approximating the arc.  The start point of each curve is the end point
// of the previous one.
func arcToCubics(a Arc) [][3]vec.Vec2 {
	total := a.TotalAngle()
	n := max(1, int(math.Ceil(total/maxBezierSweep-Tolerance)))
	phi := a.sign() * deg2rad(total) / float64(n)
	radius := math.Abs(a.Radius)
	k := 4.0 / 3.0 * math.Tan(phi/4) * radius

	alpha := deg2rad(a.StartAngle())
	p0 := a.Start
	res := make([][3]vec.Vec2, n)
	for i := range n {
		beta := alpha + phi
		p3 := a.End
		if i < n-1 {
			p3 = a.Centre.Add(Coordinate{X: radius * math.Cos(beta), Y: radius * math.Sin(beta)})
		}
		c1 := p0.Add(Coordinate{X: -math.Sin(alpha), Y: math.Cos(alpha)}.Mul(k))
		c2 := p3.Sub(Coordinate{X: -math.Sin(beta), Y: math.Cos(beta)}.Mul(k))
		res[i] = [3]vec.Vec2{c1.Vec(), c2.Vec(), p3.Vec()}
		p0, alpha = p3, beta
	}
	return res
}
