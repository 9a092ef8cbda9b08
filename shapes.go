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
)

// squareSector is the angular sector, in degrees, which a square built by
// [Square] must fit into.
const squareSector = 45

// Rectangle returns an axis-parallel rectangle with the given centre,
// rotated anticlockwise by angle degrees about the centre.
func Rectangle(width, height float64, centre Coordinate, angle float64) *Region {
	w, h := width/2, height/2
	corners := []Coordinate{
		{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h},
	}
	for i, c := range corners {
		corners[i] = c.Rotate(Coordinate{}, angle).Add(centre)
	}
	r := NewRegion(Adaptive)
	r.Entities = Polygon(corners, false)
	return r
}

// Square returns a square of the given width, centred at the polar
// coordinates (r, theta).  If parts of the square would fall outside the
// sector between 0 and 45 degrees, the square is rotated about the origin
// to move it back inside and a warning is logged.
func Square(width, r, theta float64) *Region {
	pts := squareCorners(width, r, theta)

	shift := 0.0
	for _, p := range pts[2:] { // C and D, the lower corners
		if _, th := p.Polar(); th < 0 && -th > shift {
			shift = -th
		}
	}
	for _, p := range pts[:2] { // A and B, the upper corners
		if _, th := p.Polar(); th > squareSector && th-squareSector > math.Abs(shift) {
			shift = -(th - squareSector)
		}
	}
	if shift != 0 {
		Logger().Warn("square coordinate not valid, square rotated",
			"degrees", shift)
		pts = squareCorners(width, r, theta+shift)
	}

	a, b, c, d := pts[0], pts[1], pts[2], pts[3]
	res := NewRegion(Adaptive)
	res.Entities = EntityList{
		Line{Start: a, End: d},
		Line{Start: d, End: c},
		Line{Start: c, End: b},
		Line{Start: b, End: a},
	}
	return res
}

// squareCorners returns the corners A (upper left), B (upper right),
// C (lower right) and D (lower left) of a square.
func squareCorners(width, r, theta float64) [4]Coordinate {
	o := FromPolar(r, theta)
	hyp := math.Sqrt2 * width / 2
	opp := hyp * math.Sin(deg2rad(theta+45))
	adj := hyp * math.Cos(deg2rad(theta+45))
	return [4]Coordinate{
		o.Add(Coordinate{X: -opp, Y: adj}),
		o.Add(Coordinate{X: adj, Y: opp}),
		o.Add(Coordinate{X: opp, Y: -adj}),
		o.Add(Coordinate{X: -adj, Y: -opp}),
	}
}

// EqTriangleH returns an equilateral triangle of the given height, with
// its centroid at the polar coordinates (r, theta).  One vertex points in
// direction theta.
func EqTriangleH(height, r, theta float64) *Region {
	o := FromPolar(r, theta)
	ha := 2 * height / 3
	a := o.Add(Coordinate{
		X: -ha * math.Sin(deg2rad(30+theta)),
		Y: ha * math.Cos(deg2rad(30+theta)),
	})
	b := o.Add(Coordinate{
		X: ha * math.Cos(deg2rad(theta)),
		Y: ha * math.Sin(deg2rad(theta)),
	})
	c := o.Sub(Coordinate{
		X: ha * math.Sin(deg2rad(30-theta)),
		Y: ha * math.Cos(deg2rad(30-theta)),
	})

	res := NewRegion(Adaptive)
	res.Entities = EntityList{
		Line{Start: a, End: c},
		Line{Start: c, End: b},
		Line{Start: b, End: a},
	}
	return res
}

// EqTriangleW returns an equilateral triangle with the given side length.
// See [EqTriangleH].
func EqTriangleW(width, r, theta float64) *Region {
	return EqTriangleH(math.Sqrt(3)*width/2, r, theta)
}

// RegularPolygon returns the regular polygon with n vertices on the circle
// of the given radius about centre.  The first vertex is in direction
// angle.
func RegularPolygon(n int, radius float64, centre Coordinate, angle float64) *Region {
	pts := make([]Coordinate, n)
	for i := range pts {
		pts[i] = centre.Add(FromPolar(radius, angle+360*float64(i)/float64(n)))
	}
	res := NewRegion(Adaptive)
	res.Entities = Polygon(pts, false)
	return res
}

// Hexagon returns the regular hexagon with the given circumradius.
func Hexagon(radius float64, centre Coordinate, angle float64) *Region {
	return RegularPolygon(6, radius, centre, angle)
}

// TriangularNotch returns a triangular notch cut into the circle of the
// given radius about the origin.  The notch is centred at centreAngle,
// spans sweep degrees along the circle and reaches depth towards the
// centre.
func TriangularNotch(radius, sweep, centreAngle, depth float64) *Region {
	p1 := FromPolar(radius, centreAngle-sweep/2)
	p2 := FromPolar(radius-depth, centreAngle)
	p3 := FromPolar(radius, centreAngle+sweep/2)

	res := NewRegion(Adaptive)
	res.Entities = EntityList{
		Line{Start: p3, End: p2},
		Line{Start: p2, End: p1},
		Arc{Start: p1, End: p3, Centre: Coordinate{}, Radius: radius},
	}
	return res
}
