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


package testcases

import (
	"math"

	"seehuhn.de/go/motorgeom"
)

var ellipses = []TestCase{
	{
		Name:   "half_ellipse",
		Region: halfEllipse(),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.5, 32, 54),
		Area:   math.Pi * 20 * 30 / 2,
	},
	{
		Name:   "ellipse_cap",
		Region: ellipseCap(),
		Width:  64,
		Height: 64,
		CTM:    flipY(2.5, 32, 30),
		Area:   20*10 + math.Pi*10*5/2,
	},
}

// halfEllipse returns the upper half of the ellipse with semi-axes 20
// (horizontal) and 30 (vertical), closed by a line along the x-axis.
func halfEllipse() *motorgeom.Region {
	start, end := pt(20, 0), pt(-20, 0)
	arcs := must(motorgeom.Ellipse(start, end, motorgeom.WithDepth(30)))

	r := motorgeom.NewRegion(motorgeom.RotorPocket)
	r.Name = "half_ellipse"
	r.Entities = append(arcs, motorgeom.Line{Start: end, End: start})
	return r
}

// ellipseCap returns a 20x10 rectangle with a half ellipse of height 5 on
// top, as used for bread-loaf magnets.
func ellipseCap() *motorgeom.Region {
	arcs := must(motorgeom.Ellipse(pt(10, 0), pt(-10, 0), motorgeom.WithDepth(5)))

	r := motorgeom.NewRegion(motorgeom.Magnet)
	r.Name = "ellipse_cap"
	r.AddEntity(motorgeom.Line{Start: pt(-10, -10), End: pt(10, -10)})
	r.AddEntity(motorgeom.Line{Start: pt(10, -10), End: pt(10, 0)})
	r.Entities = append(r.Entities, arcs...)
	r.AddEntity(motorgeom.Line{Start: pt(-10, 0), End: pt(-10, -10)})
	return r
}
