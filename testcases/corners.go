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

var corners = []TestCase{
	{
		Name:   "rounded_square",
		Region: roundAll(motorgeom.Rectangle(40, 40, pt(0, 0), 0), 5),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.2, 32, 32),
		Area:   40*40 - (4-math.Pi)*5*5,
	},
	{
		Name:   "rounded_triangle",
		Region: roundAll(motorgeom.EqTriangleW(40, 0, 0), 3),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.2, 32, 32),
		Area:   math.Sqrt(3)/4*40*40 - 3*cornerLoss(3, math.Pi/3),
	},
	{
		Name:   "slot",
		Region: roundedSlot(),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.5, 32, 60),
		Area:   8*30 - 2*cornerLoss(2, math.Pi/2),
	},
}

// roundAll rounds every corner of r.
func roundAll(r *motorgeom.Region, radius float64) *motorgeom.Region {
	if err := r.RoundCorners(r.Points(), radius); err != nil {
		panic(err)
	}
	return r
}

// cornerLoss returns the area removed by rounding a corner with the given
// interior angle.
func cornerLoss(radius, angle float64) float64 {
	return radius*radius/math.Tan(angle/2) - radius*radius*(math.Pi-angle)/2
}

// roundedSlot returns a slot 8 wide and 30 deep, with the two
// corners at the bottom of the slot rounded.
func roundedSlot() *motorgeom.Region {
	r := motorgeom.NewRegion(motorgeom.StatorSlot)
	r.Name = "slot"
	r.Entities = motorgeom.Polygon([]motorgeom.Coordinate{
		pt(-4, 0), pt(4, 0), pt(4, 30), pt(-4, 30),
	}, false)
	if err := r.RoundCorners([]motorgeom.Coordinate{pt(-4, 0), pt(4, 0)}, 2); err != nil {
		panic(err)
	}
	return r
}
