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

var shapes = []TestCase{
	{
		Name:   "rectangle",
		Region: motorgeom.Rectangle(40, 20, pt(0, 0), 30),
		Width:  64,
		Height: 64,
		CTM:    flipY(1, 32, 32),
		Area:   800,
	},
	{
		Name:   "square",
		Region: motorgeom.Square(10, 30, 22.5),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.5, 0, 52),
		Area:   100,
	},
	{
		Name:   "triangle",
		Region: motorgeom.EqTriangleW(30, 0, 0),
		Width:  64,
		Height: 64,
		CTM:    flipY(1, 32, 32),
		Area:   math.Sqrt(3) / 4 * 30 * 30,
	},
	{
		Name:   "hexagon",
		Region: motorgeom.Hexagon(20, pt(0, 0), 0),
		Width:  64,
		Height: 64,
		CTM:    flipY(1, 32, 32),
		Area:   3 * math.Sqrt(3) / 2 * 20 * 20,
	},
	{
		Name:   "octagon",
		Region: motorgeom.RegularPolygon(8, 25, pt(0, 0), 22.5),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.2, 32, 32),
		Area:   4 * 25 * 25 * math.Sin(math.Pi/4),
	},
	{
		Name:   "notch",
		Region: motorgeom.TriangularNotch(100, 20, 90, 10),
		Width:  96,
		Height: 96,
		CTM:    flipY(2, 48, 248),
		Area:   notchArea(100, 20, 10),
	},
}

// notchArea returns the area of a triangular notch: the circular segment
// above the chord plus the triangle below it.
func notchArea(radius, sweep, depth float64) float64 {
	theta := sweep * math.Pi / 180
	segment := radius * radius / 2 * (theta - math.Sin(theta))
	chord := 2 * radius * math.Sin(theta/2)
	height := radius*math.Cos(theta/2) - (radius - depth)
	return segment + chord*height/2
}
