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


// Package testcases provides sample geometries for tests, benchmarks and
// the commands in the subdirectories.
package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/motorgeom"
)

// TestCase is a named region together with a canvas to draw it on.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Region *motorgeom.Region // the geometry, a closed entity chain
	Width  int               // canvas width in pixels
	Height int               // canvas height in pixels
	CTM    matrix.Matrix     // region coordinates to pixels (zero-value means no transform)
	Area   float64           // exact area enclosed by the ideal shape
}

// flipY maps region coordinates to pixels, scaling by s and placing the
// region origin at pixel (x0, y0).  The y-axis points up.
func flipY(s, x0, y0 float64) matrix.Matrix {
	return matrix.Matrix{s, 0, 0, -s, x0, y0}
}

// must panics if err is non-nil.  The samples are fixed, so any error is
// a bug in the geometry code.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func pt(x, y float64) motorgeom.Coordinate {
	return motorgeom.C(x, y)
}
