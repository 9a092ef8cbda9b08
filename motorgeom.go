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

// Package motorgeom implements a 2D geometric modelling kernel for the
// cross-sections of electric machines.
//
// Geometry is made of directed entities, straight [Line] segments and
// circular [Arc] segments, which are chained into a [Region].  Regions carry
// the metadata needed to reconstruct a full machine from a symmetry-reduced
// slice.  The sub-package tree arranges regions into a named hierarchy.
//
// All coordinates are compared with the absolute tolerance [Tolerance].
package motorgeom

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance is the absolute tolerance used when comparing lengths and
// coordinates.
const Tolerance = 1e-6

var (
	// ErrArcGeometry is returned when no arc with the requested radius
	// can join two points.
	ErrArcGeometry = errors.New("not possible to draw an arc with this geometry")

	// ErrNotOnEntity is returned when a coordinate does not lie on any of
	// the entities of a region.
	ErrNotOnEntity = errors.New("coordinate is not on any entity")

	// ErrNotEndpoint is returned when a reference coordinate is neither the
	// start nor the end of an entity.
	ErrNotEndpoint = errors.New("coordinate is not an endpoint of the entity")

	// ErrEntityNotFound is returned when an entity is not part of a region.
	ErrEntityNotFound = errors.New("entity not found in region")

	// ErrVerticalLine is returned by [Line.YIntercept] for vertical lines.
	ErrVerticalLine = errors.New("vertical line, no y interception")

	// ErrNotACorner is returned when a corner coordinate is not shared by
	// two entities.
	ErrNotACorner = errors.New("coordinate is not a corner of the region")

	// ErrRadiusTooLarge is returned when a fillet does not fit between the
	// two entities adjacent to a corner.
	ErrRadiusTooLarge = errors.New("corner radius is too large for the adjacent entities")

	// ErrInvalidGeometry is returned when an entity list must be closed
	// and free of self intersections.
	ErrInvalidGeometry = errors.New("entities must be closed and nonintersecting")

	// ErrEllipseUnderdetermined is returned when the start and end point of
	// an ellipse are reflections of each other and neither the
	// eccentricity nor the depth is given.
	ErrEllipseUnderdetermined = errors.New("eccentricity or depth required for reflected points")

	// ErrEllipseInvalid is returned when the given points do not lie on an
	// ellipse with the requested orientation.
	ErrEllipseInvalid = errors.New("invalid points: proposed shape must be an ellipse or elliptic arc")

	// ErrBufferSize is returned by [RenderRegion] when the buffer cannot
	// hold the requested image.
	ErrBufferSize = errors.New("coverage buffer too small")
)

// NotConvergedError is returned when an iterative construction does not
// settle within its iteration limit.
type NotConvergedError struct {
	Op         string
	Iterations int
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("%s: cannot find intersection after %d iterations", e.Op, e.Iterations)
}

func deg2rad(a float64) float64 { return a * math.Pi / 180 }
func rad2deg(a float64) float64 { return a * 180 / math.Pi }

// mod360 reduces an angle in degrees to the range [0, 360).
func mod360(a float64) float64 {
	m := math.Mod(a, 360)
	if m < 0 {
		m += 360
	}
	if m >= 360 {
		m = 0
	}
	return m
}

func isClose(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
