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
	"errors"
	"math"
)

// maxFitPoints is the largest number of input points which a single
// fitted entity may cover.
const maxFitPoints = 100

// ErrFitFailed is returned by [FitEntities] if no entity can be fitted to
// the next points.
var ErrFitFailed = errors.New("failed to create next entity")

// FitEntities approximates a polyline through the given points by lines
// and arcs.  Every point covered by a line lies within lineTol of it, and
// every point covered by an arc lies within arcTol of it.  At each step
// the entity covering the most points is chosen, preferring lines.
func FitEntities(points []Coordinate, lineTol, arcTol float64) (EntityList, error) {
	var pts []Coordinate
	for i, p := range points {
		if i > 0 && p.Equal(points[i-1]) {
			continue
		}
		pts = append(pts, p)
	}

	var res EntityList
	for len(pts) > 2 {
		line, nLine := fitNext(pts, func(seg []Coordinate) (Entity, bool) {
			l := Line{Start: seg[0], End: seg[len(seg)-1]}
			return l, lineFits(l, seg, lineTol)
		})
		arc, nArc := fitNext(pts, func(seg []Coordinate) (Entity, bool) {
			mid := int(math.RoundToEven(float64(len(seg)-1) / 2))
			a, ok := ArcThrough(seg[0], seg[mid], seg[len(seg)-1])
			return a, ok && arcFits(a, seg, arcTol)
		})

		var next Entity
		var used int
		switch {
		case line == nil && arc == nil:
			return nil, ErrFitFailed
		case arc == nil || line != nil && nLine >= nArc:
			next, used = line, nLine
		default:
			next, used = arc, nArc
		}
		res = append(res, next)
		pts = pts[used-1:]
	}
	if len(pts) == 2 {
		res = append(res, Line{Start: pts[0], End: pts[1]})
	}
	return res, nil
}

// fitNext grows a segment from the start of pts for as long as the
// candidate entity stays within tolerance.  It returns the last good
// entity and the number of points it covers.
func fitNext(pts []Coordinate, try func([]Coordinate) (Entity, bool)) (Entity, int) {
	var best Entity
	var n int
	for last := 2; last < maxFitPoints && last < len(pts); last++ {
		e, ok := try(pts[:last+1])
		if !ok {
			break
		}
		best, n = e, last+1
	}
	return best, n
}

// lineFits reports whether all points lie within tol of the infinite line
// through l.
func lineFits(l Line, pts []Coordinate, tol float64) bool {
	d := l.End.Sub(l.Start)
	length := d.Abs()
	if length == 0 {
		return false
	}
	for _, p := range pts {
		if math.Abs(cross(d, p.Sub(l.Start)))/length > tol {
			return false
		}
	}
	return true
}

// arcFits reports whether all points lie within tol of the arc.  Points
// outside the angular range of the arc are measured against the nearer
// endpoint.
func arcFits(a Arc, pts []Coordinate, tol float64) bool {
	radius := math.Abs(a.Radius)
	total := a.TotalAngle()
	for _, p := range pts {
		r, theta := p.Sub(a.Centre).Polar()
		var swept float64
		if a.Radius > 0 {
			swept = mod360(theta - a.StartAngle())
		} else {
			swept = mod360(a.StartAngle() - theta)
		}
		var dist float64
		if swept <= total {
			dist = math.Abs(radius - r)
		} else {
			dist = min(p.Sub(a.Start).Abs(), p.Sub(a.End).Abs())
		}
		if dist > tol {
			return false
		}
	}
	return true
}
