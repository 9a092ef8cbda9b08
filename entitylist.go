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
	"slices"
)

// EntityList is an ordered chain of entities.
type EntityList []Entity

// Clone returns a copy of the list.  Entities are values, so the copy
// shares no state with l.
func (l EntityList) Clone() EntityList {
	return slices.Clone(l)
}

// Equal reports whether l and o describe the same chain of entities.
// The comparison ignores the choice of the first entity and the direction
// of traversal.
func (l EntityList) Equal(o EntityList) bool {
	return l.Same(o, true)
}

// Same reports whether o is a cyclic shift of l.  If checkReverse is set,
// o may also be a cyclic shift of l traversed backwards.
func (l EntityList) Same(o EntityList, checkReverse bool) bool {
	if len(l) != len(o) {
		return false
	}
	if len(l) == 0 {
		return true
	}
	if isShift(l, o) {
		return true
	}
	return checkReverse && isShift(l.Reverse(), o)
}

func isShift(a, b EntityList) bool {
	n := len(a)
shifts:
	for k := range n {
		for i := range n {
			if !EntitiesEqual(a[i], b[(i+k)%n]) {
				continue shifts
			}
		}
		return true
	}
	return false
}

// Reverse returns the chain traversed in the opposite direction.
func (l EntityList) Reverse() EntityList {
	res := make(EntityList, len(l))
	for i, e := range l {
		res[len(l)-1-i] = Reverse(e)
	}
	return res
}

// IsClosed reports whether every entity ends where the next one starts,
// including the last and the first entity.  Empty lists are not closed.
func (l EntityList) IsClosed() bool {
	if len(l) == 0 {
		return false
	}
	for i, e := range l {
		_, end := e.Endpoints()
		start, _ := l[(i+1)%len(l)].Endpoints()
		if !end.Equal(start) {
			return false
		}
	}
	return true
}

// Points returns the distinct endpoints of the entities, in order.
func (l EntityList) Points() []Coordinate {
	var res []Coordinate
	add := func(p Coordinate) {
		for _, q := range res {
			if q.Equal(p) {
				return
			}
		}
		res = append(res, p)
	}
	for _, e := range l {
		start, end := e.Endpoints()
		add(start)
		add(end)
	}
	return res
}

// SelfIntersecting reports whether any two entities cross, other than at a
// shared endpoint.
func (l EntityList) SelfIntersecting() bool {
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			shared := sharedEndpoints(l[i], l[j])
		points:
			for _, p := range Intersection(l[i], l[j]) {
				for _, q := range shared {
					if p.Equal(q) {
						continue points
					}
				}
				return true
			}
		}
	}
	return false
}

func sharedEndpoints(a, b Entity) []Coordinate {
	as, ae := a.Endpoints()
	bs, be := b.Endpoints()
	var res []Coordinate
	for _, p := range []Coordinate{as, ae} {
		if p.Equal(bs) || p.Equal(be) {
			res = append(res, p)
		}
	}
	return res
}

// SignedArea returns the area enclosed by a closed chain.  The area is
// positive if the chain runs anticlockwise.
func (l EntityList) SignedArea() float64 {
	var area float64
	for _, e := range l {
		start, end := e.Endpoints()
		area += cross(start, end) / 2
		if a, ok := e.(Arc); ok {
			theta := deg2rad(a.TotalAngle())
			area += a.sign() * a.Radius * a.Radius / 2 * (theta - math.Sin(theta))
		}
	}
	return area
}

// IsAnticlockwise reports whether a closed, non-self-intersecting chain
// runs anticlockwise.
func (l EntityList) IsAnticlockwise() (bool, error) {
	if !l.IsClosed() || l.SelfIntersecting() {
		return false, ErrInvalidGeometry
	}
	return l.SignedArea() > 0, nil
}

// HasValidGeometry reports whether the chain is closed, free of self
// intersections, and runs anticlockwise.
func (l EntityList) HasValidGeometry() bool {
	ccw, err := l.IsAnticlockwise()
	return err == nil && ccw
}

// Polygon returns the closed polygon through the given points.
// If sortPoints is set, the points are first ordered anticlockwise about
// their mean.  Point sequences which result in a clockwise polygon are
// accepted, but a warning is logged.
func Polygon(points []Coordinate, sortPoints bool) EntityList {
	if len(points) == 0 {
		return nil
	}
	if sortPoints {
		var mean Coordinate
		for _, p := range points {
			mean = mean.Add(p)
		}
		mean = mean.Div(float64(len(points)))
		points = slices.Clone(points)
		slices.SortStableFunc(points, func(a, b Coordinate) int {
			_, ta := a.Sub(mean).Polar()
			_, tb := b.Sub(mean).Polar()
			switch {
			case ta < tb:
				return -1
			case ta > tb:
				return 1
			}
			return 0
		})
	}

	res := make(EntityList, len(points))
	for i, p := range points {
		res[i] = Line{Start: p, End: points[(i+1)%len(points)]}
	}
	if res.SignedArea() < 0 {
		Logger().Warn("entered point order may result in invalid geometry",
			"points", len(points))
	}
	return res
}
