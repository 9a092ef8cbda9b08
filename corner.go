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
	"fmt"
	"math"
	"slices"
)

// MaxCornerIterations is the maximum number of refinement steps used to
// locate the tangent points of a fillet next to an arc.
const MaxCornerIterations = 100

const (
	// straightThreshold bounds the distance of the cosine of the corner
	// angle from -1 (straight continuation) and +1 (cusp).
	straightThreshold = 1e-12

	// maximiseSteps is the number of bisection steps used to find the
	// largest fillet radius which fits.
	maximiseSteps = 60
)

// CornerOption modifies the behaviour of [Region.RoundCorner] and
// [Region.RoundCorners].
type CornerOption func(*cornerConfig)

type cornerConfig struct {
	maximise bool
}

// WithMaximiseRadius allows corner rounding to reduce the radius, if the
// requested radius does not fit.  The largest radius which fits is used.
func WithMaximiseRadius() CornerOption {
	return func(c *cornerConfig) { c.maximise = true }
}

// fillet describes the rounding of a single corner.
type fillet struct {
	before, after int        // indices of the entities meeting at the corner
	p1, p2        Coordinate // new end of before, new start of after
	dist          float64    // distance of p1 and p2 from the corner
	arc           Arc
}

// RoundCorner replaces the corner at the given coordinate by a circular
// arc of the given radius, tangent to both adjacent entities.
//
// The corner must be the end of one entity and the start of another.  If
// both entities end (or both start) at the corner, one of them is reversed
// first.  A zero radius, or a corner where the two entities continue in a
// straight line, leaves the region unchanged.
func (r *Region) RoundCorner(corner Coordinate, radius float64, opts ...CornerOption) error {
	return r.RoundCorners([]Coordinate{corner}, radius, opts...)
}

// RoundCorners rounds every corner in the list with the given radius.
// All fillets are measured against the entities before rounding, so that
// the result does not depend on the order of the corners.
//
// With [WithMaximiseRadius], an entity between two rounded corners is
// shared evenly between the two fillets.
func (r *Region) RoundCorners(corners []Coordinate, radius float64, opts ...CornerOption) error {
	var cfg cornerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	radius = math.Abs(radius)
	if radius == 0 {
		return nil
	}

	ents := slices.Clone(r.Entities)
	var todo []cornerAt
	uses := make(map[int]int)
	seen := make(map[int]bool)
	for _, corner := range corners {
		c, err := locateCorner(ents, corner)
		if err != nil {
			return fmt.Errorf("region %q: corner %s: %w", r.Name, corner, err)
		}
		if seen[c.before] || isStraight(ents[c.before], ents[c.after], corner) {
			continue
		}
		seen[c.before] = true
		todo = append(todo, c)
		uses[c.before]++
		uses[c.after]++
	}

	byBefore := make(map[int]*fillet)
	byAfter := make(map[int]*fillet)
	for _, c := range todo {
		avail := func(i int) float64 {
			l := ents[i].Length()
			if cfg.maximise {
				l /= float64(uses[i])
			}
			return l
		}
		limit := min(avail(c.before), avail(c.after))
		f, err := findFillet(ents, c, radius, limit, cfg.maximise)
		if err != nil {
			return fmt.Errorf("region %q: corner %s: %w", r.Name, c.corner, err)
		}
		if f == nil {
			continue
		}
		byBefore[f.before] = f
		byAfter[f.after] = f
	}
	if len(byBefore) == 0 {
		return nil
	}

	var res EntityList
	for i, e := range ents {
		start, end := e.Endpoints()
		cut := 0.0
		if f := byAfter[i]; f != nil {
			start = f.p2
			cut += f.dist
		}
		if f := byBefore[i]; f != nil {
			end = f.p1
			cut += f.dist
		}
		length := e.Length()
		if cut > length+Tolerance {
			return fmt.Errorf("region %q: entity %d: %w", r.Name, i, ErrRadiusTooLarge)
		}
		if cut == 0 {
			res = append(res, e)
		} else if length-cut > Tolerance {
			res = append(res, shorten(e, start, end))
		}
		if f := byBefore[i]; f != nil {
			res = append(res, f.arc)
		}
	}
	r.Entities = res
	return nil
}

// cornerAt identifies the two entities meeting at a corner.
type cornerAt struct {
	corner        Coordinate
	before, after int // before ends at the corner, after starts there
}

// locateCorner finds the entities meeting at corner.  If the two entities
// touching the corner are not joined head to tail, they are taken in
// chain order and reversed in place as needed.
func locateCorner(ents EntityList, corner Coordinate) (cornerAt, error) {
	c := cornerAt{corner: corner, before: -1, after: -1}
	var touching []int
	for i, e := range ents {
		start, end := e.Endpoints()
		if end.Equal(corner) && c.before < 0 {
			c.before = i
		}
		if start.Equal(corner) && c.after < 0 {
			c.after = i
		}
		if start.Equal(corner) || end.Equal(corner) {
			touching = append(touching, i)
		}
	}

	if (c.before < 0 || c.after < 0) && len(touching) == 2 {
		i, j := touching[0], touching[1]
		if i == 0 && j == len(ents)-1 {
			i, j = j, i
		}
		if _, end := ents[i].Endpoints(); !end.Equal(corner) {
			ents[i] = Reverse(ents[i])
		}
		if start, _ := ents[j].Endpoints(); !start.Equal(corner) {
			ents[j] = Reverse(ents[j])
		}
		c.before, c.after = i, j
	}

	if c.before < 0 || c.after < 0 || c.before == c.after {
		return c, ErrNotACorner
	}
	return c, nil
}

// isStraight reports whether the entities continue in a straight line
// through the corner.
func isStraight(before, after Entity, corner Coordinate) bool {
	u1 := directionFrom(before, corner, 0)
	u2 := directionFrom(after, corner, 0)
	return u1.Dot(u2) < -1+straightThreshold
}

// findFillet computes the fillet for one corner.  The tangent points may
// be at most limit away from the corner.  A nil result with a nil error
// means that the corner needs no rounding.
func findFillet(ents EntityList, c cornerAt, radius, limit float64, maximise bool) (*fillet, error) {
	eb, ea := ents[c.before], ents[c.after]
	corner := c.corner

	dist, left, straight, err := cornerDistance(eb, ea, corner, radius)
	if err != nil && !errors.Is(err, ErrRadiusTooLarge) {
		return nil, err
	}
	if straight {
		return nil, nil
	}
	if err != nil || dist > limit+Tolerance {
		if !maximise {
			return nil, ErrRadiusTooLarge
		}
		lo, hi := 0.0, radius
		for range maximiseSteps {
			mid := (lo + hi) / 2
			d, _, _, err := cornerDistance(eb, ea, corner, mid)
			if err == nil && d <= limit {
				lo = mid
			} else {
				hi = mid
			}
		}
		if lo < Tolerance {
			return nil, ErrRadiusTooLarge
		}
		Logger().Debug("corner radius reduced",
			"corner", corner, "requested", radius, "used", lo)
		radius = lo
		dist, left, _, err = cornerDistance(eb, ea, corner, radius)
		if err != nil {
			return nil, err
		}
	}

	p1, err := eb.CoordinateFromDistance(corner, dist)
	if err != nil {
		return nil, err
	}
	p2, err := ea.CoordinateFromDistance(corner, dist)
	if err != nil {
		return nil, err
	}
	signed := radius
	if !left {
		signed = -radius
	}
	arc, err := NewArc(p1, p2, signed)
	if err != nil {
		return nil, err
	}
	return &fillet{before: c.before, after: c.after, p1: p1, p2: p2, dist: dist, arc: arc}, nil
}

// cornerDistance finds the distance from the corner to the tangent points
// of a fillet with the given radius.  For arcs the local direction depends
// on this distance, so the computation is repeated until it settles.
//
// The result left is true if the path turns left at the corner.  The
// result straight is true if the entities continue in a straight line.
func cornerDistance(before, after Entity, corner Coordinate, radius float64) (dist float64, left, straight bool, err error) {
	_, lineB := before.(Line)
	_, lineA := after.(Line)

	for range MaxCornerIterations {
		u1 := directionFrom(before, corner, dist)
		u2 := directionFrom(after, corner, dist)
		cos := u1.Dot(u2)
		if cos < -1+straightThreshold {
			return 0, false, true, nil
		}
		if cos > 1-straightThreshold {
			return 0, false, false, ErrRadiusTooLarge
		}
		theta := math.Acos(cos)
		left = cross(u1.Mul(-1), u2) > 0

		next := radius / math.Tan(theta/2)
		if lineB && lineA || math.Abs(next-dist) < Tolerance {
			return next, left, false, nil
		}
		dist = next
	}
	return 0, false, false, &NotConvergedError{Op: "round corner", Iterations: MaxCornerIterations}
}

// directionFrom returns the unit vector pointing from the corner into the
// entity e.  For arcs this is the tangent if dist is zero and the secant to
// the point at distance dist along the arc otherwise.
func directionFrom(e Entity, corner Coordinate, dist float64) Coordinate {
	switch e := e.(type) {
	case Line:
		other := e.End
		if other.Equal(corner) {
			other = e.Start
		}
		return unit(other.Sub(corner))
	case Arc:
		if dist > Tolerance {
			p, err := e.CoordinateFromDistance(corner, dist)
			if err == nil {
				return unit(p.Sub(corner))
			}
		}
		rv := corner.Sub(e.Centre)
		tangent := Coordinate{X: -rv.Y, Y: rv.X}.Mul(e.sign())
		if corner.Equal(e.End) {
			tangent = tangent.Mul(-1)
		}
		return unit(tangent)
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

func unit(c Coordinate) Coordinate {
	l := c.Abs()
	if l == 0 {
		return c
	}
	return c.Div(l)
}

// shorten returns e with new endpoints on the same line or circle.
func shorten(e Entity, start, end Coordinate) Entity {
	switch e := e.(type) {
	case Line:
		return Line{Start: start, End: end}
	case Arc:
		return Arc{Start: start, End: end, Centre: e.Centre, Radius: e.Radius}
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}
