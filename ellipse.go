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
	"fmt"
	"math"
	"slices"
)

// shortArcThreshold is the arc length below which an ellipse
// approximation is reported as too strongly curved.
const shortArcThreshold = 0.1

// EllipseOption sets an optional parameter of [Ellipse].
type EllipseOption func(*ellipseConfig)

type ellipseConfig struct {
	centre       *Coordinate
	angle        *float64
	eccentricity *float64
	depth        *float64
	n            int
}

// WithCentre sets the centre of the ellipse.  The default is the midpoint
// between start and end.
func WithCentre(c Coordinate) EllipseOption {
	return func(cfg *ellipseConfig) { cfg.centre = &c }
}

// WithAngle sets the direction of the first axis of the ellipse, in
// degrees.  The default is perpendicular to the line from start to end.
func WithAngle(angle float64) EllipseOption {
	return func(cfg *ellipseConfig) { cfg.angle = &angle }
}

// WithEccentricity sets the eccentricity of the ellipse.  It is only used
// if start and end are mirror images across an axis of the ellipse;
// otherwise the two points determine the ellipse.
func WithEccentricity(e float64) EllipseOption {
	return func(cfg *ellipseConfig) { cfg.eccentricity = &e }
}

// WithDepth requests an elliptic arc whose midpoint lies at the given
// distance from the midpoint of start and end.  Negative depths bend the
// arc to the other side.
func WithDepth(depth float64) EllipseOption {
	return func(cfg *ellipseConfig) { cfg.depth = &depth }
}

// WithArcsPerQuadrant sets the number of circular arcs used for each
// quadrant of the full ellipse.  By default this is chosen from the
// eccentricity.
func WithArcsPerQuadrant(n int) EllipseOption {
	return func(cfg *ellipseConfig) { cfg.n = n }
}

// Ellipse approximates the elliptic arc from start to end by circular arcs.
//
// The ellipse is determined by its centre, the direction of its axes and
// either the two points alone or, if the points are mirror images across
// one of the axes, an eccentricity or depth.  The result runs exactly from
// start to end.
func Ellipse(start, end Coordinate, opts ...EllipseOption) (EntityList, error) {
	var cfg ellipseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if start.Equal(end) {
		return nil, fmt.Errorf("ellipse from %s to %s: %w", start, end, ErrEllipseInvalid)
	}

	origin := Coordinate{}
	midpoint := start.Add(end).Mul(0.5)
	centre := midpoint
	if cfg.centre != nil {
		centre = *cfg.centre
	}
	var angle float64
	if cfg.angle != nil {
		angle = *cfg.angle
	} else {
		angle = Line{Start: start, End: midpoint}.Angle() - 90
	}

	// work in a frame where the ellipse is centred at the origin, with
	// axes parallel to the coordinate axes
	rs := start.Sub(centre).Rotate(origin, -angle)
	re := end.Sub(centre).Rotate(origin, -angle)

	ecc := cfg.eccentricity
	mirror := false
	if cfg.depth != nil && ecc == nil && isReflection(rs, re) {
		depth := *cfg.depth
		if depth < 0 {
			mirror = true
			depth = -depth
		}
		threshold := start.Sub(centre).Abs()
		axis := depth + midpoint.Sub(centre).Abs()
		var e float64
		switch {
		case math.Abs(axis-threshold) < Tolerance:
			e = 0
		case axis > threshold:
			e = math.Sqrt((axis*axis - rs.X*rs.X - rs.Y*rs.Y) / (axis*axis - rs.X*rs.X))
		default:
			// swap the roles of the axes, so that the major axis stays
			// on the x-axis
			angle += 90
			rs = rs.Rotate(origin, -90)
			re = re.Rotate(origin, -90)
			e = math.Sqrt(1 - (axis*axis-rs.Y*rs.Y)/(rs.X*rs.X))
		}
		ecc = &e
	}

	arcs, err := ellipseArcs(rs, re, ecc, cfg.n)
	if err != nil {
		return nil, fmt.Errorf("ellipse from %s to %s: %w", start, end, err)
	}

	for i, a := range arcs {
		arcs[i] = a.Rotate(origin, angle).Translate(centre.X, centre.Y)
	}
	arcs[0], err = NewArc(start, arcs[0].End, arcs[0].Radius)
	if err != nil {
		return nil, fmt.Errorf("ellipse from %s to %s: %w", start, end, err)
	}
	last := len(arcs) - 1
	arcs[last], err = NewArc(arcs[last].Start, end, arcs[last].Radius)
	if err != nil {
		return nil, fmt.Errorf("ellipse from %s to %s: %w", start, end, err)
	}

	res := make(EntityList, len(arcs))
	chord := Line{Start: start, End: end}
	for i, a := range arcs {
		if mirror {
			a = a.Mirror(chord)
		}
		res[i] = a
	}
	return res, nil
}

// isReflection reports whether the relative points p and q are mirror
// images across a coordinate axis or through the origin.
func isReflection(p, q Coordinate) bool {
	return Coordinate{X: -p.X, Y: p.Y}.Equal(q) ||
		Coordinate{X: p.X, Y: -p.Y}.Equal(q) ||
		Coordinate{X: -p.X, Y: -p.Y}.Equal(q)
}

// ellipseArcs approximates the elliptic arc between two points relative
// to an axis-aligned ellipse centred at the origin.
func ellipseArcs(rs, re Coordinate, ecc *float64, n int) ([]Arc, error) {
	a, b, e, err := ellipseAxes(rs, re, ecc)
	if err != nil {
		return nil, err
	}
	if e == 0 {
		return []Arc{ArcFromCentre(rs, re, Coordinate{})}, nil
	}

	if n <= 0 {
		n = int(math.Round(3 * math.Log(1/(1-e))))
	}
	n = max(n, 2)

	quad, err := quadrantArcs(quadrantPoints(a, b, n))
	if err != nil {
		return nil, err
	}
	span, err := spanningArcs(wholeEllipse(quad), rs, re)
	if err != nil {
		return nil, err
	}
	arcs, err := truncateArcs(span, rs, re)
	if err != nil {
		return nil, err
	}

	shortest := math.Inf(1)
	for _, arc := range arcs {
		shortest = min(shortest, arc.Length())
	}
	if shortest < shortArcThreshold {
		Logger().Warn("curvature may be too extreme, less detail or curvature recommended",
			"shortest", shortest, "arcsPerQuadrant", n)
	}
	return arcs, nil
}

// ellipseAxes determines the semi-axes a (along x) and b (along y) and the
// eccentricity of the ellipse through rs and re.
func ellipseAxes(rs, re Coordinate, ecc *float64) (a, b, e float64, err error) {
	if isReflection(rs, re) {
		if ecc == nil {
			return 0, 0, 0, ErrEllipseUnderdetermined
		}
		e = *ecc
		if e < 0 || e >= 1 || math.IsNaN(e) {
			return 0, 0, 0, ErrEllipseInvalid
		}
		f := 1 - e*e
		a = math.Sqrt((f*rs.X*rs.X + rs.Y*rs.Y) / f)
		b = a * math.Sqrt(f)
		return a, b, e, nil
	}

	den1 := (rs.Y + re.Y) * (re.Y - rs.Y)
	den2 := rs.X*rs.X - re.X*re.X
	if den1 == 0 || den2 == 0 {
		return 0, 0, 0, ErrEllipseInvalid
	}
	a2 := (rs.X*rs.X*re.Y*re.Y - re.X*re.X*rs.Y*rs.Y) / den1
	ratio := (re.Y*re.Y - rs.Y*rs.Y) / den2
	if !(a2 > 0) || !(ratio > 0) {
		return 0, 0, 0, ErrEllipseInvalid
	}
	a = math.Sqrt(a2)
	b = a * math.Sqrt(ratio)
	lo, hi := min(a, b), max(a, b)
	e = math.Sqrt(1 - lo*lo/(hi*hi))
	return a, b, e, nil
}

// quadrantPoints returns n+1 points on the first quadrant of the ellipse,
// from (a, 0) to (0, b), spaced so that the curvature changes linearly from
// one point to the next.
func quadrantPoints(a, b float64, n int) []Coordinate {
	points := make([]Coordinate, n+1)
	if a == b {
		for i := range points {
			points[i] = FromPolar(a, float64(i)/float64(n)*90)
		}
		return points
	}

	k0 := a / (b * b)
	kn := b / (a * a)
	points[0] = Coordinate{X: a}
	points[n] = Coordinate{Y: b}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		k := (1-t)*k0 + t*kn
		l := math.Pow(a*b/k, 2.0/3.0)
		points[i] = Coordinate{
			X: a * math.Sqrt(math.Abs((l-a*a)/(b*b-a*a))),
			Y: b * math.Sqrt(math.Abs((l-b*b)/(a*a-b*b))),
		}
	}
	return points
}

// quadrantArcs joins consecutive quadrant points by circular arcs.  Each
// arc lies on the circle through three neighbouring points; at the ends of
// the quadrant the missing neighbour is obtained by symmetry.
func quadrantArcs(p []Coordinate) ([]Arc, error) {
	n := len(p) - 1
	res := make([]Arc, 0, n)
	add := func(q1, q2, q3 Coordinate, from, to Coordinate) error {
		circle, ok := ArcThrough(q1, q2, q3)
		if !ok {
			return ErrEllipseInvalid
		}
		arc, err := NewArc(from, to, circle.Radius)
		if err != nil {
			return err
		}
		res = append(res, arc)
		return nil
	}

	if err := add(Coordinate{X: p[1].X, Y: -p[1].Y}, p[0], p[1], p[0], p[1]); err != nil {
		return nil, err
	}
	for i := 1; i < n-1; i++ {
		if err := add(p[i-1], p[i], p[i+1], p[i], p[i+1]); err != nil {
			return nil, err
		}
	}
	if err := add(p[n-1], p[n], Coordinate{X: -p[n-1].X, Y: p[n-1].Y}, p[n-1], p[n]); err != nil {
		return nil, err
	}
	return res, nil
}

// wholeEllipse mirrors the arcs of the first quadrant into the other three
// quadrants.  The result runs anticlockwise, starting at (a, 0).
func wholeEllipse(quad []Arc) []Arc {
	yAxis := Line{End: Coordinate{Y: 1}}
	xAxis := Line{End: Coordinate{X: 1}}
	n := len(quad)
	res := make([]Arc, 4*n)
	for i, arc := range quad {
		res[i] = arc
		res[2*n-i-1] = arc.Mirror(yAxis).Reverse()
		res[2*n+i] = res[2*n-i-1].Mirror(xAxis).Reverse()
		res[4*n-i-1] = arc.Mirror(xAxis).Reverse()
	}
	return res
}

// ellipseAngle returns the polar angle of p, with angles close to zero
// snapped to zero.  The negative x-axis has angle 180.
func ellipseAngle(p Coordinate) float64 {
	_, theta := p.Polar()
	if math.Abs(theta) < Tolerance {
		return 0
	}
	if theta == -180 {
		return 180
	}
	return theta
}

// spanningArcs selects the consecutive arcs of the full ellipse which
// cover the angular range from rs to re, walking in the shorter direction.
// Opposite points are joined anticlockwise.
func spanningArcs(whole []Arc, rs, re Coordinate) ([]Arc, error) {
	startAngle := ellipseAngle(rs)
	endAngle := ellipseAngle(re)
	if startAngle == 180 {
		startAngle = -180
	}
	rev := mod360(endAngle-startAngle) > 180+Tolerance

	list := whole
	if rev {
		list = make([]Arc, len(whole))
		for i, a := range whole {
			list[len(whole)-1-i] = a.Reverse()
		}
	}

	n := len(list)
	spanning := false
	var res []Arc
	for i := range 2*n + 1 {
		arc := list[i%n]
		var lower, upper float64
		if rev {
			lower, upper = ellipseAngle(arc.End), ellipseAngle(arc.Start)
		} else {
			lower, upper = ellipseAngle(arc.Start), ellipseAngle(arc.End)
		}
		if lower == 180 {
			lower = -180
		}

		if rev {
			if lower <= startAngle && startAngle <= upper {
				spanning = true
			}
		} else if lower <= startAngle && startAngle < upper {
			spanning = true
		}
		if !spanning {
			continue
		}
		res = append(res, arc)
		if rev {
			if lower <= endAngle && endAngle <= upper {
				return res, nil
			}
		} else if lower < endAngle && endAngle <= upper {
			return res, nil
		}
	}
	return nil, ErrEllipseInvalid
}

// truncateArcs cuts the first and last spanning arc at the rays from the
// origin through rs and re.  Arcs which become degenerate are dropped.
func truncateArcs(span []Arc, rs, re Coordinate) ([]Arc, error) {
	span = slices.Clone(span)

	p, ok := nearest(span[0].LineIntersection(Line{End: rs}), rs)
	if !ok {
		return nil, ErrEllipseInvalid
	}
	first := span[0]
	if p.Sub(first.End).Abs() < Tolerance && len(span) > 1 {
		span = span[1:]
	} else {
		arc, err := NewArc(p, first.End, first.Radius)
		if err != nil {
			return nil, err
		}
		span[0] = arc
	}

	q, ok := nearest(span[len(span)-1].LineIntersection(Line{End: re}), re)
	if !ok {
		return nil, ErrEllipseInvalid
	}
	last := span[len(span)-1]
	if last.Start.Sub(q).Abs() < Tolerance && len(span) > 1 {
		span = span[:len(span)-1]
	} else {
		arc, err := NewArc(last.Start, q, last.Radius)
		if err != nil {
			return nil, err
		}
		span[len(span)-1] = arc
	}
	return span, nil
}

// nearest returns the candidate closest to target.
func nearest(candidates []Coordinate, target Coordinate) (Coordinate, bool) {
	if len(candidates) == 0 {
		return Coordinate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Sub(target).Abs() < best.Sub(target).Abs() {
			best = c
		}
	}
	return best, true
}
