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
)

// Entity is a directed geometric primitive.
// The only implementations are [Line] and [Arc].
type Entity interface {
	// Endpoints returns the start and end point of the entity.
	Endpoints() (start, end Coordinate)

	// Length returns the length of the entity.
	Length() float64

	// Midpoint returns the point half way along the entity.
	Midpoint() Coordinate

	// CoordinateOnEntity reports whether p lies on the entity.
	CoordinateOnEntity(p Coordinate) bool

	// CoordinateFromDistance returns the point at the given distance along
	// the entity, measured from ref towards the other endpoint.
	// The reference point must be the start or the end of the entity.
	CoordinateFromDistance(ref Coordinate, distance float64) (Coordinate, error)

	isEntity()
}

// CoordinateFromFraction returns the point at the given fraction of the
// length of e, measured from ref.
func CoordinateFromFraction(e Entity, ref Coordinate, fraction float64) (Coordinate, error) {
	return e.CoordinateFromDistance(ref, fraction*e.Length())
}

// CoordinateFromPercentage returns the point at the given percentage of
// the length of e, measured from ref.
func CoordinateFromPercentage(e Entity, ref Coordinate, percentage float64) (Coordinate, error) {
	return CoordinateFromFraction(e, ref, percentage/100)
}

// Reverse returns e with start and end swapped.
func Reverse(e Entity) Entity {
	switch e := e.(type) {
	case Line:
		return e.Reverse()
	case Arc:
		return e.Reverse()
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

// RotateEntity rotates e anticlockwise about centre by angle degrees.
func RotateEntity(e Entity, centre Coordinate, angle float64) Entity {
	switch e := e.(type) {
	case Line:
		return e.Rotate(centre, angle)
	case Arc:
		return e.Rotate(centre, angle)
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

// TranslateEntity shifts e by (dx, dy).
func TranslateEntity(e Entity, dx, dy float64) Entity {
	switch e := e.(type) {
	case Line:
		return e.Translate(dx, dy)
	case Arc:
		return e.Translate(dx, dy)
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

// MirrorEntity reflects e about the infinite line through l.
func MirrorEntity(e Entity, l Line) Entity {
	switch e := e.(type) {
	case Line:
		return e.Mirror(l)
	case Arc:
		return e.Mirror(l)
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

// EntitiesEqual reports whether a and b are the same entity, within
// [Tolerance].  Lines are never equal to arcs.
func EntitiesEqual(a, b Entity) bool {
	switch a := a.(type) {
	case Line:
		b, ok := b.(Line)
		return ok && a.Equal(b)
	case Arc:
		b, ok := b.(Arc)
		return ok && a.Equal(b)
	}
	return false
}

// withEndpoints returns a copy of e with new endpoints.  Arcs keep their
// signed radius; the centre is recomputed.
func withEndpoints(e Entity, start, end Coordinate) (Entity, error) {
	switch e := e.(type) {
	case Line:
		return Line{Start: start, End: end}, nil
	case Arc:
		return NewArc(start, end, e.Radius)
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

// split divides e at a point p on the entity.
func split(e Entity, p Coordinate) (Entity, Entity) {
	switch e := e.(type) {
	case Line:
		return Line{Start: e.Start, End: p}, Line{Start: p, End: e.End}
	case Arc:
		return Arc{Start: e.Start, End: p, Centre: e.Centre, Radius: e.Radius},
			Arc{Start: p, End: e.End, Centre: e.Centre, Radius: e.Radius}
	}
	panic(fmt.Sprintf("unexpected entity type %T", e))
}

// Line is a straight line segment from Start to End.
type Line struct {
	Start, End Coordinate
}

func (Line) isEntity() {}

// Endpoints implements the [Entity] interface.
func (l Line) Endpoints() (Coordinate, Coordinate) {
	return l.Start, l.End
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Abs()
}

// Midpoint returns the centre of the line segment.
func (l Line) Midpoint() Coordinate {
	return l.Start.Add(l.End).Mul(0.5)
}

// Angle returns the direction of the line, in degrees.
func (l Line) Angle() float64 {
	return rad2deg(math.Atan2(l.End.Y-l.Start.Y, l.End.X-l.Start.X))
}

// Gradient returns dy/dx.  Vertical lines have gradient +Inf.
func (l Line) Gradient() float64 {
	if l.IsVertical() {
		return math.Inf(1)
	}
	return (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)
}

// YIntercept returns the y value where the infinite extension of the line
// crosses the y-axis.
func (l Line) YIntercept() (float64, error) {
	if l.IsVertical() {
		return 0, ErrVerticalLine
	}
	return l.Start.Y - l.Gradient()*l.Start.X, nil
}

// IsVertical reports whether the line is parallel to the y-axis.
func (l Line) IsVertical() bool {
	return isClose(l.Start.X, l.End.X)
}

// IsHorizontal reports whether the line is parallel to the x-axis.
func (l Line) IsHorizontal() bool {
	return isClose(l.Start.Y, l.End.Y)
}

// DistanceTo returns the shortest distance from p to the line segment.
func (l Line) DistanceTo(p Coordinate) float64 {
	d := l.End.Sub(l.Start)
	len2 := d.Dot(d)
	if len2 == 0 {
		return p.Sub(l.Start).Abs()
	}
	t := max(0, min(1, p.Sub(l.Start).Dot(d)/len2))
	return p.Sub(l.Start.Add(d.Mul(t))).Abs()
}

// CoordinateOnEntity reports whether p lies on the line segment.
func (l Line) CoordinateOnEntity(p Coordinate) bool {
	return isClose(l.Start.Sub(p).Abs()+p.Sub(l.End).Abs(), l.Length())
}

// CoordinateFromDistance implements the [Entity] interface.
func (l Line) CoordinateFromDistance(ref Coordinate, distance float64) (Coordinate, error) {
	length := l.Length()
	if length == 0 {
		return l.Start, nil
	}
	dir := l.End.Sub(l.Start).Div(length)
	switch {
	case ref.Equal(l.Start):
		return l.Start.Add(dir.Mul(distance)), nil
	case ref.Equal(l.End):
		return l.End.Sub(dir.Mul(distance)), nil
	}
	return Coordinate{}, fmt.Errorf("line from %s to %s: %s: %w", l.Start, l.End, ref, ErrNotEndpoint)
}

// Reverse returns the line with start and end swapped.
func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

// Rotate rotates the line anticlockwise about centre by angle degrees.
func (l Line) Rotate(centre Coordinate, angle float64) Line {
	return Line{Start: l.Start.Rotate(centre, angle), End: l.End.Rotate(centre, angle)}
}

// Translate shifts the line by (dx, dy).
func (l Line) Translate(dx, dy float64) Line {
	return Line{Start: l.Start.Translate(dx, dy), End: l.End.Translate(dx, dy)}
}

// Mirror reflects the line about the infinite line through m.
func (l Line) Mirror(m Line) Line {
	return Line{Start: l.Start.Mirror(m), End: l.End.Mirror(m)}
}

// Equal reports whether both endpoints agree within [Tolerance].
func (l Line) Equal(o Line) bool {
	return l.Start.Equal(o.Start) && l.End.Equal(o.End)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", l.Start, l.End)
}

// Direction is the sense of rotation of an [Arc].
type Direction int

// These are the possible directions of an arc.
const (
	Anticlockwise Direction = iota
	Clockwise
)

func (d Direction) String() string {
	switch d {
	case Anticlockwise:
		return "anticlockwise"
	case Clockwise:
		return "clockwise"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Arc is a circular arc from Start to End about Centre.
//
// The sign of Radius encodes the direction: a positive radius means that
// the arc runs anticlockwise from Start to End, a negative radius means
// that it runs clockwise.
type Arc struct {
	Start, End Coordinate
	Centre     Coordinate
	Radius     float64
}

func (Arc) isEntity() {}

// NewArc returns the arc from start to end with the given signed radius.
// The centre is placed on the left of the chord for positive radii and on
// the right for negative radii, so that the arc sweeps at most 180 degrees.
//
// If the chord is longer than the diameter by no more than [Tolerance],
// the radius is increased to fit.
func NewArc(start, end Coordinate, radius float64) (Arc, error) {
	chord := end.Sub(start)
	d := chord.Abs()
	if radius == 0 || d == 0 || math.IsNaN(radius) {
		return Arc{}, fmt.Errorf("arc from %s to %s with radius %g: %w", start, end, radius, ErrArcGeometry)
	}
	half := d / 2
	if half > math.Abs(radius) {
		if half-math.Abs(radius) > Tolerance {
			return Arc{}, fmt.Errorf("arc from %s to %s with radius %g: %w", start, end, radius, ErrArcGeometry)
		}
		radius = math.Copysign(half, radius)
	}

	h := math.Sqrt(max(0, radius*radius-half*half))
	left := Coordinate{X: -chord.Y, Y: chord.X}.Div(d)
	if radius < 0 {
		left = left.Mul(-1)
	}
	centre := start.Add(end).Mul(0.5).Add(left.Mul(h))
	return Arc{Start: start, End: end, Centre: centre, Radius: radius}, nil
}

// ArcFromCentre returns the arc from start to end about centre.
// The radius is measured from start; the direction is anticlockwise if
// the centre lies to the left of the chord, clockwise otherwise.  If the
// centre lies on the chord, the arc is an anticlockwise semicircle.
func ArcFromCentre(start, end, centre Coordinate) Arc {
	r := start.Sub(centre).Abs()
	if cross(end.Sub(start), centre.Sub(start)) < 0 {
		r = -r
	}
	return Arc{Start: start, End: end, Centre: centre, Radius: r}
}

// ArcThrough returns the arc from p1 to p3 which passes through p2.
// If the three points are colinear, no arc exists and ok is false.
func ArcThrough(p1, p2, p3 Coordinate) (arc Arc, ok bool) {
	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < 1e-12 {
		return Arc{}, false
	}
	s1 := p1.Dot(p1)
	s2 := p2.Dot(p2)
	s3 := p3.Dot(p3)
	centre := Coordinate{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}
	r := p1.Sub(centre).Abs()
	if cross(p2.Sub(p1), p3.Sub(p2)) < 0 {
		r = -r
	}
	return Arc{Start: p1, End: p3, Centre: centre, Radius: r}, true
}

// Endpoints implements the [Entity] interface.
func (a Arc) Endpoints() (Coordinate, Coordinate) {
	return a.Start, a.End
}

// Direction returns the sense of rotation of the arc.
func (a Arc) Direction() Direction {
	if a.Radius < 0 {
		return Clockwise
	}
	return Anticlockwise
}

// sign returns +1 for anticlockwise arcs and -1 for clockwise arcs.
func (a Arc) sign() float64 {
	if a.Radius < 0 {
		return -1
	}
	return 1
}

// StartAngle returns the polar angle of the start point, seen from the
// centre, in degrees.
func (a Arc) StartAngle() float64 {
	_, theta := a.Start.Sub(a.Centre).Polar()
	return theta
}

// EndAngle returns the polar angle of the end point, seen from the centre,
// in degrees.
func (a Arc) EndAngle() float64 {
	_, theta := a.End.Sub(a.Centre).Polar()
	return theta
}

// TotalAngle returns the angle swept by the arc, in degrees.
// The result is in the range [0, 360).
func (a Arc) TotalAngle() float64 {
	if a.Radius > 0 {
		return mod360(a.EndAngle() - a.StartAngle())
	}
	return mod360(a.StartAngle() - a.EndAngle())
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.Radius) * deg2rad(a.TotalAngle())
}

// Midpoint returns the point half way along the arc.
func (a Arc) Midpoint() Coordinate {
	angle := a.StartAngle() + a.sign()*a.TotalAngle()/2
	return a.Centre.Add(FromPolar(math.Abs(a.Radius), angle))
}

// ChordHeight returns the distance between the midpoint of the arc and the
// midpoint of its chord.
func (a Arc) ChordHeight() float64 {
	return math.Abs(a.Radius) * (1 - math.Cos(deg2rad(a.TotalAngle())/2))
}

// CoordinateOnEntity reports whether p lies on the arc.
func (a Arc) CoordinateOnEntity(p Coordinate) bool {
	r, theta := p.Sub(a.Centre).Polar()
	if !isClose(r, math.Abs(a.Radius)) {
		return false
	}
	if p.Equal(a.Start) || p.Equal(a.End) {
		return true
	}
	var swept float64
	if a.Radius > 0 {
		swept = mod360(theta - a.StartAngle())
	} else {
		swept = mod360(a.StartAngle() - theta)
	}
	return swept <= a.TotalAngle()+rad2deg(Tolerance/r)
}

// CoordinateFromDistance implements the [Entity] interface.
func (a Arc) CoordinateFromDistance(ref Coordinate, distance float64) (Coordinate, error) {
	r := math.Abs(a.Radius)
	delta := rad2deg(distance / r)
	switch {
	case ref.Equal(a.Start):
		return a.Centre.Add(FromPolar(r, a.StartAngle()+a.sign()*delta)), nil
	case ref.Equal(a.End):
		return a.Centre.Add(FromPolar(r, a.EndAngle()-a.sign()*delta)), nil
	}
	return Coordinate{}, fmt.Errorf("arc from %s to %s: %s: %w", a.Start, a.End, ref, ErrNotEndpoint)
}

// Reverse returns the arc traversed in the opposite direction.
func (a Arc) Reverse() Arc {
	return Arc{Start: a.End, End: a.Start, Centre: a.Centre, Radius: -a.Radius}
}

// Rotate rotates the arc anticlockwise about centre by angle degrees.
func (a Arc) Rotate(centre Coordinate, angle float64) Arc {
	return Arc{
		Start:  a.Start.Rotate(centre, angle),
		End:    a.End.Rotate(centre, angle),
		Centre: a.Centre.Rotate(centre, angle),
		Radius: a.Radius,
	}
}

// Translate shifts the arc by (dx, dy).
func (a Arc) Translate(dx, dy float64) Arc {
	return Arc{
		Start:  a.Start.Translate(dx, dy),
		End:    a.End.Translate(dx, dy),
		Centre: a.Centre.Translate(dx, dy),
		Radius: a.Radius,
	}
}

// Mirror reflects the arc about the infinite line through l.
// Reflection reverses the sense of rotation.
func (a Arc) Mirror(l Line) Arc {
	return Arc{
		Start:  a.Start.Mirror(l),
		End:    a.End.Mirror(l),
		Centre: a.Centre.Mirror(l),
		Radius: -a.Radius,
	}
}

// Equal reports whether the endpoints, the centre and the radius agree
// within [Tolerance].
func (a Arc) Equal(o Arc) bool {
	return a.Start.Equal(o.Start) && a.End.Equal(o.End) &&
		a.Centre.Equal(o.Centre) && isClose(a.Radius, o.Radius)
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc(%s, %s, centre=%s, radius=%g)", a.Start, a.End, a.Centre, a.Radius)
}
