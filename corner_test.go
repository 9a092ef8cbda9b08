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
	"testing"
)

func TestRoundCornerSquare(t *testing.T) {
	r := squareRegion(10)
	if err := r.RoundCorner(C(10, 10), 2); err != nil {
		t.Fatal(err)
	}
	if len(r.Entities) != 5 {
		t.Fatalf("got %d entities, want 5", len(r.Entities))
	}
	if _, ok := r.FindEntityFromCoordinates(C(10, 0), C(10, 8)); !ok {
		t.Error("first adjacent line not shortened")
	}
	if _, ok := r.FindEntityFromCoordinates(C(8, 10), C(0, 10)); !ok {
		t.Error("second adjacent line not shortened")
	}

	arc, ok := r.Entities[2].(Arc)
	if !ok {
		t.Fatalf("entity 2 is %T", r.Entities[2])
	}
	if !arc.Start.Equal(C(10, 8)) || !arc.End.Equal(C(8, 10)) {
		t.Errorf("arc from %s to %s", arc.Start, arc.End)
	}
	if !arc.Centre.Equal(C(8, 8)) || !isClose(arc.Radius, 2) {
		t.Errorf("arc centre %s, radius %g", arc.Centre, arc.Radius)
	}
	// tangency: the radius at each end is perpendicular to the line
	if d := arc.Start.Sub(arc.Centre).Dot(C(0, 1)); !isClose(d, 0) {
		t.Errorf("not tangent at start: %g", d)
	}
	if d := arc.End.Sub(arc.Centre).Dot(C(1, 0)); !isClose(d, 0) {
		t.Errorf("not tangent at end: %g", d)
	}

	if !r.Entities.HasValidGeometry() {
		t.Error("rounded square is invalid")
	}
	want := 100 - 4 + math.Pi
	if !isClose(r.ComputedArea(), want) {
		t.Errorf("area = %g, want %g", r.ComputedArea(), want)
	}
}

func TestRoundCornersTriangle(t *testing.T) {
	r := EqTriangleW(10, 0, 90)
	corners := r.Points()
	if err := r.RoundCorners(corners, 1); err != nil {
		t.Fatal(err)
	}
	if len(r.Entities) != 6 {
		t.Fatalf("got %d entities", len(r.Entities))
	}
	for i, e := range r.Entities {
		_, isArc := e.(Arc)
		if isArc != (i%2 == 1) {
			t.Errorf("entity %d has type %T", i, e)
		}
	}
	if !r.Entities.HasValidGeometry() {
		t.Error("rounded triangle is invalid")
	}
}

func TestRoundCornersPolygon(t *testing.T) {
	for _, n := range []int{4, 5, 7, 12} {
		r := RegularPolygon(n, 10, C(3, -2), 11)
		if err := r.RoundCorners(r.Points(), 1.5); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(r.Entities) != 2*n {
			t.Errorf("n=%d: got %d entities", n, len(r.Entities))
		}
		if !r.IsClosed() || !r.Entities.HasValidGeometry() {
			t.Errorf("n=%d: invalid geometry", n)
		}
		for i, e := range r.Entities {
			if a, ok := e.(Arc); ok && !isClose(a.Radius, 1.5) {
				t.Errorf("n=%d: entity %d has radius %g", n, i, a.Radius)
			}
		}
	}
}

func TestRoundCornerClockwiseTurn(t *testing.T) {
	// an L shape has one reflex corner, where the path turns right
	r := NewRegion(Stator)
	r.Entities = Polygon([]Coordinate{
		C(0, 0), C(10, 0), C(10, 4), C(4, 4), C(4, 10), C(0, 10),
	}, false)
	if err := r.RoundCorner(C(4, 4), 1); err != nil {
		t.Fatal(err)
	}
	var fillet Arc
	found := false
	for _, e := range r.Entities {
		if a, ok := e.(Arc); ok {
			fillet, found = a, true
		}
	}
	if !found {
		t.Fatal("no fillet inserted")
	}
	if fillet.Direction() != Clockwise {
		t.Errorf("fillet runs %s", fillet.Direction())
	}
	if !fillet.Centre.Equal(C(5, 5)) {
		t.Errorf("centre = %s", fillet.Centre)
	}
	want := 64 + 1 - math.Pi/4
	if !isClose(r.ComputedArea(), want) {
		t.Errorf("area = %g, want %g", r.ComputedArea(), want)
	}
}

func TestRoundCornerMaximise(t *testing.T) {
	r := squareRegion(10)
	err := r.RoundCorner(C(10, 10), 20)
	if !errors.Is(err, ErrRadiusTooLarge) {
		t.Fatalf("got %v, want ErrRadiusTooLarge", err)
	}
	if len(r.Entities) != 4 {
		t.Error("failed rounding modified the region")
	}

	if err := r.RoundCorner(C(10, 10), 20, WithMaximiseRadius()); err != nil {
		t.Fatal(err)
	}
	// the two lines at the corner are used up completely, leaving a
	// quarter disc
	if len(r.Entities) != 3 {
		t.Fatalf("got %d entities: %v", len(r.Entities), r.Entities)
	}
	arc, ok := r.Entities[1].(Arc)
	if !ok {
		t.Fatalf("entity 1 is %T", r.Entities[1])
	}
	if math.Abs(arc.Radius-10) > 1e-6 || !arc.Centre.Equal(C(0, 0)) {
		t.Errorf("arc: %s", arc)
	}
	if !r.IsClosed() {
		t.Error("region is not closed")
	}
	if math.Abs(r.ComputedArea()-25*math.Pi) > 1e-4 {
		t.Errorf("area = %g, want %g", r.ComputedArea(), 25*math.Pi)
	}
}

func TestRoundCornersMaximiseShared(t *testing.T) {
	r := squareRegion(10)
	if err := r.RoundCorners(r.Points(), 8, WithMaximiseRadius()); err != nil {
		t.Fatal(err)
	}
	// every edge is shared by two fillets of radius 5, leaving a circle
	if len(r.Entities) != 4 {
		t.Fatalf("got %d entities: %v", len(r.Entities), r.Entities)
	}
	for i, e := range r.Entities {
		arc, ok := e.(Arc)
		if !ok {
			t.Fatalf("entity %d is %T", i, e)
		}
		if math.Abs(math.Abs(arc.Radius)-5) > 1e-6 || !arc.Centre.Equal(C(5, 5)) {
			t.Errorf("entity %d: %s", i, arc)
		}
	}
	if !r.IsClosed() {
		t.Error("region is not closed")
	}
	if math.Abs(r.ComputedArea()-25*math.Pi) > 1e-4 {
		t.Errorf("area = %g, want %g", r.ComputedArea(), 25*math.Pi)
	}

	// only the short edge limits the radius
	r = NewRegion(Stator)
	r.Entities = Polygon([]Coordinate{C(0, 0), C(10, 0), C(10, 3), C(0, 3)}, false)
	if err := r.RoundCorners([]Coordinate{C(10, 0), C(10, 3)}, 2, WithMaximiseRadius()); err != nil {
		t.Fatal(err)
	}
	if len(r.Entities) != 5 || !r.IsClosed() {
		t.Fatalf("got %v", r.Entities)
	}
	for _, e := range r.Entities {
		if arc, ok := e.(Arc); ok && math.Abs(arc.Radius-1.5) > 1e-6 {
			t.Errorf("arc radius %g, want 1.5", arc.Radius)
		}
	}
}

func TestRoundCornerReorients(t *testing.T) {
	cases := []struct {
		name     string
		reversed int
	}{
		{"both start at corner", 1},
		{"both end at corner", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := squareRegion(10)
			r.Entities[c.reversed] = Reverse(r.Entities[c.reversed])
			if err := r.RoundCorner(C(10, 10), 2); err != nil {
				t.Fatal(err)
			}
			if len(r.Entities) != 5 {
				t.Fatalf("got %d entities: %v", len(r.Entities), r.Entities)
			}
			if !r.IsClosed() {
				t.Error("region is not closed")
			}
			if math.Abs(r.ComputedArea()-(96+math.Pi)) > 1e-6 {
				t.Errorf("area = %g, want %g", r.ComputedArea(), 96+math.Pi)
			}
		})
	}
}

func TestRoundCornerArc(t *testing.T) {
	r := NewRegion(Rotor)
	r.Entities = EntityList{
		Line{Start: C(20, 0), End: C(40, 0)},
		ArcFromCentre(C(40, 0), FromPolar(40, 45), C(0, 0)),
		Line{Start: FromPolar(40, 45), End: FromPolar(20, 45)},
		ArcFromCentre(FromPolar(20, 45), C(20, 0), C(0, 0)),
	}
	if err := r.RoundCorner(C(40, 0), 2); err != nil {
		t.Fatal(err)
	}
	if len(r.Entities) != 5 {
		t.Fatalf("got %d entities", len(r.Entities))
	}
	fillet, ok := r.Entities[1].(Arc)
	if !ok {
		t.Fatalf("entity 1 is %T", r.Entities[1])
	}
	if !isClose(fillet.Radius, 2) {
		t.Errorf("fillet radius = %g", fillet.Radius)
	}
	outer, ok := r.Entities[2].(Arc)
	if !ok || !isClose(outer.Radius, 40) || !outer.Centre.Equal(C(0, 0)) {
		t.Errorf("outer arc changed: %v", r.Entities[2])
	}
	if !r.IsClosed() || !r.Entities.HasValidGeometry() {
		t.Error("invalid geometry")
	}
}

func TestRoundCornerNoop(t *testing.T) {
	r := NewRegion(Stator)
	r.Entities = Polygon([]Coordinate{C(0, 0), C(5, 0), C(10, 0), C(10, 10), C(0, 10)}, false)
	if err := r.RoundCorner(C(5, 0), 1); err != nil {
		t.Errorf("straight corner: %v", err)
	}
	if len(r.Entities) != 5 {
		t.Error("straight corner was rounded")
	}
	if err := r.RoundCorner(C(10, 10), 0); err != nil || len(r.Entities) != 5 {
		t.Errorf("zero radius: %v", err)
	}
}

func TestRoundCornerNotACorner(t *testing.T) {
	r := squareRegion(10)
	for _, p := range []Coordinate{C(5, 0), C(20, 20)} {
		if err := r.RoundCorner(p, 1); !errors.Is(err, ErrNotACorner) {
			t.Errorf("%s: got %v", p, err)
		}
	}

	open := NewRegion(Stator)
	open.Entities = EntityList{Line{Start: C(0, 0), End: C(1, 0)}, Line{Start: C(1, 0), End: C(1, 1)}}
	if err := open.RoundCorner(C(0, 0), 0.1); !errors.Is(err, ErrNotACorner) {
		t.Errorf("open end: got %v", err)
	}
}

func TestRoundCornersShared(t *testing.T) {
	// rounding both ends of a short edge with fillets that together
	// exceed its length must fail
	r := NewRegion(Stator)
	r.Entities = Polygon([]Coordinate{C(0, 0), C(10, 0), C(10, 3), C(0, 3)}, false)
	err := r.RoundCorners([]Coordinate{C(10, 0), C(10, 3)}, 2)
	if !errors.Is(err, ErrRadiusTooLarge) {
		t.Errorf("got %v, want ErrRadiusTooLarge", err)
	}
	if err := r.RoundCorners([]Coordinate{C(10, 0), C(10, 3)}, 1.5); err != nil {
		t.Fatal(err)
	}
	if len(r.Entities) != 5 || !r.IsClosed() {
		t.Errorf("got %v", r.Entities)
	}
}

func TestNotConvergedError(t *testing.T) {
	var err error = &NotConvergedError{Op: "round corner", Iterations: MaxCornerIterations}
	var target *NotConvergedError
	if !errors.As(err, &target) || target.Iterations != MaxCornerIterations {
		t.Errorf("errors.As failed for %v", err)
	}
	if err.Error() != "round corner: cannot find intersection after 100 iterations" {
		t.Errorf("message: %q", err.Error())
	}
}
