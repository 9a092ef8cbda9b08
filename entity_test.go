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

func TestLineProperties(t *testing.T) {
	l := Line{Start: C(0, 0), End: C(10, 0)}
	if got := l.Length(); got != 10 {
		t.Errorf("length = %g, want 10", got)
	}
	if got := l.Angle(); got != 0 {
		t.Errorf("angle = %g, want 0", got)
	}
	if got := l.Gradient(); got != 0 {
		t.Errorf("gradient = %g, want 0", got)
	}
	if got := l.Midpoint(); !got.Equal(C(5, 0)) {
		t.Errorf("midpoint = %s", got)
	}
	if !l.IsHorizontal() || l.IsVertical() {
		t.Error("wrong orientation")
	}

	if got := (Line{Start: C(0, 0), End: C(1, 1)}).Angle(); got != 45 {
		t.Errorf("diagonal angle = %g, want 45", got)
	}
	if got := (Line{Start: C(0, 0), End: C(-1, 0)}).Angle(); got != 180 {
		t.Errorf("backwards angle = %g, want 180", got)
	}
}

func TestLineYIntercept(t *testing.T) {
	l := Line{Start: C(1, 3), End: C(2, 5)}
	b, err := l.YIntercept()
	if err != nil || !isClose(b, 1) {
		t.Errorf("YIntercept = %g, %v", b, err)
	}

	v := Line{Start: C(4, 0), End: C(4, 9)}
	if _, err := v.YIntercept(); !errors.Is(err, ErrVerticalLine) {
		t.Errorf("vertical line: got %v", err)
	}
	if !math.IsInf(v.Gradient(), 1) {
		t.Errorf("vertical gradient = %g", v.Gradient())
	}
}

func TestLineDistanceTo(t *testing.T) {
	l := Line{Start: C(0, 0), End: C(10, 0)}
	cases := []struct {
		p    Coordinate
		want float64
	}{
		{C(5, 3), 3},
		{C(5, -2), 2},
		{C(-3, 4), 5},
		{C(13, 4), 5},
		{C(7, 0), 0},
	}
	for _, tc := range cases {
		if got := l.DistanceTo(tc.p); !isClose(got, tc.want) {
			t.Errorf("distance to %s = %g, want %g", tc.p, got, tc.want)
		}
	}
}

func TestLineCoordinateFromDistance(t *testing.T) {
	l := Line{Start: C(0, 0), End: C(10, 0)}
	p, err := l.CoordinateFromDistance(l.Start, 4)
	if err != nil || !p.Equal(C(4, 0)) {
		t.Errorf("from start: %s, %v", p, err)
	}
	p, err = l.CoordinateFromDistance(l.End, 4)
	if err != nil || !p.Equal(C(6, 0)) {
		t.Errorf("from end: %s, %v", p, err)
	}
	p, err = CoordinateFromPercentage(l, l.Start, 25)
	if err != nil || !p.Equal(C(2.5, 0)) {
		t.Errorf("percentage: %s, %v", p, err)
	}
	if _, err := l.CoordinateFromDistance(C(5, 0), 1); !errors.Is(err, ErrNotEndpoint) {
		t.Errorf("interior reference: got %v", err)
	}
}

func TestLineCoordinateOnEntity(t *testing.T) {
	l := Line{Start: C(0, 0), End: C(4, 4)}
	for _, p := range []Coordinate{C(0, 0), C(2, 2), C(4, 4)} {
		if !l.CoordinateOnEntity(p) {
			t.Errorf("%s should be on %s", p, l)
		}
	}
	for _, p := range []Coordinate{C(5, 5), C(2, 2.1), C(-1, -1)} {
		if l.CoordinateOnEntity(p) {
			t.Errorf("%s should not be on %s", p, l)
		}
	}
}

func TestArcFromCentre(t *testing.T) {
	a := ArcFromCentre(C(0, 10), C(10, 0), C(0, 0))
	if !isClose(math.Abs(a.Radius), 10) {
		t.Errorf("radius = %g, want magnitude 10", a.Radius)
	}
	if a.Direction() != Clockwise {
		t.Errorf("direction = %s, want clockwise", a.Direction())
	}
	if !isClose(a.TotalAngle(), 90) {
		t.Errorf("total angle = %g, want 90", a.TotalAngle())
	}
	if !isClose(a.Length(), 5*math.Pi) {
		t.Errorf("length = %g", a.Length())
	}

	b := ArcFromCentre(C(10, 0), C(0, 10), C(0, 0))
	if b.Radius != 10 || b.Direction() != Anticlockwise {
		t.Errorf("reverse arc: radius %g", b.Radius)
	}
}

func TestNewArc(t *testing.T) {
	cases := []struct {
		name       string
		start, end Coordinate
		radius     float64
		centre     Coordinate
		total      float64
	}{
		{"quarter", C(1, 0), C(0, 1), 1, C(0, 0), 90},
		{"quarter clockwise", C(0, 1), C(1, 0), -1, C(0, 0), 90},
		{"semicircle", C(0, 0), C(2, 0), 1, C(1, 0), 180},
		{"semicircle clockwise", C(0, 0), C(2, 0), -1, C(1, 0), 180},
		{"chord slightly too long", C(0, 0), C(2+Tolerance/10, 0), 1, C(1, 0), 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewArc(tc.start, tc.end, tc.radius)
			if err != nil {
				t.Fatal(err)
			}
			if !a.Centre.Equal(tc.centre) {
				t.Errorf("centre = %s, want %s", a.Centre, tc.centre)
			}
			if !isClose(a.TotalAngle(), tc.total) {
				t.Errorf("total angle = %g, want %g", a.TotalAngle(), tc.total)
			}
			if (a.Radius > 0) != (tc.radius > 0) {
				t.Errorf("radius sign changed: %g", a.Radius)
			}
		})
	}

	bad := []struct {
		name       string
		start, end Coordinate
		radius     float64
	}{
		{"zero radius", C(0, 0), C(1, 0), 0},
		{"chord too long", C(0, 0), C(10, 0), 2},
		{"coincident ends", C(3, 3), C(3, 3), 1},
		{"nan", C(0, 0), C(1, 0), math.NaN()},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewArc(tc.start, tc.end, tc.radius); !errors.Is(err, ErrArcGeometry) {
				t.Errorf("got %v, want ErrArcGeometry", err)
			}
		})
	}
}

func TestArcThrough(t *testing.T) {
	a, ok := ArcThrough(C(7, 11), C(20, 10), C(24, 7))
	if !ok {
		t.Fatal("no arc found")
	}
	const eps = 1e-9
	if math.Abs(a.Centre.X-12.357142857142858) > eps ||
		math.Abs(a.Centre.Y+4.357142857142857) > eps {
		t.Errorf("centre = %s", a.Centre)
	}
	if math.Abs(a.Radius+16.264710766765287) > eps {
		t.Errorf("radius = %g", a.Radius)
	}

	s := math.Sqrt2 / 2
	b, ok := ArcThrough(C(1, 0), C(s, s), C(0, 1))
	want := Arc{Start: C(1, 0), End: C(0, 1), Centre: C(0, 0), Radius: 1}
	if !ok || !b.Equal(want) {
		t.Errorf("got %s, want %s", b, want)
	}

	if _, ok := ArcThrough(C(0, 0), C(1, 1), C(2, 2)); ok {
		t.Error("colinear points gave an arc")
	}
}

func TestArcCoordinateFromDistance(t *testing.T) {
	a, err := NewArc(C(62, 20), C(56, 33), 45)
	if err != nil {
		t.Fatal(err)
	}
	p, err := a.CoordinateFromDistance(a.Start, 5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.X-60.389142028418) > 1e-9 || math.Abs(p.Y-24.730689908764) > 1e-9 {
		t.Errorf("got %s", p)
	}

	p, _ = a.CoordinateFromDistance(a.Start, 1e-15)
	if !p.Equal(a.Start) {
		t.Errorf("tiny distance from start: %s", p)
	}
	p, _ = a.CoordinateFromDistance(a.End, 1e-15)
	if !p.Equal(a.End) {
		t.Errorf("tiny distance from end: %s", p)
	}

	half := Arc{Start: C(-1, 0), End: C(1, 0), Centre: C(0, 0), Radius: 1}
	p, _ = half.CoordinateFromDistance(half.Start, math.Pi/2)
	if !p.Equal(C(0, -1)) {
		t.Errorf("anticlockwise: %s", p)
	}
	p, _ = CoordinateFromFraction(half, half.Start, 0.5)
	if !p.Equal(C(0, -1)) {
		t.Errorf("fraction: %s", p)
	}
	p, _ = CoordinateFromPercentage(half, half.End, 50)
	if !p.Equal(C(0, -1)) {
		t.Errorf("percentage from end: %s", p)
	}

	half.Radius = -1
	p, _ = half.CoordinateFromDistance(half.Start, math.Pi/2)
	if !p.Equal(C(0, 1)) {
		t.Errorf("clockwise: %s", p)
	}

	if _, err := half.CoordinateFromDistance(C(0, 1), 1); !errors.Is(err, ErrNotEndpoint) {
		t.Errorf("interior reference: got %v", err)
	}
}

func TestArcGeometry(t *testing.T) {
	a, err := NewArc(C(1, 0), C(0, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	s := math.Sqrt2 / 2
	if got := a.Midpoint(); !got.Equal(C(s, s)) {
		t.Errorf("midpoint = %s", got)
	}
	if got := a.ChordHeight(); !isClose(got, 1-s) {
		t.Errorf("chord height = %g", got)
	}
	if !a.CoordinateOnEntity(C(s, s)) {
		t.Error("midpoint not on arc")
	}
	if a.CoordinateOnEntity(C(-1, 0)) {
		t.Error("point outside angular range is on arc")
	}
	if a.CoordinateOnEntity(C(0.5, 0.5)) {
		t.Error("point inside circle is on arc")
	}

	got := a.Rotate(C(0, 0), 90)
	want := Arc{Start: C(0, 1), End: C(-1, 0), Centre: C(0, 0), Radius: 1}
	if !got.Equal(want) {
		t.Errorf("rotated: %s, want %s", got, want)
	}

	moved := a.Translate(2, 3)
	if !moved.Centre.Equal(C(2, 3)) || !moved.Start.Equal(C(3, 3)) {
		t.Errorf("translated: %s", moved)
	}
}

func TestReverseMirrorInvolution(t *testing.T) {
	axis := Line{Start: C(-1, 2), End: C(3, 5)}
	arc, err := NewArc(C(3, 1), C(-2, 4), 7)
	if err != nil {
		t.Fatal(err)
	}
	entities := []Entity{
		Line{Start: C(1, 2), End: C(5, -3)},
		arc,
		arc.Reverse(),
	}
	for _, e := range entities {
		if got := Reverse(Reverse(e)); !EntitiesEqual(got, e) {
			t.Errorf("double reverse of %v gives %v", e, got)
		}
		if got := MirrorEntity(MirrorEntity(e, axis), axis); !EntitiesEqual(got, e) {
			t.Errorf("double mirror of %v gives %v", e, got)
		}
		if EntitiesEqual(Reverse(e), e) {
			t.Errorf("%v equals its reverse", e)
		}
	}

	m := arc.Mirror(axis)
	if m.Direction() == arc.Direction() {
		t.Error("mirroring kept the direction of the arc")
	}
	if !isClose(m.TotalAngle(), arc.TotalAngle()) {
		t.Errorf("mirroring changed the sweep: %g != %g", m.TotalAngle(), arc.TotalAngle())
	}
}

func TestEntitiesEqualKinds(t *testing.T) {
	l := Line{Start: C(0, 0), End: C(1, 0)}
	a := Arc{Start: C(0, 0), End: C(1, 0), Centre: C(0.5, 0), Radius: 0.5}
	if EntitiesEqual(l, a) || EntitiesEqual(a, l) {
		t.Error("line compares equal to arc")
	}
}

func TestDirectionString(t *testing.T) {
	if Anticlockwise.String() != "anticlockwise" || Clockwise.String() != "clockwise" {
		t.Error("wrong direction names")
	}
}
