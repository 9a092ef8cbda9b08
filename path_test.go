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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type pathSegment struct {
	cmd path.Command
	pts []vec.Vec2
}

func collect(p path.Path) []pathSegment {
	var res []pathSegment
	for cmd, pts := range p {
		res = append(res, pathSegment{cmd, append([]vec.Vec2(nil), pts...)})
	}
	return res
}

func TestPathPolygon(t *testing.T) {
	segs := collect(square(2).Path())
	want := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i, s := range segs {
		if s.cmd != want[i] {
			t.Errorf("segment %d: got %v, want %v", i, s.cmd, want[i])
		}
	}
	if segs[2].pts[0] != (vec.Vec2{X: 2, Y: 2}) {
		t.Errorf("second line ends at %v", segs[2].pts[0])
	}
}

func TestPathOpen(t *testing.T) {
	l := square(2)[:2]
	segs := collect(l.Path())
	if len(segs) != 3 || segs[len(segs)-1].cmd == path.CmdClose {
		t.Errorf("open chain: %v", segs)
	}
	if len(collect(EntityList(nil).Path())) != 0 {
		t.Error("empty chain produced a path")
	}
}

func TestPathArcs(t *testing.T) {
	cases := []struct {
		name  string
		arc   Arc
		cubes int
	}{
		{"quarter", Arc{Start: C(1, 0), End: C(0, 1), Centre: C(0, 0), Radius: 1}, 1},
		{"half", Arc{Start: C(5, 0), End: C(-5, 0), Centre: C(0, 0), Radius: 5}, 2},
		{"half clockwise", Arc{Start: C(5, 0), End: C(-5, 0), Centre: C(0, 0), Radius: -5}, 2},
		{"small", Arc{Start: C(3, 0), End: FromPolar(3, 10), Centre: C(0, 0), Radius: 3}, 1},
		{"large", ArcFromCentre(FromPolar(2, 100), FromPolar(2, 90), C(0, 0)), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs := collect(EntityList{tc.arc}.Path())
			if len(segs) != 1+tc.cubes {
				t.Fatalf("got %d segments, want %d", len(segs), 1+tc.cubes)
			}
			r := math.Abs(tc.arc.Radius)
			prev := segs[0].pts[0]
			for _, s := range segs[1:] {
				if s.cmd != path.CmdCubeTo {
					t.Fatalf("unexpected command %v", s.cmd)
				}
				// the curve at t=1/2
				mid := prev.Mul(0.125).Add(s.pts[0].Mul(0.375)).Add(s.pts[1].Mul(0.375)).Add(s.pts[2].Mul(0.125))
				if d := math.Abs(Coordinate(mid).Sub(tc.arc.Centre).Abs() - r); d > 1e-3*r {
					t.Errorf("midpoint %v is %g off the circle", mid, d)
				}
				prev = s.pts[2]
			}
			if !Coordinate(prev).Equal(tc.arc.End) {
				t.Errorf("path ends at %v, want %s", prev, tc.arc.End)
			}
		})
	}
}

func TestPathEarlyStop(t *testing.T) {
	n := 0
	for range unitCircle().Path() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times", n)
	}
}
