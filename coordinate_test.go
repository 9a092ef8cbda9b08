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
)

func TestFromPolar(t *testing.T) {
	cases := []struct {
		r, theta float64
		want     Coordinate
	}{
		{math.Sqrt2, 45, C(1, 1)},
		{2, 90, C(0, 2)},
		{1, 180, C(-1, 0)},
		{3, -90, C(0, -3)},
		{0, 17, C(0, 0)},
	}
	for _, tc := range cases {
		got := FromPolar(tc.r, tc.theta)
		if !got.Equal(tc.want) {
			t.Errorf("FromPolar(%g, %g) = %s, want %s", tc.r, tc.theta, got, tc.want)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, c := range []Coordinate{C(1, 0), C(0, -3), C(-2, 2), C(3, 4)} {
		r, theta := c.Polar()
		if theta <= -180 || theta > 180 {
			t.Errorf("%s: angle %g out of range", c, theta)
		}
		if got := FromPolar(r, theta); !got.Equal(c) {
			t.Errorf("%s: round trip gives %s", c, got)
		}
	}
	if r, theta := C(3, 4).Polar(); !isClose(r, 5) || !isClose(theta, rad2deg(math.Atan2(4, 3))) {
		t.Errorf("Polar = (%g, %g)", r, theta)
	}
}

func TestCoordinateRotate(t *testing.T) {
	cases := []struct {
		p, centre Coordinate
		angle     float64
		want      Coordinate
	}{
		{C(1, 0), C(0, 0), 90, C(0, 1)},
		{C(1, 0), C(1, 1), 90, C(2, 1)},
		{C(2, 3), C(0, 0), 360, C(2, 3)},
		{C(2, 3), C(0, 0), -180, C(-2, -3)},
	}
	for _, tc := range cases {
		got := tc.p.Rotate(tc.centre, tc.angle)
		if !got.Equal(tc.want) {
			t.Errorf("%s.Rotate(%s, %g) = %s, want %s", tc.p, tc.centre, tc.angle, got, tc.want)
		}
	}
}

func TestCoordinateMirror(t *testing.T) {
	cases := []struct {
		name string
		axis Line
		want Coordinate
	}{
		{"x-axis", Line{Start: C(0, 0), End: C(1, 0)}, C(3, -4)},
		{"vertical", Line{Start: C(1, 0), End: C(1, 5)}, C(-1, 4)},
		{"diagonal", Line{Start: C(0, 0), End: C(2, 2)}, C(4, 3)},
		{"offset", Line{Start: C(0, 1), End: C(7, 1)}, C(3, -2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := C(3, 4)
			got := p.Mirror(tc.axis)
			if !got.Equal(tc.want) {
				t.Errorf("got %s, want %s", got, tc.want)
			}
			if back := got.Mirror(tc.axis); !back.Equal(p) {
				t.Errorf("mirroring twice gives %s", back)
			}
		})
	}
}

func TestCoordinateEqual(t *testing.T) {
	if !C(1, 2).Equal(C(1+Tolerance/2, 2-Tolerance/2)) {
		t.Error("coordinates within tolerance compare unequal")
	}
	if C(1, 2).Equal(C(1+2*Tolerance, 2)) {
		t.Error("coordinates outside tolerance compare equal")
	}
}

func TestCoordinateString(t *testing.T) {
	cases := []struct {
		c    Coordinate
		want string
	}{
		{C(1.5, -2), "[1.5, -2]"},
		{C(0, 0), "[0, 0]"},
		{C(math.Copysign(0, -1), 3), "[0, 3]"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
