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


package motorgeom_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"seehuhn.de/go/motorgeom"
	"seehuhn.de/go/motorgeom/testcases"
)

// BenchmarkRenderRotor benchmarks rasterising a rotor sector at different
// canvas sizes.
func BenchmarkRenderRotor(b *testing.B) {
	sizes := []int{20, 200, 2000}

	rotor := testcases.All["motor"][0]
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			scale := float64(size) / 64
			ctm := rotor.CTM
			for i := range ctm {
				ctm[i] *= scale
			}
			buf := make([]byte, size*size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := motorgeom.RenderRegion(rotor.Region, ctm, buf, size, size, size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRoundCorners benchmarks rounding all corners of a polygon.
func BenchmarkRoundCorners(b *testing.B) {
	for _, n := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			poly := motorgeom.RegularPolygon(n, 50, motorgeom.C(0, 0), 0)
			corners := poly.Points()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r := poly.Clone()
				if err := r.RoundCorners(corners, 0.5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEllipse benchmarks the circular-arc approximation of an
// elliptic arc.
func BenchmarkEllipse(b *testing.B) {
	for _, depth := range []float64{10, 30, 100} {
		b.Run(fmt.Sprintf("depth=%g", depth), func(b *testing.B) {
			start, end := motorgeom.C(20, 0), motorgeom.C(-20, 0)

			b.ReportAllocs()

			for b.Loop() {
				if _, err := motorgeom.Ellipse(start, end, motorgeom.WithDepth(depth)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTreeJSON benchmarks a JSON round trip of the sample rotor tree.
func BenchmarkTreeJSON(b *testing.B) {
	rt, err := testcases.RotorTree()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for b.Loop() {
		data, err := json.Marshal(rt)
		if err != nil {
			b.Fatal(err)
		}
		if err := json.Unmarshal(data, rt); err != nil {
			b.Fatal(err)
		}
	}
}
