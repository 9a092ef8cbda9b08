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
	"image"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RenderRegion fills the region into a grayscale coverage buffer.
// The buffer is in row-major order, one byte per pixel, and is overwritten;
// each byte represents coverage from 0 (outside) to 255 (inside).
//
// The matrix ctm maps region coordinates to pixel coordinates, with the
// origin at the top-left pixel.  The zero matrix means identity.
//
// Row y occupies buf[y*stride : y*stride+width].  Bytes between rows are
// left unchanged.  An error wrapping [ErrBufferSize] is returned if stride
// is smaller than width or buf is too short.
func RenderRegion(r *Region, ctm matrix.Matrix, buf []byte, width, height, stride int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if stride < width || len(buf) < (height-1)*stride+width {
		return fmt.Errorf("render %q: %dx%d pixels, stride %d, %d bytes: %w",
			r.Name, width, height, stride, len(buf), ErrBufferSize)
	}

	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	tr := func(v vec.Vec2) (float32, float32) {
		return float32(ctm[0]*v.X + ctm[2]*v.Y + ctm[4]),
			float32(ctm[1]*v.X + ctm[3]*v.Y + ctm[5])
	}

	z := vector.NewRasterizer(width, height)
	open := false
	for cmd, pts := range r.Path() {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(tr(pts[0]))
			open = true
		case path.CmdLineTo:
			z.LineTo(tr(pts[0]))
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			x3, y3 := tr(pts[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	for y := range height {
		copy(buf[y*stride:y*stride+width], dst.Pix[y*dst.Stride:y*dst.Stride+width])
	}
	return nil
}
