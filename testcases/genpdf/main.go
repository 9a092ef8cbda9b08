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


// Command genpdf draws the sample regions into PDF files.
// With -png, the PDFs are also rendered to coverage masks using
// Ghostscript, which can be compared against the output of the preview
// command.  A drawing of the full rotor is written to rotor.pdf.
package main

import (
	"flag"
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/motorgeom"
	"seehuhn.de/go/motorgeom/testcases"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	withPNG := flag.Bool("png", false, "render the PDFs to PNG using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if !*withPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	if err := drawRotor(filepath.Join(*refDir, "rotor.pdf")); err != nil {
		panic(fmt.Errorf("rotor: %w", err))
	}
}

// generatePDF fills the region in white on a black page, so that the
// rendered image is a coverage mask.
func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; pixel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	drawPath(page, tc.Region.Path())
	page.Fill()

	return page.Close()
}

// drawRotor draws all regions of the sample rotor, each expanded to the
// full circle.
func drawRotor(pdfPath string) error {
	const (
		scale  = 4.0 // points per mm
		margin = 18.0
	)

	rt, err := testcases.RotorTree()
	if err != nil {
		return err
	}
	var regions []*motorgeom.Region
	box := rect.Rect{}
	for n := range rt.All() {
		if n.Parent() == nil {
			continue
		}
		for _, r := range n.Duplicate() {
			regions = append(regions, r)
			b := r.BoundingBox()
			if len(regions) == 1 {
				box = b
				continue
			}
			box = rect.Rect{
				LLx: math.Min(box.LLx, b.LLx), LLy: math.Min(box.LLy, b.LLy),
				URx: math.Max(box.URx, b.URx), URy: math.Max(box.URy, b.URy),
			}
		}
	}

	paper := &pdf.Rectangle{
		URx: scale*(box.URx-box.LLx) + 2*margin,
		URy: scale*(box.URy-box.LLy) + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	page.Transform(matrix.Matrix{scale, 0, 0, scale, margin - scale*box.LLx, margin - scale*box.LLy})

	page.SetLineWidth(0.5 / scale)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetStrokeColor(color.DeviceGray(0))
	for _, r := range regions {
		page.SetFillColor(color.DeviceGray(gray(r.Colour)))
		drawPath(page, r.Path())
		page.Fill()
		drawPath(page, r.Path())
		page.Stroke()
	}

	return page.Close()
}

// gray converts a region colour to a gray level in [0, 1].
func gray(c motorgeom.Colour) float64 {
	if c == (motorgeom.Colour{}) {
		return 0.9
	}
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// pathBuilder is the part of the PDF page API used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPath(page pathBuilder, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale coverage
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
