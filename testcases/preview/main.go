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


// Command preview renders the sample regions to PNG coverage masks.
// The images use the same canvas and transformation as the PDF files
// written by genpdf.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/motorgeom"
	"seehuhn.de/go/motorgeom/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/preview", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
			err := motorgeom.RenderRegion(tc.Region, tc.CTM, img.Pix, tc.Width, tc.Height, img.Stride)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := writePNG(filepath.Join(*outDir, name+".png"), img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
