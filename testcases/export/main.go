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


// Command export writes the sample regions and the sample rotor tree to
// JSON files, in the format used to exchange geometry with Motor-CAD.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/motorgeom"
	"seehuhn.de/go/motorgeom/testcases"
)

func main() {
	outDir := flag.String("o", "testdata", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Regions []jsonSample `json:"regions"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Regions = append(out.Regions, jsonSample{
				Name:   category + "_" + tc.Name,
				Area:   tc.Area,
				Region: tc.Region,
			})
		}
	}
	if err := writeJSON(filepath.Join(*outDir, "regions.json"), out); err != nil {
		panic(err)
	}

	rt, err := testcases.RotorTree()
	if err != nil {
		panic(fmt.Errorf("rotor tree: %w", err))
	}
	if err := writeJSON(filepath.Join(*outDir, "rotor_tree.json"), rt); err != nil {
		panic(err)
	}

	skew := testcases.RotorSkew(100, 4, 7.5)
	if err := writeJSON(filepath.Join(*outDir, "rotor_skew.json"), skew); err != nil {
		panic(err)
	}
}

type jsonSample struct {
	Name   string            `json:"name"`
	Area   float64           `json:"area"`
	Region *motorgeom.Region `json:"region"`
}

func writeJSON(fname string, v any) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
