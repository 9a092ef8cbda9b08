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


package testcases

import (
	"math"

	"seehuhn.de/go/motorgeom"
	"seehuhn.de/go/motorgeom/tree"
)

// The rotor samples show one eighth of a four pole-pair rotor.
const (
	rotorInner  = 20.0
	rotorOuter  = 40.0
	rotorSector = 45.0
)

var motor = []TestCase{
	{
		Name:   "rotor_sector",
		Region: rotorSectorRegion(),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.5, 2, 62),
		Area:   math.Pi * (rotorOuter*rotorOuter - rotorInner*rotorInner) / 8,
	},
	{
		Name:   "magnet",
		Region: magnetRegion(),
		Width:  64,
		Height: 64,
		CTM:    flipY(1.5, 2, 62),
		Area:   12 * 4,
	},
	{
		Name:   "duct",
		Region: ductRegion(),
		Width:  64,
		Height: 64,
		CTM:    flipY(8, -168, 40),
		Area:   2 * math.Pi,
	},
}

func rotorSectorRegion() *motorgeom.Region {
	origin := pt(0, 0)
	p1 := pt(rotorInner, 0)
	p2 := pt(rotorOuter, 0)
	p3 := motorgeom.FromPolar(rotorOuter, rotorSector)
	p4 := motorgeom.FromPolar(rotorInner, rotorSector)

	r := motorgeom.NewRegion(motorgeom.Rotor)
	r.Name = "Rotor"
	r.Material = "M250-35A"
	r.Colour = motorgeom.Colour{R: 0, G: 128, B: 255}
	r.Duplications = 360 / rotorSector
	r.Entities = motorgeom.EntityList{
		motorgeom.Line{Start: p1, End: p2},
		motorgeom.ArcFromCentre(p2, p3, origin),
		motorgeom.Line{Start: p3, End: p4},
		motorgeom.ArcFromCentre(p4, p1, origin),
	}
	r.RegionCoordinate = motorgeom.FromPolar((rotorInner+rotorOuter)/2, 5)
	return r
}

func magnetRegion() *motorgeom.Region {
	centre := motorgeom.FromPolar(30, rotorSector/2)
	r := motorgeom.Rectangle(12, 4, centre, rotorSector/2)
	r.Name = "Magnet"
	r.Type = motorgeom.Magnet
	r.Material = "N42UH"
	r.Colour = motorgeom.Colour{R: 0, G: 192, B: 0}
	r.Duplications = 360 / rotorSector
	r.Magnet = &motorgeom.MagnetProperties{
		BrAngle:      rotorSector / 2,
		BrMultiplier: 1,
		Polarity:     "N",
	}
	r.RegionCoordinate = centre
	return r
}

// ductRegion returns a semicircular cooling duct on the lower boundary of
// the rotor sector.
func ductRegion() *motorgeom.Region {
	r := motorgeom.NewRegion(motorgeom.RotorDuct)
	r.Name = "Duct"
	r.Duplications = 360 / rotorSector
	r.Entities = motorgeom.EntityList{
		motorgeom.Line{Start: pt(23, 0), End: pt(27, 0)},
		motorgeom.ArcFromCentre(pt(27, 0), pt(23, 0), pt(25, 0)),
	}
	r.RegionCoordinate = pt(25, 1)
	return r
}

// RotorTree returns the geometry tree of a rotor sector with one magnet
// and a cooling duct.  The duct is split across the two sector boundaries;
// the two halves are linked regions.
func RotorTree() (*tree.Tree, error) {
	t := tree.New()
	rotor, err := t.Add(rotorSectorRegion(), nil)
	if err != nil {
		return nil, err
	}
	if _, err := t.Add(magnetRegion(), rotor); err != nil {
		return nil, err
	}

	duct := ductRegion()
	xAxis := motorgeom.Line{End: pt(1, 0)}
	mirrored := duct.Mirror(xAxis, true).Rotate(pt(0, 0), rotorSector)
	a, err := t.Add(duct, rotor)
	if err != nil {
		return nil, err
	}
	b, err := t.Add(mirrored, rotor)
	if err != nil {
		return nil, err
	}
	if err := t.Link(a, b); err != nil {
		return nil, err
	}
	return t, nil
}

// RotorSkew returns the axial blocks of a step-skewed rotor stack of the
// given length.  Each of the n blocks is rotated by angle/(n-1) degrees
// against its predecessor, so that the total skew is angle.
func RotorSkew(length float64, n int, angle float64) motorgeom.ExtrusionBlocks {
	if n <= 0 {
		return nil
	}
	step := 0.0
	if n > 1 {
		step = angle / float64(n-1)
	}
	res := make(motorgeom.ExtrusionBlocks, n)
	for i := range res {
		res[i] = motorgeom.ExtrusionBlock{
			Start: length * float64(i) / float64(n),
			End:   length * float64(i+1) / float64(n),
		}
		if i > 0 {
			res[i].AngleStep = step
		}
	}
	return res
}
