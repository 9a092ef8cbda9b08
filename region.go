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
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// RegionType classifies a region.  The values are the names used by
// Motor-CAD.
type RegionType string

// These are the region types known to the kernel.  Other values are
// carried through unchanged.
const (
	NoType           RegionType = ""
	Stator           RegionType = "Stator"
	Rotor            RegionType = "Rotor"
	StatorCopper     RegionType = "Stator Copper"
	StatorAir        RegionType = "Stator Air"
	RotorAir         RegionType = "Rotor Air"
	RotorPocket      RegionType = "Rotor Pocket"
	Airgap           RegionType = "Airgap"
	Magnet           RegionType = "Magnet"
	Shaft            RegionType = "Shaft"
	Housing          RegionType = "Housing"
	Adaptive         RegionType = "Adaptive Region"
	DXFImport        RegionType = "DXF Import"
	StatorDuct       RegionType = "Stator Duct"
	RotorDuct        RegionType = "Rotor Duct"
	StatorSlot       RegionType = "Stator Slot"
	StatorLiner      RegionType = "Stator Liner"
	StatorImpregnate RegionType = "Stator Impregnation"
)

// Colour is an RGB colour used to display a region.
type Colour struct {
	R, G, B uint8
}

// MagnetProperties holds the extra data attached to magnet regions.
type MagnetProperties struct {
	BrAngle      float64 // direction of magnetisation, in degrees
	BrMultiplier float64 // scale factor for the remanence
	Polarity     string  // "N" or "S"
}

// Region is a named boundary made from a chain of entities.
//
// Area and Centroid are supplied by the caller (usually the simulation
// application) and are carried through unchanged.
type Region struct {
	Name     string
	NameBase string
	Material string
	Colour   Colour

	Area             float64
	Centroid         Coordinate
	RegionCoordinate Coordinate // a point inside the region

	// Duplications is the number of copies, rotated by 360/Duplications
	// degrees about the origin, which make up the full machine.
	Duplications int

	Entities EntityList

	ParentName     string
	ChildNames     []string
	Type           RegionType
	MeshLength     float64
	OnBoundary     bool
	Singular       bool
	LaminationType string

	// Magnet is non-nil for regions of type Magnet.
	Magnet *MagnetProperties

	linked []*Region
}

// NewRegion returns an empty region of the given type.
func NewRegion(typ RegionType) *Region {
	r := &Region{
		Type:         typ,
		Duplications: 1,
	}
	if typ == Magnet {
		r.Magnet = &MagnetProperties{BrMultiplier: 1}
	}
	return r
}

// Clone returns a deep copy of r.  Linked regions are not copied, since
// the link is symmetric and the other region does not know the copy.
func (r *Region) Clone() *Region {
	res := *r
	res.Entities = r.Entities.Clone()
	res.ChildNames = slices.Clone(r.ChildNames)
	if r.Magnet != nil {
		m := *r.Magnet
		res.Magnet = &m
	}
	res.linked = nil
	return &res
}

// LinkRegion marks r and o as images of one another across a symmetry
// boundary.  The link is symmetric and does not imply ownership.
func (r *Region) LinkRegion(o *Region) {
	if o == nil || o == r {
		return
	}
	if !slices.Contains(r.linked, o) {
		r.linked = append(r.linked, o)
	}
	if !slices.Contains(o.linked, r) {
		o.linked = append(o.linked, r)
	}
}

// UnlinkRegion removes the link between r and o, if any.
func (r *Region) UnlinkRegion(o *Region) {
	r.linked = slices.DeleteFunc(r.linked, func(x *Region) bool { return x == o })
	o.linked = slices.DeleteFunc(o.linked, func(x *Region) bool { return x == r })
}

// LinkedRegions returns the regions linked to r.
func (r *Region) LinkedRegions() []*Region {
	return slices.Clone(r.linked)
}

// Points returns the distinct endpoints of the entities, in order.
func (r *Region) Points() []Coordinate {
	return r.Entities.Points()
}

// IsClosed reports whether the entities form a closed loop.
func (r *Region) IsClosed() bool {
	return r.Entities.IsClosed()
}

// ComputedArea returns the area enclosed by the entities.  Unlike the
// Area field, this is computed from the geometry.
func (r *Region) ComputedArea() float64 {
	return math.Abs(r.Entities.SignedArea())
}

// AddEntity appends e to the entity chain.
func (r *Region) AddEntity(e Entity) {
	r.Entities = append(r.Entities, e)
}

// InsertEntity inserts e before position i.
func (r *Region) InsertEntity(i int, e Entity) {
	r.Entities = slices.Insert(r.Entities, i, e)
}

// InsertPolyline inserts lines through the given points before
// position i.
func (r *Region) InsertPolyline(i int, points []Coordinate) {
	if len(points) < 2 {
		return
	}
	lines := make([]Entity, len(points)-1)
	for k := range lines {
		lines[k] = Line{Start: points[k], End: points[k+1]}
	}
	r.Entities = slices.Insert(r.Entities, i, lines...)
}

// RemoveEntity removes the first entity equal to e.
func (r *Region) RemoveEntity(e Entity) error {
	i := slices.IndexFunc(r.Entities, func(x Entity) bool { return EntitiesEqual(x, e) })
	if i < 0 {
		return fmt.Errorf("region %q: %w", r.Name, ErrEntityNotFound)
	}
	r.Entities = slices.Delete(r.Entities, i, i+1)
	return nil
}

// FindEntityFromCoordinates returns the index of the entity joining a
// and b, in either direction.
func (r *Region) FindEntityFromCoordinates(a, b Coordinate) (int, bool) {
	for i, e := range r.Entities {
		start, end := e.Endpoints()
		if start.Equal(a) && end.Equal(b) || start.Equal(b) && end.Equal(a) {
			return i, true
		}
	}
	return -1, false
}

// AddPoint splits the entity containing p into two entities of the same
// kind, joined at p.  If p already is an endpoint, the region is not
// changed.
func (r *Region) AddPoint(p Coordinate) error {
	for _, q := range r.Points() {
		if q.Equal(p) {
			return nil
		}
	}
	for i, e := range r.Entities {
		if e.CoordinateOnEntity(p) {
			a, b := split(e, p)
			r.Entities = slices.Replace(r.Entities, i, i+1, a, b)
			return nil
		}
	}
	return fmt.Errorf("region %q: add point %s: %w", r.Name, p, ErrNotOnEntity)
}

// EditPoint moves every entity endpoint at from to the coordinate to.
// Arcs keep their radius.  The region is unchanged if an error is returned.
func (r *Region) EditPoint(from, to Coordinate) error {
	res := r.Entities.Clone()
	found := false
	for i, e := range res {
		start, end := e.Endpoints()
		moved := false
		if start.Equal(from) {
			start, moved = to, true
		}
		if end.Equal(from) {
			end, moved = to, true
		}
		if !moved {
			continue
		}
		found = true
		ne, err := withEndpoints(e, start, end)
		if err != nil {
			return fmt.Errorf("region %q: edit point %s: %w", r.Name, from, err)
		}
		res[i] = ne
	}
	if !found {
		return fmt.Errorf("region %q: edit point %s: %w", r.Name, from, ErrNotOnEntity)
	}
	r.Entities = res
	return nil
}

// ConsolidateLines merges consecutive lines which point in the same or in
// opposite directions into a single line.
func (r *Region) ConsolidateLines() {
	closed := r.IsClosed()
	ents := r.Entities.Clone()

	i := 0
	for len(ents) > 1 && i < len(ents) {
		j := i + 1
		if j == len(ents) {
			if !closed || len(ents) < 3 {
				break
			}
			j = 0
		}
		a, okA := ents[i].(Line)
		b, okB := ents[j].(Line)
		if okA && okB && a.End.Equal(b.Start) && sameDirection(a, b) {
			ents[i] = Line{Start: a.Start, End: b.End}
			ents = slices.Delete(ents, j, j+1)
			if j == 0 {
				i--
			}
			continue
		}
		i++
	}
	r.Entities = ents
}

// sameDirection reports whether the angles of a and b agree modulo 180
// degrees.
func sameDirection(a, b Line) bool {
	d := math.Mod(math.Abs(a.Angle()-b.Angle()), 180)
	return d < Tolerance || 180-d < Tolerance
}

// LimitArcChord subdivides arcs whose chord height exceeds maxHeight into
// equal pieces whose chord height is at most maxHeight.  Values of
// maxHeight less than or equal to zero leave the region unchanged.
func (r *Region) LimitArcChord(maxHeight float64) {
	if maxHeight <= 0 {
		return
	}
	var res EntityList
	for _, e := range r.Entities {
		a, ok := e.(Arc)
		if !ok || a.ChordHeight() <= maxHeight {
			res = append(res, e)
			continue
		}
		radius := math.Abs(a.Radius)
		step := rad2deg(2 * math.Acos(1-maxHeight/radius))
		total := a.TotalAngle()
		n := int(math.Ceil(total/step - Tolerance))
		startAngle := a.StartAngle()
		prev := a.Start
		for k := 1; k <= n; k++ {
			next := a.End
			if k < n {
				angle := startAngle + a.sign()*total*float64(k)/float64(n)
				next = a.Centre.Add(FromPolar(radius, angle))
			}
			res = append(res, Arc{Start: prev, End: next, Centre: a.Centre, Radius: a.Radius})
			prev = next
		}
	}
	r.Entities = res
}

// Mirror returns a copy of r reflected about the infinite line through l.
// If uniqueName is set, the suffix "_mirrored" is appended to the name.
func (r *Region) Mirror(l Line, uniqueName bool) *Region {
	res := r.Clone()
	for i, e := range res.Entities {
		res.Entities[i] = MirrorEntity(e, l)
	}
	res.Centroid = r.Centroid.Mirror(l)
	res.RegionCoordinate = r.RegionCoordinate.Mirror(l)
	if uniqueName {
		res.Name += "_mirrored"
	}
	return res
}

// Rotate returns a copy of r, rotated anticlockwise about centre by angle
// degrees.
func (r *Region) Rotate(centre Coordinate, angle float64) *Region {
	res := r.Clone()
	for i, e := range res.Entities {
		res.Entities[i] = RotateEntity(e, centre, angle)
	}
	res.Centroid = r.Centroid.Rotate(centre, angle)
	res.RegionCoordinate = r.RegionCoordinate.Rotate(centre, angle)
	return res
}

// Translate returns a copy of r, shifted by (dx, dy).
func (r *Region) Translate(dx, dy float64) *Region {
	res := r.Clone()
	for i, e := range res.Entities {
		res.Entities[i] = TranslateEntity(e, dx, dy)
	}
	res.Centroid = r.Centroid.Translate(dx, dy)
	res.RegionCoordinate = r.RegionCoordinate.Translate(dx, dy)
	return res
}

// Duplicate expands a symmetry-reduced region into its r.Duplications
// copies, rotated about the origin.  The first copy equals r.
func (r *Region) Duplicate() []*Region {
	n := max(r.Duplications, 1)
	res := make([]*Region, n)
	for k := range n {
		res[k] = r.Rotate(Coordinate{}, 360*float64(k)/float64(n))
		res[k].Duplications = 1
	}
	return res
}

// Equal reports whether r and o have the same metadata and the same
// entity chain.
func (r *Region) Equal(o *Region) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Name == o.Name &&
		r.Material == o.Material &&
		r.Colour == o.Colour &&
		r.Duplications == o.Duplications &&
		r.Type == o.Type &&
		r.Singular == o.Singular &&
		r.Entities.Equal(o.Entities)
}

// BoundingBox returns the smallest axis-parallel rectangle which contains
// all entities of r.
func (r *Region) BoundingBox() rect.Rect {
	box := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	extend := func(p Coordinate) {
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	for _, e := range r.Entities {
		start, end := e.Endpoints()
		extend(start)
		extend(end)
		if a, ok := e.(Arc); ok {
			radius := math.Abs(a.Radius)
			for _, theta := range []float64{0, 90, 180, 270} {
				p := a.Centre.Add(FromPolar(radius, theta))
				if a.CoordinateOnEntity(p) {
					extend(p)
				}
			}
		}
	}
	if len(r.Entities) == 0 {
		return rect.Rect{}
	}
	return box
}

func (r *Region) String() string {
	return fmt.Sprintf("Region(%q, %d entities)", r.Name, len(r.Entities))
}
