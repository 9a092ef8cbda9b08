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
	"encoding/json"
	"fmt"
)

type jsonCoordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalJSON encodes c as {"x": ..., "y": ...}.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCoordinate{X: c.X, Y: c.Y})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var jc jsonCoordinate
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	*c = Coordinate{X: jc.X, Y: jc.Y}
	return nil
}

type jsonEntity struct {
	Type   string      `json:"type"`
	Start  Coordinate  `json:"start"`
	End    Coordinate  `json:"end"`
	Centre *Coordinate `json:"centre,omitempty"`
	Radius *float64    `json:"radius,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEntity{Type: "line", Start: l.Start, End: l.End})
}

// MarshalJSON implements the [json.Marshaler] interface.
func (a Arc) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEntity{
		Type:   "arc",
		Start:  a.Start,
		End:    a.End,
		Centre: &a.Centre,
		Radius: &a.Radius,
	})
}

// UnmarshalEntity decodes a line or an arc.
func UnmarshalEntity(data []byte) (Entity, error) {
	var je jsonEntity
	if err := json.Unmarshal(data, &je); err != nil {
		return nil, err
	}
	switch je.Type {
	case "line":
		return Line{Start: je.Start, End: je.End}, nil
	case "arc":
		if je.Centre == nil || je.Radius == nil {
			return nil, fmt.Errorf("arc from %s to %s: missing centre or radius", je.Start, je.End)
		}
		return Arc{Start: je.Start, End: je.End, Centre: *je.Centre, Radius: *je.Radius}, nil
	}
	return nil, fmt.Errorf("unknown entity type %q", je.Type)
}

// UnmarshalJSON decodes a JSON array of entities.
func (l *EntityList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	res := make(EntityList, len(raw))
	for i, msg := range raw {
		e, err := UnmarshalEntity(msg)
		if err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
		res[i] = e
	}
	*l = res
	return nil
}

type jsonColour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// jsonRegion is the wire format of a region.  The magnet fields are only
// present for magnet regions.
type jsonRegion struct {
	Name             string     `json:"name"`
	NameBase         string     `json:"name_base"`
	Material         string     `json:"material"`
	Colour           jsonColour `json:"colour"`
	Area             float64    `json:"area"`
	Centroid         Coordinate `json:"centroid"`
	RegionCoordinate Coordinate `json:"region_coordinate"`
	Duplications     int        `json:"duplications"`
	Entities         EntityList `json:"entities"`
	ParentName       string     `json:"parent_name"`
	ChildNames       []string   `json:"child_names"`
	RegionType       RegionType `json:"region_type"`
	MeshLength       float64    `json:"mesh_length"`
	OnBoundary       bool       `json:"on_boundary"`
	Singular         bool       `json:"singular"`
	LaminationType   string     `json:"lamination_type"`
	LinkedRegions    []string   `json:"linked_regions"`

	BrAngle        *float64 `json:"magnet_angle,omitempty"`
	BrMultiplier   *float64 `json:"magnet_magfactor,omitempty"`
	MagnetPolarity *string  `json:"magnet_polarity,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// Linked regions are written by name.
func (r *Region) MarshalJSON() ([]byte, error) {
	jr := jsonRegion{
		Name:             r.Name,
		NameBase:         r.NameBase,
		Material:         r.Material,
		Colour:           jsonColour(r.Colour),
		Area:             r.Area,
		Centroid:         r.Centroid,
		RegionCoordinate: r.RegionCoordinate,
		Duplications:     r.Duplications,
		Entities:         r.Entities,
		ParentName:       r.ParentName,
		ChildNames:       r.ChildNames,
		RegionType:       r.Type,
		MeshLength:       r.MeshLength,
		OnBoundary:       r.OnBoundary,
		Singular:         r.Singular,
		LaminationType:   r.LaminationType,
		LinkedRegions:    []string{},
	}
	if jr.Entities == nil {
		jr.Entities = EntityList{}
	}
	if jr.ChildNames == nil {
		jr.ChildNames = []string{}
	}
	for _, o := range r.linked {
		jr.LinkedRegions = append(jr.LinkedRegions, o.Name)
	}
	if m := r.Magnet; m != nil {
		jr.BrAngle = &m.BrAngle
		jr.BrMultiplier = &m.BrMultiplier
		jr.MagnetPolarity = &m.Polarity
	}
	return json.Marshal(jr)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Linked regions cannot be resolved from a single region and are left
// empty; see [LinkedRegionNames].
func (r *Region) UnmarshalJSON(data []byte) error {
	var jr jsonRegion
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	*r = Region{
		Name:             jr.Name,
		NameBase:         jr.NameBase,
		Material:         jr.Material,
		Colour:           Colour(jr.Colour),
		Area:             jr.Area,
		Centroid:         jr.Centroid,
		RegionCoordinate: jr.RegionCoordinate,
		Duplications:     jr.Duplications,
		Entities:         jr.Entities,
		ParentName:       jr.ParentName,
		ChildNames:       jr.ChildNames,
		Type:             jr.RegionType,
		MeshLength:       jr.MeshLength,
		OnBoundary:       jr.OnBoundary,
		Singular:         jr.Singular,
		LaminationType:   jr.LaminationType,
	}
	if jr.BrAngle != nil || jr.BrMultiplier != nil || jr.MagnetPolarity != nil || r.Type == Magnet {
		m := &MagnetProperties{BrMultiplier: 1}
		if jr.BrAngle != nil {
			m.BrAngle = *jr.BrAngle
		}
		if jr.BrMultiplier != nil {
			m.BrMultiplier = *jr.BrMultiplier
		}
		if jr.MagnetPolarity != nil {
			m.Polarity = *jr.MagnetPolarity
		}
		r.Magnet = m
	}
	return nil
}

// LinkedRegionNames extracts the names of the linked regions from the
// JSON representation of a region.
func LinkedRegionNames(data []byte) ([]string, error) {
	var v struct {
		LinkedRegions []string `json:"linked_regions"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v.LinkedRegions, nil
}
