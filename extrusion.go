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
	"math"
	"slices"
)

// ExtrusionBlock describes one axial section of a 3D model, built by
// extruding the cross-section from Start to End.  Positions are along the
// machine axis.
type ExtrusionBlock struct {
	Start float64
	End   float64

	// AngleStep rotates the cross-section of this block, in degrees,
	// relative to the previous block (step skew).
	AngleStep float64

	// ContinuousRotation is the twist of the cross-section, in degrees,
	// over the length of the block (continuous skew).
	ContinuousRotation float64
}

// ExtrusionLength returns the distance between the start and end position.
func (b ExtrusionBlock) ExtrusionLength() float64 {
	return math.Abs(b.End - b.Start)
}

type jsonExtrusionBlock struct {
	Start              float64 `json:"extrusion_block_start"`
	End                float64 `json:"extrusion_block_end"`
	AngleStep          float64 `json:"extrusion_block_angle_step"`
	ContinuousRotation float64 `json:"extrusion_block_continuous_rotation"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (b ExtrusionBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonExtrusionBlock(b))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (b *ExtrusionBlock) UnmarshalJSON(data []byte) error {
	var jb jsonExtrusionBlock
	if err := json.Unmarshal(data, &jb); err != nil {
		return err
	}
	*b = ExtrusionBlock(jb)
	return nil
}

// ExtrusionBlocks is the list of axial sections of a 3D model.
type ExtrusionBlocks []ExtrusionBlock

// Equal reports whether both lists contain the same blocks in the same
// order.
func (l ExtrusionBlocks) Equal(o ExtrusionBlocks) bool {
	return slices.Equal(l, o)
}

// ExtrusionLength returns the total length of all blocks.
func (l ExtrusionBlocks) ExtrusionLength() float64 {
	total := 0.0
	for _, b := range l {
		total += b.ExtrusionLength()
	}
	return total
}

// MarshalJSON implements the [json.Marshaler] interface.  An empty list
// is written as [].
func (l ExtrusionBlocks) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]ExtrusionBlock(l))
}
