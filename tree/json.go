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

package tree

import (
	"encoding/json"
	"fmt"
	"slices"

	"seehuhn.de/go/motorgeom"
)

type jsonTree struct {
	Regions map[string]json.RawMessage `json:"regions"`
}

// MarshalJSON writes the tree as {"regions": {name: region, ...}}.
// The root of the full tree is omitted.
//
// For a tree returned by [Tree.Subtree], the subtree root is written
// without a parent, and links to regions outside the subtree are
// dropped.  Decoding then places the subtree root below a new root node.
func (t *Tree) MarshalJSON() ([]byte, error) {
	children := t.childMap()
	jt := jsonTree{Regions: make(map[string]json.RawMessage, len(t.nodes))}
	for n := range t.All() {
		if n.parent == nil {
			continue
		}
		r := n.Region
		r.ParentName = n.parent.Name
		if n == t.root {
			r.ParentName = ""
		}
		r.ChildNames = []string{}
		for _, child := range children[n] {
			r.ChildNames = append(r.ChildNames, child.Name)
		}
		data, err := json.Marshal(&r)
		if err == nil {
			data, err = t.dropOutsideLinks(n, data)
		}
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", n.Name, err)
		}
		jt.Regions[n.Name] = data
	}
	return json.Marshal(jt)
}

// dropOutsideLinks removes the names of regions which are not part of t
// from the linked regions in the encoded region data.
func (t *Tree) dropOutsideLinks(n *Node, data []byte) ([]byte, error) {
	names := linkedNames(n)
	inside := slices.DeleteFunc(slices.Clone(names), func(name string) bool {
		_, ok := t.nodes[name]
		return !ok
	})
	if len(inside) == len(names) {
		return data, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	linked, err := json.Marshal(inside)
	if err != nil {
		return nil, err
	}
	fields["linked_regions"] = linked
	return json.Marshal(fields)
}

// UnmarshalJSON replaces t by the tree encoded in data.
//
// Parent and linked regions may refer to regions which appear later in
// the input.  They are resolved after all regions have been read.
// Regions without a parent are placed below the root.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var jt jsonTree
	if err := json.Unmarshal(data, &jt); err != nil {
		return err
	}

	res := New()
	keys := make([]string, 0, len(jt.Regions))
	for key := range jt.Regions {
		if key != RootName {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	var added []*Node
	linked := make(map[*Node][]string)
	for _, key := range keys {
		msg := jt.Regions[key]
		r := &motorgeom.Region{}
		if err := json.Unmarshal(msg, r); err != nil {
			return fmt.Errorf("region %q: %w", key, err)
		}
		if r.Name == "" {
			r.Name = key
		}
		names, err := motorgeom.LinkedRegionNames(msg)
		if err != nil {
			return fmt.Errorf("region %q: %w", key, err)
		}
		n, err := res.Add(r, nil)
		if err != nil {
			return err
		}
		added = append(added, n)
		linked[n] = names
	}

	for _, n := range added {
		if n.tree == nil { // replaced by a later region of the same name
			continue
		}
		for _, name := range linked[n] {
			o, ok := res.nodes[name]
			if !ok {
				return fmt.Errorf("region %q: linked region %q: %w", n.Name, name, ErrNotFound)
			}
			n.LinkRegion(&o.Region)
		}
		if n.ParentName == "" {
			continue
		}
		p, ok := res.nodes[n.ParentName]
		if !ok {
			return fmt.Errorf("region %q: parent %q: %w", n.Name, n.ParentName, ErrNotFound)
		}
		if err := res.SetParent(n, p); err != nil {
			return err
		}
	}

	*t = *res
	for _, n := range t.nodes {
		n.tree = t
	}
	return nil
}
