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

// Package tree implements a hierarchy of named regions.
//
// A [Tree] maps unique region names to nodes.  Every node except the root
// has a parent; the children of a node are not stored but found by
// scanning the tree.  Traversal is depth-first, with the children of each
// node visited in order of their names.
//
// Trees are not safe for concurrent modification.
package tree

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/motorgeom"
)

// RootName is the name of the root node of every tree created by [New].
const RootName = "root"

var (
	// ErrNotFound is returned when a region name or node is not part of
	// the tree.
	ErrNotFound = errors.New("region not found in tree")

	// ErrRootNode is returned by operations which cannot be applied to the
	// root node.
	ErrRootNode = errors.New("operation not allowed on the root node")

	// ErrDuplicateName is returned when renaming a node to a name which is
	// already in use.
	ErrDuplicateName = errors.New("region name already in use")

	// ErrCycle is returned when a node would become its own ancestor.
	ErrCycle = errors.New("node cannot be its own ancestor")
)

// Node is a region which is part of a [Tree].
//
// The ParentName and ChildNames fields of the embedded region are only
// kept up to date when the tree is written to JSON.  Use [Node.Parent]
// and [Node.Children] instead.  Nodes must be renamed using
// [Tree.Rename].
type Node struct {
	motorgeom.Region

	parent *Node
	tree   *Tree
}

// Key returns the name under which the node is stored in its tree.
func (n *Node) Key() string {
	return n.Name
}

// Parent returns the parent of n, or nil for the root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of n, sorted by name.
func (n *Node) Children() []*Node {
	if n.tree == nil {
		return nil
	}
	var res []*Node
	for _, m := range n.tree.nodes {
		if m.parent == n {
			res = append(res, m)
		}
	}
	sortByName(res)
	return res
}

// Level returns the depth of n in the tree.  The root is at level 0.
func (n *Node) Level() int {
	level := 0
	for m := n.parent; m != nil; m = m.parent {
		level++
	}
	return level
}

// Tree is a hierarchy of named regions.
type Tree struct {
	nodes map[string]*Node
	root  *Node

	// counter is used to generate unique region names.  It is
	// incremented every time a node is stored in the tree.
	counter int
}

// New returns a tree containing only the root node.
func New() *Tree {
	t := &Tree{
		nodes: make(map[string]*Node),
	}
	root := &Node{Region: *motorgeom.NewRegion(motorgeom.NoType), tree: t}
	root.Name = RootName
	t.root = root
	t.nodes[RootName] = root
	return t
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// contains reports whether n is a node of t.
func (t *Tree) contains(n *Node) bool {
	return n != nil && t.nodes[n.Name] == n
}

// nodeName returns the name of n for use in error messages.
func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// uniqueName returns an unused name for a new region of the given type.
func (t *Tree) uniqueName(typ motorgeom.RegionType) string {
	prefix := "region_"
	if typ == motorgeom.Magnet {
		prefix = "magnet_region_"
	}
	for {
		name := prefix + strconv.Itoa(t.counter)
		if _, used := t.nodes[name]; !used {
			return name
		}
		t.counter++
	}
}

func (t *Tree) store(n *Node) {
	t.nodes[n.Name] = n
	t.counter++
}

// CreateRegion adds a new, empty region of the given type below parent.
// The region is named "region_N", or "magnet_region_N" for magnets,
// where N is a counter maintained by the tree.  If parent is nil, the
// region is added below the root.
func (t *Tree) CreateRegion(typ motorgeom.RegionType, parent *Node) (*Node, error) {
	return t.Add(motorgeom.NewRegion(typ), parent)
}

// Add stores a deep copy of r in the tree, below parent.  If parent is
// nil, the region is added below the root.
//
// If a node with the same name already exists, it is removed first and
// its children are moved to its parent.  Regions without a name are
// given a unique name, as in [Tree.CreateRegion].
func (t *Tree) Add(r *motorgeom.Region, parent *Node) (*Node, error) {
	if parent == nil {
		parent = t.root
	} else if !t.contains(parent) {
		return nil, fmt.Errorf("add %q below %q: %w", r.Name, parent.Name, ErrNotFound)
	}

	n := &Node{Region: *r.Clone(), tree: t, parent: parent}
	if n.Name == "" {
		n.Name = t.uniqueName(n.Type)
	}

	if old, exists := t.nodes[n.Name]; exists {
		switch {
		case old == t.root:
			return nil, fmt.Errorf("add %q: %w", n.Name, ErrRootNode)
		case old == parent:
			return nil, fmt.Errorf("add %q below itself: %w", n.Name, ErrCycle)
		}
		if err := t.Remove(old); err != nil {
			return nil, err
		}
		motorgeom.Logger().Debug("region replaced", "name", n.Name)
	}

	t.store(n)
	return n, nil
}

// Get returns the node with the given name.  The lookup is
// case-insensitive, but an exact match takes precedence.
func (t *Tree) Get(name string) (*Node, error) {
	if n, ok := t.nodes[name]; ok {
		return n, nil
	}
	for key, n := range t.nodes {
		if strings.EqualFold(key, name) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Remove deletes n from the tree.  The children of n are moved to the
// parent of n, and all links to n are removed.
func (t *Tree) Remove(n *Node) error {
	if !t.contains(n) {
		return fmt.Errorf("remove %q: %w", nodeName(n), ErrNotFound)
	}
	if n == t.root {
		return fmt.Errorf("remove %q: %w", n.Name, ErrRootNode)
	}
	for _, child := range n.Children() {
		child.parent = n.parent
	}
	t.detach(n)
	return nil
}

// RemoveBranch deletes n and all its descendants from the tree.
func (t *Tree) RemoveBranch(n *Node) error {
	if !t.contains(n) {
		return fmt.Errorf("remove %q: %w", nodeName(n), ErrNotFound)
	}
	if n == t.root {
		return fmt.Errorf("remove %q: %w", n.Name, ErrRootNode)
	}
	var dive func(*Node)
	dive = func(m *Node) {
		for _, child := range m.Children() {
			dive(child)
		}
		t.detach(m)
	}
	dive(n)
	return nil
}

func (t *Tree) detach(n *Node) {
	for _, o := range n.LinkedRegions() {
		n.UnlinkRegion(o)
	}
	delete(t.nodes, n.Name)
	n.parent = nil
	n.tree = nil
}

// Link marks a and b as linked regions.  See [motorgeom.Region.LinkRegion].
func (t *Tree) Link(a, b *Node) error {
	switch {
	case !t.contains(a):
		return fmt.Errorf("link %q: %w", nodeName(a), ErrNotFound)
	case !t.contains(b):
		return fmt.Errorf("link %q: %w", nodeName(b), ErrNotFound)
	}
	a.LinkRegion(&b.Region)
	return nil
}

// Rename changes the name of n.
func (t *Tree) Rename(n *Node, name string) error {
	if !t.contains(n) {
		return fmt.Errorf("rename %q: %w", nodeName(n), ErrNotFound)
	}
	if name == n.Name {
		return nil
	}
	if _, used := t.nodes[name]; used {
		return fmt.Errorf("rename %q to %q: %w", n.Name, name, ErrDuplicateName)
	}
	delete(t.nodes, n.Name)
	n.Name = name
	t.store(n)
	return nil
}

// SetParent moves n below parent.  If parent is nil, n is moved below the
// root.
func (t *Tree) SetParent(n, parent *Node) error {
	if parent == nil {
		parent = t.root
	}
	switch {
	case !t.contains(n):
		return fmt.Errorf("set parent of %q: %w", nodeName(n), ErrNotFound)
	case !t.contains(parent):
		return fmt.Errorf("set parent of %q to %q: %w", n.Name, nodeName(parent), ErrNotFound)
	case n == t.root:
		return fmt.Errorf("set parent of %q: %w", n.Name, ErrRootNode)
	}
	for m := parent; m != nil; m = m.parent {
		if m == n {
			return fmt.Errorf("set parent of %q to %q: %w", n.Name, parent.Name, ErrCycle)
		}
	}
	n.parent = parent
	return nil
}

// Subtree returns a tree consisting of n and all its descendants.  The
// nodes are shared with t, not copied.  If n is the root of t, t itself
// is returned.
func (t *Tree) Subtree(n *Node) (*Tree, error) {
	if !t.contains(n) {
		return nil, fmt.Errorf("subtree %q: %w", nodeName(n), ErrNotFound)
	}
	if n == t.root {
		return t, nil
	}
	sub := &Tree{
		nodes: make(map[string]*Node),
		root:  n,
	}
	children := t.childMap()
	var dive func(*Node)
	dive = func(m *Node) {
		sub.nodes[m.Name] = m
		for _, child := range children[m] {
			dive(child)
		}
	}
	dive(n)
	return sub, nil
}

// RegionsOfType returns all nodes of the given type, in traversal order.
// The root of the full tree is never included.
func (t *Tree) RegionsOfType(typ motorgeom.RegionType) []*Node {
	var res []*Node
	for n := range t.All() {
		if n.parent != nil && n.Type == typ {
			res = append(res, n)
		}
	}
	return res
}

// childMap returns the children of every node of t, sorted by name.
func (t *Tree) childMap() map[*Node][]*Node {
	res := make(map[*Node][]*Node, len(t.nodes))
	for _, n := range t.nodes {
		if n != t.root && n.parent != nil {
			res[n.parent] = append(res[n.parent], n)
		}
	}
	for _, children := range res {
		sortByName(children)
	}
	return res
}

// All iterates over the nodes of the tree, depth-first starting at the
// root.  The children of each node are visited in order of their names.
func (t *Tree) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		children := t.childMap()
		var dive func(*Node) bool
		dive = func(n *Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range children[n] {
				if !dive(child) {
					return false
				}
			}
			return true
		}
		dive(t.root)
	}
}

// Equal reports whether t and o have the same structure, and whether
// nodes with the same names have equal regions and the same linked
// regions.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.nodes) != len(o.nodes) || t.root.Name != o.root.Name {
		return false
	}
	tc, oc := t.childMap(), o.childMap()

	var dive func(n, m *Node) bool
	dive = func(n, m *Node) bool {
		a, b := tc[n], oc[m]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Name != b[i].Name || !dive(a[i], b[i]) {
				return false
			}
		}
		return n.Region.Equal(&m.Region) &&
			slices.Equal(linkedNames(n), linkedNames(m))
	}
	return dive(t.root, o.root)
}

// String draws the tree, one node per line.
func (t *Tree) String() string {
	b := &strings.Builder{}
	children := t.childMap()
	b.WriteString(t.root.Name)
	b.WriteByte('\n')

	var dive func(n *Node, prefix string)
	dive = func(n *Node, prefix string) {
		cc := children[n]
		for i, child := range cc {
			branch, indent := "├── ", "│   "
			if i == len(cc)-1 {
				branch, indent = "└── ", "    "
			}
			b.WriteString(prefix)
			b.WriteString(branch)
			b.WriteString(child.Name)
			b.WriteByte('\n')
			dive(child, prefix+indent)
		}
	}
	dive(t.root, "")
	return b.String()
}

func linkedNames(n *Node) []string {
	linked := n.LinkedRegions()
	res := make([]string, len(linked))
	for i, r := range linked {
		res[i] = r.Name
	}
	slices.Sort(res)
	return res
}

func sortByName(nodes []*Node) {
	slices.SortFunc(nodes, func(a, b *Node) int {
		return strings.Compare(a.Name, b.Name)
	})
}
