// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"github.com/bitmark-inc/treeset/fault"
)

// Index - stable reference to a node in the arena
type Index int32

// Absent - the null node reference
const Absent Index = -1

// Side - selects one of the two child slots of a node
type Side int

// the child slots
const (
	Left  Side = iota
	Right Side = iota
)

// Opposite - the other child slot
func (s Side) Opposite() Side {
	return Right - s
}

// String - printable side
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Colour - node colour, only meaningful to red-black trees
type Colour uint8

// the node colours, new nodes are always red
const (
	Red   Colour = iota
	Black Colour = iota
)

// String - printable colour
func (c Colour) String() string {
	if Red == c {
		return "red"
	}
	return "black"
}

// a node in the arena
type node[K any] struct {
	child  [2]Index // left and right sub-trees
	up     Index    // parent node, or next free slot after reclaim
	height int      // 1 + maximum child height
	colour Colour   // red-black trees only
	key    K        // key part for ordering
}

// Tree - arena of nodes with the root slot of a tree
type Tree[K any] struct {
	nodes     []node[K]
	pool      Index // linked list of reclaimed slots
	freeNodes int   // number of slots in the pool
	root      Index
	count     int
	compare   func(a, b K) int
}

// New - create an initially empty tree ordered by compare, which
// must return a negative, zero or positive result for a < b, a == b
// and a > b
func New[K any](compare func(a, b K) int) *Tree[K] {
	if nil == compare {
		fault.Panic("linkage: nil compare function")
	}
	return &Tree[K]{
		pool:    Absent,
		root:    Absent,
		compare: compare,
	}
}

// Reset - drop all nodes, keeping the compare function
func (tree *Tree[K]) Reset() {
	tree.nodes = nil
	tree.pool = Absent
	tree.freeNodes = 0
	tree.root = Absent
	tree.count = 0
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return Absent == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - the node held by the root slot
func (tree *Tree[K]) Root() Index {
	return tree.root
}

// Compare - apply the tree's ordering to two keys
func (tree *Tree[K]) Compare(a K, b K) int {
	return tree.compare(a, b)
}

// Key - read the key of a node
func (tree *Tree[K]) Key(n Index) K {
	return tree.nodes[n].key
}

// SwapKeys - exchange the keys of two nodes, leaving their positions
// and colours unchanged
func (tree *Tree[K]) SwapKeys(a Index, b Index) {
	tree.nodes[a].key, tree.nodes[b].key = tree.nodes[b].key, tree.nodes[a].key
}

// Parent - the parent of a node, Absent for the root
func (tree *Tree[K]) Parent(n Index) Index {
	return tree.nodes[n].up
}

// Child - the child of a node on one side
func (tree *Tree[K]) Child(n Index, side Side) Index {
	return tree.nodes[n].child[side]
}

// Left - the left child of a node
func (tree *Tree[K]) Left(n Index) Index {
	return tree.nodes[n].child[Left]
}

// Right - the right child of a node
func (tree *Tree[K]) Right(n Index) Index {
	return tree.nodes[n].child[Right]
}

// Colour - colour of a node, absent nodes are black
func (tree *Tree[K]) Colour(n Index) Colour {
	if Absent == n {
		return Black
	}
	return tree.nodes[n].colour
}

// SetColour - recolour a node
func (tree *Tree[K]) SetColour(n Index, c Colour) {
	tree.nodes[n].colour = c
}

// SwapColours - exchange the colours of two nodes
func (tree *Tree[K]) SwapColours(a Index, b Index) {
	tree.nodes[a].colour, tree.nodes[b].colour = tree.nodes[b].colour, tree.nodes[a].colour
}

// Depth - number of links between a node and the root
func (tree *Tree[K]) Depth(n Index) int {
	depth := 0
	for up := tree.nodes[n].up; Absent != up; up = tree.nodes[up].up {
		depth += 1
	}
	return depth
}
