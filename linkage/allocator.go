// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"math"

	"github.com/bitmark-inc/treeset/fault"
)

// allocate a new red leaf of height one, reuses reclaimed slots if
// any are available
//
// appending may move the arena, so no *node may be held across a call
func (tree *Tree[K]) newNode(key K) Index {
	leaf := node[K]{
		child:  [2]Index{Absent, Absent},
		up:     Absent,
		height: 1,
		colour: Red,
		key:    key,
	}
	if Absent == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panic("linkage: pool corrupt")
		}
		if len(tree.nodes) >= math.MaxInt32 {
			fault.Panic("linkage: arena is full")
		}
		tree.nodes = append(tree.nodes, leaf)
		return Index(len(tree.nodes) - 1)
	}
	n := tree.pool
	tree.pool = tree.nodes[n].up
	tree.nodes[n] = leaf
	tree.freeNodes -= 1
	return n
}

// reclaim a node and keep it in the pool
func (tree *Tree[K]) freeNode(n Index) {
	var zero K
	p := &tree.nodes[n]
	p.up = tree.pool // use as free list pointer
	p.child = [2]Index{Absent, Absent}
	p.height = 0
	p.colour = Black
	p.key = zero
	tree.freeNodes += 1
	tree.pool = n
}

// Allocated - total slots in the arena, live and reclaimed
func (tree *Tree[K]) Allocated() int {
	return len(tree.nodes)
}

// Reclaimed - number of slots waiting in the pool for reuse
func (tree *Tree[K]) Reclaimed() int {
	return tree.freeNodes
}
