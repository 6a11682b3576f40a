// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/linkage"
)

// Delete - removes a specific key from the tree
// returns false if the key was not present
func (tree *Tree[K]) Delete(key K) bool {
	core := tree.core
	n := core.Find(key)
	if linkage.Absent == n {
		return false
	}

	// move the successor's key here and remove the successor, colours
	// stay with the positions
	if linkage.Absent != core.Left(n) && linkage.Absent != core.Right(n) {
		successor := core.Leftmost(core.Right(n))
		core.SwapKeys(n, successor)
		n = successor
	}

	// a red node with at most one child has no child at all, and
	// removing it leaves every black count unchanged
	colour := core.Colour(n)
	b := core.Splice(n)
	if linkage.Red == colour {
		return true
	}

	if b.IsRoot() {
		if root := core.Root(); linkage.Absent != root {
			core.SetColour(root, linkage.Black)
		}
		return true
	}

	tree.fixDeficiency(b.Parent, b.Side)

	// rotations only occur at or beside the path from the old parent up
	core.RefreshHeights(b.Parent)
	return true
}

// the paths through side of node have one black node fewer than those
// through the other side
func (tree *Tree[K]) fixDeficiency(node linkage.Index, side linkage.Side) {
	core := tree.core
	for {
		// a red child absorbs the missing black
		child := core.Child(node, side)
		if linkage.Red == core.Colour(child) {
			core.SetColour(child, linkage.Black)
			return
		}

		// the other side holds at least one black node, so a sibling
		// must be present
		far := side.Opposite()
		sibling := core.Child(node, far)
		if linkage.Absent == sibling {
			fault.Panicf("redblack: deficient %s of node: %d  key: %v  has no sibling", side, node, core.Key(node))
		}

		// red sibling: rotate it above node and retry with a black
		// sibling
		if linkage.Red == core.Colour(sibling) {
			core.SwapColours(node, sibling)
			core.Rotate(node, side)
			continue
		}

		if linkage.Black == core.Colour(core.Child(sibling, side)) && linkage.Black == core.Colour(core.Child(sibling, far)) {
			if linkage.Red == core.Colour(node) {
				core.SwapColours(node, sibling)
				return
			}

			// both sides now short by one, push the deficiency up
			core.SetColour(sibling, linkage.Red)
			up := core.Parent(node)
			if linkage.Absent == up {
				return
			}
			side = core.SideOf(node)
			node = up
			continue
		}

		// make the far child of the sibling red
		if linkage.Black == core.Colour(core.Child(sibling, far)) {
			sibling = core.Rotate(sibling, far)
			core.SwapColours(sibling, core.Child(sibling, far))
		}
		core.Rotate(node, side)
		core.SwapColours(node, sibling)
		core.SetColour(core.Child(sibling, far), linkage.Black)
		return
	}
}
