// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/treeset/linkage"
)

// Insert - insert a new key into the tree as a red leaf
// returns false if the key was already present
func (tree *Tree[K]) Insert(key K) bool {
	n, b := tree.core.Descend(key)
	if linkage.Absent != n {
		return false
	}
	n = tree.core.Link(key, b)
	tree.fixInsertion(n)

	// every rotation above happened on the path from the new leaf up
	tree.core.RefreshHeights(n)
	return true
}

// repair a red node that may have a red parent, the violation moves up
// two levels each time the uncle is red
func (tree *Tree[K]) fixInsertion(z linkage.Index) {
	core := tree.core
	for {
		father := core.Parent(z)
		if linkage.Absent == father {
			core.SetColour(z, linkage.Black)
			return
		}
		if linkage.Black == core.Colour(father) {
			return
		}

		// a red father is never the root, so the grandfather exists
		grandpa := core.Parent(father)
		side := core.SideOf(father)
		uncle := core.Child(grandpa, side.Opposite())

		if linkage.Red == core.Colour(uncle) {
			core.SetColour(father, linkage.Black)
			core.SetColour(uncle, linkage.Black)
			core.SetColour(grandpa, linkage.Red)
			z = grandpa
			continue
		}

		if core.SideOf(z) != side {
			// inner grandchild: z rises above both
			core.Rotate(father, side)
			core.Rotate(grandpa, side.Opposite())
			core.SetColour(z, linkage.Black)
		} else {
			// outer grandchild: father rises above grandpa
			core.Rotate(grandpa, side.Opposite())
			core.SetColour(father, linkage.Black)
		}
		core.SetColour(grandpa, linkage.Red)
		return
	}
}
