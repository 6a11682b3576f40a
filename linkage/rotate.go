// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"github.com/bitmark-inc/treeset/fault"
)

// Rotate - move x down towards direction, its child on the opposite
// side takes over x's slot
//
// Rotate(x, Left) is a left rotation and needs a right child.  The
// inner subtree of the rising child moves across to x.  Heights of x
// and then the risen child are recomputed, ancestors are left alone.
//
// returns the risen child
func (tree *Tree[K]) Rotate(x Index, direction Side) Index {
	rise := direction.Opposite()
	y := tree.nodes[x].child[rise]
	if Absent == y {
		fault.Panicf("linkage: rotate %s at %d: no %s child", direction, x, rise)
	}
	b := tree.BindingOf(x)
	inner := tree.nodes[y].child[direction]

	tree.nodes[x].child[rise] = inner
	if Absent != inner {
		tree.nodes[inner].up = x
	}

	tree.nodes[y].child[direction] = x
	tree.nodes[x].up = y

	*tree.slot(b) = y
	tree.nodes[y].up = b.Parent

	tree.UpdateHeight(x)
	tree.UpdateHeight(y)
	return y
}

// RotateLeft - x becomes the left child of its right child
func (tree *Tree[K]) RotateLeft(x Index) Index {
	return tree.Rotate(x, Left)
}

// RotateRight - x becomes the right child of its left child
func (tree *Tree[K]) RotateRight(x Index) Index {
	return tree.Rotate(x, Right)
}
