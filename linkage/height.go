// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

// Height - height of the subtree at a node, zero for absent nodes
func (tree *Tree[K]) Height(n Index) int {
	if Absent == n {
		return 0
	}
	return tree.nodes[n].height
}

// UpdateHeight - recompute the height of a node from its children
func (tree *Tree[K]) UpdateHeight(n Index) {
	p := &tree.nodes[n]
	lh := tree.Height(p.child[Left])
	rh := tree.Height(p.child[Right])
	if lh > rh {
		p.height = lh + 1
	} else {
		p.height = rh + 1
	}
}

// RefreshHeights - recompute heights from a node up to the root
func (tree *Tree[K]) RefreshHeights(n Index) {
	for ; Absent != n; n = tree.nodes[n].up {
		tree.UpdateHeight(n)
	}
}

// Balance - left subtree height minus right subtree height
func (tree *Tree[K]) Balance(n Index) int {
	p := &tree.nodes[n]
	return tree.Height(p.child[Left]) - tree.Height(p.child[Right])
}
