// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treeset/linkage"
)

// Insert - insert a new key into the tree
// returns false if the key was already present
func (tree *Tree[K]) Insert(key K) bool {
	core := tree.core
	n, b := core.Descend(key)
	if linkage.Absent != n {
		return false
	}

	// heights are refreshed up to the root by the attach
	core.Link(key, b)

	// only the nearest unbalanced ancestor needs a rotation, which
	// restores the height the sub-tree had before the insert
	for p := b.Parent; linkage.Absent != p; p = core.Parent(p) {
		if balance := core.Balance(p); balance >= -1 && balance <= 1 {
			continue
		}
		top := tree.rebalance(p)
		core.RefreshHeights(core.Parent(top))
		break
	}
	return true
}
