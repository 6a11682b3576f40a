// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
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

	// two children: the successor has no left child, so take its key
	// and remove the successor instead
	if linkage.Absent != core.Left(n) && linkage.Absent != core.Right(n) {
		successor := core.Leftmost(core.Right(n))
		core.SwapKeys(n, successor)
		n = successor
	}

	b := core.Splice(n)

	// a deletion may shorten sub-trees at several levels, so every
	// ancestor is checked
	for p := b.Parent; linkage.Absent != p; {
		core.UpdateHeight(p)
		top := tree.rebalance(p)
		p = core.Parent(top)
	}
	return true
}
