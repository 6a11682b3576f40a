// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/linkage"
)

// restore the balance of a single node whose child heights may differ
// by two; child heights must be up to date
//
// returns the node now at the top of the sub-tree
func (tree *Tree[K]) rebalance(p linkage.Index) linkage.Index {
	core := tree.core
	switch balance := core.Balance(p); balance {
	case -1, 0, +1:
		return p

	case +2: // left branch is too tall
		p1 := core.Left(p)
		if core.Height(core.Right(p1)) > core.Height(core.Left(p1)) {
			// double LR rotation
			core.RotateLeft(p1)
		}
		// single LL rotation
		return core.RotateRight(p)

	case -2: // right branch is too tall
		p1 := core.Right(p)
		if core.Height(core.Left(p1)) > core.Height(core.Right(p1)) {
			// double RL rotation
			core.RotateRight(p1)
		}
		// single RR rotation
		return core.RotateLeft(p)

	default:
		fault.Panicf("avl: node: %d  key: %v  balance: %d", p, core.Key(p), balance)
		return p
	}
}
