// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treeset/fault"
)

// Check - verify parent links, heights, key order and the AVL
// balance of every node
func (tree *Tree[K]) Check() error {
	core := tree.core
	if err := core.Check(); nil != err {
		return err
	}
	for _, n := range core.LevelOrder() {
		if balance := core.Balance(n); balance < -1 || balance > 1 {
			return fault.Invariantf("avl: key: %v  balance: %d", core.Key(n), balance)
		}
	}
	return nil
}
