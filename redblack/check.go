// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/linkage"
)

// Check - verify parent links, heights, key order and the red-black
// colour rules
func (tree *Tree[K]) Check() error {
	core := tree.core
	if err := core.Check(); nil != err {
		return err
	}
	root := core.Root()
	if linkage.Absent == root {
		return nil
	}
	if linkage.Red == core.Colour(root) {
		return fault.Invariantf("redblack: root: %v is red", core.Key(root))
	}
	_, err := tree.check(root)
	return err
}

// internal: returns the number of black nodes on every path from n
// down to an absent leaf, counting n itself
func (tree *Tree[K]) check(n linkage.Index) (int, error) {
	core := tree.core
	if linkage.Absent == n {
		return 0, nil
	}
	left := core.Left(n)
	right := core.Right(n)
	if linkage.Red == core.Colour(n) {
		if linkage.Red == core.Colour(left) || linkage.Red == core.Colour(right) {
			return 0, fault.Invariantf("redblack: red node: %v has a red child", core.Key(n))
		}
	}

	lb, err := tree.check(left)
	if nil != err {
		return 0, err
	}
	rb, err := tree.check(right)
	if nil != err {
		return 0, err
	}
	if lb != rb {
		return 0, fault.Invariantf("redblack: node: %v  left black height: %d  right black height: %d", core.Key(n), lb, rb)
	}
	if linkage.Black == core.Colour(n) {
		return lb + 1, nil
	}
	return lb, nil
}

// BlackHeight - number of black nodes on any path from the root down
// to an absent leaf, the tree must be valid
func (tree *Tree[K]) BlackHeight() int {
	core := tree.core
	count := 0
	for n := core.Root(); linkage.Absent != n; n = core.Left(n) {
		if linkage.Black == core.Colour(n) {
			count += 1
		}
	}
	return count
}
