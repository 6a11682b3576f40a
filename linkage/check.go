// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"github.com/bitmark-inc/treeset/fault"
)

// CheckUp - check the parent links, stored heights and node count
// for consistency
func (tree *Tree[K]) CheckUp() error {
	total, err := tree.checkup(tree.root, Absent)
	if nil != err {
		return err
	}
	if total != tree.count {
		return fault.Invariantf("count: %d  reachable nodes: %d", tree.count, total)
	}
	if total+tree.freeNodes != len(tree.nodes) {
		return fault.Invariantf("arena: %d slots  live: %d  reclaimed: %d", len(tree.nodes), total, tree.freeNodes)
	}
	return nil
}

// internal: consistency checker, returns the number of nodes in the
// sub-tree
func (tree *Tree[K]) checkup(n Index, up Index) (int, error) {
	if Absent == n {
		return 0, nil
	}
	p := &tree.nodes[n]
	if p.up != up {
		return 0, fault.Invariantf("node: %d  key: %v  parent: %d  expected: %d", n, p.key, p.up, up)
	}
	nl, err := tree.checkup(p.child[Left], n)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkup(p.child[Right], n)
	if nil != err {
		return 0, err
	}
	lh := tree.Height(p.child[Left])
	rh := tree.Height(p.child[Right])
	expected := 1 + lh
	if rh > lh {
		expected = 1 + rh
	}
	if p.height != expected {
		return 0, fault.Invariantf("node: %d  key: %v  height: %d  expected: %d", n, p.key, p.height, expected)
	}
	return 1 + nl + nr, nil
}

// CheckOrder - check that an in-order walk gives strictly ascending
// keys, parent links must already be consistent
func (tree *Tree[K]) CheckOrder() error {
	previous := Absent
	for n := tree.First(); Absent != n; n = tree.Successor(n) {
		if Absent != previous && tree.compare(tree.nodes[previous].key, tree.nodes[n].key) >= 0 {
			return fault.Invariantf("order: key: %v  is followed by: %v", tree.nodes[previous].key, tree.nodes[n].key)
		}
		previous = n
	}
	return nil
}

// Check - all structural checks
func (tree *Tree[K]) Check() error {
	if err := tree.CheckUp(); nil != err {
		return err
	}
	return tree.CheckOrder()
}
