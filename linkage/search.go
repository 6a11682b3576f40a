// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

// Descend - walk down from the root by key order
//
// returns the node holding key and its binding, or Absent and the
// empty slot where key would be attached
func (tree *Tree[K]) Descend(key K) (Index, Binding) {
	b := RootBinding
	for n := tree.root; Absent != n; n = tree.nodes[n].child[b.Side] {
		c := tree.compare(key, tree.nodes[n].key)
		switch {
		case c < 0:
			b = Binding{Parent: n, Side: Left}
		case c > 0:
			b = Binding{Parent: n, Side: Right}
		default:
			return n, b
		}
	}
	return Absent, b
}

// Find - the node holding key, or Absent
func (tree *Tree[K]) Find(key K) Index {
	n, _ := tree.Descend(key)
	return n
}

// Contains - true if key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return Absent != tree.Find(key)
}
