// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"

	"github.com/bitmark-inc/treeset/linkage"
)

// Tree - type to hold the nodes of a tree
type Tree[K any] struct {
	core *linkage.Tree[K]
}

// New - create an initially empty tree ordered by compare
func New[K any](compare func(a, b K) int) *Tree[K] {
	return &Tree[K]{
		core: linkage.New(compare),
	}
}

// NewOrdered - create an initially empty tree using the natural
// ordering of K
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return New(cmp.Compare[K])
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return tree.core.IsEmpty()
}

// Count - number of keys currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.core.Count()
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K]) Height() int {
	return tree.core.Height(tree.core.Root())
}

// Contains - true if key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return tree.core.Contains(key)
}

// Enumerate - keys in ascending order, the tree must not be modified
// during the walk
func (tree *Tree[K]) Enumerate() iter.Seq[K] {
	return tree.core.Enumerate()
}

// Clear - remove all keys
func (tree *Tree[K]) Clear() {
	tree.core.Reset()
}
