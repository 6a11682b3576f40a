// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"iter"
)

// First - the node with the lowest key, Absent if empty
func (tree *Tree[K]) First() Index {
	return tree.Leftmost(tree.root)
}

// Last - the node with the highest key, Absent if empty
func (tree *Tree[K]) Last() Index {
	return tree.Rightmost(tree.root)
}

// Leftmost - lowest node in a sub-tree
func (tree *Tree[K]) Leftmost(n Index) Index {
	if Absent == n {
		return Absent
	}
	for l := tree.nodes[n].child[Left]; Absent != l; l = tree.nodes[n].child[Left] {
		n = l
	}
	return n
}

// Rightmost - highest node in a sub-tree
func (tree *Tree[K]) Rightmost(n Index) Index {
	if Absent == n {
		return Absent
	}
	for r := tree.nodes[n].child[Right]; Absent != r; r = tree.nodes[n].child[Right] {
		n = r
	}
	return n
}

// Successor - given a node, return the node with the next highest key
// or Absent if no more nodes
func (tree *Tree[K]) Successor(n Index) Index {
	if r := tree.nodes[n].child[Right]; Absent != r {
		return tree.Leftmost(r)
	}
	for {
		up := tree.nodes[n].up
		if Absent == up || tree.nodes[up].child[Left] == n {
			return up
		}
		n = up
	}
}

// Predecessor - given a node, return the node with the next lowest key
// or Absent if no more nodes
func (tree *Tree[K]) Predecessor(n Index) Index {
	if l := tree.nodes[n].child[Left]; Absent != l {
		return tree.Rightmost(l)
	}
	for {
		up := tree.nodes[n].up
		if Absent == up || tree.nodes[up].child[Right] == n {
			return up
		}
		n = up
	}
}

// Enumerate - keys in ascending order
//
// the walk follows parent links and does not modify the tree; the
// tree must not be modified until the walk finishes
func (tree *Tree[K]) Enumerate() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := tree.First(); Absent != n; n = tree.Successor(n) {
			if !yield(tree.nodes[n].key) {
				return
			}
		}
	}
}

// LevelOrder - breadth first walk yielding the depth of each node,
// root first and left before right within a level
func (tree *Tree[K]) LevelOrder() iter.Seq2[int, Index] {
	type entry struct {
		n     Index
		depth int
	}
	return func(yield func(int, Index) bool) {
		if Absent == tree.root {
			return
		}
		queue := []entry{{n: tree.root, depth: 0}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e.depth, e.n) {
				return
			}
			for _, c := range tree.nodes[e.n].child {
				if Absent != c {
					queue = append(queue, entry{n: c, depth: e.depth + 1})
				}
			}
		}
	}
}
