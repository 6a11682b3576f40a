// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"fmt"

	"github.com/bitmark-inc/treeset/fault"
)

// Binding - identifies the slot that holds a node: a child slot of
// Parent, or the root slot when Parent is Absent
type Binding struct {
	Parent Index
	Side   Side
}

// RootBinding - the tree's root slot
var RootBinding = Binding{Parent: Absent, Side: Left}

// IsRoot - true for the root slot
func (b Binding) IsRoot() bool {
	return Absent == b.Parent
}

// String - printable binding
func (b Binding) String() string {
	if b.IsRoot() {
		return "root"
	}
	return fmt.Sprintf("%s of %d", b.Side, b.Parent)
}

// BindingOf - the slot that currently holds a node
func (tree *Tree[K]) BindingOf(n Index) Binding {
	up := tree.nodes[n].up
	if Absent == up {
		return RootBinding
	}
	p := &tree.nodes[up]
	switch n {
	case p.child[Left]:
		return Binding{Parent: up, Side: Left}
	case p.child[Right]:
		return Binding{Parent: up, Side: Right}
	}
	fault.Panicf("linkage: node %d is not a child of its parent %d", n, up)
	return RootBinding
}

// SideOf - which child slot of its parent holds a node, only
// meaningful for nodes other than the root
func (tree *Tree[K]) SideOf(n Index) Side {
	return tree.BindingOf(n).Side
}

// Get - read the node held by a slot
func (tree *Tree[K]) Get(b Binding) Index {
	return *tree.slot(b)
}

// internal: address of a slot, invalid after any allocation
func (tree *Tree[K]) slot(b Binding) *Index {
	if b.IsRoot() {
		return &tree.root
	}
	return &tree.nodes[b.Parent].child[b.Side]
}

// internal: place a node into an empty slot
func (tree *Tree[K]) bind(n Index, b Binding) {
	s := tree.slot(b)
	if Absent != *s {
		fault.Panicf("linkage: slot %s already holds node %d", b, *s)
	}
	*s = n
	tree.nodes[n].up = b.Parent
}

// CreateRoot - create the first node of an empty tree
func (tree *Tree[K]) CreateRoot(key K) Index {
	if Absent != tree.root {
		fault.Panicf("linkage: root slot already holds node %d", tree.root)
	}
	n := tree.newNode(key)
	tree.bind(n, RootBinding)
	tree.count += 1
	return n
}

// Attach - create a new leaf as a child of parent, heights are
// recomputed from parent up to the root
func (tree *Tree[K]) Attach(parent Index, side Side, key K) Index {
	if Absent == parent {
		fault.Panicf("linkage: attach %s of absent node", side)
	}
	if c := tree.nodes[parent].child[side]; Absent != c {
		fault.Panicf("linkage: %s of %d already holds node %d", side, parent, c)
	}
	n := tree.newNode(key)
	tree.bind(n, Binding{Parent: parent, Side: side})
	tree.count += 1
	tree.RefreshHeights(parent)
	return n
}

// Link - create a new leaf in an empty slot, as returned by Descend
func (tree *Tree[K]) Link(key K, b Binding) Index {
	if b.IsRoot() {
		return tree.CreateRoot(key)
	}
	return tree.Attach(b.Parent, b.Side, key)
}

// Rebind - detach a node (with its subtree) from its slot and bind it
// into another empty slot, heights are recomputed along both parent
// chains
func (tree *Tree[K]) Rebind(n Index, destination Binding) {
	if s := tree.Get(destination); Absent != s {
		fault.Panicf("linkage: rebind %d: slot %s already holds node %d", n, destination, s)
	}
	for up := destination.Parent; Absent != up; up = tree.nodes[up].up {
		if up == n {
			fault.Panicf("linkage: rebind %d: slot %s is inside its own subtree", n, destination)
		}
	}
	from := tree.BindingOf(n)
	*tree.slot(from) = Absent
	tree.bind(n, destination)
	tree.RefreshHeights(from.Parent)
	tree.RefreshHeights(destination.Parent)
}

// Splice - unlink a node that has at most one child, the child takes
// over the node's slot and the node is reclaimed
//
// returns the slot the node occupied
func (tree *Tree[K]) Splice(n Index) Binding {
	l := tree.nodes[n].child[Left]
	r := tree.nodes[n].child[Right]
	if Absent != l && Absent != r {
		fault.Panicf("linkage: splice %d: node has two children", n)
	}
	child := l
	if Absent == child {
		child = r
	}

	// detach the node itself, then move the child into the vacated slot
	b := tree.BindingOf(n)
	*tree.slot(b) = Absent
	tree.nodes[n].up = Absent
	if Absent != child {
		tree.Rebind(child, b)
	} else {
		tree.RefreshHeights(b.Parent)
	}

	tree.freeNode(n)
	tree.count -= 1
	return b
}
