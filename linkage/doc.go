// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package linkage - the node storage shared by the balanced trees
//
// Nodes are kept in a contiguous arena and addressed by stable
// indices, so that rotation and removal only ever rewrite integer
// links.  Every node is held by exactly one slot: its parent's left
// child, its parent's right child or the tree's root slot.  The slot
// holding a node is its Binding; all structural edits read and write
// bindings, so the same code path relocates the root and any inner
// node.
//
// The parent link of a node is a back reference used for upward
// traversal only.  Reclaimed slots are kept on a free list chained
// through the parent link and reused by later insertions.
//
// Note: a tree is not thread safe, so either access only in a single
//       go routine or use a mutex to restrict access.
//
// Structural misuse (rotating without the required child, binding
// into an occupied slot, splicing a node with two children) is a
// programming error and panics via fault.Panicf.
package linkage
