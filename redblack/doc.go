// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package redblack - a red-black balanced ordered set
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Rules kept after every insert and delete:
//   the root is black
//   a red node has no red child
//   every path from a node down to an absent leaf passes through
//   the same number of black nodes
//
// New keys enter as red leaves.  Colour belongs to the position in the
// tree, so deleting a node with two children swaps only the key with
// its in-order successor.
package redblack
