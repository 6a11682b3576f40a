// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set with parent links to
// allow iteration through the keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores the height of its sub-tree; the heights of the
// two children of any node differ by at most one.  Insertion repairs
// the nearest unbalanced ancestor with a single or double rotation
// and stops, deletion checks every ancestor up to the root.
//
// Deleting a node with two children moves the key of its in-order
// successor into it and removes the successor instead.
package avl
