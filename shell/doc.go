// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - line oriented command interpreter for an integer set
//
// each line holds a single letter command and an optional number:
//
//	a n   insert n
//	e n   print YES if n is present, otherwise NO
//	d n   delete n
//	s     print the number of keys
//	l     list the keys in ascending order
//	p     draw the tree
//	h     help
//	q     quit
package shell
