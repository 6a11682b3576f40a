// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/treeset/linkage"
	"github.com/bitmark-inc/treeset/util"
)

// red keys are either shown in ANSI red or marked with a '*'
func (tree *Tree[K]) label(ansi bool) linkage.Label {
	core := tree.core
	return func(n linkage.Index) string {
		if linkage.Black == core.Colour(n) {
			return fmt.Sprintf("%v", core.Key(n))
		}
		if ansi {
			return util.Colour(util.CoRed, fmt.Sprint(core.Key(n)))
		}
		return fmt.Sprintf("%v*", core.Key(n))
	}
}

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[K]) Print(w io.Writer, ansi bool) int {
	return tree.core.Print(w, tree.label(ansi))
}

// PrintLevels - display the tree one level per line
func (tree *Tree[K]) PrintLevels(w io.Writer, ansi bool) {
	tree.core.PrintLevels(w, tree.label(ansi))
}
