// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/treeset/linkage"
)

// Print - display an ASCII graphic representation of the tree
// printData adds the balance and height of each node
//
// returns the maximum depth of the tree
func (tree *Tree[K]) Print(w io.Writer, printData bool) int {
	core := tree.core
	label := core.KeyLabel
	if printData {
		label = func(n linkage.Index) string {
			up := interface{}(nil)
			if p := core.Parent(n); linkage.Absent != p {
				up = core.Key(p)
			}
			return fmt.Sprintf("%v ^%v %+2d/%d", core.Key(n), up, core.Balance(n), core.Height(n))
		}
	}
	return core.Print(w, label)
}

// PrintLevels - display the tree one level per line
func (tree *Tree[K]) PrintLevels(w io.Writer) {
	tree.core.PrintLevels(w, nil)
}
