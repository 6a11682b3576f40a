// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linkage

import (
	"fmt"
	"io"
	"strings"
)

// Label - text shown for a node when printing
type Label func(n Index) string

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// KeyLabel - default label showing only the key
func (tree *Tree[K]) KeyLabel(n Index) string {
	return fmt.Sprintf("%v", tree.nodes[n].key)
}

// Print - display an ASCII graphic representation of the tree, the
// root is on the left and right sub-trees are above their parent
//
// returns the maximum depth of the tree
func (tree *Tree[K]) Print(w io.Writer, label Label) int {
	if nil == label {
		label = tree.KeyLabel
	}
	return tree.printTree(w, tree.root, "", rootBranch, label)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[K]) printTree(w io.Writer, n Index, prefix string, br branch, label Label) int {
	if Absent == n {
		return 0
	}
	rd := 0
	ld := 0
	if r := tree.nodes[n].child[Right]; Absent != r {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, r, prefix+t, rightBranch, label)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s\n", label(n))
	if l := tree.nodes[n].child[Left]; Absent != l {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, l, prefix+t, leftBranch, label)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// largest tree printed as a grid, each level doubles the line width
const maximumGridHeight = 7

// PrintLevels - display the tree level by level with each node
// centred over its children and blanks for absent nodes; trees taller
// than the grid limit are shown with Print instead
func (tree *Tree[K]) PrintLevels(w io.Writer, label Label) {
	if Absent == tree.root {
		return
	}
	if nil == label {
		label = tree.KeyLabel
	}
	height := tree.nodes[tree.root].height
	if height > maximumGridHeight {
		tree.Print(w, label)
		return
	}

	width := (1 << uint(height)) - 1
	queue := []Index{tree.root}
	positions := 1
	for level := 0; level < height; level += 1 {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", width/2))
		for i := 0; i < positions; i += 1 {
			if i > 0 {
				line.WriteString(strings.Repeat(" ", width))
			}
			n := queue[0]
			queue = queue[1:]
			if Absent == n {
				line.WriteByte(' ')
				queue = append(queue, Absent, Absent)
			} else {
				line.WriteString(label(n))
				queue = append(queue, tree.nodes[n].child[Left], tree.nodes[n].child[Right])
			}
		}
		line.WriteString(strings.Repeat(" ", width/2))
		fmt.Fprintln(w, line.String())

		positions *= 2
		width /= 2
	}
}
