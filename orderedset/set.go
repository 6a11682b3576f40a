// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset

import (
	"cmp"
	"io"
	"iter"
	"strings"

	"github.com/bitmark-inc/treeset/avl"
	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/redblack"
)

// Set - an ordered set of keys
//
// Insert and Delete report whether the set changed: inserting a
// present key or deleting an absent one does nothing.
type Set[K any] interface {
	Insert(key K) bool
	Contains(key K) bool
	Delete(key K) bool
	Count() int
	Enumerate() iter.Seq[K]
}

// Checker - sets that can verify their own structure
type Checker interface {
	Check() error
}

// Printer - sets that can draw themselves for diagnostics
type Printer interface {
	Show(w io.Writer)
}

// Discipline - the balancing rule of a set
type Discipline int

// the supported disciplines
const (
	AVL      Discipline = iota
	RedBlack Discipline = iota
)

// String - canonical short name
func (d Discipline) String() string {
	switch d {
	case AVL:
		return "avl"
	case RedBlack:
		return "rb"
	default:
		return "unknown"
	}
}

// ParseDiscipline - convert a name to a discipline
func ParseDiscipline(name string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "avl":
		return AVL, nil
	case "rb", "redblack", "red-black":
		return RedBlack, nil
	default:
		return AVL, fault.ErrUnknownDiscipline
	}
}

// Compare - natural ordering for ordered key types
func Compare[K cmp.Ordered](a K, b K) int {
	return cmp.Compare(a, b)
}

// Reverse - invert an ordering
func Reverse[K any](compare func(a, b K) int) func(a, b K) int {
	return func(a K, b K) int {
		return compare(b, a)
	}
}

// New - create an empty set using the given discipline
func New[K any](discipline Discipline, compare func(a, b K) int) (Set[K], error) {
	switch discipline {
	case AVL:
		return &avlSet[K]{avl.New(compare)}, nil
	case RedBlack:
		return &redBlackSet[K]{redblack.New(compare)}, nil
	default:
		return nil, fault.ErrUnknownDiscipline
	}
}

// adapters adding the diagnostic views
type avlSet[K any] struct {
	*avl.Tree[K]
}

func (s *avlSet[K]) Show(w io.Writer) {
	s.PrintLevels(w)
}

type redBlackSet[K any] struct {
	*redblack.Tree[K]
}

func (s *redBlackSet[K]) Show(w io.Writer) {
	s.PrintLevels(w, true)
}

// compile time checks
var (
	_ Set[int] = (*avl.Tree[int])(nil)
	_ Set[int] = (*redblack.Tree[int])(nil)
	_ Checker  = (*avlSet[int])(nil)
	_ Checker  = (*redBlackSet[int])(nil)
	_ Printer  = (*avlSet[int])(nil)
	_ Printer  = (*redBlackSet[int])(nil)
)
