// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/orderedset"
)

// select the flag values if any were given, otherwise the profile list
func disciplines(names []string, profileNames []string) ([]orderedset.Discipline, error) {
	if 0 == len(names) {
		names = profileNames
	}
	result := make([]orderedset.Discipline, 0, len(names))
	for _, name := range names {
		d, err := orderedset.ParseDiscipline(name)
		if nil != err {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

// a flag value that is zero leaves the profile value unchanged
func override[T comparable](flag T, profile T) T {
	var zero T
	if zero == flag {
		return profile
	}
	return flag
}

func intSetFactory(d orderedset.Discipline) func() orderedset.Set[int] {
	return func() orderedset.Set[int] {
		s, err := orderedset.New(d, orderedset.Compare[int])
		fault.PanicIfError("create set", err)
		return s
	}
}
