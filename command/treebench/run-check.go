// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/orderedset"
	"github.com/bitmark-inc/treeset/util"
)

const (
	defaultCheckOperations = 100000
	defaultCheckRange      = 1000
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list, err := disciplines(c.StringSlice("discipline"), m.profile.Disciplines)
	if nil != err {
		return err
	}

	operations := c.Int("operations")
	keyRange := c.Int("range")
	if operations <= 0 || keyRange <= 0 {
		return fault.ErrInvalidNumber
	}

	seed := override(c.Uint64("seed"), m.profile.Seed)
	if 0 == seed {
		seed = uint64(time.Now().UnixNano())
		util.LogWarn(m.log, util.CoYellow, fmt.Sprintf("check: time based seed: %d", seed))
	}

	for _, d := range list {
		set, err := orderedset.New(d, orderedset.Compare[int])
		if nil != err {
			return err
		}
		random := rand.New(rand.NewPCG(seed, uint64(d)))

		if err := stress(set, operations, keyRange, random); nil != err {
			util.LogError(m.log, util.CoRed, fmt.Sprintf("check: %s  seed: %d  %s", d, seed, err))
			if fault.IsErrInvariant(err) {
				fault.Criticalf("check: %s  seed: %d  broken structure: %s", d, seed, err)
			}
			return err
		}
		util.LogInfo(m.log, util.CoGreen, fmt.Sprintf("check: %s  operations: %d  passed", d, operations))
		fmt.Fprintf(m.w, "%s: %d operations passed (seed: %d)\n", d, operations, seed)
	}
	return nil
}

// apply random inserts and deletes, verifying the structure, the count
// and the membership against a map after every operation
func stress(set orderedset.Set[int], operations int, keyRange int, random *rand.Rand) error {
	checker, ok := set.(orderedset.Checker)
	if !ok {
		return fault.ErrInvalidCommand
	}

	model := make(map[int]struct{})
	for i := 0; i < operations; i += 1 {
		key := random.IntN(keyRange)
		_, present := model[key]

		op := "insert"
		var changed bool
		if 0 == random.IntN(2) {
			changed = set.Insert(key)
			model[key] = struct{}{}
		} else {
			op = "delete"
			changed = set.Delete(key)
			delete(model, key)
		}

		if changed != (present == ("delete" == op)) {
			return fault.Invariantf("step: %d  %s: %d  changed: %t  present before: %t", i, op, key, changed, present)
		}
		if err := checker.Check(); nil != err {
			return fault.Invariantf("step: %d  %s: %d  error: %s", i, op, key, err)
		}
		if set.Count() != len(model) {
			return fault.Invariantf("step: %d  %s: %d  count: %d  expected: %d", i, op, key, set.Count(), len(model))
		}
		if !set.Contains(key) != ("delete" == op) {
			return fault.Invariantf("step: %d  %s: %d  membership is wrong", i, op, key)
		}
	}
	return nil
}
