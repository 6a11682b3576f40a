// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/profiler"
	"github.com/bitmark-inc/treeset/util"
)

func runProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	profile := m.profile

	list, err := disciplines(c.StringSlice("discipline"), profile.Disciplines)
	if nil != err {
		return err
	}

	maximumSize := override(c.Int("maximum-size"), profile.MaximumSize)
	if maximumSize <= 0 {
		return fault.ErrInvalidMaximumSize
	}
	cycles := override(c.Int("cycles"), profile.Cycles)
	seed := override(c.Uint64("seed"), profile.Seed)
	if 0 == seed {
		util.LogWarn(m.log, util.CoYellow, "profile: time based seed, workload is not reproducible")
	}

	output := profile.OutputDirectory
	if dir := c.String("output"); "" != dir {
		output, err = filepath.Abs(dir)
		if nil != err {
			return err
		}
		if err := os.MkdirAll(output, 0o700); nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "maximum size: %d  cycles: %d  seed: %d  output: %q\n", maximumSize, cycles, seed, output)
	}

	for _, d := range list {
		p, err := profiler.New(intSetFactory(d), cycles, seed, logger.New("profiler"))
		if nil != err {
			return err
		}

		util.LogInfo(m.log, util.CoCyan, fmt.Sprintf("profile: %s", d))
		if err := p.Measure(maximumSize); nil != err {
			return err
		}

		fileName := filepath.Join(output, d.String()+".tsv")
		if err := p.SaveTSV(fileName); nil != err {
			return err
		}
		util.LogInfo(m.log, util.CoGreen, fmt.Sprintf("profile: %s  saved: %s", d, fileName))
		fmt.Fprintf(m.w, "%s: %s\n", d, fileName)
	}
	return nil
}
