// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treeset/configuration"
	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/version"
)

type metadata struct {
	profile *configuration.Profile
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {

	app := cli.NewApp()
	app.Name = "treebench"
	app.Usage = "measure and check the balanced ordered sets"
	app.Version = version.Version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua profile `FILE` [default: built in settings]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "profile insert, contains and delete and save the timings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "discipline, d",
					Usage: " balancing `NAME` [avl|rb] can be repeated [default: from profile]",
				},
				cli.IntFlag{
					Name:  "maximum-size, m",
					Value: 0,
					Usage: " largest set size `COUNT` [default: from profile]",
				},
				cli.IntFlag{
					Name:  "cycles, n",
					Value: 0,
					Usage: " operations per sample `COUNT` [default: from profile]",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [default: from profile, 0 = time based]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " statistics `DIRECTORY` [default: from profile]",
				},
			},
			Action: runProfile,
		},
		{
			Name:      "check",
			Usage:     "random insert and delete with a structure check after every step",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "discipline, d",
					Usage: " balancing `NAME` [avl|rb] can be repeated [default: from profile]",
				},
				cli.IntFlag{
					Name:  "operations, n",
					Value: defaultCheckOperations,
					Usage: " number of operations `COUNT`",
				},
				cli.IntFlag{
					Name:  "range, r",
					Value: defaultCheckRange,
					Usage: " keys are taken from 0 to `LIMIT`-1",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [default: from profile, 0 = time based]",
				},
			},
			Action: runCheck,
		},
	}

	app.Before = func(c *cli.Context) error {

		// help needs no profile
		if 0 == c.NArg() || "help" == c.Args().First() || "h" == c.Args().First() {
			return nil
		}

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		profile, err := loadProfile(c.GlobalString("config-file"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "profile: %+v\n", profile)
		}

		if err := profile.MakeDirectories(); nil != err {
			return err
		}

		if err := logger.Initialise(profile.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("starting… version: %s", version.Version)

		c.App.Metadata["config"] = &metadata{
			profile: profile,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("shutting down…")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// use the profile file if given, otherwise defaults relative to the
// current directory
func loadProfile(fileName string) (*configuration.Profile, error) {
	if "" != fileName {
		return configuration.GetProfile(os.ExpandEnv(fileName))
	}
	profile := configuration.Default()
	if err := profile.Validate(); nil != err {
		return nil, err
	}
	return profile, nil
}
