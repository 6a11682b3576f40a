// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/orderedset"
	"github.com/bitmark-inc/treeset/shell"
	"github.com/bitmark-inc/treeset/version"
)

const (
	defaultDiscipline = "avl"
	defaultLogFile    = "treeset.log"
	defaultLogCount   = 10          //  number of log files retained
	defaultLogSize    = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "discipline", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--print] [--discipline=avl|rb] [--log-dir=DIR] [command-file...]", program)
	}

	name := defaultDiscipline
	if n := len(options["discipline"]); n > 0 {
		name = options["discipline"][n-1]
	}
	discipline, err := orderedset.ParseDiscipline(name)
	if nil != err {
		exitwithstatus.Message("%s: discipline: %q  error: %s", program, name, err)
	}

	logging, err := logConfiguration(options)
	if nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Infof("starting… version: %s  discipline: %s", version.Version, discipline)

	set, err := orderedset.New(discipline, orderedset.Compare[int])
	if nil != err {
		fault.Critical("create set error: " + err.Error())
		exitwithstatus.Message("%s: create set error: %s", program, err)
	}

	dispatcher, err := shell.New(set, logger.New("shell"))
	if nil != err {
		log.Criticalf("create shell error: %s", err)
		exitwithstatus.Message("%s: create shell error: %s", program, err)
	}
	dispatcher.AutoPrint = len(options["print"]) > 0

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// command files are processed in order before standard input
	for _, fileName := range arguments {
		log.Infof("command file: %q", fileName)
		if err := runFile(ctx, dispatcher, fileName); nil != err {
			log.Errorf("command file: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: command file: %q  error: %s", program, fileName, err)
		}
	}

	if 0 == len(arguments) {
		fmt.Printf("%s %s: %s set, enter h for help\n", program, version.Version, discipline)
		err := dispatcher.Run(ctx, os.Stdin, os.Stdout)
		switch {
		case nil == err:
		case errors.Is(err, context.Canceled):
			fmt.Println()
			log.Info("interrupted")
		default:
			log.Errorf("input error: %s", err)
		}
	}
}

func runFile(ctx context.Context, dispatcher *shell.Dispatcher, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()
	return dispatcher.Run(ctx, f, os.Stdout)
}

// logging goes to the --log-dir directory, or to a treeset directory
// in the system temporary directory
func logConfiguration(options map[string][]string) (logger.Configuration, error) {
	directory := filepath.Join(os.TempDir(), "treeset")
	if n := len(options["log-dir"]); n > 0 {
		directory = options["log-dir"][n-1]
	}

	level := "info"
	if len(options["verbose"]) > 0 {
		level = "debug"
	}

	logging := logger.Configuration{
		Directory: directory,
		File:      defaultLogFile,
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	return logging, os.MkdirAll(directory, 0o700)
}
