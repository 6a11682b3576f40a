// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeset/fault"
)

//go:generate mockgen -source=shell.go -destination=mocks/mock_set.go -package=mocks

// IntSet - the operations the interpreter needs from a set
type IntSet interface {
	Insert(key int) bool
	Contains(key int) bool
	Delete(key int) bool
	Count() int
	Enumerate() iter.Seq[int]
}

// Printer - a set that can draw itself
type Printer interface {
	Show(w io.Writer)
}

// Dispatcher - reads commands and applies them to a set
type Dispatcher struct {
	log       *logger.L
	set       IntSet
	AutoPrint bool
}

type handler func(d *Dispatcher, w io.Writer, key int) (bool, error)

type command struct {
	hasKey  bool
	mutates bool
	run     handler
}

var commands = map[string]command{
	"a": {hasKey: true, mutates: true, run: insertKey},
	"e": {hasKey: true, run: containsKey},
	"d": {hasKey: true, mutates: true, run: deleteKey},
	"s": {run: showCount},
	"l": {run: listKeys},
	"p": {run: printTree},
	"h": {run: showHelp},
	"q": {run: quit},
}

const helpText = `  a N  insert N
  e N  YES if N is present
  d N  delete N
  s    number of keys
  l    list keys in order
  p    print the tree
  h    this help
  q    quit
`

// New - create a dispatcher for a set
func New(set IntSet, log *logger.L) (*Dispatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Dispatcher{
		log: log,
		set: set,
	}, nil
}

// Run - process lines until quit, end of input or cancellation
//
// command errors are reported on the output and processing continues,
// only read errors and cancellation are returned
func (d *Dispatcher) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	// a blocked read cannot be interrupted, so reading runs apart from dispatch
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); nil != err {
			d.log.Info("cancelled")
			return err
		}

		select {
		case <-ctx.Done():
			d.log.Info("cancelled")
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			done, err := d.Execute(line, w)
			if nil != err {
				d.log.Debugf("line: %q  error: %s", line, err)
				fmt.Fprintf(w, "error: %s\n", err)
				continue
			}
			if done {
				d.log.Info("quit")
				return nil
			}
		}
	}
}

// Execute - run a single command line
//
// returns true when the line asks to quit
func (d *Dispatcher) Execute(line string, w io.Writer) (bool, error) {
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return false, nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := commands[name]
	if !ok {
		return false, fault.ErrInvalidCommand
	}

	key := 0
	if cmd.hasKey {
		if len(fields) < 2 {
			return false, fault.ErrMissingArgument
		}
		n, err := strconv.Atoi(fields[1])
		if nil != err {
			return false, fault.ErrInvalidNumber
		}
		key = n
	}

	d.log.Debugf("command: %s  key: %d", name, key)

	done, err := cmd.run(d, w, key)
	if nil != err {
		return false, err
	}
	if cmd.mutates && d.AutoPrint {
		if p, ok := d.set.(Printer); ok {
			p.Show(w)
		}
	}
	return done, nil
}

func insertKey(d *Dispatcher, w io.Writer, key int) (bool, error) {
	if !d.set.Insert(key) {
		fmt.Fprintf(w, "present: %d\n", key)
	}
	return false, nil
}

func containsKey(d *Dispatcher, w io.Writer, key int) (bool, error) {
	if d.set.Contains(key) {
		fmt.Fprintln(w, "YES")
	} else {
		fmt.Fprintln(w, "NO")
	}
	return false, nil
}

func deleteKey(d *Dispatcher, w io.Writer, key int) (bool, error) {
	if !d.set.Delete(key) {
		fmt.Fprintf(w, "absent: %d\n", key)
	}
	return false, nil
}

func showCount(d *Dispatcher, w io.Writer, _ int) (bool, error) {
	fmt.Fprintf(w, "%d\n", d.set.Count())
	return false, nil
}

func listKeys(d *Dispatcher, w io.Writer, _ int) (bool, error) {
	s := make([]string, 0, d.set.Count())
	for k := range d.set.Enumerate() {
		s = append(s, strconv.Itoa(k))
	}
	fmt.Fprintln(w, strings.Join(s, " "))
	return false, nil
}

func printTree(d *Dispatcher, w io.Writer, _ int) (bool, error) {
	p, ok := d.set.(Printer)
	if !ok {
		return false, fault.ErrPrintNotSupported
	}
	p.Show(w)
	return false, nil
}

func showHelp(_ *Dispatcher, w io.Writer, _ int) (bool, error) {
	io.WriteString(w, helpText)
	return false, nil
}

func quit(_ *Dispatcher, _ io.Writer, _ int) (bool, error) {
	return true, nil
}
