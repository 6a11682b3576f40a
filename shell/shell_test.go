// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/orderedset"
	"github.com/bitmark-inc/treeset/shell"
	"github.com/bitmark-inc/treeset/shell/mocks"
)

const (
	testingDirName = "testing"
	logCategory    = "shell"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// a mock set that can also draw itself
type printableSet struct {
	*mocks.MockIntSet
	*mocks.MockPrinter
}

func TestNewWithoutLogger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := shell.New(mocks.NewMockIntSet(ctl), nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}

func TestDispatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	set := mocks.NewMockIntSet(ctl)
	gomock.InOrder(
		set.EXPECT().Insert(5).Return(true).Times(1),
		set.EXPECT().Insert(5).Return(false).Times(1),
		set.EXPECT().Contains(5).Return(true).Times(1),
		set.EXPECT().Contains(-3).Return(false).Times(1),
		set.EXPECT().Delete(7).Return(false).Times(1),
		set.EXPECT().Count().Return(1).Times(1),
	)

	d, err := shell.New(set, logger.New(logCategory))
	assert.Nil(t, err, "new")

	input := "a 5\na 5\ne 5\n E -3 \nd 7\ns\nq\na 9\n"
	var out bytes.Buffer
	err = d.Run(context.Background(), strings.NewReader(input), &out)
	assert.Nil(t, err, "run")
	assert.Equal(t, "present: 5\nYES\nNO\nabsent: 7\n1\n", out.String(), "output")
}

func TestErrorsContinue(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	set := mocks.NewMockIntSet(ctl)
	set.EXPECT().Insert(2).Return(true).Times(1)

	d, _ := shell.New(set, logger.New(logCategory))

	input := "x 1\na\na two\np\n\na 2\n"
	var out bytes.Buffer
	err := d.Run(context.Background(), strings.NewReader(input), &out)
	assert.Nil(t, err, "run")

	expected := "error: " + fault.ErrInvalidCommand.Error() + "\n" +
		"error: " + fault.ErrMissingArgument.Error() + "\n" +
		"error: " + fault.ErrInvalidNumber.Error() + "\n" +
		"error: " + fault.ErrPrintNotSupported.Error() + "\n"
	assert.Equal(t, expected, out.String(), "output")
}

func TestExecute(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	set := mocks.NewMockIntSet(ctl)
	d, _ := shell.New(set, logger.New(logCategory))

	var out bytes.Buffer
	done, err := d.Execute("q", &out)
	assert.True(t, done, "quit")
	assert.Nil(t, err, "quit error")

	done, err = d.Execute("   ", &out)
	assert.False(t, done, "blank")
	assert.Nil(t, err, "blank error")

	done, err = d.Execute("h", &out)
	assert.False(t, done, "help")
	assert.Nil(t, err, "help error")
	assert.Contains(t, out.String(), "e N  YES if N is present", "help text")
}

func TestList(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	set := mocks.NewMockIntSet(ctl)
	set.EXPECT().Count().Return(3).AnyTimes()
	set.EXPECT().Enumerate().Return(slices.Values([]int{-1, 4, 10})).Times(1)

	d, _ := shell.New(set, logger.New(logCategory))

	var out bytes.Buffer
	_, err := d.Execute("l", &out)
	assert.Nil(t, err, "list")
	assert.Equal(t, "-1 4 10\n", out.String(), "list output")
}

func TestAutoPrint(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	set := printableSet{
		MockIntSet:  mocks.NewMockIntSet(ctl),
		MockPrinter: mocks.NewMockPrinter(ctl),
	}
	set.MockIntSet.EXPECT().Insert(1).Return(true).Times(1)
	set.MockIntSet.EXPECT().Contains(1).Return(true).Times(1)
	set.MockIntSet.EXPECT().Delete(1).Return(true).Times(1)

	// printed after each mutation and once on request
	set.MockPrinter.EXPECT().Show(gomock.Any()).Do(func(w io.Writer) {
		io.WriteString(w, "[tree]\n")
	}).Times(3)

	d, _ := shell.New(set, logger.New(logCategory))
	d.AutoPrint = true

	var out bytes.Buffer
	err := d.Run(context.Background(), strings.NewReader("a 1\ne 1\nd 1\np\n"), &out)
	assert.Nil(t, err, "run")
	assert.Equal(t, "[tree]\nYES\n[tree]\n[tree]\n", out.String(), "output")
}

func TestCancelled(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d, _ := shell.New(mocks.NewMockIntSet(ctl), logger.New(logCategory))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := d.Run(ctx, strings.NewReader("a 1\n"), &out)
	assert.Equal(t, context.Canceled, err, "cancelled")
}

// cancellation must end a Run that is waiting for input
func TestCancelWhileReading(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	processed := make(chan struct{})
	set := mocks.NewMockIntSet(ctl)
	set.EXPECT().Insert(1).Return(true).Times(1)
	set.EXPECT().Count().Return(1).Do(func() {
		close(processed)
	}).Times(1)

	d, _ := shell.New(set, logger.New(logCategory))

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	result := make(chan error, 1)
	go func() {
		result <- d.Run(ctx, pr, &out)
	}()

	go io.WriteString(pw, "a 1\ns\n")

	select {
	case <-processed:
	case <-time.After(5 * time.Second):
		t.Fatal("commands were not processed")
	}

	// no more input arrives, so Run is blocked reading the pipe
	cancel()

	select {
	case err := <-result:
		assert.Equal(t, context.Canceled, err, "cancelled")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.Equal(t, "1\n", out.String(), "output")
}

// drive a real set through the interpreter
func TestWithOrderedSet(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	for _, discipline := range []orderedset.Discipline{orderedset.AVL, orderedset.RedBlack} {
		set, err := orderedset.New(discipline, orderedset.Compare[int])
		assert.Nil(t, err, "%s: new", discipline)

		d, _ := shell.New(set, logger.New(logCategory))

		input := "a 30\na 10\na 20\ne 20\nd 10\ne 10\nl\ns\nq\n"
		var out bytes.Buffer
		err = d.Run(context.Background(), strings.NewReader(input), &out)
		assert.Nil(t, err, "%s: run", discipline)
		assert.Equal(t, "YES\nNO\n20 30\n2\n", out.String(), "%s: output", discipline)
	}
}
