// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
)

func TestLogConfigurationDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	options := map[string][]string{
		"log-dir": {"ignored", dir},
	}

	logging, err := logConfiguration(options)
	assert.Nil(t, err, "log configuration")
	assert.Equal(t, dir, logging.Directory, "last --log-dir wins")
	assert.Equal(t, defaultLogFile, logging.File, "log file")
	assert.Equal(t, "info", logging.Levels[logger.DefaultTag], "default level")

	info, err := os.Stat(dir)
	assert.Nil(t, err, "stat log directory")
	assert.True(t, info.IsDir(), "log directory was not created")
}

func TestLogConfigurationDefault(t *testing.T) {
	options := map[string][]string{
		"verbose": {""},
	}

	logging, err := logConfiguration(options)
	assert.Nil(t, err, "log configuration")
	assert.Equal(t, filepath.Join(os.TempDir(), "treeset"), logging.Directory, "temporary directory")
	assert.Equal(t, "debug", logging.Levels[logger.DefaultTag], "verbose level")
}

func TestLogConfigurationBadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	err := os.WriteFile(file, []byte("x"), 0o600)
	assert.Nil(t, err, "write file")

	_, err = logConfiguration(map[string][]string{"log-dir": {filepath.Join(file, "logs")}})
	assert.NotNil(t, err, "directory below a file")
}
