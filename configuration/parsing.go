// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/orderedset"
	"github.com/bitmark-inc/treeset/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the profile file)
const (
	defaultDataDirectory   = "." // same directory as the profile file
	defaultOutputDirectory = "out"

	defaultMaximumSize = 100000
	defaultCycles      = 10000

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"profiler":        "info",
		logger.DefaultTag: "critical",
	}
	defaultDisciplines = []string{"avl", "rb"}
)

// Profile - benchmark settings
type Profile struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	OutputDirectory string               `gluamapper:"output_directory" json:"output_directory"`
	MaximumSize     int                  `gluamapper:"maximum_size" json:"maximum_size"`
	Cycles          int                  `gluamapper:"cycles" json:"cycles"`
	Seed            uint64               `gluamapper:"seed" json:"seed"`
	Disciplines     []string             `gluamapper:"disciplines" json:"disciplines"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the profile used when no file is given
func Default() *Profile {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Profile{
		DataDirectory:   defaultDataDirectory,
		OutputDirectory: defaultOutputDirectory,
		MaximumSize:     defaultMaximumSize,
		Cycles:          defaultCycles,
		Disciplines:     append([]string(nil), defaultDisciplines...),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// GetProfile - read, decode and verify the profile
func GetProfile(profileFileName string) (*Profile, error) {

	profileFileName, err := filepath.Abs(filepath.Clean(profileFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(profileFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	baseDirectory, _ := filepath.Split(profileFileName)

	options := Default()

	if err := ParseConfigurationFile(profileFileName, options); nil != err {
		return nil, err
	}

	// data directory is relative to the profile file
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	default:
		options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}
	return options, nil
}

// Validate - check values and expand all relative paths against the data directory
func (profile *Profile) Validate() error {

	if profile.MaximumSize <= 0 {
		return fault.ErrInvalidMaximumSize
	}
	if profile.Cycles <= 0 {
		return fault.ErrInvalidCycles
	}
	if 0 == len(profile.Disciplines) {
		profile.Disciplines = append([]string(nil), defaultDisciplines...)
	}
	for _, name := range profile.Disciplines {
		if _, err := orderedset.ParseDiscipline(name); nil != err {
			return fmt.Errorf("discipline: %q  error: %w", name, err)
		}
	}

	if "" == profile.DataDirectory {
		profile.DataDirectory = defaultDataDirectory
	}
	dataDirectory, err := filepath.Abs(filepath.Clean(profile.DataDirectory))
	if nil != err {
		return err
	}
	profile.DataDirectory = dataDirectory

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&profile.OutputDirectory,
		&profile.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(profile.DataDirectory, *f)
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(profile.Logging.File) {
	case ".":
	default:
		return fmt.Errorf("Files: %q is not plain name", profile.Logging.File)
	}
	if "" == profile.Logging.File {
		profile.Logging.File = defaultLogFile
	}
	if 0 == len(profile.Logging.Levels) {
		profile.Logging.Levels = map[string]string{
			logger.DefaultTag: defaultLogLevels[logger.DefaultTag],
		}
	}
	return nil
}

// MakeDirectories - create the output and log directories if they
// do not already exist
func (profile *Profile) MakeDirectories() error {
	for _, d := range []string{profile.OutputDirectory, profile.Logging.Directory} {
		if err := os.MkdirAll(d, 0o700); nil != err {
			return err
		}
	}
	return nil
}
