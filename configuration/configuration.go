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

	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultTree          = container.AVL

	defaultLogDirectory = "log"
	defaultLogFile      = "seqtree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings shared by the tree commands
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      string               `gluamapper:"database" json:"database"`
	Queries       string               `gluamapper:"queries" json:"queries"`
	Tree          string               `gluamapper:"tree" json:"tree"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaults(dataDirectory string) *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		DataDirectory: dataDirectory,
		Tree:          string(defaultTree),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// Default - configuration used when no file is given, all paths are
// relative to the data directory
func Default(dataDirectory string) (*Configuration, error) {
	dataDirectory, err := filepath.Abs(dataDirectory)
	if nil != err {
		return nil, err
	}
	options := defaults(defaultDataDirectory)
	if err := options.resolve(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// Get - read, decode and verify a configuration file
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults(defaultDataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.resolve(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// TreeKind - the tree kind, Tree may have been changed after
// the configuration was read so it is validated again
func (c *Configuration) TreeKind() (container.Kind, error) {
	return container.ParseKind(c.Tree)
}

// complete the configuration and make all paths absolute
func (c *Configuration) resolve(baseDirectory string) error {

	kind, err := c.TreeKind()
	if nil != err {
		return err
	}
	c.Tree = string(kind)

	// ensure absolute data directory
	switch c.DataDirectory {
	case "", "~":
		return fmt.Errorf("path: %q: %w", c.DataDirectory, fault.ErrInvalidDirectory)
	case ".":
		c.DataDirectory = baseDirectory
	}
	c.DataDirectory = EnsureAbsolute(baseDirectory, c.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(c.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q: %w", c.DataDirectory, fault.ErrInvalidDirectory)
	}

	// optional files i.e. blank or a file that must exist
	optionalFiles := []struct {
		name *string
		err  error
	}{
		{&c.Database, fault.ErrNotFoundDatabase},
		{&c.Queries, fault.ErrNotFoundQueries},
	}
	for _, f := range optionalFiles {
		if "" == *f.name {
			continue
		}
		*f.name = EnsureAbsolute(c.DataDirectory, *f.name)
		if !EnsureFileExists(*f.name) {
			return fmt.Errorf("file: %q: %w", *f.name, f.err)
		}
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("file: %q: %w", c.Logging.File, fault.ErrInvalidFileName)
	}

	// make absolute and create directories if they do not already exist
	c.Logging.Directory = EnsureAbsolute(c.DataDirectory, c.Logging.Directory)
	return os.MkdirAll(c.Logging.Directory, 0700)
}
