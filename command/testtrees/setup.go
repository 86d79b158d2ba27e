// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/seqtree/configuration"
	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/parser"
)

type metadata struct {
	config  *configuration.Configuration
	kind    container.Kind
	queries string
	json    bool
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// read the configuration and start logging
func setup(c *cli.Context) error {

	e := c.App.ErrWriter
	w := c.App.Writer
	verbose := c.GlobalBool("verbose")

	// to suppress reading config file if certain commands
	switch c.Args().Get(0) {
	case "help", "h", "version":
		return nil
	}

	var config *configuration.Configuration
	var err error
	if file := c.GlobalString("config"); "" != file {
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		config, err = configuration.Get(file)
	} else {
		config, err = configuration.Default(".")
	}
	if nil != err {
		return err
	}

	// command line overrides
	if tree := c.GlobalString("tree"); "" != tree {
		config.Tree = tree
	}
	kind, err := config.TreeKind()
	if nil != err {
		return err
	}

	queries := config.Queries
	if q := c.GlobalString("queries"); "" != q {
		queries, err = filepath.Abs(q)
		if nil != err {
			return err
		}
		if !configuration.EnsureFileExists(queries) {
			return fmt.Errorf("file: %q: %w", q, fault.ErrNotFoundQueries)
		}
	}

	// start logging
	if err = logger.Initialise(config.Logging); nil != err {
		return err
	}
	if err = fault.Initialise(); nil != err {
		logger.Finalise()
		return err
	}

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", config)

	c.App.Metadata["config"] = &metadata{
		config:  config,
		kind:    kind,
		queries: queries,
		json:    c.GlobalBool("json"),
		verbose: verbose,
		log:     log,
		e:       e,
		w:       w,
	}
	return nil
}

// stop logging
func teardown(c *cli.Context) error {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return nil
	}
	m.log.Info("finished")
	fault.Finalise()
	logger.Finalise()
	delete(c.App.Metadata, "config")
	return nil
}

// the database argument, falling back to the configured one
func (m *metadata) databaseFile(argument string) (string, error) {
	if "" == argument {
		if "" == m.config.Database {
			return "", fault.ErrRequiredDatabase
		}
		return m.config.Database, nil
	}
	if !configuration.EnsureFileExists(argument) {
		return "", fmt.Errorf("file: %q: %w", argument, fault.ErrNotFoundDatabase)
	}
	return argument, nil
}

// progress messages on the error writer, only when verbose
func (m *metadata) progress(format string, arguments ...interface{}) {
	if m.verbose {
		fmt.Fprintf(m.e, format+"\n", arguments...)
	}
}

// the query sequences, none if no file was given
func (m *metadata) readQueries() ([]string, error) {
	if "" == m.queries {
		return nil, nil
	}
	f, err := os.Open(m.queries)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return parser.ReadSequences(f)
}
