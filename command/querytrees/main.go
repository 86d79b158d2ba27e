// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/seqtree/configuration"
	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/report"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
		{Long: "tree", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	var theConfiguration *configuration.Configuration
	if 1 == len(options["config-file"]) {
		theConfiguration, err = configuration.Get(options["config-file"][0])
	} else {
		theConfiguration, err = configuration.Default(".")
	}
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration error: %s", program, err)
	}

	if n := len(options["tree"]); n > 0 {
		theConfiguration.Tree = options["tree"][n-1]
	}
	kind, err := theConfiguration.TreeKind()
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	database := theConfiguration.Database
	switch len(arguments) {
	case 0:
		if "" == database {
			exitwithstatus.Message("%s: %s", program, fault.ErrRequiredDatabase)
		}
	case 1:
		database = arguments[0]
	default:
		exitwithstatus.Message("%s: only one database is allowed, %d were given", program, len(arguments))
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("database: %q  tree: %s", database, kind)

	tree, err := container.New[*sequencemap.SequenceMap](kind)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	f, err := os.Open(database)
	if nil != err {
		log.Criticalf("open database error: %s", err)
		exitwithstatus.Message("%s: open database: %q  error: %s", program, database, err)
	}

	build, err := report.Load(tree, f)
	f.Close()
	if nil != err {
		log.Criticalf("load database error: %s", err)
		exitwithstatus.Message("%s: load database: %q  error: %s", program, database, err)
	}
	log.Infof("loaded: %d sequences into %d nodes", build.Sequences, tree.NodeCount())

	n, err := interact(tree, os.Stdin, os.Stdout, len(options["count"]) > 0)
	log.Infof("queries: %d", n)
	if nil != err {
		fault.Criticalf("interact error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--tree=KIND] [--count] [--config-file=FILE] DATABASE\n", program)
	fmt.Printf("       --help             -h            this message\n")
	fmt.Printf("       --version          -V            display version\n")
	fmt.Printf("       --tree=KIND        -t KIND       bst, avl or lazyavl\n")
	fmt.Printf("       --count            -c            show recursive calls per query\n")
	fmt.Printf("       --config-file=FILE -f FILE       Lua configuration file\n")
}
