// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "testtrees"
	app.Usage = "build a tree from an enzyme database and measure it"
	app.ArgsUsage = "DATABASE"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "tree, t",
			Value: "",
			Usage: " tree `KIND` [bst|avl|lazyavl]",
		},
		cli.StringFlag{
			Name:  "queries, q",
			Value: "",
			Usage: " sequences to search for and remove `FILE`",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " JSON output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "stats",
			Usage:     "build the tree and report its shape and query costs (default)",
			ArgsUsage: "DATABASE",
			Flags:     []cli.Flag{},
			Action:    runStats,
		},
		{
			Name:      "print",
			Usage:     "build the tree and print its keys",
			ArgsUsage: "DATABASE",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "structure, s",
					Usage: " draw the tree instead of listing keys in order",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "compare",
			Usage:     "run stats for every tree kind",
			ArgsUsage: "DATABASE",
			Flags:     []cli.Flag{},
			Action:    runCompare,
		},
		{
			Name:  "version",
			Usage: "display testtrees version",
			Action: func(c *cli.Context) error {
				_, err := io.WriteString(c.App.Writer, version+"\n")
				return err
			},
		},
	}
	app.Action = runStats

	app.Before = setup
	app.After = teardown

	return app
}
