// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/report"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

// trees that can verify their own structure
type checker interface {
	Check() error
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database, err := m.databaseFile(c.Args().First())
	if nil != err {
		return err
	}

	queries, err := m.readQueries()
	if nil != err {
		return err
	}

	tree, err := container.New[*sequencemap.SequenceMap](m.kind)
	if nil != err {
		return err
	}

	f, err := os.Open(database)
	if nil != err {
		return err
	}
	defer f.Close()

	m.log.Infof("database: %q  tree: %s  queries: %d", database, m.kind, len(queries))
	m.progress("building %s from: %s", m.kind, database)

	result, err := report.Run(m.kind.String(), tree, f, queries)
	if nil != err {
		m.log.Criticalf("run error: %s", err)
		return err
	}

	if t, ok := tree.(checker); ok {
		fault.PanicIfError("tree check", t.Check())
	}

	m.log.Infof("nodes: %d  insert calls: %d", result.Before.Nodes, result.Build.RecursiveCalls)

	if m.json {
		return report.PrintJson(m.w, result)
	}
	return result.WriteText(m.w)
}
