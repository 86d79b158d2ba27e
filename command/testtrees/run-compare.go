// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/report"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

// same measurements as stats for every tree kind
func runCompare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database, err := m.databaseFile(c.Args().First())
	if nil != err {
		return err
	}

	queries, err := m.readQueries()
	if nil != err {
		return err
	}

	results := make([]*report.Result, 0, len(container.Kinds))
	for _, kind := range container.Kinds {
		m.progress("building %s from: %s", kind, database)
		r, err := measure(kind, database, queries)
		if nil != err {
			m.log.Criticalf("%s: run error: %s", kind, err)
			return err
		}
		m.log.Infof("%s: nodes: %d  insert calls: %d", kind, r.Before.Nodes, r.Build.RecursiveCalls)
		results = append(results, r)
	}

	if m.json {
		return report.PrintJson(m.w, results)
	}
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(m.w); nil != err {
				return err
			}
		}
		if err := r.WriteText(m.w); nil != err {
			return err
		}
	}
	return nil
}

func measure(kind container.Kind, database string, queries []string) (*report.Result, error) {
	tree, err := container.New[*sequencemap.SequenceMap](kind)
	if nil != err {
		return nil, err
	}

	f, err := os.Open(database)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return report.Run(kind.String(), tree, f, queries)
}
