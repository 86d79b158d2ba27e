// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/report"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

type keyEntry struct {
	Sequence string   `json:"sequence"`
	Acronyms []string `json:"acronyms"`
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database, err := m.databaseFile(c.Args().First())
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

	m.progress("building %s from: %s", m.kind, database)
	build, err := report.Load(tree, f)
	if nil != err {
		m.log.Criticalf("load error: %s", err)
		return err
	}
	m.log.Infof("loaded: %d sequences into %d nodes", build.Sequences, tree.NodeCount())

	switch {
	case c.Bool("structure"):
		return tree.Print(m.w)

	case m.json:
		keys := make([]keyEntry, 0, tree.NodeCount())
		tree.Each(func(k *sequencemap.SequenceMap) bool {
			keys = append(keys, keyEntry{
				Sequence: k.Sequence(),
				Acronyms: k.Acronyms(),
			})
			return true
		})
		return report.PrintJson(m.w, keys)

	default:
		return tree.PrintInOrder(m.w)
	}
}
