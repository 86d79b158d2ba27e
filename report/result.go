// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result - complete measurement of one tree
type Result struct {
	Tree   string      `json:"tree"`
	Build  Build       `json:"build"`
	Before Statistics  `json:"before"`
	Search *Queries    `json:"search,omitempty"`
	Remove *Queries    `json:"remove,omitempty"`
	After  *Statistics `json:"after,omitempty"`
}

// Run - load the database then, if there are any queries, search for
// all of them and remove every other one
func Run(name string, t Tree, database io.Reader, queries []string) (*Result, error) {
	build, err := Load(t, database)
	if nil != err {
		return nil, err
	}

	result := &Result{
		Tree:   name,
		Build:  build,
		Before: Stats(t),
	}

	if 0 == len(queries) {
		return result, nil
	}

	search := Search(t, queries)
	remove := RemoveAlternate(t, queries)
	after := Stats(t)

	result.Search = &search
	result.Remove = &remove
	result.After = &after

	return result, nil
}

// WriteText - human readable form of a result
func (r *Result) WriteText(w io.Writer) error {
	p := &printer{w: w}

	p.printf("%s Created.\n", r.Tree)
	p.printf("Total number of recursive calls to insert: %d\n", r.Build.RecursiveCalls)
	p.statistics(&r.Before)

	if nil != r.Search {
		p.printf("Successful Queries: %d of %d\n", r.Search.Successful, r.Search.Total)
		p.printf("Average Number of Recursion Calls: %.2f\n", r.Search.AverageCalls)
	}
	if nil != r.Remove {
		p.printf("Successful Removes: %d of %d\n", r.Remove.Successful, r.Remove.Total)
		p.printf("Average Number of Recursion Calls: %.2f\n", r.Remove.AverageCalls)
	}
	if nil != r.After {
		p.statistics(r.After)
	}
	return p.err
}

// PrintJson - indented JSON form of any value
func PrintJson(w io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// writer that remembers the first error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if nil != p.err {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) statistics(s *Statistics) {
	p.printf("Number of Nodes: %d\n", s.Nodes)
	p.printf("Average Depth: %.2f\n", s.AverageDepth)
	p.printf("Ratio of Average Depth to log2(n): %.2f\n", s.DepthRatio)
}
