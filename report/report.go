// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"math"

	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/parser"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/seqtree/report Tree

// Tree - the tree operations that are measured
type Tree interface {
	Insert(key *sequencemap.SequenceMap, c *counter.Counter) (bool, error)
	Contains(key *sequencemap.SequenceMap, c *counter.Counter) bool
	Remove(key *sequencemap.SequenceMap, c *counter.Counter) bool
	NodeCount() int
	InternalPathLength() int
	Height() int
}

// Build - result of loading a database
type Build struct {
	Lines          int    `json:"lines"`
	Records        int    `json:"records"`
	Sequences      int    `json:"sequences"`
	RecursiveCalls uint64 `json:"recursiveCalls"`
}

// Statistics - shape of a tree
type Statistics struct {
	Nodes              int     `json:"nodes"`
	Height             int     `json:"height"`
	InternalPathLength int     `json:"internalPathLength"`
	AverageDepth       float64 `json:"averageDepth"`
	DepthRatio         float64 `json:"depthRatio"`
}

// Queries - result of a batch of searches or removals
type Queries struct {
	Total          int     `json:"total"`
	Successful     int     `json:"successful"`
	RecursiveCalls uint64  `json:"recursiveCalls"`
	AverageCalls   float64 `json:"averageCalls"`
}

// Load - insert every sequence of a database into the tree
func Load(t Tree, database io.Reader) (Build, error) {
	var c counter.Counter
	totals, err := parser.ParseDatabase(database, func(m *sequencemap.SequenceMap) error {
		_, err := t.Insert(m, &c)
		return err
	})
	return Build{
		Lines:          totals.Lines,
		Records:        totals.Records,
		Sequences:      totals.Sequences,
		RecursiveCalls: c.Uint64(),
	}, err
}

// Stats - compute the shape statistics
//
// the ratio is zero for trees with fewer than two nodes since log2 n
// is then zero
func Stats(t Tree) Statistics {
	n := t.NodeCount()
	s := Statistics{
		Nodes:              n,
		Height:             t.Height(),
		InternalPathLength: t.InternalPathLength(),
	}
	if n > 0 {
		s.AverageDepth = float64(s.InternalPathLength) / float64(n)
	}
	if n > 1 {
		s.DepthRatio = s.AverageDepth / math.Log2(float64(n))
	}
	return s
}

// Search - look up every sequence
func Search(t Tree, sequences []string) Queries {
	var c counter.Counter
	q := Queries{}
	for _, s := range sequences {
		q.Total += 1
		if t.Contains(sequencemap.New(s, ""), &c) {
			q.Successful += 1
		}
	}
	q.finish(&c)
	return q
}

// RemoveAlternate - remove the first, third, fifth, … sequence
func RemoveAlternate(t Tree, sequences []string) Queries {
	var c counter.Counter
	q := Queries{}
	for i := 0; i < len(sequences); i += 2 {
		q.Total += 1
		if t.Remove(sequencemap.New(sequences[i], ""), &c) {
			q.Successful += 1
		}
	}
	q.finish(&c)
	return q
}

func (q *Queries) finish(c *counter.Counter) {
	q.RecursiveCalls = c.Uint64()
	if q.Total > 0 {
		q.AverageCalls = float64(q.RecursiveCalls) / float64(q.Total)
	}
}
