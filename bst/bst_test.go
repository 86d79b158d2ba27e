// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/seqtree/bst"
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

type intItem int

func (i intItem) Compare(j intItem) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	}
	return 0
}

func (i intItem) Merge(j intItem) error {
	if i != j {
		return fault.ErrInvariantViolation
	}
	return nil
}

func inOrder(tree *bst.Tree[intItem]) []intItem {
	list := []intItem{}
	tree.Each(func(i intItem) bool {
		list = append(list, i)
		return true
	})
	return list
}

func TestInsertOrdering(t *testing.T) {
	tree := bst.New[intItem]()
	input := []intItem{50, 20, 80, 10, 30, 70, 90, 20, 50, 65}
	for _, i := range input {
		_, err := tree.Insert(i, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, []intItem{10, 20, 30, 50, 65, 70, 80, 90}, inOrder(tree))
	assert.Equal(t, 8, tree.NodeCount(), "duplicates must not add nodes")
	require.NoError(t, tree.Check())

	lowest, err := tree.FindMin()
	require.NoError(t, err)
	assert.Equal(t, intItem(10), lowest)
	highest, err := tree.FindMax()
	require.NoError(t, err)
	assert.Equal(t, intItem(90), highest)
}

func TestMergeDuplicate(t *testing.T) {
	tree := bst.New[*sequencemap.SequenceMap]()

	added, err := tree.Insert(sequencemap.New("GAATTC", "EcoRI"), nil)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = tree.Insert(sequencemap.New("GAATTC", "FunI"), nil)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1, tree.NodeCount())
	m, ok := tree.Find(sequencemap.New("GAATTC", ""), nil)
	require.True(t, ok)
	assert.Equal(t, []string{"EcoRI", "FunI"}, m.Acronyms())
}

func TestRemoveCases(t *testing.T) {
	build := func() *bst.Tree[intItem] {
		tree := bst.New[intItem]()
		for _, i := range []intItem{50, 20, 80, 10, 30, 70, 90, 65} {
			tree.Insert(i, nil)
		}
		return tree
	}

	cases := []struct {
		name   string
		key    intItem
		remain []intItem
	}{
		{"leaf", 10, []intItem{20, 30, 50, 65, 70, 80, 90}},
		{"one child", 70, []intItem{10, 20, 30, 50, 65, 80, 90}},
		{"two children", 20, []intItem{10, 30, 50, 65, 70, 80, 90}},
		{"root", 50, []intItem{10, 20, 30, 65, 70, 80, 90}},
	}
	for _, c := range cases {
		tree := build()
		assert.True(t, tree.Remove(c.key, nil), c.name)
		assert.Equal(t, c.remain, inOrder(tree), c.name)
		assert.Equal(t, 7, tree.NodeCount(), c.name)
		assert.False(t, tree.Contains(c.key, nil), c.name)
		require.NoError(t, tree.Check(), c.name)
	}

	tree := build()
	assert.False(t, tree.Remove(55, nil), "absent key")
	assert.Equal(t, 8, tree.NodeCount(), "absent key must not change count")
}

// the root's successor replaces it
func TestRemoveRootShape(t *testing.T) {
	tree := bst.New[intItem]()
	for _, i := range []intItem{50, 20, 80, 70, 90, 65} {
		tree.Insert(i, nil)
	}
	tree.Remove(50, nil)

	var buffer bytes.Buffer
	require.NoError(t, tree.Print(&buffer))
	assert.True(t, strings.HasPrefix(buffer.String(), "65\n"), "new root: %q", buffer.String())
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(20150307))
	tree := bst.New[intItem]()
	present := make(map[intItem]struct{})

	for i := 0; i < 2000; i += 1 {
		k := intItem(r.Intn(5000))
		present[k] = struct{}{}
		tree.Insert(k, nil)
	}
	assert.Equal(t, len(present), tree.NodeCount())

	for i := 0; i < 2000; i += 1 {
		k := intItem(r.Intn(5000))
		_, ok := present[k]
		before := tree.NodeCount()
		assert.Equal(t, ok, tree.Remove(k, nil), "remove: %d", k)
		if ok {
			assert.Equal(t, before-1, tree.NodeCount(), "remove: %d", k)
		}
		delete(present, k)
	}
	require.NoError(t, tree.Check())

	expected := make([]intItem, 0, len(present))
	for k := range present {
		expected = append(expected, k)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
	assert.Equal(t, expected, inOrder(tree))
}

// sorted input degenerates into a list
func TestDegenerate(t *testing.T) {
	tree := bst.New[intItem]()
	var c counter.Counter
	for i := intItem(0); i < 10; i += 1 {
		tree.Insert(i, &c)
	}
	assert.Equal(t, uint64(0+1+2+3+4+5+6+7+8+9), c.Uint64(), "recursive insert calls")
	assert.Equal(t, 9, tree.Height())
	assert.Equal(t, 0+1+2+3+4+5+6+7+8+9, tree.InternalPathLength())

	c.Reset()
	assert.True(t, tree.Contains(9, &c))
	assert.Equal(t, uint64(9), c.Uint64())

	c.Reset()
	assert.True(t, tree.Remove(0, &c))
	assert.Equal(t, uint64(0), c.Uint64(), "root with one child")
	assert.Equal(t, 8, tree.Height())
}

// two children removal counts the successor search and the
// successor removal
func TestRemoveCounter(t *testing.T) {
	tree := bst.New[intItem]()
	for _, i := range []intItem{50, 20, 80, 70, 90, 65} {
		tree.Insert(i, nil)
	}
	var c counter.Counter
	assert.True(t, tree.Remove(50, &c))
	// 1 (successor search) + 2 (80 → 70 → 65) + 1 (removal) + 2 (80 → 70 → 65)
	assert.Equal(t, uint64(6), c.Uint64())
}

func TestEmpty(t *testing.T) {
	tree := bst.New[intItem]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, 0, tree.InternalPathLength())

	_, err := tree.FindMin()
	assert.Equal(t, fault.ErrEmptyContainer, err)
	_, err = tree.FindMax()
	assert.Equal(t, fault.ErrEmptyContainer, err)

	var buffer bytes.Buffer
	require.NoError(t, tree.PrintInOrder(&buffer))
	assert.Equal(t, "Empty tree\n", buffer.String())
}

func TestPrintInOrder(t *testing.T) {
	tree := bst.New[*sequencemap.SequenceMap]()
	tree.Insert(sequencemap.New("GGATCC", "BamHI"), nil)
	tree.Insert(sequencemap.New("AAGCTT", "HindIII"), nil)
	tree.Insert(sequencemap.New("GAATTC", "EcoRI"), nil)

	var buffer bytes.Buffer
	require.NoError(t, tree.PrintInOrder(&buffer))
	assert.Equal(t, "AAGCTT HindIII\nGAATTC EcoRI\nGGATCC BamHI\n", buffer.String())
}

func TestCloneAndMove(t *testing.T) {
	tree := bst.New[*sequencemap.SequenceMap]()
	tree.Insert(sequencemap.New("GAATTC", "EcoRI"), nil)
	tree.Insert(sequencemap.New("AAGCTT", "HindIII"), nil)

	copied := tree.Clone()
	copied.Insert(sequencemap.New("GAATTC", "FunI"), nil)
	copied.Remove(sequencemap.New("AAGCTT", ""), nil)

	m, ok := tree.Find(sequencemap.New("GAATTC", ""), nil)
	require.True(t, ok)
	assert.Equal(t, []string{"EcoRI"}, m.Acronyms(), "clone shares key data")
	assert.Equal(t, 2, tree.NodeCount())
	assert.Equal(t, 1, copied.NodeCount())

	moved := tree.Move()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 2, moved.NodeCount())

	moved.MakeEmpty()
	assert.True(t, moved.IsEmpty())
}
