// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/fixtures"
	"github.com/bitmark-inc/seqtree/report"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

func loadTree(t *testing.T, kind container.Kind) container.Tree[*sequencemap.SequenceMap] {
	tree, err := container.New[*sequencemap.SequenceMap](kind)
	require.NoError(t, err)
	_, err = report.Load(tree, strings.NewReader(fixtures.Database))
	require.NoError(t, err)
	return tree
}

func TestInteract(t *testing.T) {
	for _, kind := range container.Kinds {
		tree := loadTree(t, kind)

		w := &bytes.Buffer{}
		n, err := interact(tree, strings.NewReader("GAATTC\nCCCCCC\n  AAGCTT q GAATTC\n"), w, false)
		require.NoError(t, err, kind)
		assert.Equal(t, 3, n, kind)

		expected := prompt + "EcoRI FunI\n" +
			prompt + "Element not found in tree.\n" +
			prompt + "HindIII\n" +
			prompt
		assert.Equal(t, expected, w.String(), kind)
	}
}

func TestInteractEndOfInput(t *testing.T) {
	tree := loadTree(t, container.AVL)

	w := &bytes.Buffer{}
	n, err := interact(tree, strings.NewReader("TTATAA"), w, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, prompt+"AanI\n"+prompt+"\n", w.String())
}

func TestInteractCounts(t *testing.T) {
	tree := loadTree(t, container.AVL)

	w := &bytes.Buffer{}
	_, err := interact(tree, strings.NewReader("AAGCTT\nGAATTC\nq\n"), w, true)
	require.NoError(t, err)

	expected := prompt + "HindIII\nRecursive calls: 2\n" +
		prompt + "EcoRI FunI\nRecursive calls: 0\n" +
		prompt
	assert.Equal(t, expected, w.String())
}

func TestInteractAfterLazyRemove(t *testing.T) {
	tree := loadTree(t, container.LazyAVL)
	assert.True(t, tree.Remove(sequencemap.New("GAATTC", ""), nil))

	w := &bytes.Buffer{}
	_, err := interact(tree, strings.NewReader("GAATTC q"), w, false)
	require.NoError(t, err)
	assert.Equal(t, prompt+notFound+"\n"+prompt, w.String())
}
