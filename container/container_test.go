// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package container_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/seqtree/container"
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

func TestParseKind(t *testing.T) {
	valid := map[string]container.Kind{
		"bst":     container.BST,
		"BST":     container.BST,
		"AVL":     container.AVL,
		" avl ":   container.AVL,
		"LazyAVL": container.LazyAVL,
		"lazyavl": container.LazyAVL,
		"LAZYAVL": container.LazyAVL,
	}
	for s, expected := range valid {
		k, err := container.ParseKind(s)
		require.NoError(t, err, "kind: %q", s)
		assert.Equal(t, expected, k, "kind: %q", s)
	}

	for _, s := range []string{"", "rb", "lazy"} {
		_, err := container.ParseKind(s)
		assert.True(t, fault.IsErrInvalid(err), "kind: %q  error: %v", s, err)
	}
}

func TestNewInvalid(t *testing.T) {
	tree, err := container.New[*sequencemap.SequenceMap]("splay")
	assert.Nil(t, tree)
	assert.True(t, fault.IsErrInvalid(err), "error: %v", err)
}

// all kinds honour the same contract
func TestCommonContract(t *testing.T) {
	input := []string{"GGATCC", "AAGCTT", "GAATTC", "CTGCAG", "GAATTC", "TTTAAA"}

	for _, kind := range container.Kinds {
		tree, err := container.New[*sequencemap.SequenceMap](kind)
		require.NoError(t, err, kind)

		var inserts counter.Counter
		for _, s := range input {
			_, err := tree.Insert(sequencemap.New(s, "X"+s), &inserts)
			require.NoError(t, err, kind)
		}
		assert.Equal(t, 5, tree.NodeCount(), kind)
		assert.False(t, inserts.IsZero(), kind)

		var buffer bytes.Buffer
		require.NoError(t, tree.PrintInOrder(&buffer), kind)
		assert.Equal(t, "AAGCTT XAAGCTT\nCTGCAG XCTGCAG\nGAATTC XGAATTC\nGGATCC XGGATCC\nTTTAAA XTTTAAA\n", buffer.String(), kind)

		assert.True(t, tree.Remove(sequencemap.New("AAGCTT", ""), nil), kind)
		assert.False(t, tree.Contains(sequencemap.New("AAGCTT", ""), nil), kind)
		assert.False(t, tree.Remove(sequencemap.New("AAGCTT", ""), nil), kind)

		lowest, err := tree.FindMin()
		require.NoError(t, err, kind)
		assert.Equal(t, "CTGCAG", lowest.Sequence(), kind)

		highest, err := tree.FindMax()
		require.NoError(t, err, kind)
		assert.Equal(t, "TTTAAA", highest.Sequence(), kind)

		tree.MakeEmpty()
		assert.True(t, tree.IsEmpty(), kind)
		_, err = tree.FindMin()
		assert.True(t, fault.IsErrEmpty(err), kind)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "AVL Tree with Lazy Deletion", container.LazyAVL.String())
	assert.Equal(t, "Binary Search Tree", container.BST.String())
}
