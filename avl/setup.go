// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/seqtree/item"
)

// Tree - type to hold the root node of a tree
type Tree[K item.Item[K]] struct {
	root  *node[K]
	alloc allocator[K]
}

// New - create an initially empty tree
func New[K item.Item[K]]() *Tree[K] {
	return &Tree[K]{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// NodeCount - number of nodes currently in the tree
func (tree *Tree[K]) NodeCount() int {
	return nodeCount(tree.root)
}

// InternalPathLength - sum of the depths of all nodes, root is depth zero
func (tree *Tree[K]) InternalPathLength() int {
	return pathLength(tree.root, 0)
}

// Height - height of the root, -1 if empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// MakeEmpty - discard all nodes
func (tree *Tree[K]) MakeEmpty() {
	tree.root = nil
	tree.alloc.reset()
}

// Clone - deep copy of the tree, keys are copied with item.Clone
func (tree *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{
		root: clone(tree.root),
	}
}

// Move - transfer all nodes to a new tree, leaving this one empty
func (tree *Tree[K]) Move() *Tree[K] {
	moved := &Tree[K]{
		root:  tree.root,
		alloc: tree.alloc,
	}
	tree.root = nil
	tree.alloc = allocator[K]{}
	return moved
}

// internal: count of physical nodes
func nodeCount[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + nodeCount(p.left) + nodeCount(p.right)
}

// internal: sum of depths in a sub-tree whose root is at depth
func pathLength[K any](p *node[K], depth int) int {
	if nil == p {
		return 0
	}
	return depth + pathLength(p.left, depth+1) + pathLength(p.right, depth+1)
}

// internal: copy a sub-tree
func clone[K any](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	return &node[K]{
		left:    clone(p.left),
		right:   clone(p.right),
		key:     item.Clone(p.key),
		height:  p.height,
		deleted: p.deleted,
	}
}
