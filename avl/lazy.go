// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/item"
)

// LazyTree - AVL tree where removal only marks nodes as deleted
//
// deleted nodes remain in the structure and are counted by
// NodeCount, InternalPathLength and Height, but are invisible to
// Contains, Find, FindMin, FindMax, Each and PrintInOrder
type LazyTree[K item.Clearable[K]] struct {
	root  *node[K]
	alloc allocator[K]
}

// NewLazy - create an initially empty lazy deletion tree
func NewLazy[K item.Clearable[K]]() *LazyTree[K] {
	return &LazyTree[K]{}
}

// Insert - add a key, merge into a live equal key or replace the
// data of a deleted equal key
// returns true if the key was not logically present before
func (tree *LazyTree[K]) Insert(key K, c *counter.Counter) (bool, error) {
	return insert(&tree.alloc, key, &tree.root, c, resurrectKey[K])
}

// equal key in a lazy tree: merge if live, otherwise the old
// occupant is replaced by the new key's data
func resurrectKey[K item.Clearable[K]](p *node[K], key K) (bool, error) {
	if !p.deleted {
		return false, p.key.Merge(key)
	}
	// the occupant is untouched until the merge has succeeded
	replacement := item.Clone(p.key)
	replacement.ClearAcronyms()
	if err := replacement.Merge(key); nil != err {
		return false, err
	}
	p.key = replacement
	p.deleted = false
	return true, nil
}

// Remove - mark a key as deleted
// returns false if the key was absent or already deleted
func (tree *LazyTree[K]) Remove(key K, c *counter.Counter) bool {
	p := search(key, tree.root, c)
	if nil == p || p.deleted {
		return false
	}
	p.deleted = true
	return true
}

// Find - return the stored key equal to key, unless deleted
func (tree *LazyTree[K]) Find(key K, c *counter.Counter) (K, bool) {
	p := search(key, tree.root, c)
	if nil == p || p.deleted {
		var zero K
		return zero, false
	}
	return p.key, true
}

// Contains - true if key is in the tree and not deleted
func (tree *LazyTree[K]) Contains(key K, c *counter.Counter) bool {
	p := search(key, tree.root, c)
	return nil != p && !p.deleted
}

// FindMin - the lowest key that is not deleted
func (tree *LazyTree[K]) FindMin() (K, error) {
	p := firstLive(tree.root)
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return p.key, nil
}

// FindMax - the highest key that is not deleted
func (tree *LazyTree[K]) FindMax() (K, error) {
	p := lastLive(tree.root)
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return p.key, nil
}

// internal: any live key on the left beats this node; if there is
// none and this node is deleted the answer must be on the right
func firstLive[K any](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	if l := firstLive(p.left); nil != l {
		return l
	}
	if !p.deleted {
		return p
	}
	return firstLive(p.right)
}

// internal: mirror of firstLive
func lastLive[K any](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	if r := lastLive(p.right); nil != r {
		return r
	}
	if !p.deleted {
		return p
	}
	return lastLive(p.left)
}

// IsEmpty - true if the tree has no nodes, deleted or not
func (tree *LazyTree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Len - number of keys that are not deleted
func (tree *LazyTree[K]) Len() int {
	n := 0
	each(tree.root, func(K) bool {
		n += 1
		return true
	})
	return n
}

// NodeCount - number of physical nodes including deleted ones
func (tree *LazyTree[K]) NodeCount() int {
	return nodeCount(tree.root)
}

// InternalPathLength - sum of the depths of all physical nodes
func (tree *LazyTree[K]) InternalPathLength() int {
	return pathLength(tree.root, 0)
}

// Height - height of the root, -1 if empty
func (tree *LazyTree[K]) Height() int {
	return height(tree.root)
}

// Each - call f for every live key in ascending order until f returns false
func (tree *LazyTree[K]) Each(f func(K) bool) {
	each(tree.root, f)
}

// PrintInOrder - write one live key per line in ascending order
func (tree *LazyTree[K]) PrintInOrder(w io.Writer) error {
	return printInOrder(w, tree.root)
}

// MakeEmpty - discard all nodes
func (tree *LazyTree[K]) MakeEmpty() {
	tree.root = nil
	tree.alloc.reset()
}

// Clone - deep copy of the tree including deleted nodes
func (tree *LazyTree[K]) Clone() *LazyTree[K] {
	return &LazyTree[K]{
		root: clone(tree.root),
	}
}

// Move - transfer all nodes to a new tree, leaving this one empty
func (tree *LazyTree[K]) Move() *LazyTree[K] {
	moved := &LazyTree[K]{
		root:  tree.root,
		alloc: tree.alloc,
	}
	tree.root = nil
	tree.alloc = allocator[K]{}
	return moved
}
