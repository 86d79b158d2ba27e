// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/item"
)

type node[K any] struct {
	left  *node[K]
	right *node[K]
	key   K
}

// Tree - type to hold the root node of a tree
type Tree[K item.Item[K]] struct {
	root *node[K]
}

// New - create an initially empty tree
func New[K item.Item[K]]() *Tree[K] {
	return &Tree[K]{}
}

// Insert - add a key to the tree or merge it into an existing equal key
// returns true if a new node was created
func (tree *Tree[K]) Insert(key K, c *counter.Counter) (bool, error) {
	added := false
	err := error(nil)
	tree.root, added, err = insert(key, tree.root, c)
	return added, err
}

func insert[K item.Item[K]](key K, p *node[K], c *counter.Counter) (*node[K], bool, error) {
	if nil == p {
		return &node[K]{key: key}, true, nil
	}

	added := false
	err := error(nil)
	switch r := p.key.Compare(key); {
	case r > 0: // p.key > key
		c.Increment()
		p.left, added, err = insert(key, p.left, c)
	case r < 0: // p.key < key
		c.Increment()
		p.right, added, err = insert(key, p.right, c)
	default:
		err = p.key.Merge(key)
	}
	return p, added, err
}

// Remove - unlink a key from the tree
// returns false if the key was not present
func (tree *Tree[K]) Remove(key K, c *counter.Counter) bool {
	removed := false
	tree.root, removed = remove(key, tree.root, c)
	return removed
}

func remove[K item.Item[K]](key K, p *node[K], c *counter.Counter) (*node[K], bool) {
	if nil == p {
		return nil, false
	}

	removed := false
	switch r := p.key.Compare(key); {
	case r > 0: // p.key > key
		c.Increment()
		p.left, removed = remove(key, p.left, c)
	case r < 0: // p.key < key
		c.Increment()
		p.right, removed = remove(key, p.right, c)
	case nil != p.left && nil != p.right:
		// two children: take over the successor's key then
		// delete the successor from the right sub-tree
		c.Increment()
		p.key = first(p.right, c).key
		c.Increment()
		p.right, _ = remove(p.key, p.right, c)
		removed = true
	default:
		q := p
		if nil != p.left {
			p = p.left
		} else {
			p = p.right
		}
		release(q)
		removed = true
	}
	return p, removed
}

// detach an unlinked node so that it holds no references
func release[K any](p *node[K]) {
	var zero K
	p.left = nil
	p.right = nil
	p.key = zero
}

// Find - return the stored key equal to key
func (tree *Tree[K]) Find(key K, c *counter.Counter) (K, bool) {
	p := search(key, tree.root, c)
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

// Contains - true if key is in the tree
func (tree *Tree[K]) Contains(key K, c *counter.Counter) bool {
	return nil != search(key, tree.root, c)
}

func search[K item.Item[K]](key K, p *node[K], c *counter.Counter) *node[K] {
	if nil == p {
		return nil
	}

	switch r := p.key.Compare(key); {
	case r > 0: // p.key > key
		c.Increment()
		return search(key, p.left, c)
	case r < 0: // p.key < key
		c.Increment()
		return search(key, p.right, c)
	default:
		return p
	}
}

// FindMin - the lowest key in the tree
func (tree *Tree[K]) FindMin() (K, error) {
	if nil == tree.root {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return first(tree.root, nil).key, nil
}

// FindMax - the highest key in the tree
func (tree *Tree[K]) FindMax() (K, error) {
	if nil == tree.root {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	p := tree.root
	for nil != p.right {
		p = p.right
	}
	return p.key, nil
}

// internal: lowest node in a non-empty sub-tree
func first[K any](p *node[K], c *counter.Counter) *node[K] {
	for nil != p.left {
		c.Increment()
		p = p.left
	}
	return p
}
