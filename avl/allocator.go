// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K any] struct {
	left    *node[K] // left sub-tree
	right   *node[K] // right sub-tree
	key     K        // key part for ordering and data
	height  int      // 0 for leaf, sub-tree height otherwise
	deleted bool     // LazyTree only: key is logically absent
}

// per-tree store of reclaimed nodes
//
// the free list is threaded through the left pointers
type allocator[K any] struct {
	pool       *node[K] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *allocator[K]) newNode(key K) *node[K] {
	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.totalNodes += 1
		return &node[K]{
			key: key,
		}
	}
	p := a.pool
	a.pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.key = key
	p.height = 0
	p.deleted = false
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator[K]) freeNode(p *node[K]) {
	var zero K
	p.left = a.pool // use as free list pointer
	p.right = nil
	p.key = zero // do not keep the key alive
	p.height = 0
	p.deleted = false
	a.freeNodes += 1
	a.pool = p
}

// drop the pool and all statistics
func (a *allocator[K]) reset() {
	a.pool = nil
	a.totalNodes = 0
	a.freeNodes = 0
}
