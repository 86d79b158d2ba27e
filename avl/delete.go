// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/item"
)

// Remove - unlink a key from the tree
// returns false if the key was not present
func (tree *Tree[K]) Remove(key K, c *counter.Counter) bool {
	return remove(&tree.alloc, key, &tree.root, c)
}

// internal delete routine
func remove[K item.Item[K]](a *allocator[K], key K, pp **node[K], c *counter.Counter) bool {
	p := *pp
	if nil == p { // key not in tree
		return false
	}

	removed := false
	switch r := p.key.Compare(key); {
	case r > 0: // p.key > key
		c.Increment()
		removed = remove(a, key, &p.left, c)
	case r < 0: // p.key < key
		c.Increment()
		removed = remove(a, key, &p.right, c)
	case nil != p.left && nil != p.right:
		// two children: take over the successor's key then
		// delete the successor from the right sub-tree
		c.Increment()
		p.key = first(p.right, c).key
		c.Increment()
		remove(a, p.key, &p.right, c)
		removed = true
	default:
		// zero or one child: splice out
		if nil != p.left {
			*pp = p.left
		} else {
			*pp = p.right
		}
		a.freeNode(p)
		return true
	}

	balance(pp)
	return removed
}
