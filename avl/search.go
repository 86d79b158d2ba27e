// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/item"
)

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

// physical node with an equal key, deleted or not
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
