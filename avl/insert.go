// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/item"
)

// called when insert reaches a node with an equal key; reports
// whether the key became present
type equalFunc[K any] func(p *node[K], key K) (bool, error)

// Insert - add a key to the tree or merge it into an existing equal key
// returns true if a new node was created
func (tree *Tree[K]) Insert(key K, c *counter.Counter) (bool, error) {
	return insert(&tree.alloc, key, &tree.root, c, mergeKey[K])
}

// equal key in an ordinary tree: combine the data
func mergeKey[K item.Item[K]](p *node[K], key K) (bool, error) {
	return false, p.key.Merge(key)
}

// internal routine for insert, rebalances on the way back up
func insert[K item.Item[K]](a *allocator[K], key K, pp **node[K], c *counter.Counter, equal equalFunc[K]) (bool, error) {
	p := *pp
	if nil == p { // insert new node
		*pp = a.newNode(key)
		return true, nil
	}

	added := false
	err := error(nil)
	switch r := p.key.Compare(key); {
	case r > 0: // p.key > key
		c.Increment()
		added, err = insert(a, key, &p.left, c, equal)
	case r < 0: // p.key < key
		c.Increment()
		added, err = insert(a, key, &p.right, c, equal)
	default:
		// no structural change so no rebalancing
		return equal(p, key)
	}

	balance(pp)
	return added, err
}
