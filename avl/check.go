// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/item"
)

// Check - verify ordering, cached heights and balance of every node
func (tree *Tree[K]) Check() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// Check - verify ordering, cached heights and balance of every
// node, deleted nodes included
func (tree *LazyTree[K]) Check() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// internal: consistency checker, all keys of p must lie strictly
// between the keys of low and high (nil = unbounded)
// returns the computed height
func check[K item.Item[K]](p *node[K], low *node[K], high *node[K]) (int, error) {
	if nil == p {
		return -1, nil
	}
	if nil != low && low.key.Compare(p.key) >= 0 {
		return 0, fmt.Errorf("node: %v not above: %v: %w", p.key, low.key, fault.ErrInvariantViolation)
	}
	if nil != high && high.key.Compare(p.key) <= 0 {
		return 0, fmt.Errorf("node: %v not below: %v: %w", p.key, high.key, fault.ErrInvariantViolation)
	}

	lh, err := check(p.left, low, p)
	if nil != err {
		return 0, err
	}
	rh, err := check(p.right, p, high)
	if nil != err {
		return 0, err
	}

	h := 1 + maxHeight(lh, rh)
	if h != p.height {
		return 0, fmt.Errorf("node: %v  height: %d  expected: %d: %w", p.key, p.height, h, fault.ErrInvariantViolation)
	}
	if lh-rh > allowedImbalance || rh-lh > allowedImbalance {
		return 0, fmt.Errorf("node: %v  unbalanced: [%d,%d]: %w", p.key, lh, rh, fault.ErrInvariantViolation)
	}
	return h, nil
}
