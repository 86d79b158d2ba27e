// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/fault"
)

// FindMin - the lowest key in the tree
func (tree *Tree[K]) FindMin() (K, error) {
	p := first(tree.root, nil)
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return p.key, nil
}

// FindMax - the highest key in the tree
func (tree *Tree[K]) FindMax() (K, error) {
	p := last(tree.root)
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return p.key, nil
}

// internal: lowest node in a sub-tree
func first[K any](p *node[K], c *counter.Counter) *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		c.Increment()
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func last[K any](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Each - call f for every key in ascending order until f returns false
func (tree *Tree[K]) Each(f func(K) bool) {
	each(tree.root, f)
}

// internal: in-order walk of live keys, false if stopped early
func each[K any](p *node[K], f func(K) bool) bool {
	if nil == p {
		return true
	}
	if !each(p.left, f) {
		return false
	}
	if !p.deleted && !f(p.key) {
		return false
	}
	return each(p.right, f)
}

// PrintInOrder - write one key per line in ascending order
func (tree *Tree[K]) PrintInOrder(w io.Writer) error {
	return printInOrder(w, tree.root)
}

func printInOrder[K any](w io.Writer, root *node[K]) error {
	n := 0
	err := error(nil)
	each(root, func(key K) bool {
		n += 1
		_, err = fmt.Fprintln(w, key)
		return nil == err
	})
	if nil == err && 0 == n {
		_, err = fmt.Fprintln(w, "Empty tree")
	}
	return err
}
