// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"

	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/item"
)

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// NodeCount - number of nodes currently in the tree
func (tree *Tree[K]) NodeCount() int {
	return nodeCount(tree.root)
}

func nodeCount[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + nodeCount(p.left) + nodeCount(p.right)
}

// InternalPathLength - sum of the depths of all nodes, root is depth zero
func (tree *Tree[K]) InternalPathLength() int {
	return pathLength(tree.root, 0)
}

func pathLength[K any](p *node[K], depth int) int {
	if nil == p {
		return 0
	}
	return depth + pathLength(p.left, depth+1) + pathLength(p.right, depth+1)
}

// Height - height of the root, -1 if empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K any](p *node[K]) int {
	if nil == p {
		return -1
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Each - call f for every key in ascending order until f returns false
func (tree *Tree[K]) Each(f func(K) bool) {
	each(tree.root, f)
}

func each[K any](p *node[K], f func(K) bool) bool {
	if nil == p {
		return true
	}
	return each(p.left, f) && f(p.key) && each(p.right, f)
}

// PrintInOrder - write one key per line in ascending order
func (tree *Tree[K]) PrintInOrder(w io.Writer) error {
	if nil == tree.root {
		_, err := fmt.Fprintln(w, "Empty tree")
		return err
	}
	err := error(nil)
	each(tree.root, func(key K) bool {
		_, err = fmt.Fprintln(w, key)
		return nil == err
	})
	return err
}

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K]) Print(w io.Writer) error {
	if nil == tree.root {
		_, err := fmt.Fprintln(w, "Empty tree")
		return err
	}
	t := treeprint.NewWithRoot(fmt.Sprint(tree.root.key))
	addChildren(t, tree.root)
	_, err := io.WriteString(w, t.String())
	return err
}

func addChildren[K any](branch treeprint.Tree, p *node[K]) {
	if nil != p.right {
		addChildren(branch.AddMetaBranch("R", fmt.Sprint(p.right.key)), p.right)
	}
	if nil != p.left {
		addChildren(branch.AddMetaBranch("L", fmt.Sprint(p.left.key)), p.left)
	}
}

// Check - verify the ordering of every node
func (tree *Tree[K]) Check() error {
	return check(tree.root, nil, nil)
}

func check[K item.Item[K]](p *node[K], low *node[K], high *node[K]) error {
	if nil == p {
		return nil
	}
	if nil != low && low.key.Compare(p.key) >= 0 {
		return fmt.Errorf("node: %v not above: %v: %w", p.key, low.key, fault.ErrInvariantViolation)
	}
	if nil != high && high.key.Compare(p.key) <= 0 {
		return fmt.Errorf("node: %v not below: %v: %w", p.key, high.key, fault.ErrInvariantViolation)
	}
	if err := check(p.left, low, p); nil != err {
		return err
	}
	return check(p.right, p, high)
}

// MakeEmpty - discard all nodes
func (tree *Tree[K]) MakeEmpty() {
	tree.root = nil
}

// Clone - deep copy of the tree, keys are copied with item.Clone
func (tree *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{
		root: clone(tree.root),
	}
}

func clone[K any](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	return &node[K]{
		left:  clone(p.left),
		right: clone(p.right),
		key:   item.Clone(p.key),
	}
}

// Move - transfer all nodes to a new tree, leaving this one empty
func (tree *Tree[K]) Move() *Tree[K] {
	moved := &Tree[K]{
		root: tree.root,
	}
	tree.root = nil
	return moved
}
