// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// maximum permitted height difference between two sibling sub-trees
const allowedImbalance = 1

// height of a sub-tree, -1 if empty
func height[K any](p *node[K]) int {
	if nil == p {
		return -1
	}
	return p.height
}

func maxHeight(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

// recompute cached height from the children
func fixHeight[K any](p *node[K]) {
	p.height = 1 + maxHeight(height(p.left), height(p.right))
}

// restore balance at *pp; the sub-trees of *pp must already be
// balanced and differ in height by at most two
func balance[K any](pp **node[K]) {
	p := *pp
	if nil == p {
		return
	}

	if height(p.left)-height(p.right) > allowedImbalance {
		if height(p.left.left) >= height(p.left.right) {
			rotateWithLeftChild(pp) // single LL rotation
		} else {
			doubleWithLeftChild(pp) // double LR rotation
		}
	} else if height(p.right)-height(p.left) > allowedImbalance {
		if height(p.right.right) >= height(p.right.left) {
			rotateWithRightChild(pp) // single RR rotation
		} else {
			doubleWithRightChild(pp) // double RL rotation
		}
	}
	fixHeight(*pp)
}

// rotate *pp with its left child
func rotateWithLeftChild[K any](pp **node[K]) {
	k2 := *pp
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	fixHeight(k2)
	fixHeight(k1)
	*pp = k1
}

// rotate *pp with its right child
func rotateWithRightChild[K any](pp **node[K]) {
	k1 := *pp
	k2 := k1.right
	k1.right = k2.left
	k2.left = k1
	fixHeight(k1)
	fixHeight(k2)
	*pp = k2
}

// left child rotates with its right child, then *pp with the new
// left child
func doubleWithLeftChild[K any](pp **node[K]) {
	rotateWithRightChild(&(*pp).left)
	rotateWithLeftChild(pp)
}

// right child rotates with its left child, then *pp with the new
// right child
func doubleWithRightChild[K any](pp **node[K]) {
	rotateWithLeftChild(&(*pp).right)
	rotateWithRightChild(pp)
}
