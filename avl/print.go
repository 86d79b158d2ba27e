// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K]) Print(w io.Writer) error {
	return printTree(w, tree.root)
}

// Print - display an ASCII graphic representation of the tree,
// deleted nodes are marked
func (tree *LazyTree[K]) Print(w io.Writer) error {
	return printTree(w, tree.root)
}

func printTree[K any](w io.Writer, root *node[K]) error {
	if nil == root {
		_, err := fmt.Fprintln(w, "Empty tree")
		return err
	}
	t := treeprint.NewWithRoot(label(root))
	addChildren(t, root)
	_, err := io.WriteString(w, t.String())
	return err
}

// add the sub-trees of p below branch, right (higher) first so
// the drawing reads top to bottom in descending order
func addChildren[K any](branch treeprint.Tree, p *node[K]) {
	if nil != p.right {
		addChildren(branch.AddMetaBranch("R", label(p.right)), p.right)
	}
	if nil != p.left {
		addChildren(branch.AddMetaBranch("L", label(p.left)), p.left)
	}
}

func label[K any](p *node[K]) string {
	if p.deleted {
		return fmt.Sprintf("%v ^%d (deleted)", p.key, p.height)
	}
	return fmt.Sprintf("%v ^%d", p.key, p.height)
}
