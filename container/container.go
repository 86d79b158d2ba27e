// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package container - common interface to the three tree kinds
package container

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/seqtree/avl"
	"github.com/bitmark-inc/seqtree/bst"
	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/item"
)

// Tree - operations shared by all tree kinds
//
// the counter argument may be nil
type Tree[K any] interface {
	Insert(key K, c *counter.Counter) (bool, error)
	Remove(key K, c *counter.Counter) bool
	Contains(key K, c *counter.Counter) bool
	Find(key K, c *counter.Counter) (K, bool)
	FindMin() (K, error)
	FindMax() (K, error)
	IsEmpty() bool
	NodeCount() int
	InternalPathLength() int
	Height() int
	Each(f func(K) bool)
	PrintInOrder(w io.Writer) error
	Print(w io.Writer) error
	MakeEmpty()
}

// Kind - selects the tree implementation
type Kind string

// the supported kinds
const (
	BST     Kind = "bst"
	AVL     Kind = "avl"
	LazyAVL Kind = "lazyavl"
)

// Kinds - all kinds in display order
var Kinds = []Kind{BST, AVL, LazyAVL}

// compile time checks
var (
	_ Tree[intKey] = (*bst.Tree[intKey])(nil)
	_ Tree[intKey] = (*avl.Tree[intKey])(nil)
	_ Tree[intKey] = (*avl.LazyTree[intKey])(nil)
)

// ParseKind - case insensitive conversion of a kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, kind := range Kinds {
		if k == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, fault.ErrInvalidTreeKind)
}

// String - descriptive name of a kind
func (k Kind) String() string {
	switch k {
	case BST:
		return "Binary Search Tree"
	case AVL:
		return "AVL Tree"
	case LazyAVL:
		return "AVL Tree with Lazy Deletion"
	default:
		return string(k)
	}
}

// New - create an empty tree of the given kind
func New[K item.Clearable[K]](kind Kind) (Tree[K], error) {
	switch kind {
	case BST:
		return bst.New[K](), nil
	case AVL:
		return avl.New[K](), nil
	case LazyAVL:
		return avl.NewLazy[K](), nil
	default:
		return nil, fmt.Errorf("%q: %w", string(kind), fault.ErrInvalidTreeKind)
	}
}

// minimal key for the compile time checks
type intKey int

func (i intKey) Compare(j intKey) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	}
	return 0
}

func (i intKey) Merge(intKey) error { return nil }
func (i intKey) ClearAcronyms()     {}
