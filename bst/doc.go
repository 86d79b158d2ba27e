// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree of mergeable keys
//
// Note: an individual tree is not thread safe.
//
// The shape of the tree depends only on the insertion order; sorted
// input produces a linked list.  It is kept as the baseline against
// which the balanced trees in package avl are measured.
package bst
