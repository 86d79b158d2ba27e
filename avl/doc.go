// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - height balanced AVL trees of mergeable keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Two trees share one balancing engine:
//
//   Tree     - removal physically unlinks the node and rebalances
//   LazyTree - removal only marks the node as deleted; an insert of
//              the same key brings the node back with the new data
//
// Every node caches the height of its sub-tree (-1 for an empty
// sub-tree, 0 for a leaf) and no node may have sub-trees whose
// heights differ by more than one.  In a LazyTree deleted nodes still
// take part in balancing.
//
// Inserting a key that compares equal to an existing key merges the
// new key into the stored one; no duplicate nodes are created.
//
// Operations that descend the tree take a *counter.Counter that is
// incremented once per level descended; pass nil when the count is
// not required.
package avl
