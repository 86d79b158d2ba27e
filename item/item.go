// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - contracts for keys stored in the trees
package item

// Item - a key item must order itself against another key of the
// same type and absorb a key that compares equal
type Item[K any] interface {
	Compare(K) int // for left/right ordering of items: -1, 0, +1
	Merge(K) error // only called when Compare returned zero
}

// Clearable - a key whose associated data can be discarded, used
// when a deleted key is brought back to life by a new insert
type Clearable[K any] interface {
	Item[K]
	ClearAcronyms()
}

// Cloner - optional: keys that are mutated by Merge (i.e. pointers)
// should implement this so that copied trees do not share data
type Cloner[K any] interface {
	Clone() K
}

// Clone - copy a key, uses the Cloner interface if available,
// otherwise the key value itself is the copy
func Clone[K any](key K) K {
	if c, ok := any(key).(Cloner[K]); ok {
		return c.Clone()
	}
	return key
}
