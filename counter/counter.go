// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - count recursive calls made by tree operations
//
// A nil *Counter is valid: increments are discarded and reads return
// zero, so operations that are not being measured pass nil.
package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can only move forward
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	if nil == ic {
		return 0
	}
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	if nil == ic {
		return 0
	}
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	if nil == ic {
		return 0
	}
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Reset - set back to zero, returns the previous value
func (ic *Counter) Reset() uint64 {
	if nil == ic {
		return 0
	}
	return atomic.SwapUint64((*uint64)(ic), 0)
}
