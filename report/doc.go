// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report - measure a tree built from an enzyme database
//
// the measurements are:
//
//   * recursive calls made while inserting every database sequence
//   * node count, average depth and the ratio of average depth to log2 n
//   * successful searches of a query list and the average recursive calls
//   * successful removal of every other query and the average recursive calls
//   * the shape statistics again after the removals
package report
