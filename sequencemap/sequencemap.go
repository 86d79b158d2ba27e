// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequencemap - a recognition sequence together with the
// set of enzymes that recognise it
package sequencemap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bitmark-inc/seqtree/fault"
)

// SequenceMap - key for the trees, ordered by sequence only
type SequenceMap struct {
	sequence string
	acronyms map[string]struct{}
}

// New - create a map for one sequence, a blank acronym adds nothing
// so that query keys can be made with New(sequence, "")
func New(sequence string, acronym string) *SequenceMap {
	m := &SequenceMap{
		sequence: sequence,
		acronyms: make(map[string]struct{}),
	}
	if "" != acronym {
		m.acronyms[acronym] = struct{}{}
	}
	return m
}

// Sequence - the recognition sequence
func (m *SequenceMap) Sequence() string {
	return m.sequence
}

// Acronyms - sorted list of enzyme acronyms
func (m *SequenceMap) Acronyms() []string {
	a := make([]string, 0, len(m.acronyms))
	for s := range m.acronyms {
		a = append(a, s)
	}
	sort.Strings(a)
	return a
}

// Compare - order by sequence, acronyms are ignored
func (m *SequenceMap) Compare(other *SequenceMap) int {
	return strings.Compare(m.sequence, other.sequence)
}

// Merge - add the other map's acronyms to this one
//
// both must hold the same sequence, otherwise the tree that called
// merge has descended to the wrong node
func (m *SequenceMap) Merge(other *SequenceMap) error {
	if other.sequence != m.sequence {
		return fmt.Errorf("merge %q into %q: %w", other.sequence, m.sequence, fault.ErrInvariantViolation)
	}
	for s := range other.acronyms {
		m.acronyms[s] = struct{}{}
	}
	return nil
}

// ClearAcronyms - remove all enzyme acronyms
func (m *SequenceMap) ClearAcronyms() {
	m.acronyms = make(map[string]struct{})
}

// Clone - independent copy
func (m *SequenceMap) Clone() *SequenceMap {
	c := &SequenceMap{
		sequence: m.sequence,
		acronyms: make(map[string]struct{}, len(m.acronyms)),
	}
	for s := range m.acronyms {
		c.acronyms[s] = struct{}{}
	}
	return c
}

// String - sequence followed by its acronyms
func (m *SequenceMap) String() string {
	if 0 == len(m.acronyms) {
		return m.sequence
	}
	return m.sequence + " " + strings.Join(m.Acronyms(), " ")
}
