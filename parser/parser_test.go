// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser_test

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/parser"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

const database = `REBASE version 502
   rebase.enz    REBASE Enzymes
=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=
Please cite: Roberts, R.J.

AanI/TTA'TAA//
AarI/CACCTGCNNNN'NNNN/'NNNNNNNNGCAGGTG//
AasI/GACNNNN'NNGTC//
EcoRI/G'AATTC//
FunI/AGT'ACT/G'AATTC//
` + "HindIII/A'AGCTT//\r\n"

func TestParseDatabase(t *testing.T) {
	maps := []*sequencemap.SequenceMap{}
	totals, err := parser.ParseDatabase(strings.NewReader(database), func(m *sequencemap.SequenceMap) error {
		maps = append(maps, m)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, parser.Totals{Lines: 11, Records: 6, Sequences: 8}, totals)

	expected := []string{
		"TTA'TAA AanI",
		"CACCTGCNNNN'NNNN AarI",
		"'NNNNNNNNGCAGGTG AarI",
		"GACNNNN'NNGTC AasI",
		"G'AATTC EcoRI",
		"AGT'ACT FunI",
		"G'AATTC FunI",
		"A'AGCTT HindIII",
	}
	actual := make([]string, len(maps))
	for i, m := range maps {
		actual[i] = m.String()
	}
	assert.Equal(t, expected, actual)
}

func TestParseInsertError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	totals, err := parser.ParseDatabase(strings.NewReader(database), func(*sequencemap.SequenceMap) error {
		n += 1
		if 3 == n {
			return stop
		}
		return nil
	})
	assert.True(t, errors.Is(err, stop), "error: %v", err)
	assert.Contains(t, err.Error(), "line: 7")
	assert.Equal(t, 3, totals.Sequences)
}

func TestParseEmptyAcronym(t *testing.T) {
	_, err := parser.ParseDatabase(strings.NewReader("header\n/GAATTC//\n"), func(*sequencemap.SequenceMap) error {
		return nil
	})
	assert.True(t, fault.IsErrInvalid(err), "error: %v", err)
	assert.Contains(t, err.Error(), "line: 2")
}

func TestReadSequences(t *testing.T) {
	s, err := parser.ReadSequences(strings.NewReader("GAATTC\n\n  AAGCTT \r\nTTTAAA"))
	require.NoError(t, err)
	assert.Equal(t, []string{"GAATTC", "AAGCTT", "TTTAAA"}, s)
}

func TestParseLongRecord(t *testing.T) {
	long := strings.Repeat("A", 100000)
	maps := []*sequencemap.SequenceMap{}
	totals, err := parser.ParseDatabase(strings.NewReader("header\nLongI/"+long+"/GAATTC//\n"), func(m *sequencemap.SequenceMap) error {
		maps = append(maps, m)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, parser.Totals{Lines: 2, Records: 1, Sequences: 2}, totals)
	require.Len(t, maps, 2)
	assert.Equal(t, long+" LongI", maps[0].String())

	s, err := parser.ReadSequences(strings.NewReader("GAATTC\n" + long + "\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"GAATTC", long}, s)
}

func TestParseLineTooLong(t *testing.T) {
	tooLong := strings.Repeat("A", 2*1024*1024)
	_, err := parser.ParseDatabase(strings.NewReader("X/"+tooLong+"//\n"), func(*sequencemap.SequenceMap) error {
		return nil
	})
	assert.True(t, errors.Is(err, bufio.ErrTooLong), "error: %v", err)

	_, err = parser.ReadSequences(strings.NewReader(tooLong))
	assert.True(t, errors.Is(err, bufio.ErrTooLong), "error: %v", err)
}
