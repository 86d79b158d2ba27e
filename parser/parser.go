// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parser - read the enzyme database and sequence lists
//
// database records have the form:
//
//   ACRONYM/SEQUENCE/SEQUENCE/…/SEQUENCE//
//
// any line not ending in "//" is part of the file header and is
// ignored
//
// lines longer than maximumLineLength bytes are rejected with
// bufio.ErrTooLong
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/seqtree/fault"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

const (
	recordTerminator = "//"
	fieldSeparator   = "/"

	initialBufferSize = 64 * 1024
	maximumLineLength = 1024 * 1024
)

// line scanner accepting lines up to maximumLineLength
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maximumLineLength)
	return scanner
}

// Totals - counts from parsing a database
type Totals struct {
	Lines     int `json:"lines"`
	Records   int `json:"records"`
	Sequences int `json:"sequences"`
}

// ParseDatabase - call insert for every sequence of every record
//
// an error from insert stops the parse and is returned with the
// line number added
func ParseDatabase(r io.Reader, insert func(*sequencemap.SequenceMap) error) (Totals, error) {
	totals := Totals{}
	scanner := newScanner(r)

	for scanner.Scan() {
		totals.Lines += 1
		line := strings.TrimRight(scanner.Text(), "\r")

		if !strings.HasSuffix(line, recordTerminator) {
			continue // header
		}

		fields := strings.Split(strings.TrimSuffix(line, recordTerminator), fieldSeparator)
		acronym := strings.TrimSpace(fields[0])
		if "" == acronym {
			return totals, fmt.Errorf("line: %d: %w", totals.Lines, fault.ErrInvalidRecord)
		}
		totals.Records += 1

		for _, sequence := range fields[1:] {
			sequence = strings.TrimSpace(sequence)
			if "" == sequence {
				continue
			}
			totals.Sequences += 1
			if err := insert(sequencemap.New(sequence, acronym)); nil != err {
				return totals, fmt.Errorf("line: %d: %w", totals.Lines, err)
			}
		}
	}
	return totals, scanner.Err()
}

// ReadSequences - one sequence per line, blank lines are skipped
func ReadSequences(r io.Reader) ([]string, error) {
	sequences := []string{}
	scanner := newScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" != s {
			sequences = append(sequences, s)
		}
	}
	return sequences, scanner.Err()
}
