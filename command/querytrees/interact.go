// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/seqtree/counter"
	"github.com/bitmark-inc/seqtree/sequencemap"
)

const (
	prompt   = "Recognition Sequence [or enter 'q' to quit]: "
	quit     = "q"
	notFound = "Element not found in tree."
)

// lookup part of the tree
type finder interface {
	Find(key *sequencemap.SequenceMap, c *counter.Counter) (*sequencemap.SequenceMap, bool)
}

// answer queries until "q" or end of input, returns the number of
// queries answered
func interact(tree finder, r io.Reader, w io.Writer, showCalls bool) (int, error) {

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n := 0
	for {
		if _, err := io.WriteString(w, prompt); nil != err {
			return n, err
		}
		if !scanner.Scan() {
			_, err := io.WriteString(w, "\n")
			if nil == err {
				err = scanner.Err()
			}
			return n, err
		}

		query := scanner.Text()
		if quit == query {
			return n, nil
		}
		n += 1

		var c counter.Counter
		answer := notFound
		if key, ok := tree.Find(sequencemap.New(query, ""), &c); ok {
			answer = strings.Join(key.Acronyms(), " ")
		}

		if _, err := fmt.Fprintln(w, answer); nil != err {
			return n, err
		}
		if showCalls {
			if _, err := fmt.Fprintf(w, "Recursive calls: %d\n", c.Uint64()); nil != err {
				return n, err
			}
		}
	}
}
