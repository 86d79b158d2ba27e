// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test data and logger setup
package fixtures

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
)

const (
	logDirectory = "testing"
	LogCategory  = "testing"
)

// Database - a small enzyme database with a header, a duplicate
// sequence and a multi-sequence record
//
// AVL shape after loading:
//
//          GAATTC
//         /      \
//     AGTACT    TTATAA
//      /
//   AAGCTT
const Database = `REBASE version 502                                              bairoch.502

    =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=
    REBASE, The Restriction Enzyme Database   http://rebase.neb.com
    =-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=

AanI/TTATAA//
EcoRI/GAATTC//
FunI/AGTACT/GAATTC//
HindIII/AAGCTT//
`

// Queries - three present, one absent
var Queries = []string{
	"GAATTC",
	"AAGCTT",
	"CCCCCC",
	"TTATAA",
}

// QueryText - Queries as file content
func QueryText() string {
	return strings.Join(Queries, "\n") + "\n"
}

// WriteFile - create a file under directory, returning its path
func WriteFile(directory string, name string, content string) (string, error) {
	fileName := filepath.Join(directory, name)
	err := os.WriteFile(fileName, []byte(content), 0600)
	return fileName, err
}

// LogConfiguration - logger settings for tests, files are kept in
// the "testing" directory below the package under test
func LogConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: logDirectory,
		File:      LogCategory + ".log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
}

// SetupTestLogger - start logging into a fresh test directory
func SetupTestLogger() error {
	if err := os.RemoveAll(logDirectory); nil != err {
		return err
	}
	if err := os.Mkdir(logDirectory, 0700); nil != err {
		return err
	}
	return logger.Initialise(LogConfiguration())
}

// TeardownTestLogger - stop logging and remove the test directory
func TeardownTestLogger() error {
	logger.Finalise()
	return os.RemoveAll(logDirectory)
}
