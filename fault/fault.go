// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrEmptyContainer       = EmptyError("container has no eligible key")
	ErrInvalidDirectory     = InvalidError("path is not a valid directory")
	ErrInvalidFileName      = InvalidError("file name is not a plain name")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidRecord        = InvalidError("invalid database record")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTreeKind      = InvalidError("invalid tree kind")
	ErrInvariantViolation   = InvariantError("tree invariant violated")
	ErrMissingConfiguration = InvalidError("configuration did not return a table")
	ErrNotFoundDatabase     = NotFoundError("database file not found")
	ErrNotFoundQueries      = NotFoundError("queries file not found")
	ErrRequiredDatabase     = InvalidError("database file is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string     { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrEmpty(e error) bool     { var x EmptyError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool   { var x InvalidError; return errors.As(e, &x) }
func IsErrInvariant(e error) bool { var x InvariantError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
