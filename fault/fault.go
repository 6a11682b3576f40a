// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidCycles        = InvalidError("cycles must be greater than zero")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidMaximumSize   = InvalidError("maximum size must be greater than zero")
	ErrInvalidNumber        = InvalidError("invalid number")
	ErrInvalidProfile       = InvalidError("profile must return a table")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrPrintNotSupported    = InvalidError("set cannot be printed")
	ErrUnknownDiscipline    = InvalidError("unknown balancing discipline")
	ErrWriteStatistics      = ProcessError("write statistics failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }

// Invariantf - create a formatted invariant error, used by the tree
// consistency checkers
func Invariantf(format string, arguments ...interface{}) error {
	return InvariantError(fmt.Sprintf(format, arguments...))
}
