// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type IntegrityError GenericError
type InvalidError GenericError
type LengthError GenericError
type LockedError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order within each class
var (
	ErrAlreadyInitialised = ProcessError("already initialised")
	ErrNotInitialised     = ProcessError("not initialised")
	ErrSubmitAborted      = ProcessError("submit aborted")

	ErrMetadataAlreadyExists = ExistsError("metadata already exists")

	ErrMetadataDeleted  = NotFoundError("metadata deleted")
	ErrMetadataNotFound = NotFoundError("metadata not found")
	ErrNoSuchMethod     = NotFoundError("no such simulation method")

	ErrAssetIdTooLarge           = InvalidError("asset id too large")
	ErrComplianceFragmentInvalid = InvalidError("compliance fragment is invalid")
	ErrFlagIsNotSettable         = InvalidError("flag is not settable")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidUri                = InvalidError("invalid uri")
	ErrPageCapacityIsInvalid     = InvalidError("page capacity is invalid")
	ErrPageIndexOutOfRange       = InvalidError("page index out of range")
	ErrRegistryIdIsInvalid       = InvalidError("registry id is invalid")
	ErrUriMissingAuthority       = InvalidError("uri missing authority")
	ErrUriMissingBoxParameter    = InvalidError("uri missing box parameter")
	ErrUriMissingRegistryId      = InvalidError("uri missing registry id")
	ErrUriPartial                = InvalidError("uri is partial")
	ErrUriWrongScheme            = InvalidError("uri has wrong scheme")
	ErrWrongNetworkAuthority     = InvalidError("wrong network authority")

	ErrHeaderLengthIsInvalid = LengthError("header length is invalid")
	ErrKeyLength             = LengthError("key length is invalid")
	ErrMetadataTooLarge      = LengthError("metadata too large")
	ErrPageContentTooLarge   = LengthError("page content too large")
	ErrPageLengthIsInvalid   = LengthError("page length is invalid")

	ErrIncompleteRecord   = RecordError("incomplete record")
	ErrMetadataDrift      = RecordError("metadata changed between reads")
	ErrPageCountIsInvalid = RecordError("page count is invalid")

	ErrFlagIsNotReversible = LockedError("flag is not reversible")
	ErrMetadataImmutable   = LockedError("metadata is immutable")

	ErrMetadataHashMismatch = IntegrityError("metadata hash mismatch")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e IntegrityError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e LockedError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrIntegrity - digest mismatch class, never retryable
func IsErrIntegrity(e error) bool { _, ok := e.(IntegrityError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrLocked(e error) bool    { _, ok := e.(LockedError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }

// IsErrRecord - torn or partially visible record class, retry may succeed
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
