// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
)

// OpKind - type code for planned store mutations
type OpKind int

// enumerate the possible operations
const (
	PutHeader OpKind = iota
	PutPage
	DeleteHeader
	DeletePage
)

// String - operation kind name for logging
func (k OpKind) String() string {
	switch k {
	case PutHeader:
		return "put-header"
	case PutPage:
		return "put-page"
	case DeleteHeader:
		return "delete-header"
	case DeletePage:
		return "delete-page"
	default:
		return "invalid"
	}
}

// Operation - one planned store mutation
//
// Value is nil for deletes
type Operation struct {
	Kind  OpKind
	Key   []byte
	Value []byte
}

// read-only program entry points reachable through SimulateCall
//
// each must return the same logical value as the corresponding store
// entries decode to
const (
	MethodGetHeader     = "arc89_get_metadata_header"
	MethodGetPage       = "arc89_get_metadata_page"
	MethodGetPagination = "arc89_get_metadata_pagination"
	MethodGetHash       = "arc89_get_metadata_hash"
	MethodGetHeaderHash = "arc89_get_metadata_header_hash"
	MethodGetPageHash   = "arc89_get_metadata_page_hash"
)

// Gateway - the ledger collaborator boundary
//
// the protocol core depends on exactly these four operations;
// transaction construction, signing, fees and retry policy all live
// behind the implementation
type Gateway interface {
	// FetchEntry - read one store entry, false if absent
	FetchEntry(ctx context.Context, key []byte) ([]byte, bool, error)

	// FetchEntries - batched read, missing keys are absent from the result
	FetchEntries(ctx context.Context, keys [][]byte) (map[string][]byte, error)

	// SimulateCall - read-only execution of a program entry point
	SimulateCall(ctx context.Context, method string, args ...uint64) ([]byte, error)

	// Submit - apply a planned operation sequence as one
	// all-or-nothing unit, in the given order
	Submit(ctx context.Context, ops []Operation) error
}
