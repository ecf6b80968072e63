// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

// sizing fixed by the deployed registry program
const (
	// DefaultPageCapacity - usable bytes per page entry after the
	// program's return framing is subtracted from the log limit
	DefaultPageCapacity = 1007

	// DefaultMaxPages - bound on pages per asset record
	DefaultMaxPages = 31

	// DefaultShortLimit - documents at or under this byte size are
	// flagged short and readable in a single program call
	DefaultShortLimit = 4096

	// storage cost escrow, in the ledger's smallest currency unit
	DefaultFlatCost = 2500
	DefaultByteCost = 400
)

// Parameters - sizing and cost parameters of one registry instance
//
// values are fixed at deployment; Defaults matches the reference
// deployment and is used when the program cannot be queried
type Parameters struct {
	PageCapacity int    `json:"pageCapacity"`
	MaxPages     int    `json:"maxPages"`
	ShortLimit   int    `json:"shortLimit"`
	FlatCost     uint64 `json:"flatCost"`
	ByteCost     uint64 `json:"byteCost"`
}

// Defaults - the reference deployment parameters
func Defaults() Parameters {
	return Parameters{
		PageCapacity: DefaultPageCapacity,
		MaxPages:     DefaultMaxPages,
		ShortLimit:   DefaultShortLimit,
		FlatCost:     DefaultFlatCost,
		ByteCost:     DefaultByteCost,
	}
}

// MaxDocumentSize - largest document a record can hold
func (parameters Parameters) MaxDocumentSize() int {
	return parameters.MaxPages * parameters.PageCapacity
}

// EntryCost - escrow cost of a single store entry
func (parameters Parameters) EntryCost(keyLength int, valueLength int) uint64 {
	return parameters.FlatCost + parameters.ByteCost*uint64(keyLength+valueLength)
}

// RecordCost - total escrow cost of a committed record: the header
// entry plus every page entry a document of the given size occupies
func (parameters Parameters) RecordCost(totalLength int) uint64 {
	cost := parameters.EntryCost(HeaderKeyLength, HeaderLength)

	remaining := totalLength
	for remaining > 0 {
		pageLength := parameters.PageCapacity
		if remaining < pageLength {
			pageLength = remaining
		}
		cost += parameters.EntryCost(PageKeyLength, pageOverhead+pageLength)
		remaining -= pageLength
	}
	return cost
}
