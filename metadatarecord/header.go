// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"encoding/binary"

	"github.com/asaregistry/registryd/chunk"
	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/metadigest"
)

// byte sizes of the fixed header layout
const (
	flagsSize        = 2
	pageCountSize    = 2
	totalLengthSize  = 4
	contentHashSize  = metadigest.Length
	lastModifiedSize = 8
	deprecatedBySize = 8

	// HeaderLength - exact byte length of a packed header
	HeaderLength = flagsSize + pageCountSize + totalLengthSize +
		contentHashSize + lastModifiedSize + deprecatedBySize
)

// field offsets within the packed header
const (
	flagsOffset        = 0
	pageCountOffset    = flagsOffset + flagsSize
	totalLengthOffset  = pageCountOffset + pageCountSize
	contentHashOffset  = totalLengthOffset + totalLengthSize
	lastModifiedOffset = contentHashOffset + contentHashSize
	deprecatedByOffset = lastModifiedOffset + lastModifiedSize
)

// Header - the unpacked metadata header record
//
// one header exists per asset id; PageCount always equals
// ceil(TotalLength / page capacity) and ContentHash commits to the
// exact document bytes
type Header struct {
	Flags        Flags             `json:"flags"`
	PageCount    uint16            `json:"pageCount"`
	TotalLength  uint32            `json:"totalLength"`
	ContentHash  metadigest.Digest `json:"contentHash"`
	LastModified uint64            `json:"lastModified,string"` // round of last mutation
	DeprecatedBy uint64            `json:"deprecatedBy,string"` // successor registry id, 0 if none
}

// NewHeader - derive a header for a document about to be committed
//
// computes length, page count, the shortness bit and the content
// commitment; LastModified is stamped by the ledger, not here
func NewHeader(assetId uint64, flags Flags, document []byte, parameters Parameters) (*Header, error) {
	if len(document) > parameters.MaxDocumentSize() {
		return nil, fault.ErrMetadataTooLarge
	}

	flags = flags.Without(FlagShort)
	if len(document) <= parameters.ShortLimit {
		flags = flags.With(FlagShort)
	}

	return &Header{
		Flags:       flags,
		PageCount:   uint16(chunk.CountPages(len(document), parameters.PageCapacity)),
		TotalLength: uint32(len(document)),
		ContentHash: metadigest.NewDigest(document),
	}, nil
}

// Pack - encode to the fixed binary layout
//
// all integer fields are big endian
func (header *Header) Pack() []byte {
	buffer := make([]byte, HeaderLength)
	binary.BigEndian.PutUint16(buffer[flagsOffset:], uint16(header.Flags))
	binary.BigEndian.PutUint16(buffer[pageCountOffset:], header.PageCount)
	binary.BigEndian.PutUint32(buffer[totalLengthOffset:], header.TotalLength)
	copy(buffer[contentHashOffset:], header.ContentHash[:])
	binary.BigEndian.PutUint64(buffer[lastModifiedOffset:], header.LastModified)
	binary.BigEndian.PutUint64(buffer[deprecatedByOffset:], header.DeprecatedBy)
	return buffer
}

// UnpackHeader - decode a packed header
//
// the buffer must be exactly HeaderLength bytes; unknown flag bits are
// accepted and preserved so newer registry versions remain readable
func UnpackHeader(buffer []byte) (*Header, error) {
	if HeaderLength != len(buffer) {
		return nil, fault.ErrHeaderLengthIsInvalid
	}

	header := &Header{
		Flags:        Flags(binary.BigEndian.Uint16(buffer[flagsOffset:])),
		PageCount:    binary.BigEndian.Uint16(buffer[pageCountOffset:]),
		TotalLength:  binary.BigEndian.Uint32(buffer[totalLengthOffset:]),
		LastModified: binary.BigEndian.Uint64(buffer[lastModifiedOffset:]),
		DeprecatedBy: binary.BigEndian.Uint64(buffer[deprecatedByOffset:]),
	}
	copy(header.ContentHash[:], buffer[contentHashOffset:contentHashOffset+contentHashSize])
	return header, nil
}

// CheckPageCount - validate the page count invariant for a capacity
func (header *Header) CheckPageCount(capacity int) error {
	if int(header.PageCount) != chunk.CountPages(int(header.TotalLength), capacity) {
		return fault.ErrPageCountIsInvalid
	}
	return nil
}
