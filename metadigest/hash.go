// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadigest

import (
	"encoding/binary"
)

// domain separation prefixes
//
// each commitment hashes a distinct prefix so a header preimage can
// never collide with a page or document preimage
const (
	headerDomain   = "arc0089/header"
	pageDomain     = "arc0089/page"
	metadataDomain = "arc0089/am"
)

// HeaderHash - commitment to the header fields of one asset record
//
// hh = H(domain || asset id || flags || total length)
func HeaderHash(assetId uint64, flags uint16, totalLength uint32) Digest {
	buffer := make([]byte, 0, len(headerDomain)+8+2+4)
	buffer = append(buffer, headerDomain...)
	buffer = appendUint64(buffer, assetId)
	buffer = appendUint16(buffer, flags)
	buffer = appendUint32(buffer, totalLength)
	return NewDigest(buffer)
}

// PageHash - commitment to a single page of an asset record
//
// ph[i] = H(domain || asset id || page index || content length || content)
func PageHash(assetId uint64, pageIndex uint16, content []byte) Digest {
	buffer := make([]byte, 0, len(pageDomain)+8+2+2+len(content))
	buffer = append(buffer, pageDomain...)
	buffer = appendUint64(buffer, assetId)
	buffer = appendUint16(buffer, pageIndex)
	buffer = appendUint16(buffer, uint16(len(content)))
	buffer = append(buffer, content...)
	return NewDigest(buffer)
}

// MetadataHash - commitment binding a whole document to its header
//
// am = H(domain || hh || ph[0] || ph[1] || ...)
//
// an empty document has no pages so the chain is just the header hash
func MetadataHash(assetId uint64, flags uint16, document []byte, capacity int) Digest {
	hh := HeaderHash(assetId, flags, uint32(len(document)))

	buffer := make([]byte, 0, len(metadataDomain)+Length*(1+(len(document)+capacity-1)/capacity))
	buffer = append(buffer, metadataDomain...)
	buffer = append(buffer, hh[:]...)

	for i := 0; i < len(document); i += capacity {
		end := i + capacity
		if end > len(document) {
			end = len(document)
		}
		ph := PageHash(assetId, uint16(i/capacity), document[i:end])
		buffer = append(buffer, ph[:]...)
	}
	return NewDigest(buffer)
}

// Verify - check a reconstructed document against its committed hash
//
// a false result is a tampered or corrupt condition and must be
// surfaced to the caller, never silently repaired
func Verify(assetId uint64, flags uint16, document []byte, capacity int, expected Digest) bool {
	return MetadataHash(assetId, flags, document, capacity) == expected
}

func appendUint16(buffer []byte, value uint16) []byte {
	valueBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(valueBytes, value)
	return append(buffer, valueBytes...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	valueBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(valueBytes, value)
	return append(buffer, valueBytes...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(valueBytes, value)
	return append(buffer, valueBytes...)
}
