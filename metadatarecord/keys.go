// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"encoding/binary"

	"github.com/asaregistry/registryd/fault"
)

// store key lengths
//
// the header key is the asset id alone, page keys append the page
// index; keys for different assets can therefore never collide and no
// directory structure is needed to locate a record
const (
	HeaderKeyLength = 8
	PageKeyLength   = HeaderKeyLength + 2
)

// HeaderKey - store key of an asset's header entry: 8 byte big endian asset id
func HeaderKey(assetId uint64) []byte {
	key := make([]byte, HeaderKeyLength)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

// PageKey - store key of one page entry: header key plus big endian page index
func PageKey(assetId uint64, index uint16) []byte {
	key := make([]byte, PageKeyLength)
	binary.BigEndian.PutUint64(key, assetId)
	binary.BigEndian.PutUint16(key[HeaderKeyLength:], index)
	return key
}

// AssetIdFromKey - recover the asset id from a header or page key
func AssetIdFromKey(key []byte) (uint64, error) {
	if len(key) != HeaderKeyLength && len(key) != PageKeyLength {
		return 0, fault.ErrKeyLength
	}
	return binary.BigEndian.Uint64(key[:HeaderKeyLength]), nil
}
