// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"encoding/binary"

	"github.com/asaregistry/registryd/fault"
)

// pageOverhead - bytes of framing around page content: the uint16
// big endian length prefix
const pageOverhead = 2

// Page - one fixed capacity shard of a metadata document
type Page struct {
	AssetId uint64 `json:"assetId,string"`
	Index   uint16 `json:"index"`
	Content []byte `json:"content"`
}

// Pack - encode as length prefixed content
//
// content must fit the uint16 length prefix
func (page *Page) Pack() ([]byte, error) {
	if len(page.Content) > 0xffff {
		return nil, fault.ErrPageContentTooLarge
	}
	buffer := make([]byte, pageOverhead+len(page.Content))
	binary.BigEndian.PutUint16(buffer, uint16(len(page.Content)))
	copy(buffer[pageOverhead:], page.Content)
	return buffer, nil
}

// UnpackPage - decode a packed page entry
//
// the declared length must exactly frame the buffer and stay within
// the page capacity of the registry instance
func UnpackPage(assetId uint64, index uint16, buffer []byte, capacity int) (*Page, error) {
	if len(buffer) < pageOverhead {
		return nil, fault.ErrPageLengthIsInvalid
	}

	contentLength := int(binary.BigEndian.Uint16(buffer))
	if pageOverhead+contentLength != len(buffer) {
		return nil, fault.ErrPageLengthIsInvalid
	}
	if contentLength > capacity {
		return nil, fault.ErrPageContentTooLarge
	}

	content := make([]byte, contentLength)
	copy(content, buffer[pageOverhead:])

	return &Page{
		AssetId: assetId,
		Index:   index,
		Content: content,
	}, nil
}
