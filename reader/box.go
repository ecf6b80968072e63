// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reader

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/gateway"
	"github.com/asaregistry/registryd/metadatarecord"
	"github.com/asaregistry/registryd/metadigest"
)

// BoxReader - reconstruct records directly from store entries
//
// one batched fetch retrieves the header and every page it declares;
// no program execution is involved
type BoxReader struct {
	recordCache
	gateway    gateway.Gateway
	parameters metadatarecord.Parameters
	log        *logger.L
}

// NewBox - create a direct store reader
func NewBox(g gateway.Gateway, parameters metadatarecord.Parameters) *BoxReader {
	return &BoxReader{
		recordCache: newRecordCache(),
		gateway:     g,
		parameters:  parameters,
		log:         logger.New("reader-box"),
	}
}

// Invalidate - drop a cached record after a known mutation
func (reader *BoxReader) Invalidate(assetId uint64) {
	reader.recordCache.invalidate(assetId)
}

// GetMetadata - fetch, reassemble and verify one record
func (reader *BoxReader) GetMetadata(ctx context.Context, assetId uint64) (*Record, error) {

	if record := reader.recordCache.get(assetId); nil != record {
		return record, nil
	}

	buffer, found, err := reader.gateway.FetchEntry(ctx, metadatarecord.HeaderKey(assetId))
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrMetadataNotFound
	}

	header, err := metadatarecord.UnpackHeader(buffer)
	if nil != err {
		return nil, err
	}
	if header.Flags.IsDeleted() {
		return nil, fault.ErrMetadataDeleted
	}
	if err := header.CheckPageCount(reader.parameters.PageCapacity); nil != err {
		return nil, err
	}

	keys := make([][]byte, header.PageCount)
	for i := uint16(0); i < header.PageCount; i += 1 {
		keys[i] = metadatarecord.PageKey(assetId, i)
	}
	entries, err := reader.gateway.FetchEntries(ctx, keys)
	if nil != err {
		return nil, err
	}

	document := make([]byte, 0, header.TotalLength)
	for i := uint16(0); i < header.PageCount; i += 1 {
		value, present := entries[string(keys[i])]
		if !present {
			reader.log.Warnf("asset: %d  page: %d missing", assetId, i)
			return nil, fault.ErrIncompleteRecord
		}
		page, err := metadatarecord.UnpackPage(assetId, i, value, reader.parameters.PageCapacity)
		if nil != err {
			return nil, err
		}
		document = append(document, page.Content...)
	}

	if uint32(len(document)) != header.TotalLength {
		return nil, fault.ErrIncompleteRecord
	}
	if metadigest.NewDigest(document) != header.ContentHash {
		reader.log.Errorf("asset: %d  content hash mismatch", assetId)
		return nil, fault.ErrMetadataHashMismatch
	}

	record := &Record{
		AssetId:  assetId,
		Header:   *header,
		Document: document,
		Source:   FromBox,
	}
	reader.recordCache.put(record)
	return record, nil
}
