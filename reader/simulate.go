// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reader

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/gateway"
	"github.com/asaregistry/registryd/metadatarecord"
	"github.com/asaregistry/registryd/metadigest"
)

// SimulateReader - reconstruct records through the program read entry
// points
//
// every value is produced by simulated program execution; the decoded
// result must match the BoxReader byte for byte on any committed record
type SimulateReader struct {
	recordCache
	gateway    gateway.Gateway
	parameters metadatarecord.Parameters
	log        *logger.L
}

// NewSimulate - create a program execution reader
func NewSimulate(g gateway.Gateway, parameters metadatarecord.Parameters) *SimulateReader {
	return &SimulateReader{
		recordCache: newRecordCache(),
		gateway:     g,
		parameters:  parameters,
		log:         logger.New("reader-simulate"),
	}
}

// Invalidate - drop a cached record after a known mutation
func (reader *SimulateReader) Invalidate(assetId uint64) {
	reader.recordCache.invalidate(assetId)
}

// GetMetadata - reconstruct one record via simulated program calls
//
// page reads are separate simulations, so the header is read again
// afterwards; a changed modification round means another writer
// interleaved and the assembly cannot be trusted
func (reader *SimulateReader) GetMetadata(ctx context.Context, assetId uint64) (*Record, error) {

	if record := reader.recordCache.get(assetId); nil != record {
		return record, nil
	}

	header, err := reader.fetchHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	if header.Flags.IsDeleted() {
		return nil, fault.ErrMetadataDeleted
	}
	if err := header.CheckPageCount(reader.parameters.PageCapacity); nil != err {
		return nil, err
	}

	// the pagination entry point must agree with the header
	pagination, err := reader.gateway.SimulateCall(ctx, gateway.MethodGetPagination, assetId)
	if nil != err {
		return nil, err
	}
	if 8 != len(pagination) ||
		binary.BigEndian.Uint32(pagination[0:4]) != header.TotalLength ||
		binary.BigEndian.Uint16(pagination[4:6]) != header.PageCount {
		reader.log.Errorf("asset: %d  pagination disagrees with header", assetId)
		return nil, fault.ErrMetadataDrift
	}

	document := make([]byte, 0, header.TotalLength)
	for i := uint16(0); i < header.PageCount; i += 1 {
		content, err := reader.gateway.SimulateCall(ctx, gateway.MethodGetPage, assetId, uint64(i))
		if nil != err {
			return nil, err
		}
		document = append(document, content...)
	}

	// re-read the header: an advanced round means a writer interleaved
	check, err := reader.fetchHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	if check.LastModified != header.LastModified {
		reader.log.Warnf("asset: %d  modified during paged read: %d -> %d",
			assetId, header.LastModified, check.LastModified)
		return nil, fault.ErrMetadataDrift
	}

	if uint32(len(document)) != header.TotalLength {
		return nil, fault.ErrIncompleteRecord
	}
	if metadigest.NewDigest(document) != header.ContentHash {
		reader.log.Errorf("asset: %d  content hash mismatch", assetId)
		return nil, fault.ErrMetadataHashMismatch
	}

	// crosscheck the program's own commitment derivation
	committed, err := reader.gateway.SimulateCall(ctx, gateway.MethodGetHash, assetId)
	if nil != err {
		return nil, err
	}
	derived := metadigest.MetadataHash(assetId, uint16(header.Flags), document, reader.parameters.PageCapacity)
	if !bytes.Equal(committed, derived[:]) {
		reader.log.Errorf("asset: %d  commitment mismatch", assetId)
		return nil, fault.ErrMetadataHashMismatch
	}

	record := &Record{
		AssetId:  assetId,
		Header:   *header,
		Document: document,
		Source:   FromSimulation,
	}
	reader.recordCache.put(record)
	return record, nil
}

func (reader *SimulateReader) fetchHeader(ctx context.Context, assetId uint64) (*metadatarecord.Header, error) {
	buffer, err := reader.gateway.SimulateCall(ctx, gateway.MethodGetHeader, assetId)
	if nil != err {
		return nil, err
	}
	return metadatarecord.UnpackHeader(buffer)
}
