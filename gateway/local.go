// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/metadatarecord"
	"github.com/asaregistry/registryd/metadigest"
	"github.com/asaregistry/registryd/storage"
)

// Local - gateway backed by the local store
//
// simulation executes the program entry points directly against the
// stored entries, so both read paths observe the same committed state
type Local struct {
	sync.Mutex
	log        *logger.L
	parameters metadatarecord.Parameters
	round      uint64
}

// NewLocal - create a gateway over the initialised store
func NewLocal(parameters metadatarecord.Parameters) (*Local, error) {
	if !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}
	local := &Local{
		log:        logger.New("gateway"),
		parameters: parameters,
	}
	return local, nil
}

// pool corresponding to a store key
func poolFor(key []byte) (*storage.PoolHandle, error) {
	switch len(key) {
	case metadatarecord.HeaderKeyLength:
		return storage.Pool.Headers, nil
	case metadatarecord.PageKeyLength:
		return storage.Pool.Pages, nil
	default:
		return nil, fault.ErrKeyLength
	}
}

// FetchEntry - read one store entry
func (local *Local) FetchEntry(ctx context.Context, key []byte) ([]byte, bool, error) {
	if err := ctx.Err(); nil != err {
		return nil, false, err
	}
	pool, err := poolFor(key)
	if nil != err {
		return nil, false, err
	}
	value := pool.Get(key)
	if nil == value {
		return nil, false, nil
	}
	return value, true, nil
}

// FetchEntries - batched read, absent keys are left out of the result
func (local *Local) FetchEntries(ctx context.Context, keys [][]byte) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		value, found, err := local.FetchEntry(ctx, key)
		if nil != err {
			return nil, err
		}
		if found {
			result[string(key)] = value
		}
	}
	return result, nil
}

// SimulateCall - execute a read-only program entry point
func (local *Local) SimulateCall(ctx context.Context, method string, args ...uint64) ([]byte, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	switch method {

	case MethodGetHeader:
		if 1 != len(args) {
			return nil, fault.ErrNoSuchMethod
		}
		buffer, _, err := local.fetchHeader(args[0])
		if nil != err {
			return nil, err
		}
		return buffer, nil

	case MethodGetPagination:
		if 1 != len(args) {
			return nil, fault.ErrNoSuchMethod
		}
		_, header, err := local.fetchHeader(args[0])
		if nil != err {
			return nil, err
		}
		buffer := make([]byte, 8)
		binary.BigEndian.PutUint32(buffer[0:4], header.TotalLength)
		binary.BigEndian.PutUint16(buffer[4:6], header.PageCount)
		binary.BigEndian.PutUint16(buffer[6:8], uint16(local.parameters.PageCapacity))
		return buffer, nil

	case MethodGetHash:
		if 1 != len(args) {
			return nil, fault.ErrNoSuchMethod
		}
		_, header, err := local.fetchHeader(args[0])
		if nil != err {
			return nil, err
		}
		document, err := local.fetchDocument(args[0], header)
		if nil != err {
			return nil, err
		}
		digest := metadigest.MetadataHash(args[0], uint16(header.Flags), document, local.parameters.PageCapacity)
		return append([]byte{}, digest[:]...), nil

	case MethodGetHeaderHash:
		if 1 != len(args) {
			return nil, fault.ErrNoSuchMethod
		}
		_, header, err := local.fetchHeader(args[0])
		if nil != err {
			return nil, err
		}
		digest := metadigest.HeaderHash(args[0], uint16(header.Flags), header.TotalLength)
		return append([]byte{}, digest[:]...), nil

	case MethodGetPage:
		if 2 != len(args) {
			return nil, fault.ErrNoSuchMethod
		}
		page, err := local.fetchPage(args[0], args[1])
		if nil != err {
			return nil, err
		}
		return page.Content, nil

	case MethodGetPageHash:
		if 2 != len(args) {
			return nil, fault.ErrNoSuchMethod
		}
		page, err := local.fetchPage(args[0], args[1])
		if nil != err {
			return nil, err
		}
		digest := metadigest.PageHash(args[0], page.Index, page.Content)
		return append([]byte{}, digest[:]...), nil

	default:
		return nil, fault.ErrNoSuchMethod
	}
}

func (local *Local) fetchHeader(assetId uint64) ([]byte, *metadatarecord.Header, error) {
	buffer := storage.Pool.Headers.Get(metadatarecord.HeaderKey(assetId))
	if nil == buffer {
		return nil, nil, fault.ErrMetadataNotFound
	}
	header, err := metadatarecord.UnpackHeader(buffer)
	if nil != err {
		return nil, nil, err
	}
	return buffer, header, nil
}

func (local *Local) fetchPage(assetId uint64, index uint64) (*metadatarecord.Page, error) {
	_, header, err := local.fetchHeader(assetId)
	if nil != err {
		return nil, err
	}
	if index >= uint64(header.PageCount) {
		return nil, fault.ErrPageIndexOutOfRange
	}
	buffer := storage.Pool.Pages.Get(metadatarecord.PageKey(assetId, uint16(index)))
	if nil == buffer {
		return nil, fault.ErrIncompleteRecord
	}
	return metadatarecord.UnpackPage(assetId, uint16(index), buffer, local.parameters.PageCapacity)
}

// joined content of all committed pages
func (local *Local) fetchDocument(assetId uint64, header *metadatarecord.Header) ([]byte, error) {
	document := make([]byte, 0, header.TotalLength)
	for i := uint16(0); i < header.PageCount; i += 1 {
		buffer := storage.Pool.Pages.Get(metadatarecord.PageKey(assetId, i))
		if nil == buffer {
			return nil, fault.ErrIncompleteRecord
		}
		page, err := metadatarecord.UnpackPage(assetId, i, buffer, local.parameters.PageCapacity)
		if nil != err {
			return nil, err
		}
		document = append(document, page.Content...)
	}
	return document, nil
}

// Submit - apply the operation sequence as one atomic store write
//
// header puts are stamped with the round of the submitting unit so
// concurrent readers can detect interleaved writes
func (local *Local) Submit(ctx context.Context, ops []Operation) error {
	if err := ctx.Err(); nil != err {
		return err
	}
	if 0 == len(ops) {
		return fault.ErrSubmitAborted
	}

	local.Lock()
	defer local.Unlock()

	local.round += 1

	batch := new(leveldb.Batch)

	for i, op := range ops {
		pool, err := poolFor(op.Key)
		if nil != err {
			return err
		}

		switch op.Kind {

		case PutHeader:
			header, err := metadatarecord.UnpackHeader(op.Value)
			if nil != err {
				return err
			}
			header.LastModified = local.round
			pool.BatchPut(batch, op.Key, header.Pack())

		case PutPage:
			pool.BatchPut(batch, op.Key, op.Value)

		case DeleteHeader, DeletePage:
			pool.BatchDelete(batch, op.Key)

		default:
			local.log.Errorf("submit: op[%d] invalid kind: %d", i, op.Kind)
			return fault.ErrSubmitAborted
		}
	}

	return storage.WriteBatch(batch)
}
