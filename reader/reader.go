// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reader

import (
	"context"
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/asaregistry/registryd/metadatarecord"
)

// Source - which read strategy produced a record
type Source int

// enumerate the read strategies
const (
	FromBox Source = iota
	FromSimulation
)

// String - strategy name for logging
func (source Source) String() string {
	switch source {
	case FromBox:
		return "box"
	case FromSimulation:
		return "simulation"
	default:
		return "invalid"
	}
}

// Record - one fully reconstructed and verified metadata record
//
// Document is byte-identical regardless of Source for any committed
// record
type Record struct {
	AssetId  uint64
	Header   metadatarecord.Header
	Document []byte
	Source   Source
}

// Reader - the record retrieval capability
type Reader interface {
	GetMetadata(ctx context.Context, assetId uint64) (*Record, error)
}

const (
	recordCacheExpiry = 2 * time.Second
	recordCacheSweep  = 60 * time.Second
)

// short-lived record cache shared by both strategies
type recordCache struct {
	records *cache.Cache
}

func newRecordCache() recordCache {
	return recordCache{
		records: cache.New(recordCacheExpiry, recordCacheSweep),
	}
}

func cacheKey(assetId uint64) string {
	return strconv.FormatUint(assetId, 10)
}

func (rc recordCache) get(assetId uint64) *Record {
	if item, found := rc.records.Get(cacheKey(assetId)); found {
		return item.(*Record)
	}
	return nil
}

func (rc recordCache) put(record *Record) {
	rc.records.SetDefault(cacheKey(record.AssetId), record)
}

func (rc recordCache) invalidate(assetId uint64) {
	rc.records.Delete(cacheKey(assetId))
}
