// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package planner

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/asaregistry/registryd/chunk"
	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/gateway"
	"github.com/asaregistry/registryd/metadatarecord"
)

// Plan - ordered operation sequence for one record mutation
//
// the caller must submit Ops in order as a single all-or-nothing unit;
// MBRDelta is the net balance requirement change the submission causes
type Plan struct {
	AssetId  uint64
	Ops      []gateway.Operation
	MBRDelta int64
}

// Planner - computes mutation plans against current store state
type Planner struct {
	gateway    gateway.Gateway
	parameters metadatarecord.Parameters
	log        *logger.L
}

// New - create a planner over a gateway
func New(g gateway.Gateway, parameters metadatarecord.Parameters) *Planner {
	return &Planner{
		gateway:    g,
		parameters: parameters,
		log:        logger.New("planner"),
	}
}

// current header for an asset, nil if the record is absent
func (planner *Planner) currentHeader(ctx context.Context, assetId uint64) (*metadatarecord.Header, error) {
	buffer, found, err := planner.gateway.FetchEntry(ctx, metadatarecord.HeaderKey(assetId))
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return metadatarecord.UnpackHeader(buffer)
}

// page put operations for a document, in ascending index order
func (planner *Planner) pagePuts(assetId uint64, document []byte) ([]gateway.Operation, error) {
	contents, err := chunk.Split(document, planner.parameters.PageCapacity)
	if nil != err {
		return nil, err
	}
	ops := make([]gateway.Operation, 0, len(contents))
	for i, content := range contents {
		page := metadatarecord.Page{
			AssetId: assetId,
			Index:   uint16(i),
			Content: content,
		}
		packed, err := page.Pack()
		if nil != err {
			return nil, err
		}
		ops = append(ops, gateway.Operation{
			Kind:  gateway.PutPage,
			Key:   metadatarecord.PageKey(assetId, uint16(i)),
			Value: packed,
		})
	}
	return ops, nil
}

// Create - plan storage of a new record
//
// legal only when no record exists; a deleted tombstone counts as
// absent, but its residual entries are swept before the fresh record
// lands
func (planner *Planner) Create(ctx context.Context, assetId uint64, flags metadatarecord.Flags, document []byte) (*Plan, error) {

	existing, err := planner.currentHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	residualPages := uint16(0)
	if nil != existing {
		if !existing.Flags.IsDeleted() {
			return nil, fault.ErrMetadataAlreadyExists
		}
		residualPages = existing.PageCount
	}

	header, err := metadatarecord.NewHeader(assetId, flags, document, planner.parameters)
	if nil != err {
		return nil, err
	}

	puts, err := planner.pagePuts(assetId, document)
	if nil != err {
		return nil, err
	}
	newPages := uint16(len(puts))

	// residual sweeps first, then pages, then the announcing header
	ops := make([]gateway.Operation, 0, int(residualPages)+len(puts)+1)
	for i := newPages; i < residualPages; i += 1 {
		ops = append(ops, gateway.Operation{
			Kind: gateway.DeletePage,
			Key:  metadatarecord.PageKey(assetId, i),
		})
	}
	ops = append(ops, puts...)
	ops = append(ops, gateway.Operation{
		Kind:  gateway.PutHeader,
		Key:   metadatarecord.HeaderKey(assetId),
		Value: header.Pack(),
	})

	planner.log.Debugf("create: asset: %d  pages: %d", assetId, newPages)

	return &Plan{
		AssetId:  assetId,
		Ops:      ops,
		MBRDelta: int64(planner.parameters.RecordCost(len(document))),
	}, nil
}

// Replace - plan an atomic document swap
//
// stale page deletions come first and the header rewrite comes last, so
// a direct store reader mid-sequence observes either the old record or
// an incomplete one; it can never see the new page count while a stale
// page is still present
func (planner *Planner) Replace(ctx context.Context, assetId uint64, document []byte) (*Plan, error) {

	existing, err := planner.currentHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	if nil == existing {
		return nil, fault.ErrMetadataNotFound
	}
	if existing.Flags.IsDeleted() {
		return nil, fault.ErrMetadataDeleted
	}
	if existing.Flags.IsLocked() {
		return nil, fault.ErrMetadataImmutable
	}

	header, err := metadatarecord.NewHeader(assetId, existing.Flags, document, planner.parameters)
	if nil != err {
		return nil, err
	}

	puts, err := planner.pagePuts(assetId, document)
	if nil != err {
		return nil, err
	}
	newPages := uint16(len(puts))

	ops := make([]gateway.Operation, 0, int(existing.PageCount)+len(puts)+1)
	for i := newPages; i < existing.PageCount; i += 1 {
		ops = append(ops, gateway.Operation{
			Kind: gateway.DeletePage,
			Key:  metadatarecord.PageKey(assetId, i),
		})
	}
	ops = append(ops, puts...)
	ops = append(ops, gateway.Operation{
		Kind:  gateway.PutHeader,
		Key:   metadatarecord.HeaderKey(assetId),
		Value: header.Pack(),
	})

	planner.log.Debugf("replace: asset: %d  pages: %d -> %d", assetId, existing.PageCount, newPages)

	newCost := int64(planner.parameters.RecordCost(len(document)))
	oldCost := int64(planner.parameters.RecordCost(int(existing.TotalLength)))

	return &Plan{
		AssetId:  assetId,
		Ops:      ops,
		MBRDelta: newCost - oldCost,
	}, nil
}

// Delete - plan complete removal of a record
//
// pages vanish before the header that claims them, leaving only the
// retryable incomplete mid-states; the balance requirement of the
// whole record is refunded
func (planner *Planner) Delete(ctx context.Context, assetId uint64) (*Plan, error) {

	existing, err := planner.currentHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	if nil == existing {
		return nil, fault.ErrMetadataNotFound
	}
	if existing.Flags.IsDeleted() {
		return nil, fault.ErrMetadataDeleted
	}
	if existing.Flags.IsLocked() {
		return nil, fault.ErrMetadataImmutable
	}

	ops := make([]gateway.Operation, 0, existing.PageCount+1)
	for i := uint16(0); i < existing.PageCount; i += 1 {
		ops = append(ops, gateway.Operation{
			Kind: gateway.DeletePage,
			Key:  metadatarecord.PageKey(assetId, i),
		})
	}
	ops = append(ops, gateway.Operation{
		Kind: gateway.DeleteHeader,
		Key:  metadatarecord.HeaderKey(assetId),
	})

	planner.log.Debugf("delete: asset: %d  pages: %d", assetId, existing.PageCount)

	return &Plan{
		AssetId:  assetId,
		Ops:      ops,
		MBRDelta: -int64(planner.parameters.RecordCost(int(existing.TotalLength))),
	}, nil
}

// SetFlag - plan a header-only flag change
//
// irreversible bits can be set but never cleared; the deleted and
// derived bits are not settable at all
func (planner *Planner) SetFlag(ctx context.Context, assetId uint64, flag metadatarecord.Flags, value bool) (*Plan, error) {

	if flag.Has(metadatarecord.FlagDeleted) || flag.Has(metadatarecord.FlagShort) {
		return nil, fault.ErrFlagIsNotSettable
	}

	existing, err := planner.currentHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	if nil == existing {
		return nil, fault.ErrMetadataNotFound
	}
	if existing.Flags.IsDeleted() {
		return nil, fault.ErrMetadataDeleted
	}

	flags := existing.Flags
	if value {
		flags = flags.With(flag)
	} else {
		if !existing.Flags.IsReversible(flag) {
			return nil, fault.ErrFlagIsNotReversible
		}
		flags = flags.Without(flag)
	}

	header := *existing
	header.Flags = flags

	planner.log.Debugf("set-flag: asset: %d  flags: %04x -> %04x", assetId, uint16(existing.Flags), uint16(flags))

	return &Plan{
		AssetId: assetId,
		Ops: []gateway.Operation{{
			Kind:  gateway.PutHeader,
			Key:   metadatarecord.HeaderKey(assetId),
			Value: header.Pack(),
		}},
		MBRDelta: 0,
	}, nil
}

// Migrate - plan a header-only deprecation pointer write
//
// marks the record as superseded by a successor registry; document and
// flags are untouched, so even a locked record can point resolvers at
// its new home
func (planner *Planner) Migrate(ctx context.Context, assetId uint64, newRegistryId uint64) (*Plan, error) {

	if 0 == newRegistryId {
		return nil, fault.ErrRegistryIdIsInvalid
	}

	existing, err := planner.currentHeader(ctx, assetId)
	if nil != err {
		return nil, err
	}
	if nil == existing {
		return nil, fault.ErrMetadataNotFound
	}
	if existing.Flags.IsDeleted() {
		return nil, fault.ErrMetadataDeleted
	}

	header := *existing
	header.DeprecatedBy = newRegistryId

	planner.log.Debugf("migrate: asset: %d  deprecated by: %d", assetId, newRegistryId)

	return &Plan{
		AssetId: assetId,
		Ops: []gateway.Operation{{
			Kind:  gateway.PutHeader,
			Key:   metadatarecord.HeaderKey(assetId),
			Value: header.Pack(),
		}},
		MBRDelta: 0,
	}, nil
}
