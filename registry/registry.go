// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/asaregistry/registryd/arc90"
	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/gateway"
	"github.com/asaregistry/registryd/metadatarecord"
	"github.com/asaregistry/registryd/planner"
	"github.com/asaregistry/registryd/reader"
)

// Registry - one registry application instance
//
// created explicitly and passed around; no package-level state
type Registry struct {
	registryId uint64
	netauth    string
	gateway    gateway.Gateway
	parameters metadatarecord.Parameters
	planner    *planner.Planner
	box        *reader.BoxReader
	simulate   *reader.SimulateReader
	log        *logger.L
}

// New - create a registry handle over a gateway
//
// netauth is empty for mainnet
func New(registryId uint64, netauth string, g gateway.Gateway, parameters metadatarecord.Parameters) *Registry {
	return &Registry{
		registryId: registryId,
		netauth:    netauth,
		gateway:    g,
		parameters: parameters,
		planner:    planner.New(g, parameters),
		box:        reader.NewBox(g, parameters),
		simulate:   reader.NewSimulate(g, parameters),
		log:        logger.New("registry"),
	}
}

// Parameters - the protocol parameters this registry runs with
func (registry *Registry) Parameters() metadatarecord.Parameters {
	return registry.parameters
}

// GetMetadata - retrieve one record through the chosen strategy
func (registry *Registry) GetMetadata(ctx context.Context, assetId uint64, source reader.Source) (*reader.Record, error) {
	switch source {
	case reader.FromBox:
		return registry.box.GetMetadata(ctx, assetId)
	case reader.FromSimulation:
		return registry.simulate.GetMetadata(ctx, assetId)
	default:
		return nil, fault.ErrNoSuchMethod
	}
}

// CreateMetadata - store a new record, returning the balance cost
func (registry *Registry) CreateMetadata(ctx context.Context, assetId uint64, flags metadatarecord.Flags, document []byte) (int64, error) {
	plan, err := registry.planner.Create(ctx, assetId, flags, document)
	if nil != err {
		return 0, err
	}
	return registry.submit(ctx, plan)
}

// ReplaceMetadata - swap a record's document atomically
func (registry *Registry) ReplaceMetadata(ctx context.Context, assetId uint64, document []byte) (int64, error) {
	plan, err := registry.planner.Replace(ctx, assetId, document)
	if nil != err {
		return 0, err
	}
	return registry.submit(ctx, plan)
}

// DeleteMetadata - remove a record, returning the balance refund
func (registry *Registry) DeleteMetadata(ctx context.Context, assetId uint64) (int64, error) {
	plan, err := registry.planner.Delete(ctx, assetId)
	if nil != err {
		return 0, err
	}
	return registry.submit(ctx, plan)
}

// SetFlag - toggle one flag bit on a record's header
func (registry *Registry) SetFlag(ctx context.Context, assetId uint64, flag metadatarecord.Flags, value bool) error {
	plan, err := registry.planner.SetFlag(ctx, assetId, flag, value)
	if nil != err {
		return err
	}
	_, err = registry.submit(ctx, plan)
	return err
}

// MigrateMetadata - mark a record as superseded by a successor registry
func (registry *Registry) MigrateMetadata(ctx context.Context, assetId uint64, newRegistryId uint64) error {
	plan, err := registry.planner.Migrate(ctx, assetId, newRegistryId)
	if nil != err {
		return err
	}
	_, err = registry.submit(ctx, plan)
	return err
}

func (registry *Registry) submit(ctx context.Context, plan *planner.Plan) (int64, error) {
	if err := registry.gateway.Submit(ctx, plan.Ops); nil != err {
		return 0, err
	}
	registry.box.Invalidate(plan.AssetId)
	registry.simulate.Invalidate(plan.AssetId)
	registry.log.Infof("asset: %d  ops: %d  mbr delta: %d", plan.AssetId, len(plan.Ops), plan.MBRDelta)
	return plan.MBRDelta, nil
}

// MetadataExists - true when a live record is present
func (registry *Registry) MetadataExists(ctx context.Context, assetId uint64) (bool, error) {
	header, err := registry.header(ctx, assetId)
	if nil != err {
		return false, err
	}
	return nil != header && !header.Flags.IsDeleted(), nil
}

// IsImmutable - true when the record exists and carries the lock
func (registry *Registry) IsImmutable(ctx context.Context, assetId uint64) (bool, error) {
	header, err := registry.header(ctx, assetId)
	if nil != err {
		return false, err
	}
	if nil == header {
		return false, fault.ErrMetadataNotFound
	}
	return header.Flags.IsLocked(), nil
}

func (registry *Registry) header(ctx context.Context, assetId uint64) (*metadatarecord.Header, error) {
	buffer, found, err := registry.gateway.FetchEntry(ctx, metadatarecord.HeaderKey(assetId))
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return metadatarecord.UnpackHeader(buffer)
}

// PartialUri - the URI template assets of this registry embed as their
// external URL before an asset id is known
func (registry *Registry) PartialUri(compliance arc90.Compliance) *arc90.Uri {
	return &arc90.Uri{
		Netauth:    registry.netauth,
		RegistryId: registry.registryId,
		Compliance: compliance,
	}
}

// MetadataUri - the complete URI for one asset's record
func (registry *Registry) MetadataUri(assetId uint64, compliance arc90.Compliance) string {
	return registry.PartialUri(compliance).WithAssetId(assetId).String()
}
