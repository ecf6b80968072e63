// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reader_test

import (
	"context"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/asaregistry/registryd/chunk"
	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/gateway"
	"github.com/asaregistry/registryd/gateway/mocks"
	"github.com/asaregistry/registryd/metadatarecord"
	"github.com/asaregistry/registryd/metadigest"
	"github.com/asaregistry/registryd/reader"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(result)
}

func testParameters() metadatarecord.Parameters {
	parameters := metadatarecord.Defaults()
	parameters.PageCapacity = 4
	return parameters
}

// a committed record as its store entries would look
type storedRecord struct {
	header      *metadatarecord.Header
	headerBytes []byte
	pageKeys    [][]byte
	entries     map[string][]byte
	document    []byte
}

func makeStored(t *testing.T, assetId uint64, flags metadatarecord.Flags, document []byte) *storedRecord {
	parameters := testParameters()

	header, err := metadatarecord.NewHeader(assetId, flags, document, parameters)
	assert.Nil(t, err, "new header")
	header.LastModified = 7

	contents, err := chunk.Split(document, parameters.PageCapacity)
	assert.Nil(t, err, "split")

	stored := &storedRecord{
		header:      header,
		headerBytes: header.Pack(),
		entries:     map[string][]byte{},
		document:    document,
	}
	for i, content := range contents {
		page := metadatarecord.Page{AssetId: assetId, Index: uint16(i), Content: content}
		packed, err := page.Pack()
		assert.Nil(t, err, "pack page")
		key := metadatarecord.PageKey(assetId, uint16(i))
		stored.pageKeys = append(stored.pageKeys, key)
		stored.entries[string(key)] = packed
	}
	return stored
}

func TestBoxGetMetadata(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = 60
	document := []byte("0123456789")
	stored := makeStored(t, assetId, 0, document)

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		FetchEntry(gomock.Any(), metadatarecord.HeaderKey(assetId)).
		Return(stored.headerBytes, true, nil).
		Times(1)
	g.EXPECT().
		FetchEntries(gomock.Any(), stored.pageKeys).
		Return(stored.entries, nil).
		Times(1)

	r := reader.NewBox(g, testParameters())
	record, err := r.GetMetadata(context.Background(), assetId)
	assert.Nil(t, err, "get metadata")
	assert.Equal(t, uint64(assetId), record.AssetId, "wrong asset id")
	assert.Equal(t, document, record.Document, "wrong document")
	assert.Equal(t, *stored.header, record.Header, "wrong header")
	assert.Equal(t, reader.FromBox, record.Source, "wrong source")

	// second lookup is served from cache, no further gateway calls
	again, err := r.GetMetadata(context.Background(), assetId)
	assert.Nil(t, err, "cached get")
	assert.Equal(t, record, again, "cache returned different record")
}

func TestBoxNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = 61
	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		FetchEntry(gomock.Any(), metadatarecord.HeaderKey(assetId)).
		Return(nil, false, nil).
		Times(1)

	r := reader.NewBox(g, testParameters())
	_, err := r.GetMetadata(context.Background(), assetId)
	assert.Equal(t, fault.ErrMetadataNotFound, err, "wrong error")
}

func TestBoxDeleted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = 62
	stored := makeStored(t, assetId, metadatarecord.FlagDeleted, []byte("ab"))

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		FetchEntry(gomock.Any(), metadatarecord.HeaderKey(assetId)).
		Return(stored.headerBytes, true, nil).
		Times(1)

	r := reader.NewBox(g, testParameters())
	_, err := r.GetMetadata(context.Background(), assetId)
	assert.Equal(t, fault.ErrMetadataDeleted, err, "wrong error")
}

func TestBoxMissingPage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = 63
	stored := makeStored(t, assetId, 0, []byte("0123456789"))
	delete(stored.entries, string(stored.pageKeys[1]))

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		FetchEntry(gomock.Any(), metadatarecord.HeaderKey(assetId)).
		Return(stored.headerBytes, true, nil).
		Times(1)
	g.EXPECT().
		FetchEntries(gomock.Any(), stored.pageKeys).
		Return(stored.entries, nil).
		Times(1)

	r := reader.NewBox(g, testParameters())
	_, err := r.GetMetadata(context.Background(), assetId)
	assert.Equal(t, fault.ErrIncompleteRecord, err, "wrong error")
}

func TestBoxHashMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = 64
	stored := makeStored(t, assetId, 0, []byte("0123456789"))

	// corrupt one page in place, keeping its length
	tampered := metadatarecord.Page{AssetId: assetId, Index: 1, Content: []byte("XXXX")}
	tamperedPacked, err := tampered.Pack()
	assert.Nil(t, err, "pack page")
	stored.entries[string(stored.pageKeys[1])] = tamperedPacked

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		FetchEntry(gomock.Any(), metadatarecord.HeaderKey(assetId)).
		Return(stored.headerBytes, true, nil).
		Times(1)
	g.EXPECT().
		FetchEntries(gomock.Any(), stored.pageKeys).
		Return(stored.entries, nil).
		Times(1)

	r := reader.NewBox(g, testParameters())
	_, err = r.GetMetadata(context.Background(), assetId)
	assert.Equal(t, fault.ErrMetadataHashMismatch, err, "wrong error")
	assert.True(t, fault.IsErrIntegrity(err), "wrong error class")
}

// expectations for one clean simulated read
func expectSimulation(g *mocks.MockGateway, assetId uint64, stored *storedRecord) {
	parameters := testParameters()

	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetHeader, assetId).
		Return(stored.headerBytes, nil).
		Times(1)

	pagination := make([]byte, 8)
	copy(pagination[0:4], stored.headerBytes[4:8]) // total length
	copy(pagination[4:6], stored.headerBytes[2:4]) // page count
	pagination[7] = byte(parameters.PageCapacity)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetPagination, assetId).
		Return(pagination, nil).
		Times(1)

	contents, _ := chunk.Split(stored.document, parameters.PageCapacity)
	for i, content := range contents {
		g.EXPECT().
			SimulateCall(gomock.Any(), gateway.MethodGetPage, assetId, uint64(i)).
			Return(content, nil).
			Times(1)
	}

	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetHeader, assetId).
		Return(stored.headerBytes, nil).
		Times(1)

	am := metadigest.MetadataHash(assetId, uint16(stored.header.Flags), stored.document, parameters.PageCapacity)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetHash, assetId).
		Return(am[:], nil).
		Times(1)
}

func TestSimulateGetMetadata(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = uint64(65)
	document := []byte("0123456789abc")
	stored := makeStored(t, assetId, 0, document)

	g := mocks.NewMockGateway(ctl)
	expectSimulation(g, assetId, stored)

	r := reader.NewSimulate(g, testParameters())
	record, err := r.GetMetadata(context.Background(), assetId)
	assert.Nil(t, err, "get metadata")
	assert.Equal(t, document, record.Document, "wrong document")
	assert.Equal(t, *stored.header, record.Header, "wrong header")
	assert.Equal(t, reader.FromSimulation, record.Source, "wrong source")
}

// both strategies must decode the same committed record identically
func TestStrategyParity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = uint64(66)
	document := []byte("the quick brown fox")
	stored := makeStored(t, assetId, metadatarecord.FlagArc3, document)

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		FetchEntry(gomock.Any(), metadatarecord.HeaderKey(assetId)).
		Return(stored.headerBytes, true, nil).
		Times(1)
	g.EXPECT().
		FetchEntries(gomock.Any(), stored.pageKeys).
		Return(stored.entries, nil).
		Times(1)
	expectSimulation(g, assetId, stored)

	box, err := reader.NewBox(g, testParameters()).GetMetadata(context.Background(), assetId)
	assert.Nil(t, err, "box read")
	sim, err := reader.NewSimulate(g, testParameters()).GetMetadata(context.Background(), assetId)
	assert.Nil(t, err, "simulated read")

	assert.Equal(t, box.Document, sim.Document, "documents differ")
	assert.Equal(t, box.Header, sim.Header, "headers differ")
}

// a writer landing between paged reads must surface as drift
func TestSimulateDrift(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = uint64(67)
	stored := makeStored(t, assetId, 0, []byte("0123456789"))

	moved := *stored.header
	moved.LastModified = stored.header.LastModified + 1

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetHeader, assetId).
		Return(stored.headerBytes, nil).
		Times(1)

	pagination := make([]byte, 8)
	copy(pagination[0:4], stored.headerBytes[4:8])
	copy(pagination[4:6], stored.headerBytes[2:4])
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetPagination, assetId).
		Return(pagination, nil).
		Times(1)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetPage, assetId, gomock.Any()).
		Return([]byte("0123"), nil).
		Times(3)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetHeader, assetId).
		Return(moved.Pack(), nil).
		Times(1)

	r := reader.NewSimulate(g, testParameters())
	_, err := r.GetMetadata(context.Background(), assetId)
	assert.Equal(t, fault.ErrMetadataDrift, err, "wrong error")
}

func TestSimulatePaginationDisagrees(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const assetId = uint64(68)
	stored := makeStored(t, assetId, 0, []byte("0123456789"))

	g := mocks.NewMockGateway(ctl)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetHeader, assetId).
		Return(stored.headerBytes, nil).
		Times(1)
	g.EXPECT().
		SimulateCall(gomock.Any(), gateway.MethodGetPagination, assetId).
		Return(make([]byte, 8), nil).
		Times(1)

	r := reader.NewSimulate(g, testParameters())
	_, err := r.GetMetadata(context.Background(), assetId)
	assert.Equal(t, fault.ErrMetadataDrift, err, "wrong error")
}
