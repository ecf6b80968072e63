// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/asaregistry/registryd/arc90"
	"github.com/asaregistry/registryd/configuration"
	"github.com/asaregistry/registryd/gateway"
	"github.com/asaregistry/registryd/metadatarecord"
	"github.com/asaregistry/registryd/reader"
	"github.com/asaregistry/registryd/registry"
	"github.com/asaregistry/registryd/storage"
)

// open everything the commands need; the returned function tears it
// all down again
func setup(globals globalFlags) (*registry.Registry, func()) {
	if "" == globals.config {
		exitwithstatus.Message("Error: configuration file is required, use: --config FILE\n")
	}

	options, err := configuration.GetConfiguration(globals.config)
	if nil != err {
		exitwithstatus.Message("Error: configuration: %s\n", err)
	}

	logging := logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("Error: logger setup: %s\n", err)
	}

	if err := storage.Initialise(options.Database.Name, storage.ReadWrite); nil != err {
		logger.Finalise()
		exitwithstatus.Message("Error: storage setup: %s\n", err)
	}

	local, err := gateway.NewLocal(options.Parameters())
	if nil != err {
		storage.Finalise()
		logger.Finalise()
		exitwithstatus.Message("Error: gateway setup: %s\n", err)
	}

	r := registry.New(options.Network.RegistryId, options.Network.Authority, local, options.Parameters())

	return r, func() {
		storage.Finalise()
		logger.Finalise()
	}
}

func readDocument(fileName string) []byte {
	if "" == fileName {
		exitwithstatus.Message("Error: document file is required, use: --file FILE\n")
	}

	var document []byte
	var err error
	if "-" == fileName {
		document, err = ioutil.ReadAll(os.Stdin)
	} else {
		document, err = ioutil.ReadFile(fileName)
	}
	if nil != err {
		exitwithstatus.Message("Error: document read: %s\n", err)
	}
	return document
}

var flagNames = map[string]metadatarecord.Flags{
	"locked":      metadatarecord.FlagLocked,
	"arc3":        metadatarecord.FlagArc3,
	"native":      metadatarecord.FlagNative,
	"smart-asset": metadatarecord.FlagSmartAsset,
	"circulating": metadatarecord.FlagCirculating,
}

func flagByName(name string) metadatarecord.Flags {
	flag, ok := flagNames[name]
	if !ok {
		exitwithstatus.Message("Error: unknown flag: %q\n", name)
	}
	return flag
}

func assetId(c *cli.Context) uint64 {
	id := c.Uint64("asset")
	if 0 == id {
		exitwithstatus.Message("Error: asset id is required, use: --asset N\n")
	}
	return id
}

// JSON shape of a retrieved record
type recordResult struct {
	AssetId     uint64 `json:"assetId"`
	Flags       string `json:"flags"`
	PageCount   uint16 `json:"pageCount"`
	TotalLength uint32 `json:"totalLength"`
	ContentHash string `json:"contentHash"`
	Source      string `json:"source"`
	Document    string `json:"document"`
}

func runGet(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	source := reader.FromBox
	switch c.String("source") {
	case "", "box":
	case "simulate":
		source = reader.FromSimulation
	default:
		exitwithstatus.Message("Error: unknown source: %q\n", c.String("source"))
	}

	record, err := r.GetMetadata(context.Background(), assetId(c), source)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}

	if c.Bool("raw") {
		_, _ = os.Stdout.Write(record.Document)
		return
	}

	printJson("", recordResult{
		AssetId:     record.AssetId,
		Flags:       record.Header.Flags.String(),
		PageCount:   record.Header.PageCount,
		TotalLength: record.Header.TotalLength,
		ContentHash: record.Header.ContentHash.String(),
		Source:      record.Source.String(),
		Document:    string(record.Document),
	})
}

type mbrResult struct {
	AssetId  uint64 `json:"assetId"`
	MbrDelta int64  `json:"mbrDelta"`
}

func runCreate(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	flags := metadatarecord.Flags(0)
	for _, name := range c.StringSlice("flag") {
		flags = flags.With(flagByName(name))
	}

	id := assetId(c)
	delta, err := r.CreateMetadata(context.Background(), id, flags, readDocument(c.String("file")))
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	printJson("", mbrResult{AssetId: id, MbrDelta: delta})
}

func runReplace(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	id := assetId(c)
	delta, err := r.ReplaceMetadata(context.Background(), id, readDocument(c.String("file")))
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	printJson("", mbrResult{AssetId: id, MbrDelta: delta})
}

func runDelete(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	id := assetId(c)
	delta, err := r.DeleteMetadata(context.Background(), id)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	printJson("", mbrResult{AssetId: id, MbrDelta: delta})
}

func runSetFlag(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	id := assetId(c)
	err := r.SetFlag(context.Background(), id, flagByName(c.String("flag")), !c.Bool("clear"))
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}

	immutable, err := r.IsImmutable(context.Background(), id)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	printJson("", struct {
		AssetId   uint64 `json:"assetId"`
		Immutable bool   `json:"immutable"`
	}{AssetId: id, Immutable: immutable})
}

func runMigrate(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	id := assetId(c)
	to := c.Uint64("to")
	err := r.MigrateMetadata(context.Background(), id, to)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	printJson("", struct {
		AssetId      uint64 `json:"assetId"`
		DeprecatedBy uint64 `json:"deprecatedBy"`
	}{AssetId: id, DeprecatedBy: to})
}

func runExists(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	id := assetId(c)
	exists, err := r.MetadataExists(context.Background(), id)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	printJson("", struct {
		AssetId uint64 `json:"assetId"`
		Exists  bool   `json:"exists"`
	}{AssetId: id, Exists: exists})
}

func runUri(c *cli.Context, globals globalFlags) {
	r, finalise := setup(globals)
	defer finalise()

	compliance := arc90.Compliance{}
	for _, number := range c.Int64Slice("arc") {
		compliance = append(compliance, uint64(number))
	}

	uri := ""
	if id := c.Uint64("asset"); 0 != id {
		uri = r.MetadataUri(id, compliance)
	} else {
		uri = r.PartialUri(compliance).String()
	}
	printJson("", struct {
		Uri string `json:"uri"`
	}{Uri: uri})
}
