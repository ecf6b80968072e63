// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asaregistry/registryd/configuration"
	"github.com/asaregistry/registryd/metadatarecord"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.pidfile = "registryd.pid"

M.network = {
    authority = "net:testnet",
    registry_id = 752790676,
}

M.database = {
    directory = "data",
    name = "registry",
}

M.protocol = {
    page_capacity = 512,
}

M.logging = {
    size = 1048576,
    count = 20,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, content string) string {
	directory, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("tempdir error: %v", err)
	}

	fileName := filepath.Join(directory, "registryd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %v", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, sampleConfiguration)
	defer os.RemoveAll(filepath.Dir(fileName))

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %v", err)
	}

	if "net:testnet" != options.Network.Authority {
		t.Errorf("authority = %q expected %q", options.Network.Authority, "net:testnet")
	}
	if 752790676 != options.Network.RegistryId {
		t.Errorf("registry id = %d expected 752790676", options.Network.RegistryId)
	}

	if !filepath.IsAbs(options.Database.Directory) {
		t.Errorf("database directory not absolute: %q", options.Database.Directory)
	}
	if !strings.HasPrefix(options.Database.Name, options.Database.Directory) {
		t.Errorf("database name %q not inside %q", options.Database.Name, options.Database.Directory)
	}
	if !filepath.IsAbs(options.PidFile) {
		t.Errorf("pid file not absolute: %q", options.PidFile)
	}
	if 20 != options.Logging.Count {
		t.Errorf("log count = %d expected 20", options.Logging.Count)
	}

	// explicit override plus defaults for the rest
	parameters := options.Parameters()
	if 512 != parameters.PageCapacity {
		t.Errorf("page capacity = %d expected 512", parameters.PageCapacity)
	}
	if metadatarecord.DefaultMaxPages != parameters.MaxPages {
		t.Errorf("max pages = %d expected default", parameters.MaxPages)
	}
	if metadatarecord.DefaultFlatCost != parameters.FlatCost {
		t.Errorf("flat cost = %d expected default", parameters.FlatCost)
	}
}

func TestGetConfigurationMissingRegistryId(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.network = { authority = "net:testnet" }
return M
`)
	defer os.RemoveAll(filepath.Dir(fileName))

	_, err := configuration.GetConfiguration(fileName)
	if nil == err {
		t.Fatal("missing registry id unexpectedly accepted")
	}
}

func TestGetConfigurationBadFile(t *testing.T) {
	fileName := writeConfiguration(t, `this is not lua at all {{{`)
	defer os.RemoveAll(filepath.Dir(fileName))

	_, err := configuration.GetConfiguration(fileName)
	if nil == err {
		t.Fatal("broken file unexpectedly accepted")
	}
}
