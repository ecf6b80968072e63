// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/asaregistry/registryd/metadatarecord"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultPidFile       = "registryd.pid"

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "registry"

	defaultLogDirectory = "log"
	defaultLogFile      = "registryd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - holds the per-channel log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"main":            "info",
	"config":          "info",
	logger.DefaultTag: "critical",
}

// NetworkType - which ledger network the registry lives on
//
// an empty authority selects mainnet
type NetworkType struct {
	Authority  string `gluamapper:"authority" json:"authority"`
	RegistryId uint64 `gluamapper:"registry_id" json:"registry_id"`
}

// DatabaseType - store location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ProtocolType - overrides for the deployed program's parameters
//
// zero values fall back to the reference deployment defaults
type ProtocolType struct {
	PageCapacity int    `gluamapper:"page_capacity" json:"page_capacity"`
	MaxPages     int    `gluamapper:"max_pages" json:"max_pages"`
	ShortLimit   int    `gluamapper:"short_limit" json:"short_limit"`
	FlatCost     uint64 `gluamapper:"flat_cost" json:"flat_cost"`
	ByteCost     uint64 `gluamapper:"byte_cost" json:"byte_cost"`
}

// LoggerType - rotating log file setup
type LoggerType struct {
	Directory string            `gluamapper:"directory" json:"directory"`
	File      string            `gluamapper:"file" json:"file"`
	Size      int               `gluamapper:"size" json:"size"`
	Count     int               `gluamapper:"count" json:"count"`
	Console   bool              `gluamapper:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" json:"levels"`
}

// Configuration - the full configuration file contents
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Network       NetworkType  `gluamapper:"network" json:"network"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Protocol      ProtocolType `gluamapper:"protocol" json:"protocol"`
	Logging       LoggerType   `gluamapper:"logging" json:"logging"`
}

// Parameters - protocol parameters with defaults applied
func (configuration *Configuration) Parameters() metadatarecord.Parameters {
	parameters := metadatarecord.Defaults()
	if configuration.Protocol.PageCapacity > 0 {
		parameters.PageCapacity = configuration.Protocol.PageCapacity
	}
	if configuration.Protocol.MaxPages > 0 {
		parameters.MaxPages = configuration.Protocol.MaxPages
	}
	if configuration.Protocol.ShortLimit > 0 {
		parameters.ShortLimit = configuration.Protocol.ShortLimit
	}
	if configuration.Protocol.FlatCost > 0 {
		parameters.FlatCost = configuration.Protocol.FlatCost
	}
	if configuration.Protocol.ByteCost > 0 {
		parameters.ByteCost = configuration.Protocol.ByteCost
	}
	return parameters
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       defaultPidFile,

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if 0 == options.Network.RegistryId {
		return nil, errors.New("network.registry_id must be set")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.PidFile,
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if not a simple file name i.e. must not contain a path
	// separator, then prefix with the corresponding directory
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, &options.Logging.Directory},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			*f[0] = ensureAbsolute(*f[1], *f[0])
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{&options.Database.Directory, &options.Logging.Directory} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
