// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type globalFlags struct {
	verbose bool
	config  string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "asaregistry"
	app.Usage = "asset metadata registry client"
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "config, c",
			Value:       "",
			Usage:       "*registry configuration file",
			Destination: &globals.config,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "get",
			Usage:     "retrieve and verify one asset's metadata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
				cli.StringFlag{
					Name:  "source, s",
					Value: "box",
					Usage: " read strategy: box|simulate [box]",
				},
				cli.BoolFlag{
					Name:  "raw, r",
					Usage: " write only the document bytes to stdout",
				},
			},
			Action: func(c *cli.Context) error {
				runGet(c, globals)
				return nil
			},
		},
		{
			Name:      "create",
			Usage:     "store metadata for an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "*document file, '-' for stdin",
				},
				cli.StringSliceFlag{
					Name:  "flag",
					Usage: " initial flag, repeatable: locked|arc3|native|smart-asset|circulating",
				},
			},
			Action: func(c *cli.Context) error {
				runCreate(c, globals)
				return nil
			},
		},
		{
			Name:      "replace",
			Usage:     "atomically swap an asset's metadata document",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "*document file, '-' for stdin",
				},
			},
			Action: func(c *cli.Context) error {
				runReplace(c, globals)
				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "remove an asset's metadata and refund its storage escrow",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
			},
			Action: func(c *cli.Context) error {
				runDelete(c, globals)
				return nil
			},
		},
		{
			Name:      "set-flag",
			Usage:     "set or clear one flag on an asset's metadata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
				cli.StringFlag{
					Name:  "flag, g",
					Usage: "*flag name: locked|arc3|native|smart-asset|circulating",
				},
				cli.BoolFlag{
					Name:  "clear",
					Usage: " clear instead of set (reversible flags only)",
				},
			},
			Action: func(c *cli.Context) error {
				runSetFlag(c, globals)
				return nil
			},
		},
		{
			Name:      "migrate",
			Usage:     "point an asset's metadata at a successor registry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
				cli.Uint64Flag{
					Name:  "to, t",
					Usage: "*successor registry application id",
				},
			},
			Action: func(c *cli.Context) error {
				runMigrate(c, globals)
				return nil
			},
		},
		{
			Name:      "exists",
			Usage:     "check whether an asset has a live metadata record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id",
				},
			},
			Action: func(c *cli.Context) error {
				runExists(c, globals)
				return nil
			},
		},
		{
			Name:      "uri",
			Usage:     "print the registry uri, partial or for one asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: " asset id, omit for the partial template",
				},
				cli.Int64SliceFlag{
					Name:  "arc",
					Usage: " compliance entry, repeatable",
				},
			},
			Action: func(c *cli.Context) error {
				runUri(c, globals)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
}
