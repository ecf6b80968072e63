// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - prefix partitioned key-value pools
//
// Maintains the local mirror of registry store entries in a single
// LevelDB database.  Each pool owns a one byte key prefix so header
// and page entries can never collide; the in-process gateway reads and
// writes through these pools.
//
// Before any pool is usable the database must be opened:
//
//	storage.Initialise(database, storage.ReadWrite)
//	defer storage.Finalise()
package storage
