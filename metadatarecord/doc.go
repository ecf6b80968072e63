// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadatarecord - binary layout of registry store entries
//
// Every asset with registered metadata owns one fixed width header
// entry and zero or more length prefixed page entries in the ledger's
// key-value store.  This package is the pure codec between those wire
// layouts and typed records, plus the deterministic key scheme that
// locates them; it performs no I/O.
package metadatarecord
