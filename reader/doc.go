// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reader - reconstruct and verify metadata records
//
// two strategies exist and the caller picks one explicitly:
//
//	BoxReader      - decode the raw store entries
//	SimulateReader - drive the program read entry points
//
// both verify the reassembled document against the header commitment
// and must return byte-identical documents for any committed record;
// results are cached briefly to absorb repeated lookups
package reader
