// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gateway - boundary between the registry core and the ledger
//
// the core only ever reads store entries, simulates read-only program
// calls and submits ordered operation groups; everything else about
// ledger access is an implementation concern of the gateway
//
// the Local implementation runs over the process-local store and is
// used by the command line client and by tests
package gateway
