// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadigest - content commitments for asset metadata records
//
// The registry binds every metadata document to its header through a
// chained, domain separated SHA-512/256 commitment: a header hash over
// the fixed header fields, one page hash per stored page, and a final
// metadata hash chaining them all.  The algorithm is fixed by the
// protocol version and must not vary per asset.
package metadigest
