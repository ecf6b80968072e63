// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package arc90 - the URI scheme linking assets to registry entries
//
// an asset's external URL carries one of these URIs to point resolvers
// at the registry application and, once completed, at the exact store
// entry holding the asset's metadata header
package arc90
