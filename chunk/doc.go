// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chunk - deterministic paging of metadata documents
//
// Pure byte arithmetic with no store or network access: splitting a
// document across fixed capacity pages and the exact inverse join.
package chunk
