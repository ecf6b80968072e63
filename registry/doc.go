// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the high level asset metadata interface
//
// ties the planner, both read strategies and the URI scheme to one
// registry application; all mutations go plan, submit, invalidate and
// report the net balance change
package registry
