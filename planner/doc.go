// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package planner - compute ordered store mutations for record changes
//
// a plan is an ordered operation list plus the net minimum balance
// change it causes; ordering guarantees that a direct store reader
// mid-sequence sees either the old record or a retryable incomplete
// state, never the new page count with stale pages still present:
//
//	create:  residual sweeps, then page puts, then the header put
//	replace: stale page deletes, then new page puts, then the rewrite
//	delete:  the page deletes, then the header delete
//
// legality of each transition is decided here from the current flags;
// submission of the plan is the gateway's responsibility
package planner
