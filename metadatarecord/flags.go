// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"fmt"
	"strings"
)

// Flags - extensible bitset stored in every metadata header
//
// unknown bits are accepted on decode and preserved on encode to allow
// later protocol versions to add flags without breaking old readers
type Flags uint16

// assigned bits
//
// the high bits gate the record life cycle, the low bits mark
// standards compliance of the document itself
const (
	// life cycle
	FlagLocked  Flags = 0x8000 // structural mutation rejected while set
	FlagDeleted Flags = 0x4000 // tombstone, terminal
	FlagShort   Flags = 0x2000 // document fits the short read limit, derived

	// compliance
	FlagArc3        Flags = 0x0001 // document follows the ARC-3 schema
	FlagNative      Flags = 0x0002 // registry is the authoritative metadata source
	FlagSmartAsset  Flags = 0x0004
	FlagCirculating Flags = 0x0008
)

// irreversibleMask - flags that may be set but never cleared once committed
//
// the lock is not here: locking is a reversible guard, so a manager
// can unlock and replace again; derived and tombstone bits are
// maintained by the planner itself, never through a flag toggle
const irreversibleMask = FlagArc3 | FlagNative

// Has - true if all bits of flag are set
func (flags Flags) Has(flag Flags) bool {
	return flags&flag == flag
}

// With - copy with the given bits set
func (flags Flags) With(flag Flags) Flags {
	return flags | flag
}

// Without - copy with the given bits cleared
func (flags Flags) Without(flag Flags) Flags {
	return flags &^ flag
}

// IsLocked - replace and delete are rejected for locked records
func (flags Flags) IsLocked() bool {
	return flags.Has(FlagLocked)
}

// IsDeleted - tombstoned, only a fresh create may follow
func (flags Flags) IsDeleted() bool {
	return flags.Has(FlagDeleted)
}

// IsReversible - true if the flag may be toggled in both directions
func (flags Flags) IsReversible(flag Flags) bool {
	return 0 == flag&(irreversibleMask|FlagDeleted|FlagShort)
}

var flagLabels = []struct {
	flag  Flags
	label string
}{
	{FlagLocked, "locked"},
	{FlagDeleted, "deleted"},
	{FlagShort, "short"},
	{FlagArc3, "arc3"},
	{FlagNative, "native"},
	{FlagSmartAsset, "smart-asset"},
	{FlagCirculating, "circulating"},
}

// String - known bits by name plus the raw value
func (flags Flags) String() string {
	names := []string{}
	for _, item := range flagLabels {
		if flags.Has(item.flag) {
			names = append(names, item.label)
		}
	}
	return fmt.Sprintf("%04x[%s]", uint16(flags), strings.Join(names, ","))
}
