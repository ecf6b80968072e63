// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arc90

import (
	"strconv"
	"strings"

	"github.com/asaregistry/registryd/fault"
)

// Compliance - the standards a referenced document claims to follow
//
// rendered as the URI fragment "#arc<A>+<B>"; the first entry carries
// the "arc" prefix and the rest are bare numbers, in any order
type Compliance []uint64

// the asset-metadata standard that must stand alone in a fragment
const soleEntryStandard = 3

// ParseCompliance - decode a fragment, without its leading '#'
//
// malformed fragments are ignored and yield an empty set; clients must
// tolerate any entry order
func ParseCompliance(fragment string) Compliance {
	if "" == fragment {
		return nil
	}
	if !strings.HasPrefix(fragment, "arc") {
		return nil
	}

	compliance := Compliance{}
	for _, part := range strings.Split(fragment[3:], "+") {
		if "" == part {
			return nil
		}
		if len(part) > 1 && '0' == part[0] { // no leading zeros
			return nil
		}
		number, err := strconv.ParseUint(part, 10, 64)
		if nil != err {
			return nil
		}
		compliance = append(compliance, number)
	}

	if compliance.Has(soleEntryStandard) && 1 != len(compliance) {
		return nil
	}
	return compliance
}

// Has - membership test
func (compliance Compliance) Has(standard uint64) bool {
	for _, number := range compliance {
		if standard == number {
			return true
		}
	}
	return false
}

// Fragment - render including the leading '#', empty for an empty set
//
// unlike parsing, rendering refuses an invalid combination outright
func (compliance Compliance) Fragment() (string, error) {
	if 0 == len(compliance) {
		return "", nil
	}
	if compliance.Has(soleEntryStandard) && 1 != len(compliance) {
		return "", fault.ErrComplianceFragmentInvalid
	}

	parts := make([]string, len(compliance))
	for i, number := range compliance {
		parts[i] = strconv.FormatUint(number, 10)
	}
	return "#arc" + strings.Join(parts, "+"), nil
}
