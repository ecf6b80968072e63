// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chunk

import (
	"github.com/asaregistry/registryd/fault"
)

// Split - divide a document into an ordered sequence of pages
//
// every page except the last holds exactly capacity bytes; the last
// page holds the remainder, or a full capacity when the length divides
// evenly - there is never an empty trailing page
//
// an empty document yields zero pages
func Split(document []byte, capacity int) ([][]byte, error) {
	if capacity < 1 {
		return nil, fault.ErrPageCapacityIsInvalid
	}
	if 0 == len(document) {
		return nil, nil
	}

	pages := make([][]byte, 0, CountPages(len(document), capacity))
	for i := 0; i < len(document); i += capacity {
		end := i + capacity
		if end > len(document) {
			end = len(document)
		}
		pages = append(pages, document[i:end])
	}
	return pages, nil
}

// Join - reassemble a document from its pages in index order
//
// exact inverse of Split: Join(Split(x)) == x for all byte strings
func Join(pages [][]byte) []byte {
	size := 0
	for _, page := range pages {
		size += len(page)
	}

	document := make([]byte, 0, size)
	for _, page := range pages {
		document = append(document, page...)
	}
	return document
}

// CountPages - number of pages a document of the given length occupies
func CountPages(length int, capacity int) int {
	if length <= 0 || capacity < 1 {
		return 0
	}
	return (length + capacity - 1) / capacity
}
