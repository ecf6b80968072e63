// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chunk_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/asaregistry/registryd/chunk"
)

func TestSplitBoundaries(t *testing.T) {
	testList := []struct {
		length   int
		capacity int
		expected []int
	}{
		{0, 4, nil},
		{1, 4, []int{1}},
		{4, 4, []int{4}},
		{5, 4, []int{4, 1}},
		{10, 4, []int{4, 4, 2}},
		{12, 4, []int{4, 4, 4}}, // evenly divisible: full last page, no empty extra
		{1007, 1007, []int{1007}},
		{1008, 1007, []int{1007, 1}},
	}

	for i, item := range testList {
		document := bytes.Repeat([]byte{'m'}, item.length)

		pages, err := chunk.Split(document, item.capacity)
		if nil != err {
			t.Fatalf("%d: split error: %v", i, err)
		}
		if len(pages) != len(item.expected) {
			t.Fatalf("%d: page count = %d expected %d", i, len(pages), len(item.expected))
		}
		for j, page := range pages {
			if len(page) != item.expected[j] {
				t.Errorf("%d: page %d length = %d expected %d", i, j, len(page), item.expected[j])
			}
		}
		if chunk.CountPages(item.length, item.capacity) != len(item.expected) {
			t.Errorf("%d: count pages = %d expected %d",
				i, chunk.CountPages(item.length, item.capacity), len(item.expected))
		}
	}
}

func TestSplitInvalidCapacity(t *testing.T) {
	_, err := chunk.Split([]byte("data"), 0)
	if nil == err {
		t.Fatal("zero capacity unexpectedly accepted")
	}
	_, err = chunk.Split([]byte("data"), -3)
	if nil == err {
		t.Fatal("negative capacity unexpectedly accepted")
	}
}

// Join(Split(x)) == x for all byte strings and capacities
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0x2c))

	for i := 0; i < 200; i += 1 {
		document := make([]byte, r.Intn(8192))
		r.Read(document)
		capacity := 1 + r.Intn(2048)

		pages, err := chunk.Split(document, capacity)
		if nil != err {
			t.Fatalf("%d: split error: %v", i, err)
		}

		rejoined := chunk.Join(pages)
		if !bytes.Equal(document, rejoined) {
			t.Fatalf("%d: round trip failed for length %d capacity %d",
				i, len(document), capacity)
		}
	}
}

func TestJoinEmpty(t *testing.T) {
	if 0 != len(chunk.Join(nil)) {
		t.Error("join of no pages is not empty")
	}

	pages, err := chunk.Split(nil, 16)
	if nil != err {
		t.Fatalf("split error: %v", err)
	}
	if 0 != len(pages) {
		t.Errorf("empty document produced %d pages", len(pages))
	}
}
