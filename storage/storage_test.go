// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
)

const dbName = "testing-storage"

func removeDir(dirName string) {
	dirPath, _ := filepath.Abs(dirName + "-registry.leveldb")
	_ = os.RemoveAll(dirPath)
}

func TestMain(m *testing.M) {
	removeDir(dbName)
	if err := Initialise(dbName, ReadWrite); nil != err {
		panic(err)
	}

	result := m.Run()

	Finalise()
	removeDir(dbName)
	os.Exit(result)
}

func TestPutGetDelete(t *testing.T) {
	key := []byte("key-1")
	value := []byte("value-1")

	Pool.Headers.Put(key, value)
	assert.Equal(t, value, Pool.Headers.Get(key), "wrong value")
	assert.True(t, Pool.Headers.Has(key), "missing key")

	Pool.Headers.Delete(key)
	assert.Nil(t, Pool.Headers.Get(key), "value not deleted")
	assert.False(t, Pool.Headers.Has(key), "key not deleted")
}

// the same key must address distinct entries in distinct pools
func TestPoolIsolation(t *testing.T) {
	key := []byte("shared-key")

	Pool.Headers.Put(key, []byte("header"))
	Pool.Pages.Put(key, []byte("page"))
	defer Pool.Headers.Delete(key)
	defer Pool.Pages.Delete(key)

	assert.Equal(t, []byte("header"), Pool.Headers.Get(key), "wrong header value")
	assert.Equal(t, []byte("page"), Pool.Pages.Get(key), "wrong page value")
}

func TestGetMissing(t *testing.T) {
	assert.Nil(t, Pool.Pages.Get([]byte("no-such-key")), "missing key returned a value")
	assert.False(t, Pool.Pages.Has([]byte("no-such-key")), "missing key reported present")
}

// a batch must apply all queued operations in one write
func TestWriteBatch(t *testing.T) {
	batch := new(leveldb.Batch)

	Pool.Pages.Put([]byte("stale"), []byte("old"))

	Pool.Headers.BatchPut(batch, []byte("batch-h"), []byte("h"))
	Pool.Pages.BatchPut(batch, []byte("batch-p"), []byte("p"))
	Pool.Pages.BatchDelete(batch, []byte("stale"))

	err := WriteBatch(batch)
	assert.NoError(t, err, "batch write failed")

	assert.Equal(t, []byte("h"), Pool.Headers.Get([]byte("batch-h")), "batch header put lost")
	assert.Equal(t, []byte("p"), Pool.Pages.Get([]byte("batch-p")), "batch page put lost")
	assert.Nil(t, Pool.Pages.Get([]byte("stale")), "batch delete lost")

	Pool.Headers.Delete([]byte("batch-h"))
	Pool.Pages.Delete([]byte("batch-p"))
}

func TestFetch(t *testing.T) {
	Pool.Headers.Put([]byte("fetch-1"), []byte("a"))
	Pool.Headers.Put([]byte("fetch-2"), []byte("b"))
	defer Pool.Headers.Delete([]byte("fetch-1"))
	defer Pool.Headers.Delete([]byte("fetch-2"))

	elements, err := Pool.Headers.Fetch(100)
	assert.NoError(t, err, "fetch failed")
	assert.True(t, len(elements) >= 2, "fetch returned too few elements")
}

func TestDoubleInitialise(t *testing.T) {
	err := Initialise(dbName, ReadWrite)
	assert.Error(t, err, "second initialise unexpectedly succeeded")
}
