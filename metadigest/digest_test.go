// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadigest_test

import (
	"fmt"
	"testing"

	"github.com/asaregistry/registryd/metadigest"
)

func TestDigest(t *testing.T) {
	s := []byte("hello world")
	d := metadigest.NewDigest(s)

	// printf '%s' 'hello world' | openssl dgst -sha512-256
	stringDigest := "0ac561fac838104e3f2e4ad107b4bee3e938bf15f2b15f009ccccd61a913f017"

	if d.String() != stringDigest {
		t.Errorf("digest = %s expected %s", d, stringDigest)
	}

	s2 := fmt.Sprintf("%#v", d)
	if s2 != "<SHA512/256:"+stringDigest+">" {
		t.Errorf("digest#v = %s expected %s", s2, stringDigest)
	}
}

func TestScanFmt(t *testing.T) {

	stringDigest := "0ac561fac838104e3f2e4ad107b4bee3e938bf15f2b15f009ccccd61a913f017"

	var d metadigest.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	if d != metadigest.NewDigest([]byte("hello world")) {
		t.Errorf("digest = %#v expected digest of 'hello world'", d)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}
}

func TestMarshalText(t *testing.T) {
	d := metadigest.NewDigest([]byte("hello world"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %v", err)
	}

	var d2 metadigest.Digest
	err = d2.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal text error: %v", err)
	}

	if d != d2 {
		t.Errorf("digest = %#v expected %#v", d2, d)
	}
}

func TestDigestFromBytes(t *testing.T) {
	d := metadigest.NewDigest([]byte("some record"))

	var d2 metadigest.Digest
	err := metadigest.DigestFromBytes(&d2, d[:])
	if nil != err {
		t.Fatalf("digest from bytes error: %v", err)
	}
	if d != d2 {
		t.Errorf("digest = %#v expected %#v", d2, d)
	}

	err = metadigest.DigestFromBytes(&d2, d[:16])
	if nil == err {
		t.Fatal("short buffer unexpectedly accepted")
	}
}

func TestIsZero(t *testing.T) {
	var zero metadigest.Digest
	if !zero.IsZero() {
		t.Error("zero digest reported non-zero")
	}
	if metadigest.NewDigest(nil).IsZero() {
		t.Error("computed digest reported zero")
	}
}
