// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 ASA Registry Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arc90

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"

	"github.com/asaregistry/registryd/fault"
	"github.com/asaregistry/registryd/metadatarecord"
)

// URI layout constants
const (
	Scheme = "algorand"

	appPathName  = "app"
	boxQueryName = "box"
	netauthTag   = "net:"

	uriPrefix = Scheme + "://"
)

// Uri - a pointer from an asset's external URL into a registry
//
// an empty Netauth means mainnet and renders in the short form without
// an authority; a nil BoxName marks a partial URI that still needs an
// asset id
type Uri struct {
	Netauth    string
	RegistryId uint64
	BoxName    []byte
	Compliance Compliance
}

// IsPartial - true while the box name is still unset
func (uri *Uri) IsPartial() bool {
	return nil == uri.BoxName
}

// AssetId - the asset a complete URI points at
func (uri *Uri) AssetId() (uint64, error) {
	if uri.IsPartial() {
		return 0, fault.ErrUriPartial
	}
	return metadatarecord.AssetIdFromKey(uri.BoxName)
}

// WithAssetId - complete a URI for one asset
func (uri *Uri) WithAssetId(assetId uint64) *Uri {
	return &Uri{
		Netauth:    uri.Netauth,
		RegistryId: uri.RegistryId,
		BoxName:    metadatarecord.HeaderKey(assetId),
		Compliance: uri.Compliance,
	}
}

// AlgodBoxName - box name in standard padded base64 for node queries
func (uri *Uri) AlgodBoxName() (string, error) {
	if uri.IsPartial() {
		return "", fault.ErrUriPartial
	}
	return base64.StdEncoding.EncodeToString(uri.BoxName), nil
}

// String - canonical rendering
//
// a partial URI renders with an empty box value; a compliance set that
// refuses to render is omitted
func (uri *Uri) String() string {
	box := ""
	if !uri.IsPartial() {
		box = base64.URLEncoding.EncodeToString(uri.BoxName)
	}

	fragment, err := uri.Compliance.Fragment()
	if nil != err {
		fragment = ""
	}

	s := uriPrefix
	if "" != uri.Netauth {
		s += uri.Netauth + "/"
	}
	s += appPathName + "/" + strconv.FormatUint(uri.RegistryId, 10)
	s += "?" + boxQueryName + "=" + box
	s += fragment
	return s
}

// Parse - decode any accepted URI serialisation
//
// accepted shapes:
//
//	algorand://net:<name>/app/<id>?box=<base64url>#arc<A>+<B>
//	algorand://app/<id>?box=<base64url>            (mainnet)
//
// an empty box value yields a partial URI
func Parse(s string) (*Uri, error) {

	fragment := ""
	if i := strings.IndexByte(s, '#'); i >= 0 {
		fragment = s[i+1:]
		s = s[:i]
	}

	rawQuery := ""
	if i := strings.IndexByte(s, '?'); i >= 0 {
		rawQuery = s[i+1:]
		s = s[:i]
	}

	if !strings.HasPrefix(s, uriPrefix) {
		return nil, fault.ErrUriWrongScheme
	}

	segments := []string{}
	for _, segment := range strings.Split(s[len(uriPrefix):], "/") {
		if "" != segment {
			segments = append(segments, segment)
		}
	}

	netauth := ""
	registryField := ""
	switch {
	case 0 == len(segments):
		return nil, fault.ErrUriMissingAuthority

	case strings.HasPrefix(segments[0], netauthTag):
		if len(segments) < 3 || appPathName != segments[1] {
			return nil, fault.ErrUriMissingRegistryId
		}
		netauth = segments[0]
		registryField = segments[2]

	case appPathName == segments[0]:
		if len(segments) < 2 {
			return nil, fault.ErrUriMissingRegistryId
		}
		registryField = segments[1]

	default:
		return nil, fault.ErrUriMissingAuthority
	}

	registryId, err := strconv.ParseUint(registryField, 10, 64)
	if nil != err {
		return nil, fault.ErrUriMissingRegistryId
	}

	values, err := url.ParseQuery(rawQuery)
	if nil != err {
		return nil, fault.ErrInvalidUri
	}
	boxValues, present := values[boxQueryName]
	if !present {
		return nil, fault.ErrUriMissingBoxParameter
	}

	var boxName []byte
	if "" != boxValues[0] {
		boxName, err = decodeBoxName(boxValues[0])
		if nil != err {
			return nil, err
		}
	}

	return &Uri{
		Netauth:    netauth,
		RegistryId: registryId,
		BoxName:    boxName,
		Compliance: ParseCompliance(fragment),
	}, nil
}

// both padded and unpadded url-safe encodings occur in the wild
func decodeBoxName(value string) ([]byte, error) {
	boxName, err := base64.URLEncoding.DecodeString(value)
	if nil != err {
		boxName, err = base64.RawURLEncoding.DecodeString(value)
	}
	if nil != err {
		return nil, fault.ErrInvalidUri
	}
	if metadatarecord.HeaderKeyLength != len(boxName) {
		return nil, fault.ErrInvalidUri
	}
	return boxName, nil
}

// CompletePartial - fill the asset id into a partial asset URL
//
// a URI that is already complete is re-rendered canonically
func CompletePartial(assetUrl string, assetId uint64) (string, error) {
	uri, err := Parse(assetUrl)
	if nil != err {
		return "", err
	}
	if !uri.IsPartial() {
		return uri.String(), nil
	}
	return uri.WithAssetId(assetId).String(), nil
}
