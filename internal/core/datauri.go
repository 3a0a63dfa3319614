package core

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURIScheme   = "data:"
	base64Separator = ";base64,"
)

// EncodeDataURI returns content as an inline data string usable as an image source.
func EncodeDataURI(mimeType string, content []byte) string {
	return dataURIScheme + mimeType + base64Separator + base64.StdEncoding.EncodeToString(content)
}

// DecodeDataURI is the inverse of EncodeDataURI.
func DecodeDataURI(uri string) (mimeType string, content []byte, err error) {
	if !strings.HasPrefix(uri, dataURIScheme) {
		return "", nil, fmt.Errorf("not a data uri: missing %q prefix", dataURIScheme)
	}
	mimeType, payload, found := strings.Cut(strings.TrimPrefix(uri, dataURIScheme), base64Separator)
	if !found {
		return "", nil, fmt.Errorf("data uri is not base64 encoded")
	}
	content, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data uri payload: %w", err)
	}
	return mimeType, content, nil
}
