// Package datauri encodes and decodes RFC 2397 data URIs with base64 payloads.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

const scheme = "data:"

var (
	ErrNotDataURI   = errors.New("not a data URI")
	ErrNotBase64    = errors.New("data URI payload is not base64 encoded")
	ErrMissingMIME  = errors.New("data URI has no MIME type")
	ErrEmptyPayload = errors.New("data URI payload is empty")
)

// DataURI is a decoded data URI
type DataURI struct {
	MIMEType string
	Data     []byte
}

// Parse decodes a "data:<mime>;base64,<payload>" string
func Parse(s string) (*DataURI, error) {
	if !strings.HasPrefix(s, scheme) {
		return nil, ErrNotDataURI
	}

	header, payload, ok := strings.Cut(s[len(scheme):], ",")
	if !ok {
		return nil, ErrNotDataURI
	}

	params := strings.Split(header, ";")
	if len(params) < 2 || params[len(params)-1] != "base64" {
		return nil, ErrNotBase64
	}

	mimeType := strings.TrimSpace(params[0])
	if mimeType == "" {
		return nil, ErrMissingMIME
	}
	mediaType, _, err := mime.ParseMediaType(strings.Join(params[:len(params)-1], ";"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIME type %q: %w", mimeType, err)
	}

	if payload == "" {
		return nil, ErrEmptyPayload
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotBase64, err)
	}

	return &DataURI{MIMEType: mediaType, Data: data}, nil
}

// Encode builds a base64 data URI for data with the given MIME type
func Encode(mimeType string, data []byte) string {
	return scheme + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// String returns the encoded form of d
func (d *DataURI) String() string {
	return Encode(d.MIMEType, d.Data)
}
