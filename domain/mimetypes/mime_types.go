package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown                MIME = "unknown"
	ApplicationOctetStream MIME = "application/octet-stream"
)

// ToMIME normalises a raw content type, dropping parameters such as charset.
func ToMIME(raw string) MIME {
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return Unknown
	}
	return MIME(strings.ToLower(mt))
}

func Matches(detected string, expected MIME) bool {
	return expected != Unknown && ToMIME(detected) == expected
}

// Agree reports whether a client declared type is consistent with the sniffed one.
// A generic binary type on either side is never treated as a disagreement.
func Agree(declared, detected string) bool {
	d := ToMIME(declared)
	if d == Unknown || d == ApplicationOctetStream || ToMIME(detected) == ApplicationOctetStream {
		return true
	}
	return Matches(detected, d)
}
