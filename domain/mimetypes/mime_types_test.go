package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", "text/plain", true},
		{"Case insensitive", "Text/HTML; charset=utf-8", "text/html", true},
		{"XML detected as text/xml", "text/xml; charset=utf-8", "application/xml", false},
		{"PNG", "image/png", "image/png", true},
		{"Mismatch", "text/plain; charset=utf-8", "application/json", false},
		{"Invalid MIME", "not a mime", "text/plain", false},
		{"Unknown never matches", "not a mime", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Matches(tt.detected, tt.expected))
		})
	}
}

func TestToMIME(t *testing.T) {
	req := require.New(t)
	req.Equal(MIME("text/plain"), ToMIME("Text/Plain; charset=utf-8"))
	req.Equal(ApplicationOctetStream, ToMIME("application/octet-stream"))
	req.Equal(Unknown, ToMIME(""))
}

func TestAgree(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		detected string
		want     bool
	}{
		{"Same type", "image/png", "image/png", true},
		{"Charset ignored", "text/plain", "text/plain; charset=utf-8", true},
		{"Declared generic binary", "application/octet-stream", "image/png", true},
		{"Detected generic binary", "image/png", "application/octet-stream", true},
		{"Declared garbage", "", "image/png", true},
		{"Different types", "image/png", "application/pdf", false},
		{"Detected garbage", "image/png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Agree(tt.declared, tt.detected))
		})
	}
}
