package domain

import (
	"regexp"
	"strings"

	"dweb-bridge/errors"
)

// XornameLength is the number of hexadecimal characters of a network address.
const XornameLength = 64

// addressPattern matches a 64 hex chars xorname optionally followed by path segments
// made of unreserved and sub-delimiter characters.
var addressPattern = regexp.MustCompile(`(?i)^[a-f0-9]{64}(/[\w\-.~:@!$&'()*+,;=]+)*$`)

// ContentAddress identifies a piece of content on the network, e.g.
// "a1b2...ff" or "a1b2...ff/index.html".
type ContentAddress string

// ParseContentAddress trims the raw value and checks it has the shape of an address.
// A parent directory segment is never accepted, even if the pattern allows dots.
func ParseContentAddress(raw string) (ContentAddress, error) {
	address := strings.TrimSpace(raw)
	if !addressPattern.MatchString(address) || strings.Contains(address, "..") {
		return "", errors.ErrInvalidAddress
	}
	return ContentAddress(address), nil
}

// Xorname returns the leading 64 hex chars, without any path suffix.
func (a ContentAddress) Xorname() string {
	if len(a) < XornameLength {
		return string(a)
	}
	return string(a[:XornameLength])
}

func (a ContentAddress) String() string {
	return string(a)
}
