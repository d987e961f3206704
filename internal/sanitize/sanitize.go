// Package sanitize prepares free-text city names for inclusion in a request
// path. Encoding is defined at the byte level so multi-byte characters encode
// each byte separately.
package sanitize

import "strings"

const unreservedExtra = "-_.~"

// Normalize strips leading and trailing spaces and tabs. Other whitespace
// classes are left alone. An input that trims to nothing comes back as the
// empty string; callers treat that as "no input".
func Normalize(raw string) string {
	return strings.Trim(raw, " \t")
}

// Encode percent-encodes every byte outside the unreserved set
// [A-Za-z0-9-_.~] using uppercase hex.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex(c >> 4))
		b.WriteByte(upperHex(c & 0x0f))
	}
	return b.String()
}

// SanitizeAndEncode normalizes then encodes.
func SanitizeAndEncode(raw string) string {
	return Encode(Normalize(raw))
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(unreservedExtra, c) >= 0
}

func upperHex(nibble byte) byte {
	const digits = "0123456789ABCDEF"
	return digits[nibble&0x0f]
}
