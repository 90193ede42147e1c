// Package ascii implements ASCII-only case folding and case-insensitive
// comparisons over raw bytes. Bytes outside [A-Za-z] are never changed and
// no encoding is assumed.
package ascii

import segascii "github.com/segmentio/asm/ascii"

// ValidString reports whether every byte of s is below 0x80.
func ValidString[T string | []byte](s T) bool {
	if len(s) < 32 {
		return isASCIIGo(s)
	}
	switch v := any(s).(type) {
	case string:
		return segascii.ValidString(v)
	case []byte:
		return segascii.Valid(v)
	}
	return isASCIIGo(s)
}

// IndexMask returns the index of the first byte of s that has any bit of
// mask set, or -1.
func IndexMask[T string | []byte](s T, mask byte) int {
	return indexMaskGo(s, mask)
}

// EqualFold reports whether a and b are equal when ASCII letters are
// compared case-insensitively.
func EqualFold[T string | []byte](a, b T) bool {
	return equalFoldGo(a, b)
}

// IndexFold returns the index of the first case-insensitive occurrence of
// substr in s, or -1.
func IndexFold[T string | []byte](s, substr T) int {
	return indexFoldGo(s, substr)
}

func HasPrefixFold[T string | []byte](s, prefix T) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

func HasSuffixFold[T string | []byte](s, suffix T) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}
