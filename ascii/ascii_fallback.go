package ascii

import "math/bits"

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | caseBit
	}
	return b
}

func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask64 := lsb * uint64(mask)

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		if w := load64(s) & mask64; w != 0 {
			return pos + bits.TrailingZeros64(w)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

func isASCIIGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}

// equalFoldGo compares a and b eight bytes at a time, lowering both words
// only when they differ.
func equalFoldGo[T string | []byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		a64, b64 := load64(a), load64(b)
		if a64 != b64 {
			a64 ^= lowerRange.mask(a64)
			b64 ^= lowerRange.mask(b64)
			if a64 != b64 {
				return false
			}
		}
		a, b = a[8:], b[8:]
	}

	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

func indexFoldGo[T string | []byte](s, substr T) int {
	n := len(substr)
	if n == 0 {
		return 0
	} else if n > len(s) {
		return -1
	}

	off := rareByte(substr)
	c := toLower(substr[off])
	complement := c
	if c >= 'a' && c <= 'z' {
		complement -= caseBit
	}

	for i := off; i <= len(s)-n+off; i++ {
		if b := s[i]; b == c || b == complement {
			if equalFoldGo(s[i-off:i-off+n], substr) {
				return i - off
			}
		}
	}
	return -1
}
