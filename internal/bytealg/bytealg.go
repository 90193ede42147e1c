// Package bytealg holds the scanning primitives shared by the string types:
// locating the terminator in a Go slice or in foreign memory, and exact
// substring search.
package bytealg

import (
	"bytes"
	"unsafe"
)

const (
	wordSize = 8

	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// IndexByte returns the index of the first c in b, or -1.
func IndexByte(b []byte, c byte) int {
	return bytes.IndexByte(b, c)
}

// Index returns the index of the first occurrence of needle in haystack,
// or -1.
func Index(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}

// Strlen returns the number of bytes before the first zero byte at p.
// The memory at p must hold a zero byte somewhere after it.
//
// After the first word boundary memory is read one aligned word at a time.
// An aligned word never crosses a page or the end of a Go heap object, so
// the scan stays inside the allocation holding the terminator and passes
// the runtime's pointer checks under -race.
func Strlen(p unsafe.Pointer) int {
	n := 0
	for ; uintptr(p)&(wordSize-1) != 0; n++ {
		if *(*byte)(p) == 0 {
			return n
		}
		p = unsafe.Add(p, 1)
	}
	for {
		if w := *(*uint64)(p); (w-lsb)&^w&msb != 0 {
			break
		}
		p = unsafe.Add(p, wordSize)
		n += wordSize
	}
	for *(*byte)(p) != 0 {
		p = unsafe.Add(p, 1)
		n++
	}
	return n
}
