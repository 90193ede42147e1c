// Package cstr implements nul-terminated byte strings for code that talks
// to C-style APIs: borrowed views (CStr, MutCStr) over storage owned
// elsewhere, an owned growable buffer (String), and the terminator-free
// SubStr view they all expose.
//
// Every C string holds exactly one zero byte, at its end. Lengths are never
// cached: they are recomputed by scanning for the terminator, so the
// terminator alone defines where the content stops.
package cstr

import (
	"bytes"

	"github.com/mhr3/cstring/ascii"
	"github.com/mhr3/cstring/internal/bytealg"
)

// Sequence is the read-only view shared by SubStr, CStr, MutCStr and
// *String.
type Sequence interface {
	SubStr() SubStr
	Len() int
}

// SubStr is a run of content bytes without a terminator. A SubStr taken
// from any of the C string types never contains a zero byte.
type SubStr []byte

// NewSubStr returns b as a SubStr, or a *NulError if b contains a zero byte.
func NewSubStr(b []byte) (SubStr, error) {
	if i := bytealg.IndexByte(b, 0); i >= 0 {
		return nil, newNulError(i, b)
	}
	return SubStr(b), nil
}

// Len returns the number of bytes in s.
func (s SubStr) Len() int { return len(s) }

func (s SubStr) SubStr() SubStr { return s }

func (s SubStr) Bytes() []byte { return s }

func (s SubStr) String() string { return string(s) }

// Equal reports whether s and o hold the same bytes.
func (s SubStr) Equal(o Sequence) bool {
	return bytes.Equal(s, o.SubStr())
}

// Compare orders s and o byte-wise lexicographically.
func (s SubStr) Compare(o Sequence) int {
	return bytes.Compare(s, o.SubStr())
}

// EqualFold reports whether s and o are equal ignoring ASCII case.
func (s SubStr) EqualFold(o Sequence) bool {
	return ascii.EqualFold([]byte(s), []byte(o.SubStr()))
}

// IndexFold returns the index of the first occurrence of o in s ignoring
// ASCII case, or -1.
func (s SubStr) IndexFold(o Sequence) int {
	return ascii.IndexFold([]byte(s), []byte(o.SubStr()))
}

// IsASCII reports whether every byte of s is below 0x80.
func (s SubStr) IsASCII() bool {
	return ascii.ValidString([]byte(s))
}

// Contains reports whether p matches anywhere in s.
func (s SubStr) Contains(p Pattern) bool {
	_, _, ok := NextMatch(p.Searcher(s))
	return ok
}

// Find returns the start of the first match of p in s, or -1.
func (s SubStr) Find(p Pattern) int {
	start, _, ok := NextMatch(p.Searcher(s))
	if !ok {
		return -1
	}
	return start
}

// Matches returns the [start, end) range of every non-overlapping match of
// p in s, in order.
func (s SubStr) Matches(p Pattern) [][2]int {
	var out [][2]int
	sr := p.Searcher(s)
	for {
		start, end, ok := NextMatch(sr)
		if !ok {
			return out
		}
		out = append(out, [2]int{start, end})
	}
}

// Searcher makes SubStr a Pattern: it searches haystack for s.
func (s SubStr) Searcher(haystack SubStr) Searcher {
	return NewSubStrSearcher(haystack, s)
}

// Upper converts s to upper case in place.
func (s SubStr) Upper() { ascii.Upper(s) }

// Lower converts s to lower case in place.
func (s SubStr) Lower() { ascii.Lower(s) }

// ToUpper returns an upper-cased copy of s on the heap.
func (s SubStr) ToUpper() *String {
	out := s.ToCString()
	out.Upper()
	return out
}

// ToLower returns a lower-cased copy of s on the heap.
func (s SubStr) ToLower() *String {
	out := s.ToCString()
	out.Lower()
	return out
}

// ToCString copies s into a new heap String. It panics if the allocation
// fails, like the other growth paths of the Go runtime.
func (s SubStr) ToCString() *String {
	out, err := s.ToCStringIn(nil)
	if err != nil {
		panic(err)
	}
	return out
}

// ToCStringIn copies s into a new String backed by alloc.
func (s SubStr) ToCStringIn(alloc Allocator) (*String, error) {
	return StringFromSubStrIn(s, alloc)
}
