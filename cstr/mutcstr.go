package cstr

import (
	"fmt"

	"github.com/mhr3/cstring/ascii"
	"github.com/mhr3/cstring/internal/bytealg"
)

// MutCStr is a writable view of a C string owned by someone else. Content
// bytes may be changed; the terminator and the bytes after it may not, so
// the length of a MutCStr never changes through the view itself.
//
// Nothing else may read or write the storage while a MutCStr is being
// written through.
type MutCStr struct {
	b []byte
}

// NewMut returns a writable view of the C string at the start of b.
func NewMut(b []byte) (MutCStr, error) {
	if bytealg.IndexByte(b, 0) < 0 {
		return MutCStr{}, newNulError(-1, b)
	}
	return MutCStr{b: b}, nil
}

// MutUnchecked returns a writable view of b without looking for the
// terminator. b must contain a zero byte.
func MutUnchecked(b []byte) MutCStr {
	return MutCStr{b: b}
}

func (m MutCStr) storage() []byte {
	if m.b == nil {
		return empty[:]
	}
	return m.b
}

// Len scans for the terminator and returns the number of bytes before it.
func (m MutCStr) Len() int {
	return terminator(m.storage())
}

// Bytes returns the content, without the terminator, for in-place edits.
// Writing a zero byte into it breaks the view.
func (m MutCStr) Bytes() []byte {
	n := m.Len()
	return m.storage()[:n:n]
}

// SubStr returns the content as a SubStr sharing m's storage.
func (m MutCStr) SubStr() SubStr { return SubStr(m.Bytes()) }

// Set replaces the content byte at i. It panics if c is zero or i is not
// before the terminator.
func (m MutCStr) Set(i int, c byte) {
	if c == 0 {
		panic("cstr: Set of a nul byte")
	}
	if n := m.Len(); i < 0 || i >= n {
		panic(fmt.Sprintf("cstr: index %d out of range [0:%d]", i, n))
	}
	m.b[i] = c
}

// Upper converts the content to upper case in place.
func (m MutCStr) Upper() { ascii.Upper(m.Bytes()) }

// Lower converts the content to lower case in place.
func (m MutCStr) Lower() { ascii.Lower(m.Bytes()) }

// CStr gives up write access and returns a read-only view.
func (m MutCStr) CStr() CStr { return CStr(m) }

// Pointer returns the address of the first byte, the terminator when m is empty.
func (m MutCStr) Pointer() *byte { return &m.storage()[0] }

// String returns a copy of the content.
func (m MutCStr) String() string { return string(m.Bytes()) }

// Equal reports whether m and o hold the same bytes.
func (m MutCStr) Equal(o Sequence) bool { return m.SubStr().Equal(o) }

// Compare orders m and o bytewise and returns -1, 0 or 1.
func (m MutCStr) Compare(o Sequence) int { return m.SubStr().Compare(o) }
