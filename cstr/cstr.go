package cstr

import (
	"unsafe"

	"github.com/mhr3/cstring/internal/bytealg"
)

// empty backs the zero CStr and the empty state of String. Nothing ever
// writes to it.
var empty = [1]byte{}

// CStr is a read-only view of a C string whose storage belongs to someone
// else. The storage may extend past the terminator; the content is whatever
// precedes the first zero byte at the time of the call.
//
// While a CStr is in use its storage must keep a zero byte inside the slice
// it was built from. The zero CStr is the empty string.
type CStr struct {
	b []byte
}

// FromBytesWithNul returns a view of b, which must end with its only zero
// byte.
func FromBytesWithNul(b []byte) (CStr, error) {
	if i := bytealg.IndexByte(b, 0); i < 0 || i != len(b)-1 {
		return CStr{}, newNulError(i, b)
	}
	return CStr{b: b}, nil
}

// FromBytesUntilNul returns a view of the C string at the start of b. Bytes
// after the first zero byte are ignored.
func FromBytesUntilNul(b []byte) (CStr, error) {
	if bytealg.IndexByte(b, 0) < 0 {
		return CStr{}, newNulError(-1, b)
	}
	return CStr{b: b}, nil
}

// Unchecked returns a view of b without looking for the terminator. b must
// contain a zero byte.
func Unchecked(b []byte) CStr {
	return CStr{b: b}
}

// FromPointer returns a view of the C string starting at p, typically
// memory handed over by a foreign API. p must point at readable memory
// holding a zero byte; this cannot be checked.
func FromPointer(p *byte) CStr {
	if p == nil {
		panic("cstr: FromPointer of nil pointer")
	}
	n := bytealg.Strlen(unsafe.Pointer(p))
	return CStr{b: unsafe.Slice(p, n+1)}
}

func (c CStr) storage() []byte {
	if c.b == nil {
		return empty[:]
	}
	return c.b
}

// Len scans for the terminator and returns the number of bytes before it.
func (c CStr) Len() int {
	return terminator(c.storage())
}

// Bytes returns the content without the terminator.
func (c CStr) Bytes() []byte {
	n := c.Len()
	return c.storage()[:n:n]
}

// BytesWithNul returns the content followed by the terminator. The result
// must not be written to.
func (c CStr) BytesWithNul() []byte {
	n := c.Len() + 1
	return c.storage()[:n:n]
}

// SubStr returns the content as a SubStr sharing c's storage.
func (c CStr) SubStr() SubStr { return SubStr(c.Bytes()) }

// Pointer returns the address of the first byte, for passing to foreign
// APIs that expect a C string.
func (c CStr) Pointer() *byte { return &c.storage()[0] }

// String returns a copy of the content.
func (c CStr) String() string { return string(c.Bytes()) }

// Equal reports whether c and o hold the same bytes.
func (c CStr) Equal(o Sequence) bool { return c.SubStr().Equal(o) }

// Compare orders c and o bytewise and returns -1, 0 or 1.
func (c CStr) Compare(o Sequence) int { return c.SubStr().Compare(o) }

// Contains reports whether p matches anywhere in c.
func (c CStr) Contains(p Pattern) bool { return c.SubStr().Contains(p) }

// Find returns the start of the first match of p, or -1.
func (c CStr) Find(p Pattern) int { return c.SubStr().Find(p) }

// ToCString copies the content into a new heap String.
func (c CStr) ToCString() *String { return c.SubStr().ToCString() }

// terminator returns the offset of the first zero byte in b. A view whose
// storage no longer holds one has been invalidated behind its back.
func terminator(b []byte) int {
	n := bytealg.IndexByte(b, 0)
	if n < 0 {
		panic("cstr: storage lost its nul terminator")
	}
	return n
}
