package cstr

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/mhr3/cstring/ascii"
	"github.com/mhr3/cstring/internal/bytealg"
)

var (
	_ io.Writer       = (*String)(nil)
	_ io.ByteWriter   = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ Sequence        = (*String)(nil)
)

// String is an owned, growable C string.
//
// A String either has no storage, in which case it reads as the empty
// string and allocates nothing, or owns exactly Cap()+1 bytes obtained from
// its Allocator, holding the content, a terminator, and unused capacity.
// The zero value is an empty String using DefaultAllocator.
//
// Free hands the storage back to the Allocator. Views obtained from a
// String must not be used after it grows or is freed.
type String struct {
	buf   []byte
	alloc Allocator
}

// New returns an empty String. It does not allocate.
func New() *String { return &String{} }

// NewIn returns an empty String that will allocate from alloc.
func NewIn(alloc Allocator) *String { return &String{alloc: alloc} }

// WithCapacity returns an empty String with room for n content bytes.
func WithCapacity(n int) (*String, error) {
	return WithCapacityIn(n, nil)
}

// WithCapacityIn returns an empty String with room for n content bytes,
// allocated from alloc.
func WithCapacityIn(n int, alloc Allocator) (*String, error) {
	if n < 0 || n == math.MaxInt {
		return nil, overflowError()
	}
	s := &String{alloc: alloc}
	b, err := s.allocate(n + 1)
	if err != nil {
		return nil, err
	}
	b[0] = 0
	s.buf = b
	return s, nil
}

// StringFromBytesWithNul takes ownership of b, which must end with its only
// zero byte. On failure the error hands b back unchanged.
func StringFromBytesWithNul(b []byte) (*String, error) {
	if i := bytealg.IndexByte(b, 0); i < 0 || i != len(b)-1 {
		return nil, newNulError(i, b)
	}
	return &String{buf: b[:len(b):len(b)], alloc: Heap{}}, nil
}

// StringFromStringWithNul is StringFromBytesWithNul for a Go string that
// already carries its terminator. The bytes are copied.
func StringFromStringWithNul(str string) (*String, error) {
	return StringFromBytesWithNul([]byte(str))
}

// StringFromBytes copies b and adds the terminator. b must not contain a
// zero byte.
func StringFromBytes(b []byte) (*String, error) {
	if i := bytealg.IndexByte(b, 0); i >= 0 {
		return nil, newNulError(i, b)
	}
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return &String{buf: buf, alloc: Heap{}}, nil
}

// StringFromString is StringFromBytes for a Go string.
func StringFromString(s string) (*String, error) {
	return StringFromBytes([]byte(s))
}

// StringFromSubStr copies sub into a new heap String.
func StringFromSubStr(sub SubStr) (*String, error) {
	return StringFromSubStrIn(sub, nil)
}

// StringFromSubStrIn copies sub into a new String backed by alloc.
func StringFromSubStrIn(sub SubStr, alloc Allocator) (*String, error) {
	if i := bytealg.IndexByte(sub, 0); i >= 0 {
		return nil, newNulError(i, sub)
	}
	s, err := WithCapacityIn(len(sub), alloc)
	if err != nil {
		return nil, err
	}
	if err := s.Append(sub); err != nil {
		return nil, err
	}
	return s, nil
}

// Allocator returns the Allocator the String draws its storage from.
func (s *String) Allocator() Allocator {
	if s.alloc == nil {
		return DefaultAllocator
	}
	return s.alloc
}

func (s *String) storage() []byte {
	if s.buf == nil {
		return empty[:]
	}
	return s.buf
}

// Len scans for the terminator and returns the number of bytes before it.
func (s *String) Len() int {
	if s.buf == nil {
		return 0
	}
	return terminator(s.buf)
}

// Cap returns how many content bytes fit without growing.
func (s *String) Cap() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1
}

// Bytes returns the content without the terminator. It may be modified in
// place as long as no zero byte is written into it.
func (s *String) Bytes() []byte {
	n := s.Len()
	return s.storage()[:n:n]
}

// BytesWithNul returns the content followed by the terminator.
func (s *String) BytesWithNul() []byte {
	if s.buf == nil {
		return []byte{0}
	}
	n := s.Len() + 1
	return s.buf[:n:n]
}

// SubStr returns the content as a SubStr sharing s's buffer.
func (s *String) SubStr() SubStr { return SubStr(s.Bytes()) }

// CStr returns a read-only view of s.
func (s *String) CStr() CStr { return CStr{b: s.buf} }

// MutCStr returns a writable view of the content of s.
func (s *String) MutCStr() MutCStr { return MutCStr{b: s.buf} }

// Pointer returns the address of the first byte, terminator included, for
// passing to foreign APIs. An empty String without storage points at a
// shared zero byte that must not be written.
func (s *String) Pointer() *byte { return &s.storage()[0] }

// String returns a copy of the content.
func (s *String) String() string { return string(s.Bytes()) }

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o Sequence) bool { return s.SubStr().Equal(o) }

// Compare orders s and o bytewise and returns -1, 0 or 1.
func (s *String) Compare(o Sequence) int { return s.SubStr().Compare(o) }

// EqualFold is Equal with ASCII letters compared case-insensitively.
func (s *String) EqualFold(o Sequence) bool { return s.SubStr().EqualFold(o) }

// Contains reports whether p matches anywhere in s.
func (s *String) Contains(p Pattern) bool { return s.SubStr().Contains(p) }

// Find returns the start of the first match of p, or -1.
func (s *String) Find(p Pattern) int { return s.SubStr().Find(p) }

// Upper converts the content to upper case in place.
func (s *String) Upper() { ascii.Upper(s.Bytes()) }

// Lower converts the content to lower case in place.
func (s *String) Lower() { ascii.Lower(s.Bytes()) }

// Reserve makes sure at least n more content bytes fit. When they do not,
// the storage is replaced by one of exactly Len()+n+1 bytes. On error s is
// left as it was.
func (s *String) Reserve(n int) error {
	if n < 0 {
		panic("cstr: negative Reserve count")
	}
	return s.reserve(s.Len(), n)
}

// ReserveExact is Reserve. Growth is always exact.
func (s *String) ReserveExact(n int) error {
	return s.Reserve(n)
}

func (s *String) reserve(l, n int) error {
	if n > math.MaxInt-1-l {
		return overflowError()
	}
	want := l + n
	if want <= s.Cap() {
		return nil
	}

	b, err := s.allocate(want + 1)
	if err != nil {
		return err
	}
	copy(b, s.storage()[:l+1])
	s.release()
	s.buf = b
	return nil
}

// Push appends c. It panics if c is zero.
func (s *String) Push(c byte) error {
	if c == 0 {
		panic("cstr: Push of a nul byte")
	}
	l := s.Len()
	if err := s.reserve(l, 1); err != nil {
		return err
	}
	s.buf[l] = c
	s.buf[l+1] = 0
	return nil
}

// PushRune appends the UTF-8 encoding of r. Invalid runes are written as
// utf8.RuneError. It panics if r is zero.
func (s *String) PushRune(r rune) error {
	if r == 0 {
		panic("cstr: PushRune of a nul rune")
	}
	if uint32(r) < utf8.RuneSelf {
		return s.Push(byte(r))
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	return s.Append(enc[:n])
}

// Append appends sub. It panics if sub contains a zero byte.
func (s *String) Append(sub SubStr) error {
	if i := bytealg.IndexByte(sub, 0); i >= 0 {
		panic(newNulError(i, sub))
	}
	if len(sub) == 0 {
		return nil
	}
	l := s.Len()
	if err := s.reserve(l, len(sub)); err != nil {
		return err
	}
	copy(s.buf[l:], sub)
	s.buf[l+len(sub)] = 0
	return nil
}

// Write implements io.Writer. Input containing a zero byte is rejected with
// a *NulError and nothing is written.
func (s *String) Write(p []byte) (int, error) {
	if i := bytealg.IndexByte(p, 0); i >= 0 {
		return 0, newNulError(i, p)
	}
	if err := s.Append(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (s *String) WriteByte(c byte) error {
	if c == 0 {
		return newNulError(0, []byte{c})
	}
	return s.Push(c)
}

// WriteRune appends the UTF-8 encoding of r and returns its length. A zero
// rune is rejected with a *NulError.
func (s *String) WriteRune(r rune) (int, error) {
	if r == 0 {
		return 0, newNulError(0, []byte{0})
	}
	l := s.Len()
	if err := s.PushRune(r); err != nil {
		return 0, err
	}
	return s.Len() - l, nil
}

// WriteString implements io.StringWriter.
func (s *String) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Clear truncates s to the empty string. Capacity is kept.
func (s *String) Clear() {
	if s.buf != nil {
		s.buf[0] = 0
	}
}

// Clone copies the content of s into a new String with the same Allocator
// and no spare capacity.
func (s *String) Clone() (*String, error) {
	return StringFromSubStrIn(s.SubStr(), s.alloc)
}

// Free returns the storage to the Allocator and leaves s empty. Freeing an
// empty String without storage does nothing.
func (s *String) Free() {
	s.release()
	s.buf = nil
}

func (s *String) release() {
	if s.buf == nil {
		return
	}
	s.Allocator().Deallocate(s.buf, len(s.buf), 1)
}

func (s *String) allocate(size int) ([]byte, error) {
	b, err := s.Allocator().Allocate(size, 1)
	if err != nil {
		return nil, &AllocError{Size: size, Err: err}
	}
	if len(b) < size {
		return nil, &AllocError{Size: size, Err: ErrAllocation}
	}
	return b[:size:size], nil
}
