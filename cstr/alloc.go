package cstr

import "strconv"

// Allocator supplies the storage of a String.
//
// Allocate returns a slice of exactly size bytes or an error; it must not
// panic for large sizes. Deallocate receives a slice previously returned by
// Allocate together with the size and alignment it was requested with.
type Allocator interface {
	Allocate(size, align int) ([]byte, error)
	Deallocate(b []byte, size, align int)
}

// MaxAlloc is the largest single request Heap accepts when its Limit is 0:
// 1<<48-1 on 64-bit platforms and math.MaxInt32 on 32-bit ones. Larger
// slices are beyond what the Go runtime can address and make would panic.
const MaxAlloc = 1<<(strconv.IntSize/64*17+31) - 1

// Heap allocates from the Go heap. Deallocate is a no-op and the garbage
// collector reclaims released storage.
type Heap struct {
	// Limit caps a single request. Zero, or anything above MaxAlloc, means
	// MaxAlloc.
	Limit int
}

// DefaultAllocator is used by Strings created without an Allocator.
var DefaultAllocator Allocator = Heap{}

func (h Heap) Allocate(size, align int) ([]byte, error) {
	limit := h.Limit
	if limit <= 0 || limit > MaxAlloc {
		limit = MaxAlloc
	}
	if size < 0 || size > limit || !validAlign(align) {
		return nil, ErrAllocation
	}
	return make([]byte, size), nil
}

func (Heap) Deallocate([]byte, int, int) {}

// Arena is a bump allocator over a fixed region. Requests that do not fit
// are rejected instead of spilling to the heap. Releasing the most recent
// block gives its bytes back; everything else is reclaimed by Reset.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	buf []byte
	off int
}

// NewArena returns an Arena that can hand out size bytes in total.
func NewArena(size int) *Arena {
	return &Arena{buf: make([]byte, size)}
}

func (a *Arena) Allocate(size, align int) ([]byte, error) {
	if size < 0 || !validAlign(align) {
		return nil, ErrAllocation
	}
	start := (a.off + align - 1) &^ (align - 1)
	if start > len(a.buf) || size > len(a.buf)-start {
		return nil, ErrAllocation
	}
	a.off = start + size
	return a.buf[start:a.off:a.off], nil
}

func (a *Arena) Deallocate(b []byte, size, _ int) {
	if size == 0 || len(b) < size || size > a.off {
		return
	}
	if &a.buf[a.off-size] == &b[0] {
		a.off -= size
	}
}

// Used returns the number of bytes handed out since the last Reset,
// alignment padding included.
func (a *Arena) Used() int { return a.off }

// Available returns the number of bytes left.
func (a *Arena) Available() int { return len(a.buf) - a.off }

// Reset reclaims every block. Strings still using the arena must not be
// touched afterwards.
func (a *Arena) Reset() { a.off = 0 }

func validAlign(align int) bool {
	return align > 0 && align&(align-1) == 0
}
