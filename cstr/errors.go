package cstr

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is reported when a size computation overflows or an
	// Allocator rejects a request.
	ErrAllocation = errors.New("cstr: allocation failed")

	// ErrInteriorNul is reported when a zero byte appears before the end of
	// the input.
	ErrInteriorNul = errors.New("cstr: interior nul byte")

	// ErrMissingNul is reported when the input does not end with a zero byte.
	ErrMissingNul = errors.New("cstr: missing nul terminator")
)

// AllocError describes a failed allocation. It matches ErrAllocation with
// errors.Is and unwraps to the Allocator's own error, if any.
type AllocError struct {
	// Size is the requested size in bytes, terminator included, or -1 when
	// computing it overflowed.
	Size int
	Err  error
}

func (e *AllocError) Error() string {
	if e.Size < 0 {
		return "cstr: allocation failed: size overflows int"
	}
	if e.Err == nil || e.Err == ErrAllocation {
		return fmt.Sprintf("cstr: allocation of %d bytes failed", e.Size)
	}
	return fmt.Sprintf("cstr: allocation of %d bytes failed: %v", e.Size, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }

func (e *AllocError) Is(target error) bool { return target == ErrAllocation }

func overflowError() error {
	return &AllocError{Size: -1}
}

// NulError reports input that is not a valid C string. It carries the
// offending position and hands the input back untouched.
type NulError struct {
	pos   int
	bytes []byte
}

func newNulError(pos int, b []byte) *NulError {
	return &NulError{pos: pos, bytes: b}
}

// NulPosition returns the index of the first zero byte in the input. ok is
// false when the input had no zero byte at all.
func (e *NulError) NulPosition() (pos int, ok bool) {
	if e.pos < 0 {
		return 0, false
	}
	return e.pos, true
}

// Bytes returns the input that failed validation, as it was passed in.
func (e *NulError) Bytes() []byte {
	return e.bytes
}

func (e *NulError) Error() string {
	if e.pos < 0 {
		return fmt.Sprintf("cstr: %d bytes without nul terminator", len(e.bytes))
	}
	return fmt.Sprintf("cstr: nul byte at position %d of %d", e.pos, len(e.bytes))
}

// Is matches ErrMissingNul when the input had no zero byte and
// ErrInteriorNul otherwise.
func (e *NulError) Is(target error) bool {
	if e.pos < 0 {
		return target == ErrMissingNul
	}
	return target == ErrInteriorNul
}
