package cstr

import (
	"fmt"

	"github.com/mhr3/cstring/internal/bytealg"
)

// StepKind classifies a Step.
type StepKind uint8

const (
	// Done means the haystack is exhausted. Every later call returns Done.
	Done StepKind = iota
	// Match covers a range where the pattern was found.
	Match
	// Reject covers a range where it was not.
	Reject
)

func (k StepKind) String() string {
	switch k {
	case Done:
		return "Done"
	case Match:
		return "Match"
	case Reject:
		return "Reject"
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// Step is one result of a Searcher. Start and End are byte offsets into the
// haystack; they are zero for Done.
type Step struct {
	Kind       StepKind
	Start, End int
}

func (s Step) String() string {
	if s.Kind == Done {
		return "Done"
	}
	return fmt.Sprintf("%v(%d, %d)", s.Kind, s.Start, s.End)
}

// Searcher walks a haystack from front to back. The Match and Reject steps
// it yields are adjacent, never overlap, and together cover the haystack
// from 0 to Haystack().Len() before the first Done.
type Searcher interface {
	Haystack() SubStr
	Next() Step
}

// Pattern is anything that can be searched for in a SubStr.
type Pattern interface {
	Searcher(haystack SubStr) Searcher
}

// NextMatch advances s to its next Match.
func NextMatch(s Searcher) (start, end int, ok bool) {
	if m, ok := s.(interface {
		NextMatch() (int, int, bool)
	}); ok {
		return m.NextMatch()
	}
	for {
		switch st := s.Next(); st.Kind {
		case Match:
			return st.Start, st.End, true
		case Done:
			return 0, 0, false
		}
	}
}

// NextReject advances s to its next Reject.
func NextReject(s Searcher) (start, end int, ok bool) {
	if r, ok := s.(interface {
		NextReject() (int, int, bool)
	}); ok {
		return r.NextReject()
	}
	for {
		switch st := s.Next(); st.Kind {
		case Reject:
			return st.Start, st.End, true
		case Done:
			return 0, 0, false
		}
	}
}

// Collect drains s and returns every step up to, not including, Done.
func Collect(s Searcher) []Step {
	var out []Step
	for {
		st := s.Next()
		if st.Kind == Done {
			return out
		}
		out = append(out, st)
	}
}

// SubStrSearcher finds non-overlapping occurrences of a needle, moving one
// byte at a time between candidates. A mismatch at the last position that
// still fits the needle, or any position past it, rejects the rest of the
// haystack in one step. An empty needle rejects the whole haystack.
type SubStrSearcher struct {
	haystack SubStr
	needle   SubStr
	pos      int
}

func NewSubStrSearcher(haystack, needle SubStr) *SubStrSearcher {
	return &SubStrSearcher{haystack: haystack, needle: needle}
}

func (s *SubStrSearcher) Haystack() SubStr { return s.haystack }

func (s *SubStrSearcher) Next() Step {
	h, n, c := len(s.haystack), len(s.needle), s.pos
	if c >= h {
		return Step{Kind: Done}
	}
	if n == 0 || c+n > h {
		s.pos = h
		return Step{Kind: Reject, Start: c, End: h}
	}
	if string(s.haystack[c:c+n]) == string(s.needle) {
		s.pos = c + n
		return Step{Kind: Match, Start: c, End: c + n}
	}
	if c+n == h {
		s.pos = h
		return Step{Kind: Reject, Start: c, End: h}
	}
	s.pos = c + 1
	return Step{Kind: Reject, Start: c, End: c + 1}
}

// NextMatch jumps straight to the next occurrence instead of stepping
// through every rejected byte. Skipped positions count as consumed.
func (s *SubStrSearcher) NextMatch() (int, int, bool) {
	n := len(s.needle)
	if n == 0 || s.pos >= len(s.haystack) {
		s.pos = len(s.haystack)
		return 0, 0, false
	}
	i := bytealg.Index(s.haystack[s.pos:], s.needle)
	if i < 0 {
		s.pos = len(s.haystack)
		return 0, 0, false
	}
	start := s.pos + i
	s.pos = start + n
	return start, start + n, true
}

// Char is a single non-zero byte used as a Pattern.
type Char byte

func (c Char) Searcher(haystack SubStr) Searcher {
	return NewCharSearcher(haystack, byte(c))
}

// CharSearcher yields a one-byte Match for every occurrence of a byte and a
// one-byte Reject for every other position.
type CharSearcher struct {
	haystack SubStr
	c        byte
	pos      int
}

func NewCharSearcher(haystack SubStr, c byte) *CharSearcher {
	return &CharSearcher{haystack: haystack, c: c}
}

func (s *CharSearcher) Haystack() SubStr { return s.haystack }

func (s *CharSearcher) Next() Step {
	c := s.pos
	if c >= len(s.haystack) {
		return Step{Kind: Done}
	}
	s.pos++
	if s.haystack[c] == s.c {
		return Step{Kind: Match, Start: c, End: c + 1}
	}
	return Step{Kind: Reject, Start: c, End: c + 1}
}

func (s *CharSearcher) NextMatch() (int, int, bool) {
	if s.pos >= len(s.haystack) {
		return 0, 0, false
	}
	i := bytealg.IndexByte(s.haystack[s.pos:], s.c)
	if i < 0 {
		s.pos = len(s.haystack)
		return 0, 0, false
	}
	start := s.pos + i
	s.pos = start + 1
	return start, start + 1, true
}
