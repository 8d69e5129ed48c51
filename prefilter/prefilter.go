// Package prefilter provides fast candidate filtering for pattern search
// using extracted prefix literals.
//
// A prefilter scans the haystack for literals that must begin every match.
// Positions it reports are candidates only: unless IsComplete reports true,
// the caller verifies each candidate with the full matcher. Positions it
// skips can never start a match, which is where the speedup comes from -
// the scan is a byte search primitive instead of a match attempt per
// offset.
//
// Build selects the implementation from the literal sequence:
//   - one single-byte literal     -> Memchr (bytes.IndexByte)
//   - one multi-byte literal      -> Memmem (bytes.Index)
//   - several alternative literals -> AhoCorasick (multi-pattern automaton)
package prefilter

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regrep/literal"
)

// Prefilter finds candidate match start positions.
type Prefilter interface {
	// Find returns the next candidate position at or after start, or -1
	// if there is none. No match begins in [start, candidate); the
	// candidate itself may be conservative and still needs verification.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is already a full match, in
	// which case the caller may skip verification.
	IsComplete() bool

	// String describes the prefilter for debugging.
	String() string
}

// Build constructs a prefilter for the given literal sequence, or nil when
// the sequence is empty or the automaton cannot be built.
func Build(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Literals[0]
		if len(lit.Bytes) == 0 {
			return nil
		}
		if len(lit.Bytes) == 1 {
			return &Memchr{needle: lit.Bytes[0], complete: seq.Complete}
		}
		return &Memmem{needle: lit.Bytes, complete: seq.Complete}
	}

	builder := ahocorasick.NewBuilder()
	maxLen := 0
	for _, lit := range seq.Literals {
		builder.AddPattern(lit.Bytes)
		if len(lit.Bytes) > maxLen {
			maxLen = len(lit.Bytes)
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &AhoCorasick{auto: auto, maxLen: maxLen, complete: seq.Complete}
}

// Memchr finds candidates by scanning for a single byte.
type Memchr struct {
	needle   byte
	complete bool
}

// Find implements Prefilter.
func (p *Memchr) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

// IsComplete implements Prefilter.
func (p *Memchr) IsComplete() bool { return p.complete }

// String implements Prefilter.
func (p *Memchr) String() string {
	return fmt.Sprintf("memchr(%q)", p.needle)
}

// Memmem finds candidates by scanning for a single substring.
type Memmem struct {
	needle   []byte
	complete bool
}

// Find implements Prefilter.
func (p *Memmem) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

// IsComplete implements Prefilter.
func (p *Memmem) IsComplete() bool { return p.complete }

// String implements Prefilter.
func (p *Memmem) String() string {
	return fmt.Sprintf("memmem(%q)", p.needle)
}

// Len returns the needle length. The engine uses it to turn a complete
// candidate position into a match span.
func (p *Memmem) Len() int { return len(p.needle) }

// AhoCorasick finds candidates for several alternative literals with a
// multi-pattern automaton, one pass over the haystack regardless of how
// many literals there are.
//
// The automaton reports the earliest-ending occurrence, which is not the
// leftmost-start one when literals have different lengths: for {bc, abc}
// in "abc" it may report the occurrence at 1 even though a match starts
// at 0. Find therefore answers with a conservative candidate - the
// earliest position at which any literal occurrence could still begin,
// derived from the reported end and the longest literal - and leaves span
// resolution to the verifying matcher.
type AhoCorasick struct {
	auto     *ahocorasick.Automaton
	maxLen   int
	complete bool
}

// Find implements Prefilter.
func (p *AhoCorasick) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	// No occurrence of any literal can begin before m.End - maxLen.
	if c := m.End - p.maxLen; c > start {
		return c
	}
	return start
}

// IsMatch reports whether any literal occurs in haystack. This is the
// boolean bypass for complete literal sequences; it needs no span and so
// no verification.
func (p *AhoCorasick) IsMatch(haystack []byte) bool {
	return p.auto.IsMatch(haystack)
}

// IsComplete implements Prefilter.
func (p *AhoCorasick) IsComplete() bool { return p.complete }

// String implements Prefilter.
func (p *AhoCorasick) String() string { return "aho-corasick" }
