// Package backtrack implements a recursive backtracking matcher over
// compiled pattern element sequences.
//
// The search is continuation-passing: matching an element either fails or
// hands the advanced position to a continuation for the rest of the
// sequence. Choice points are tried in a fixed priority order - greedy
// longest-first for '+', one-then-zero for '?', declaration order for
// alternation branches - so the first overall success is the conventional
// greedy leftmost match. There is no explicit backtracking stack and no
// mutable search state; failure simply returns up the recursion.
//
// Matching is total: any (pattern, input) pair yields a boolean, never an
// error. Pathological patterns (nested '+' over long inputs) can backtrack
// exponentially; callers needing bounded latency must impose an external
// budget.
package backtrack

import "github.com/coregx/regrep/syntax"

// Config controls matching behavior.
type Config struct {
	// DotMatchesNewline makes '.' match '\n' as well.
	// Default: false (grep line semantics).
	DotMatchesNewline bool
}

// Backtracker matches a compiled pattern against input lines.
//
// A Backtracker is stateless between calls and safe for concurrent use; the
// compiled pattern is read-only after construction.
type Backtracker struct {
	pat   *syntax.Pattern
	dotNL bool
}

// New creates a backtracker for the given compiled pattern.
func New(p *syntax.Pattern, config Config) *Backtracker {
	return &Backtracker{pat: p, dotNL: config.DotMatchesNewline}
}

// cont receives the input position reached after the elements consumed so
// far and decides whether the overall attempt succeeds from there.
type cont func(pos int) (int, bool)

// IsMatch reports whether the pattern matches anywhere in haystack.
func (b *Backtracker) IsMatch(haystack []byte) bool {
	_, _, ok := b.Find(haystack)
	return ok
}

// Find returns the leftmost match span, or ok=false if there is none.
// Start positions are tried in increasing order, so the leftmost candidate
// wins.
func (b *Backtracker) Find(haystack []byte) (start, end int, ok bool) {
	return b.FindAt(haystack, 0)
}

// FindAt is Find restricted to matches starting at or after position at.
func (b *Backtracker) FindAt(haystack []byte, at int) (start, end int, ok bool) {
	last := len(haystack)
	if b.pat.AnchorStart {
		if at > 0 {
			return -1, -1, false
		}
		last = 0
	}
	for s := at; s <= last; s++ {
		if e, ok := b.tryAt(haystack, s); ok {
			return s, e, true
		}
	}
	return -1, -1, false
}

// FindAnchored attempts a match starting exactly at position at and returns
// the end of the match. Prefiltered search uses this to verify candidate
// positions without rescanning.
func (b *Backtracker) FindAnchored(haystack []byte, at int) (end int, ok bool) {
	if b.pat.AnchorStart && at != 0 {
		return -1, false
	}
	return b.tryAt(haystack, at)
}

// tryAt runs one match attempt with the top-level end-anchor rule as the
// final continuation.
func (b *Backtracker) tryAt(haystack []byte, start int) (int, bool) {
	return b.matchSeq(haystack, b.pat.Elems, 0, start, func(pos int) (int, bool) {
		if b.pat.AnchorEnd && pos != len(haystack) {
			return -1, false
		}
		return pos, true
	})
}

// matchSeq matches seq[i:] at pos, invoking k once the sequence is
// exhausted.
func (b *Backtracker) matchSeq(haystack []byte, seq []syntax.Node, i, pos int, k cont) (int, bool) {
	if i == len(seq) {
		return k(pos)
	}
	n := &seq[i]
	rest := func(p int) (int, bool) {
		return b.matchSeq(haystack, seq, i+1, p, k)
	}
	switch n.Quant {
	case syntax.QuantZeroOrOne:
		if end, ok := b.matchOne(haystack, n, pos, rest); ok {
			return end, true
		}
		return rest(pos)
	case syntax.QuantOneOrMore:
		return b.matchPlus(haystack, n, pos, rest)
	}
	return b.matchOne(haystack, n, pos, rest)
}

// matchPlus matches one occurrence of n, then greedily prefers consuming
// another occurrence over continuing with k. The p > pos guard stops the
// recursion when an occurrence consumed nothing (a branch like (a?)+).
func (b *Backtracker) matchPlus(haystack []byte, n *syntax.Node, pos int, k cont) (int, bool) {
	return b.matchOne(haystack, n, pos, func(p int) (int, bool) {
		if p > pos {
			if end, ok := b.matchPlus(haystack, n, p, k); ok {
				return end, true
			}
		}
		return k(p)
	})
}

// matchOne matches a single occurrence of the atom at pos and hands the
// advanced position to k. Anchors are zero-width and assert against the
// overall input bounds; all other atoms consume exactly one byte.
func (b *Backtracker) matchOne(haystack []byte, n *syntax.Node, pos int, k cont) (int, bool) {
	switch n.Op {
	case syntax.OpStartAnchor:
		if pos != 0 {
			return -1, false
		}
		return k(pos)
	case syntax.OpEndAnchor:
		if pos != len(haystack) {
			return -1, false
		}
		return k(pos)
	case syntax.OpAlternate:
		for _, branch := range n.Branches {
			if end, ok := b.matchSeq(haystack, branch, 0, pos, k); ok {
				return end, true
			}
		}
		return -1, false
	}
	if pos >= len(haystack) || !b.matchByte(n, haystack[pos]) {
		return -1, false
	}
	return k(pos + 1)
}

// matchByte tests one input byte against a single-byte atom.
func (b *Backtracker) matchByte(n *syntax.Node, c byte) bool {
	switch n.Op {
	case syntax.OpLiteral:
		return c == n.Lit
	case syntax.OpAnyChar:
		return b.dotNL || c != '\n'
	case syntax.OpDigit:
		return c >= '0' && c <= '9'
	case syntax.OpWordChar:
		return isWordByte(c)
	case syntax.OpClass:
		return n.Set.Contains(c) != n.Negated
	}
	return false
}

// isWordByte reports whether c is alphanumeric or underscore.
func isWordByte(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_'
}
