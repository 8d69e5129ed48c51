// Package literal extracts literal byte sequences from compiled patterns.
//
// The extracted literals feed prefilter construction: a literal that must
// appear at the start of every match lets the engine skip directly to
// candidate positions instead of attempting a match at every offset. When
// the extracted literals cover the whole pattern, matching them is the
// whole search and the backtracker is bypassed entirely.
package literal

import "github.com/coregx/regrep/syntax"

// Literal is one byte sequence that can begin a match.
type Literal struct {
	// Bytes is the literal byte sequence.
	Bytes []byte

	// Complete indicates the literal is an entire match on its own, not
	// just a required prefix.
	Complete bool
}

// Seq is a set of alternative literals extracted from one pattern.
type Seq struct {
	// Literals holds the alternatives in source order.
	Literals []Literal

	// Complete is true when every literal is complete: finding any one of
	// them is a full match and no verification is needed.
	Complete bool
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.Literals)
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.Literals) == 0
}

// MinLen returns the length of the shortest literal, or 0 for an empty Seq.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := len(s.Literals[0].Bytes)
	for _, l := range s.Literals[1:] {
		if len(l.Bytes) < min {
			min = len(l.Bytes)
		}
	}
	return min
}

// Extract derives the prefix literals of a compiled pattern.
//
// Extraction is conservative: it returns nil whenever it cannot prove that
// every match starts with one of the returned literals. Anchored patterns
// return nil (prefiltering start positions buys nothing when only position
// 0 is tried; end anchors make completeness claims wrong).
//
// Recognized shapes:
//   - a pattern that is entirely an unquantified literal run: one complete
//     literal;
//   - a leading unquantified literal run followed by more elements: one
//     prefix literal;
//   - a leading '+'-quantified literal: its byte as a one-byte prefix;
//   - a leading alternation whose branches are all literal runs: one
//     literal per branch, complete when the alternation is the whole
//     pattern.
func Extract(p *syntax.Pattern) *Seq {
	if p.AnchorStart || p.AnchorEnd || len(p.Elems) == 0 {
		return nil
	}

	if n := &p.Elems[0]; n.Op == syntax.OpAlternate && n.Quant == syntax.QuantOne {
		complete := len(p.Elems) == 1
		lits := make([]Literal, 0, len(n.Branches))
		for _, branch := range n.Branches {
			run, ok := literalRun(branch)
			if !ok {
				return nil
			}
			lits = append(lits, Literal{Bytes: run, Complete: complete})
		}
		return &Seq{Literals: lits, Complete: complete}
	}

	var prefix []byte
	i := 0
	for ; i < len(p.Elems); i++ {
		n := &p.Elems[i]
		if n.Op != syntax.OpLiteral || n.Quant != syntax.QuantOne {
			break
		}
		prefix = append(prefix, n.Lit)
	}

	if len(prefix) == 0 {
		// A leading a+ still guarantees the match starts with 'a'.
		if n := &p.Elems[0]; n.Op == syntax.OpLiteral && n.Quant == syntax.QuantOneOrMore {
			return &Seq{Literals: []Literal{{Bytes: []byte{n.Lit}}}}
		}
		return nil
	}

	complete := i == len(p.Elems)
	return &Seq{
		Literals: []Literal{{Bytes: prefix, Complete: complete}},
		Complete: complete,
	}
}

// literalRun flattens a branch consisting solely of unquantified literals.
func literalRun(seq []syntax.Node) ([]byte, bool) {
	run := make([]byte, 0, len(seq))
	for i := range seq {
		n := &seq[i]
		if n.Op != syntax.OpLiteral || n.Quant != syntax.QuantOne {
			return nil, false
		}
		run = append(run, n.Lit)
	}
	return run, true
}
