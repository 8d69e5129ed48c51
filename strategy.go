package regrep

import "github.com/coregx/regrep/prefilter"

// strategy identifies how a compiled pattern is executed.
type strategy uint8

const (
	// strategyBacktrack runs the plain backtracking search at every start
	// position.
	strategyBacktrack strategy = iota

	// strategyPrefiltered uses the prefilter to propose candidate start
	// positions and the backtracker to verify each one.
	strategyPrefiltered

	// strategyLiteral answers from the prefilter alone: the extracted
	// literals cover the whole pattern, so a candidate is a match.
	strategyLiteral
)

// Strategy returns the name of the selected execution strategy. Exposed for
// tests and debugging.
func (re *Regex) Strategy() string {
	switch re.strategy {
	case strategyPrefiltered:
		return "prefiltered"
	case strategyLiteral:
		return "literal"
	}
	return "backtrack"
}

// findIndex dispatches a search to the selected strategy.
func (re *Regex) findIndex(b []byte) (start, end int, ok bool) {
	switch re.strategy {
	case strategyLiteral:
		return re.findLiteral(b)
	case strategyPrefiltered:
		return re.findPrefiltered(b)
	}
	return re.bt.Find(b)
}

// findLiteral answers directly from the complete-literal prefilter. A
// single literal's span follows from its position and length. Alternative
// literals go through candidate verification instead: the automaton reports
// the earliest-ending occurrence, which is neither the leftmost-start one
// nor the branch-order choice the backtracker makes for a span like
// (dog|do) on "dogs".
func (re *Regex) findLiteral(b []byte) (int, int, bool) {
	switch pf := re.pf.(type) {
	case *prefilter.AhoCorasick:
		return re.findPrefiltered(b)
	case *prefilter.Memchr:
		if i := pf.Find(b, 0); i >= 0 {
			return i, i + 1, true
		}
	case *prefilter.Memmem:
		if i := pf.Find(b, 0); i >= 0 {
			return i, i + pf.Len(), true
		}
	}
	return -1, -1, false
}

// findPrefiltered verifies each candidate position with the backtracker.
// The extracted prefix is required at the start of any match, so matches
// can only begin at candidate positions.
func (re *Regex) findPrefiltered(b []byte) (int, int, bool) {
	for at := 0; at <= len(b); at++ {
		c := re.pf.Find(b, at)
		if c < 0 {
			return -1, -1, false
		}
		if end, ok := re.bt.FindAnchored(b, c); ok {
			return c, end, true
		}
		at = c
	}
	return -1, -1, false
}
