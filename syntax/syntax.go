// Package syntax compiles textual patterns into an immutable element
// sequence consumed by the backtracking matcher.
//
// The supported syntax is a small grep-style subset: literal bytes, \d, \w,
// positive and negative character sets [...] / [^...], the wildcard '.',
// the quantifiers '?' and '+', the anchors '^' and '$', and alternation
// groups (a|b) with nesting. Matching is byte-oriented (ASCII).
//
// Parsing is cursor-based over the original pattern string: no intermediate
// substrings are allocated. Compilation fails fast with a typed error on the
// first structural problem and performs no I/O.
package syntax

// Op identifies the kind of a pattern element.
//
// Op is a closed set: the matcher switches exhaustively over it, so adding
// a new kind forces a review of every matching site.
type Op uint8

const (
	// OpLiteral matches one occurrence of a specific byte.
	OpLiteral Op = iota

	// OpAnyChar matches any single byte ('.'). Whether '\n' is included is
	// decided by the matcher, not the compiled form.
	OpAnyChar

	// OpDigit matches one ASCII digit ('\d').
	OpDigit

	// OpWordChar matches one alphanumeric-or-underscore byte ('\w').
	OpWordChar

	// OpClass matches one byte against a 256-bit member set, optionally
	// negated ('[...]' / '[^...]').
	OpClass

	// OpStartAnchor is a zero-width assertion: the position must be the
	// start of input. Emitted only for a mid-pattern '^'; a leading '^'
	// becomes Pattern.AnchorStart instead.
	OpStartAnchor

	// OpEndAnchor is a zero-width assertion: the position must be the end
	// of input. Emitted only for a mid-pattern '$'; a trailing '$' becomes
	// Pattern.AnchorEnd instead.
	OpEndAnchor

	// OpAlternate matches if any one branch matches at the current
	// position; branches are tried in source order.
	OpAlternate
)

// String returns the name of the op for debugging.
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpAnyChar:
		return "AnyChar"
	case OpDigit:
		return "Digit"
	case OpWordChar:
		return "WordChar"
	case OpClass:
		return "Class"
	case OpStartAnchor:
		return "StartAnchor"
	case OpEndAnchor:
		return "EndAnchor"
	case OpAlternate:
		return "Alternate"
	}
	return "Unknown"
}

// Quant is the arity attached to a pattern element.
type Quant uint8

const (
	// QuantOne requires exactly one occurrence (the default).
	QuantOne Quant = iota

	// QuantZeroOrOne allows zero or one occurrence ('?').
	QuantZeroOrOne

	// QuantOneOrMore requires at least one occurrence, matched greedily ('+').
	QuantOneOrMore
)

// String returns the quantifier's source form for debugging.
func (q Quant) String() string {
	switch q {
	case QuantZeroOrOne:
		return "?"
	case QuantOneOrMore:
		return "+"
	}
	return ""
}

// ClassSet is a 256-bit membership bitmap over byte values.
//
// Bit i is set if byte value i is a member. The bitmap form makes class
// escapes like \d inside [...] a simple range OR, and membership tests a
// single shift and mask.
type ClassSet [4]uint64

// Add sets byte b as a member.
func (s *ClassSet) Add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// AddRange sets every byte in [lo, hi] as a member.
func (s *ClassSet) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether byte b is a member.
func (s *ClassSet) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// IsEmpty reports whether the set has no members.
func (s *ClassSet) IsEmpty() bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}

// Node is one quantified pattern element: a tagged variant over the element
// kinds plus the quantifier attached to it.
//
// Which fields are meaningful depends on Op:
//   - OpLiteral: Lit
//   - OpClass: Set, Negated
//   - OpAlternate: Branches
//
// All other kinds carry no payload.
type Node struct {
	Op    Op
	Quant Quant

	// Lit is the byte matched by OpLiteral.
	Lit byte

	// Set and Negated describe an OpClass element. Set is never empty
	// after a successful parse.
	Set     ClassSet
	Negated bool

	// Branches holds the alternatives of an OpAlternate element, in source
	// order. Each branch is a non-empty element sequence.
	Branches [][]Node
}

// Pattern is a compiled pattern: an ordered element sequence plus the
// structural anchor flags of the top-level sequence.
//
// A Pattern is immutable once built and may be shared freely across
// goroutines and reused across inputs.
type Pattern struct {
	// Elems is the top-level quantified element sequence.
	Elems []Node

	// AnchorStart is set when the pattern begins with '^'. The anchor is
	// not emitted as an element.
	AnchorStart bool

	// AnchorEnd is set when the pattern ends with '$'. The anchor is not
	// emitted as an element.
	AnchorEnd bool

	src string
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.src
}
